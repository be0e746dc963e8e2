package assets

import (
	"fmt"

	"github.com/spf13/afero"
)

// LoadShader reads a GLSL file into a null-terminated string for OpenGL.
func LoadShader(fsys afero.Fs, path string) (string, error) {
	b, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", path, err)
	}
	return Terminate(string(b)), nil
}

// Terminate appends the NUL byte gl.Strs expects, once.
func Terminate(src string) string {
	if len(src) == 0 || src[len(src)-1] != 0 {
		return src + "\x00"
	}
	return src
}
