package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/spf13/afero"
)

func writePNG(t *testing.T, fsys afero.Fs, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := afero.WriteFile(fsys, path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadImageFlipsRows(t *testing.T) {
	fsys := afero.NewMemMapFs()

	// 1x2: red on top, blue at the bottom.
	src := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	src.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	src.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	writePNG(t, fsys, "textures/flip.png", src)

	img, err := LoadImage(fsys, "textures/flip.png")
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if img.Width != 1 || img.Height != 2 || img.Channels != 4 {
		t.Fatalf("unexpected dimensions %dx%dx%d", img.Width, img.Height, img.Channels)
	}
	want := []byte{0, 0, 255, 255, 255, 0, 0, 255}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("pixels = %v, want %v", img.Pix, want)
	}
}

func TestLoadImageMissing(t *testing.T) {
	_, err := LoadImage(afero.NewMemMapFs(), "nope.png")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDecodeImageGarbage(t *testing.T) {
	if _, err := DecodeImage(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFromImageSubImageOrigin(t *testing.T) {
	full := image.NewRGBA(image.Rect(0, 0, 4, 4))
	full.Set(2, 2, color.RGBA{9, 8, 7, 255})
	sub := full.SubImage(image.Rect(2, 2, 3, 3))

	img := FromImage(sub)
	if img.Width != 1 || img.Height != 1 {
		t.Fatalf("unexpected size %dx%d", img.Width, img.Height)
	}
	if !bytes.Equal(img.Pix, []byte{9, 8, 7, 255}) {
		t.Errorf("unexpected pixel %v", img.Pix)
	}
}

func TestLoadShaderTerminates(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_ = afero.WriteFile(fsys, "quad.vert", []byte("void main(){}"), 0o644)

	src, err := LoadShader(fsys, "quad.vert")
	if err != nil {
		t.Fatalf("LoadShader failed: %v", err)
	}
	if src[len(src)-1] != 0 {
		t.Error("expected NUL terminator")
	}
	if Terminate(src) != src {
		t.Error("Terminate should not add a second NUL")
	}
}
