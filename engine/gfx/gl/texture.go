package glbackend

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/marley/engine/assets"
	"github.com/hubastard/marley/engine/core"
	"github.com/spf13/afero"
)

type Filter int

const (
	FilterLinear Filter = iota
	FilterNearest
)

type Wrap int

const (
	WrapClamp Wrap = iota
	WrapRepeat
)

type TextureOptions struct {
	MinFilter, MagFilter Filter
	WrapU, WrapV         Wrap
}

// Texture owns a GPU texture handle. Pixels are not retained after upload.
// A zero handle is a valid, empty texture: binding it unbinds the slot.
type Texture struct {
	id            uint32
	width, height int
	bpp           int
}

// NewTexture uploads an RGBA8 image.
func NewTexture(img *assets.Image, opts TextureOptions) *Texture {
	if img.Empty() {
		return &Texture{}
	}
	t := &Texture{width: img.Width, height: img.Height, bpp: 4}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(opts.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(opts.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(opts.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(opts.WrapV))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.Width), int32(img.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	checkError("Texture.New")
	return t
}

// NewTextureFromImage flips and uploads an in-memory image, such as a glyph atlas.
func NewTextureFromImage(img image.Image, opts TextureOptions) *Texture {
	return NewTexture(assets.FromImage(img), opts)
}

// LoadTexture decodes and uploads path. Failures are logged and yield an
// empty texture so rendering carries on.
func LoadTexture(fsys afero.Fs, path string, opts TextureOptions) *Texture {
	img, err := assets.LoadImage(fsys, path)
	if err != nil {
		core.Logger().Warn("texture unavailable", "path", path, "err", err)
		return &Texture{}
	}
	return NewTexture(img, opts)
}

func (t *Texture) Bind(slot uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + slot)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

func (t *Texture) Unbind(slot uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + slot)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (t *Texture) Width() int         { return t.width }
func (t *Texture) Height() int        { return t.height }
func (t *Texture) BytesPerPixel() int { return t.bpp }
func (t *Texture) Valid() bool        { return t.id != 0 }

func (t *Texture) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

func glFilter(f Filter) int32 {
	if f == FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func glWrap(w Wrap) int32 {
	if w == WrapRepeat {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}
