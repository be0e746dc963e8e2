package assets

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	// Decoders register themselves with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/spf13/afero"
)

// Image is a decoded RGBA8 pixel buffer. Rows are stored bottom row first to
// match OpenGL's texture origin.
type Image struct {
	Width, Height int
	Channels      int
	Pix           []byte
}

// Empty reports whether the image holds no pixels.
func (im *Image) Empty() bool { return im == nil || im.Width == 0 || im.Height == 0 }

// LoadImage decodes the image at path inside fsys.
func LoadImage(fsys afero.Fs, path string) (*Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return img, nil
}

// DecodeImage decodes any registered format into a tightly packed, vertically
// flipped RGBA8 buffer.
func DecodeImage(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(src), nil
}

// FromImage converts img into an Image.
func FromImage(img image.Image) *Image {
	rgba := imageToRGBA(img)
	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()

	out := make([]byte, w*h*4)
	src := rgba.Pix
	srcStride := rgba.Stride

	// Copy row by row, last source row first.
	for y := 0; y < h; y++ {
		dst := (h - 1 - y) * w * 4
		copy(out[dst:dst+w*4], src[y*srcStride:y*srcStride+w*4])
	}

	return &Image{Width: w, Height: h, Channels: 4, Pix: out}
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Stride == m.Rect.Dx()*4 && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
