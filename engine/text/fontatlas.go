package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/hubastard/marley/engine/gfx/renderer2d"
	"github.com/spf13/afero"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Font is a rasterised glyph atlas for one face at one pixel size.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Texture                  renderer2d.Texture
	AtlasW, AtlasH           int
	Face                     font.Face
}

func (f *Font) Close() {
	if f != nil && f.Face != nil {
		_ = f.Face.Close()
		f.Face = nil
	}
}

// Uploader turns the finished atlas image into a GPU texture.
type Uploader func(atlas image.Image) renderer2d.Texture

const (
	atlasPadding = 2
	maxAtlasSize = 4096
)

// LoadTTF parses a TrueType/OpenType file from fsys and builds its atlas.
func LoadTTF(fsys afero.Fs, path string, sizePx float32, upload Uploader) (*Font, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return ParseTTF(data, sizePx, upload)
}

// Default builds the Go Regular face, which needs no asset on disk.
func Default(sizePx float32, upload Uploader) (*Font, error) {
	return ParseTTF(goregular.TTF, sizePx, upload)
}

func ParseTTF(data []byte, sizePx float32, upload Uploader) (*Font, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	f, atlas, err := BuildAtlas(face, sizePx)
	if err != nil {
		_ = face.Close()
		return nil, err
	}
	if upload != nil {
		f.Texture = upload(atlas)
	}
	return f, nil
}

// BuildAtlas rasterises runes 32..255 of face as white glyphs with alpha
// coverage, packed into square shelves. The atlas image is returned for
// upload; the Font keeps only metrics and UVs.
func BuildAtlas(face font.Face, sizePx float32) (*Font, *image.RGBA, error) {
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	measure := make([]meas, 0, 224)
	for rr := rune(32); rr <= rune(255); rr++ {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r:   rr,
			w:   (br.Max.X - br.Min.X).Ceil(),
			h:   (br.Max.Y - br.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()), // distance from baseline to top
		})
	}

	// Simple shelf packer. Start with 256^2 and grow until everything fits.
	atlasSize := 256
	var pos map[rune]image.Point
	for {
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))

		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+atlasPadding*2 > atlasSize || g.h+atlasPadding*2 > atlasSize {
				fits = false
				break
			}
			if x+g.w+atlasPadding > atlasSize {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if y+g.h+atlasPadding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			if g.h > rowH {
				rowH = g.h
			}
		}

		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > maxAtlasSize {
			return nil, nil, fmt.Errorf("font atlas too large (>%d)", maxAtlasSize)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		gl := Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
		}
		p, placed := pos[g.r]
		if placed {
			// Dot sits on the baseline, shifted left by the bearing.
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))

			gl.U0 = float32(p.X) / float32(atlasSize)
			gl.V0 = float32(p.Y) / float32(atlasSize)
			gl.U1 = float32(p.X+g.w) / float32(atlasSize)
			gl.V1 = float32(p.Y+g.h) / float32(atlasSize)
		}
		glyphs[g.r] = gl
	}

	return &Font{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs: glyphs,
		AtlasW: atlasSize, AtlasH: atlasSize,
		Face: face,
	}, dst, nil
}
