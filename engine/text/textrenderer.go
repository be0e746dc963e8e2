package text

import (
	"github.com/hubastard/marley/engine/colors"
	"github.com/hubastard/marley/engine/gfx/renderer2d"
)

// QuadDrawer is the part of the 2D renderer text needs.
type QuadDrawer interface {
	DrawTexturedQuadUV(x, y, w, h float32, tex renderer2d.Texture, tint colors.Color, rotationRad float32, u0, v0, u1, v1 float32)
}

func scaleFor(font *Font, size float32) float32 {
	if size <= 0 || font.SizePx <= 0 {
		return 1
	}
	return size / font.SizePx
}

func (f *Font) kern(prev, r rune) float32 {
	if prev < 0 || f.Face == nil {
		return 0
	}
	return float32(f.Face.Kern(prev, r)) / 64.0
}

// DrawText draws s with its top-left corner at (x,y). Positive Y goes downward.
func DrawText(r2d QuadDrawer, font *Font, x, y float32, s string, size float32, color colors.Color) {
	scale := scaleFor(font, size)
	penX := x
	baseY := y + font.Ascent*scale // move origin to top left
	lineH := LineHeight(font) * scale
	var prev rune = -1

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += lineH
			prev = -1
			continue
		}

		g, ok := font.Glyphs[r]
		if !ok {
			if sp, ok2 := font.Glyphs[' ']; ok2 {
				penX += sp.Advance * scale
			}
			prev = r
			continue
		}

		penX += font.kern(prev, r) * scale

		if g.W > 0 && g.H > 0 {
			// top = baseline - BearingY
			left := penX + g.BearingX*scale
			top := baseY - g.BearingY*scale
			w, h := float32(g.W)*scale, float32(g.H)*scale
			r2d.DrawTexturedQuadUV(
				left+w*0.5, top+h*0.5,
				w, h,
				font.Texture, color, 0,
				g.U0, g.V0, g.U1, g.V1,
			)
		}

		penX += g.Advance * scale
		prev = r
	}
}

// MeasureText returns the extent of s rendered at size.
func MeasureText(font *Font, s string, size float32) (width, height float32) {
	var lineW float32
	var prev rune = -1
	lineH := LineHeight(font)
	height = lineH

	for _, r := range s {
		if r == '\n' {
			if lineW > width {
				width = lineW
			}
			lineW = 0
			height += lineH
			prev = -1
			continue
		}

		g, ok := font.Glyphs[r]
		if !ok {
			if sp, ok2 := font.Glyphs[' ']; ok2 {
				lineW += sp.Advance
			}
			prev = r
			continue
		}

		lineW += font.kern(prev, r)
		lineW += g.Advance
		prev = r
	}

	if lineW > width {
		width = lineW
	}
	scale := scaleFor(font, size)
	return width * scale, height * scale
}

// Baseline-to-top distance (useful to position text by top-left).
func BaselineToTop(font *Font) float32    { return font.Ascent }
func BaselineToBottom(font *Font) float32 { return -font.Descent }
func LineHeight(font *Font) float32       { return font.Ascent - font.Descent + font.LineGap }
