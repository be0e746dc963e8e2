package ui

import (
	"github.com/hubastard/marley/engine/colors"
	"github.com/hubastard/marley/engine/gfx/renderer2d"
	"github.com/hubastard/marley/engine/scene"
	"github.com/hubastard/marley/engine/text"
)

// Painter is the drawing surface views emit into. Coordinates are pixels
// with the origin at the top-left corner.
type Painter interface {
	Begin(width, height float32)
	End()
	FillRect(x, y, w, h float32, c colors.Color)
	DrawText(font *text.Font, x, y float32, s string, size float32, c colors.Color)
	MeasureText(font *text.Font, s string, size float32) (w, h float32)
}

// BatchPainter paints through the 2D batch renderer with a pixel camera.
type BatchPainter struct {
	R      *renderer2d.Renderer2D
	Camera *scene.OrthographicCamera

	w, h float32
}

func NewBatchPainter(r *renderer2d.Renderer2D) *BatchPainter {
	return &BatchPainter{R: r, Camera: scene.NewScreenCamera(1, 1), w: 1, h: 1}
}

func (p *BatchPainter) Begin(width, height float32) {
	if p.w != width || p.h != height {
		p.Camera.SetViewportPixels(int(width), int(height))
		p.w, p.h = width, height
	}
	p.R.BeginScene(p.Camera.ViewProjection())
}

func (p *BatchPainter) End() { p.R.EndScene() }

func (p *BatchPainter) FillRect(x, y, w, h float32, c colors.Color) {
	p.R.DrawQuad(x+w/2, y+h/2, w, h, c, 0)
}

func (p *BatchPainter) DrawText(font *text.Font, x, y float32, s string, size float32, c colors.Color) {
	if font == nil {
		return
	}
	text.DrawText(p.R, font, x, y, s, size, c)
}

func (p *BatchPainter) MeasureText(font *text.Font, s string, size float32) (float32, float32) {
	if font == nil {
		return 0, 0
	}
	return text.MeasureText(font, s, size)
}
