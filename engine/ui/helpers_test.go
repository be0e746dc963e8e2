package ui

import (
	"time"

	"github.com/hubastard/marley/engine/colors"
	"github.com/hubastard/marley/engine/text"
)

type rect struct {
	x, y, w, h float32
}

type fakePainter struct {
	begins, ends int
	rects        []rect
	texts        []string
}

func (p *fakePainter) Begin(w, h float32) { p.begins++ }
func (p *fakePainter) End()               { p.ends++ }

func (p *fakePainter) FillRect(x, y, w, h float32, c colors.Color) {
	p.rects = append(p.rects, rect{x, y, w, h})
}

func (p *fakePainter) DrawText(_ *text.Font, x, y float32, s string, size float32, c colors.Color) {
	p.texts = append(p.texts, s)
}

// MeasureText treats every rune as half the font size wide.
func (p *fakePainter) MeasureText(_ *text.Font, s string, size float32) (float32, float32) {
	return float32(len([]rune(s))) * size / 2, size
}

// box is a fixed-size leaf for layout tests.
type box struct{ Common[*box] }

func newBox(w, h float32) *box {
	b := &box{}
	b.Common = NewCommon(b)
	return b.WidthFixed(w).HeightFixed(h)
}

func (b *box) Layout(ctx *Context, c Constraints) LayoutResult {
	w := b.base.resolveAxis(ctx, b.base.widthMod, b.base.widthVal, 0, c.Min[0], c.Max[0])
	h := b.base.resolveAxis(ctx, b.base.heightMod, b.base.heightVal, 0, c.Min[1], c.Max[1])
	b.base.SetSize(w, h)
	return LayoutResult{Size: [2]float32{w, h}}
}

func (b *box) Draw(*Context) {}

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock { return &fakeClock{t: time.Unix(1000, 0)} }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// placed returns a button laid out at (x,y) with a fixed size.
func placed(label string, click *Clickable, x, y float32) *Button {
	b := NewButton(label, click)
	b.Node().SetPos(x, y)
	b.Node().SetSize(100, 40)
	return b
}
