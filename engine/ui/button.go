package ui

import (
	"github.com/hubastard/marley/engine/colors"
	"github.com/hubastard/marley/engine/text"
)

// Button is a focusable label with a click behaviour.
type Button struct {
	Common[*Button]
	label *Label

	focusColor   colors.Color
	pressedColor colors.Color
}

// NewButton builds a click-only button. Attach a holdable behaviour with
// SetClickable to make it report holds.
func NewButton(str string, click *Clickable) *Button {
	b := &Button{
		focusColor:   colors.Hex(0x3a6ea5),
		pressedColor: colors.Hex(0x24476b),
	}
	b.Common = NewCommon(b)
	b.label = NewLabel(str)
	b.Children(b.label)
	b.base.color = colors.Hex(0x2b2b2b)
	b.base.SetPadding(10, 10, 10, 10)
	b.base.focusable = true
	if click == nil {
		click = NewClickable("")
	}
	b.base.click = click
	return b
}

func (b *Button) BgColor(color colors.Color) *Button      { b.base.color = color; return b }
func (b *Button) FocusColor(color colors.Color) *Button   { b.focusColor = color; return b }
func (b *Button) PressedColor(color colors.Color) *Button { b.pressedColor = color; return b }
func (b *Button) TextColor(color colors.Color) *Button    { b.label.base.color = color; return b }
func (b *Button) FontSize(size float32) *Button           { b.label.fontSize = size; return b }
func (b *Button) Font(font *text.Font) *Button            { b.label.font = font; return b }

func (b *Button) Text() string              { return b.label.Text() }
func (b *Button) SetText(s string)          { b.label.SetText(s) }
func (b *Button) Clickable() *Clickable     { return b.base.click }
func (b *Button) SetClickable(c *Clickable) { b.base.click = c }

func (b *Button) Layout(ctx *Context, constraints Constraints) LayoutResult {
	padding := b.base.scaledPadding(ctx)
	innerConstraints := Constraints{
		Min: [2]float32{0, 0},
		Max: [2]float32{
			maxf(0, resolveConstraint(constraints.Max[0])-padding[0]-padding[2]),
			maxf(0, resolveConstraint(constraints.Max[1])-padding[1]-padding[3]),
		},
	}

	res := b.label.Layout(ctx, innerConstraints)
	contentW := res.Size[0]
	contentH := res.Size[1]

	width := b.base.resolveAxis(ctx, b.base.widthMod, b.base.widthVal, contentW+padding[0]+padding[2], constraints.Min[0], constraints.Max[0])
	height := b.base.resolveAxis(ctx, b.base.heightMod, b.base.heightVal, contentH+padding[1]+padding[3], constraints.Min[1], constraints.Max[1])

	innerWidth := maxf(0, width-padding[0]-padding[2])
	innerHeight := maxf(0, height-padding[1]-padding[3])

	b.base.SetSize(width, height)

	child := b.label.Node()
	childWidth := clamp(contentW, 0, innerWidth)
	if child.widthMod == SizeModeExpand {
		childWidth = innerWidth
	}
	childHeight := clamp(contentH, 0, innerHeight)
	if child.heightMod == SizeModeExpand {
		childHeight = innerHeight
	}
	child.SetSize(childWidth, childHeight)

	return LayoutResult{Size: [2]float32{width, height}}
}

func (b *Button) background() colors.Color {
	switch {
	case b.base.click != nil && b.base.click.Pressed():
		return b.pressedColor
	case b.base.focused || b.base.hovered:
		return b.focusColor
	}
	return b.base.color
}

func (b *Button) Draw(ctx *Context) {
	b.base.fillBackground(ctx, b.background())

	x, y := b.base.innerPosition(ctx)
	b.label.Node().SetPos(x, y)
	b.label.Draw(ctx)
}
