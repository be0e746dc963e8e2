package ui

import (
	"github.com/hubastard/marley/engine/colors"
)

// Base is the state every view shares: geometry, layout parameters, tree
// links, focus and hover flags, and the optional click behaviour.
type Base struct {
	parent    View
	children  []View
	position  [2]float32
	size      [2]float32
	color     colors.Color
	widthMod  SizeMode
	heightMod SizeMode
	widthVal  float32
	heightVal float32
	padding   [4]float32 // left, top, right, bottom
	margin    [4]float32 // left, top, right, bottom

	visible   bool
	focusable bool
	focused   bool
	hovered   bool

	click *Clickable
}

func (b *Base) Parent() View            { return b.parent }
func (b *Base) Children() []View        { return b.children }
func (b *Base) Pos() (x, y float32)     { return b.position[0], b.position[1] }
func (b *Base) Size() (w, h float32)    { return b.size[0], b.size[1] }
func (b *Base) SetPos(x, y float32)     { b.position = [2]float32{x, y} }
func (b *Base) SetSize(w, h float32)    { b.size = [2]float32{w, h} }
func (b *Base) SetColor(c colors.Color) { b.color = c }
func (b *Base) Padding() [4]float32     { return b.padding }
func (b *Base) Margin() [4]float32      { return b.margin }
func (b *Base) SetPadding(l, t, r, btm float32) {
	b.padding = [4]float32{l, t, r, btm}
}
func (b *Base) SetMargin(l, t, r, btm float32) {
	b.margin = [4]float32{l, t, r, btm}
}

func (b *Base) Visible() bool             { return b.visible }
func (b *Base) SetVisible(v bool)         { b.visible = v }
func (b *Base) IsFocusable() bool         { return b.focusable && b.visible }
func (b *Base) SetFocusable(v bool)       { b.focusable = v }
func (b *Base) HasFocus() bool            { return b.focused }
func (b *Base) Hovered() bool             { return b.hovered }
func (b *Base) Clickable() *Clickable     { return b.click }
func (b *Base) SetClickable(c *Clickable) { b.click = c }

// Contains reports whether the pixel (x,y) lies inside the view's rect.
func (b *Base) Contains(x, y float32) bool {
	return x >= b.position[0] && x < b.position[0]+b.size[0] &&
		y >= b.position[1] && y < b.position[1]+b.size[1]
}

func (b *Base) add(self, child View) {
	if child == nil {
		return
	}
	cn := child.Node()
	if cn.parent != nil {
		cn.parent.Node().remove(child)
	}
	cn.parent = self
	b.children = append(b.children, child)
}

func (b *Base) remove(child View) bool {
	cn := child.Node()
	for i, c := range b.children {
		if c.Node() != cn {
			continue
		}
		kids := make([]View, 0, len(b.children)-1)
		kids = append(kids, b.children[:i]...)
		kids = append(kids, b.children[i+1:]...)
		b.children = kids
		cn.parent = nil
		return true
	}
	return false
}

// removeAll detaches every child. The old slice is left untouched so a
// caller still ranging over it is unaffected.
func (b *Base) removeAll() {
	for _, c := range b.children {
		c.Node().parent = nil
	}
	b.children = nil
}

// indexOf matches by node so a wrapper embedding a layout is found through
// either the wrapper or the inner layout.
func (b *Base) indexOf(child View) int {
	cn := child.Node()
	for i, c := range b.children {
		if c.Node() == cn {
			return i
		}
	}
	return -1
}

// IsAttached reports whether v is root or reachable from it through parents.
func IsAttached(root, v View) bool {
	if root == nil {
		return false
	}
	rn := root.Node()
	for n := v; n != nil; n = n.Node().parent {
		if n.Node() == rn {
			return true
		}
	}
	return false
}

// scaledPadding returns the view's padding converted to pixels.
func (b *Base) scaledPadding(ctx *Context) [4]float32 {
	p := b.padding
	for i := range p {
		p[i] = ctx.Px(p[i])
	}
	return p
}

func (b *Base) scaledMargin(ctx *Context) [4]float32 {
	m := b.margin
	for i := range m {
		m[i] = ctx.Px(m[i])
	}
	return m
}

func (b *Base) resolveAxis(ctx *Context, mode SizeMode, fixed, content, min, max float32) float32 {
	switch mode {
	case SizeModeFixed:
		if fixed > 0 {
			return clamp(ctx.Px(fixed), min, resolveConstraint(max))
		}
		return clamp(content, min, resolveConstraint(max))
	case SizeModeExpand:
		return clamp(resolveConstraint(max), min, resolveConstraint(max))
	default:
		return clamp(content, min, resolveConstraint(max))
	}
}

func (b *Base) innerPosition(ctx *Context) (float32, float32) {
	p := b.scaledPadding(ctx)
	return b.position[0] + p[0], b.position[1] + p[1]
}

func (b *Base) innerSize(ctx *Context) (float32, float32) {
	p := b.scaledPadding(ctx)
	innerW := b.size[0] - p[0] - p[2]
	innerH := b.size[1] - p[1] - p[3]
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}
	return innerW, innerH
}

// fillBackground paints the view rect when its color is not transparent.
func (b *Base) fillBackground(ctx *Context, c colors.Color) {
	if c[3] <= 0 || ctx.Painter == nil {
		return
	}
	ctx.Painter.FillRect(b.position[0], b.position[1], b.size[0], b.size[1], c)
}

// touchSelf tracks hover and feeds the click behaviour for a leaf view.
func (b *Base) touchSelf(self View, in TouchInput) bool {
	inside := b.Contains(in.X, in.Y)
	if in.Flags&(TouchMove|TouchDown) != 0 {
		b.setHovered(self, inside)
	}
	if b.click == nil {
		return false
	}
	return b.click.touch(self, inside, in)
}

func (b *Base) setHovered(self View, inside bool) {
	if inside == b.hovered {
		return
	}
	b.hovered = inside
	if inside && b.click != nil {
		b.click.OnHighlight.Dispatch(b.click.params(self, FlagHover))
	}
}

func (b *Base) focusChanged(self View, flags FocusFlags) {
	switch {
	case flags&FocusGained != 0:
		b.focused = true
		if b.click != nil {
			b.click.OnHighlight.Dispatch(b.click.params(self, FlagFocus))
		}
	case flags&FocusLost != 0:
		b.focused = false
		if b.click != nil {
			b.click.cancel()
		}
	}
}
