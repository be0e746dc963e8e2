package ui

import (
	"time"

	"github.com/hubastard/marley/engine/colors"
)

type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Oriented is implemented by containers that lay children out along an axis.
// Focus traversal only moves between siblings along that axis.
type Oriented interface {
	Orientation() Orientation
}

// LinearLayout stacks its visible children along one axis.
type LinearLayout struct {
	Common[*LinearLayout]
	gap        float32
	mainAlign  Align
	crossAlign Align
	flow       Orientation

	scroll bool
	offset float32
}

func NewLinearLayout(flow Orientation, children ...View) *LinearLayout {
	l := &LinearLayout{
		gap:        10,
		mainAlign:  AlignStart,
		crossAlign: AlignStart,
		flow:       flow,
	}
	l.Common = NewCommon(l)
	l.Children(children...)
	return l
}

func (l *LinearLayout) BgColor(color colors.Color) *LinearLayout { l.base.color = color; return l }
func (l *LinearLayout) Gap(g float32) *LinearLayout              { l.gap = g; return l }
func (l *LinearLayout) AlignMain(a Align) *LinearLayout          { l.mainAlign = a; return l }
func (l *LinearLayout) AlignCross(a Align) *LinearLayout         { l.crossAlign = a; return l }

// Scrollable makes a vertical layout clip its children to its own rect and
// scroll so the child holding focus stays visible.
func (l *LinearLayout) Scrollable() *LinearLayout { l.scroll = true; return l }

func (l *LinearLayout) ScrollOffset() float32 { return l.offset }

func (l *LinearLayout) Orientation() Orientation { return l.flow }

// Add appends views in order. A view attached elsewhere is moved here.
func (l *LinearLayout) Add(views ...View) { l.Children(views...) }

func (l *LinearLayout) Remove(v View) bool { return l.base.remove(v) }

// RemoveAll detaches every child. Children being iterated by the caller stay
// valid until the iteration ends.
func (l *LinearLayout) RemoveAll() { l.base.removeAll() }

func (l *LinearLayout) Len() int { return len(l.base.children) }

func (l *LinearLayout) visibleChildren() []View {
	out := make([]View, 0, len(l.base.children))
	for _, c := range l.base.children {
		if c.Node().visible {
			out = append(out, c)
		}
	}
	return out
}

func (l *LinearLayout) Layout(ctx *Context, constraints Constraints) LayoutResult {
	padding := l.base.scaledPadding(ctx)
	gap := ctx.Px(l.gap)
	maxWidth := resolveConstraint(constraints.Max[0])
	maxHeight := resolveConstraint(constraints.Max[1])
	minWidth := constraints.Min[0]
	minHeight := constraints.Min[1]

	innerMaxWidth := maxf(0, maxWidth-padding[0]-padding[2])
	innerMaxHeight := maxf(0, maxHeight-padding[1]-padding[3])
	innerMinWidth := maxf(0, minWidth-padding[0]-padding[2])
	innerMinHeight := maxf(0, minHeight-padding[1]-padding[3])

	children := l.visibleChildren()
	childSizes := make([][2]float32, len(children))
	measured := make([][2]float32, len(children))
	margins := make([][4]float32, len(children))

	var fixedMainSum float32
	var expandMainSum float32
	var maxCross float32
	var expandCount int

	for i, child := range children {
		m := child.Node().scaledMargin(ctx)
		margins[i] = m
		childConstraints := Constraints{
			Min: [2]float32{0, 0},
			Max: [2]float32{
				maxf(0, innerMaxWidth-m[0]-m[2]),
				maxf(0, innerMaxHeight-m[1]-m[3]),
			},
		}
		res := child.Layout(ctx, childConstraints)
		measured[i] = res.Size
		// Sizes below include the child's margins. An expanding child
		// measures as zero on the main axis and gets its share of the
		// free space afterwards.
		size := [2]float32{res.Size[0] + m[0] + m[2], res.Size[1] + m[1] + m[3]}
		if l.flow == Vertical && child.Node().heightMod == SizeModeExpand {
			size[1] = m[1] + m[3]
		} else if l.flow == Horizontal && child.Node().widthMod == SizeModeExpand {
			size[0] = m[0] + m[2]
		}
		childSizes[i] = size
		if l.flow == Vertical {
			if child.Node().heightMod == SizeModeExpand {
				expandMainSum += size[1]
				expandCount++
			} else {
				fixedMainSum += size[1]
			}
			maxCross = maxf(maxCross, size[0])
		} else {
			if child.Node().widthMod == SizeModeExpand {
				expandMainSum += size[0]
				expandCount++
			} else {
				fixedMainSum += size[0]
			}
			maxCross = maxf(maxCross, size[1])
		}
	}

	gapTotal := float32(0)
	if len(children) > 1 {
		gapTotal = gap * float32(len(children)-1)
	}

	var innerMainTarget float32
	var innerCrossTarget float32

	contentMain := fixedMainSum + expandMainSum + gapTotal
	if l.flow == Vertical {
		outerHeight := l.base.resolveAxis(ctx, l.base.heightMod, l.base.heightVal, contentMain+padding[1]+padding[3], minHeight, constraints.Max[1])
		innerMainTarget = maxf(0, outerHeight-padding[1]-padding[3])
		innerMainTarget = maxf(innerMainTarget, innerMinHeight)
		outerWidth := l.base.resolveAxis(ctx, l.base.widthMod, l.base.widthVal, maxCross+padding[0]+padding[2], minWidth, constraints.Max[0])
		innerCrossTarget = maxf(0, outerWidth-padding[0]-padding[2])
		innerCrossTarget = maxf(innerCrossTarget, innerMinWidth)
		l.base.SetSize(outerWidth, outerHeight)
	} else {
		outerWidth := l.base.resolveAxis(ctx, l.base.widthMod, l.base.widthVal, contentMain+padding[0]+padding[2], minWidth, constraints.Max[0])
		innerMainTarget = maxf(0, outerWidth-padding[0]-padding[2])
		innerMainTarget = maxf(innerMainTarget, innerMinWidth)
		outerHeight := l.base.resolveAxis(ctx, l.base.heightMod, l.base.heightVal, maxCross+padding[1]+padding[3], minHeight, constraints.Max[1])
		innerCrossTarget = maxf(0, outerHeight-padding[1]-padding[3])
		innerCrossTarget = maxf(innerCrossTarget, innerMinHeight)
		l.base.SetSize(outerWidth, outerHeight)
	}

	// Distribute extra space along main axis to expanding children.
	if expandCount > 0 {
		extra := innerMainTarget - (fixedMainSum + expandMainSum + gapTotal)
		if extra < 0 {
			extra = 0
		}
		share := extra / float32(expandCount)
		for i, child := range children {
			if l.flow == Vertical {
				if child.Node().heightMod == SizeModeExpand {
					childSizes[i][1] += share
				}
			} else if child.Node().widthMod == SizeModeExpand {
				childSizes[i][0] += share
			}
		}
	}

	innerOriginX, innerOriginY := l.base.innerPosition(ctx)

	mainUsed := gapTotal
	for i := range children {
		if l.flow == Vertical {
			mainUsed += childSizes[i][1]
		} else {
			mainUsed += childSizes[i][0]
		}
	}

	remaining := maxf(0, innerMainTarget-mainUsed)
	var mainCursor float32
	switch l.mainAlign {
	case AlignCenter:
		mainCursor = remaining * 0.5
	case AlignEnd:
		mainCursor = remaining
	}

	for i, child := range children {
		childSize := childSizes[i]
		m := margins[i]
		childBase := child.Node()
		if l.flow == Vertical {
			width := childSize[0]
			if l.crossAlign == AlignStretch || childBase.widthMod == SizeModeExpand {
				width = innerCrossTarget
			}
			width = clamp(width, 0, innerCrossTarget)

			var x float32
			switch l.crossAlign {
			case AlignCenter:
				x = innerOriginX + (innerCrossTarget-width)/2
			case AlignEnd:
				x = innerOriginX + (innerCrossTarget - width)
			default:
				x = innerOriginX
			}
			y := innerOriginY + mainCursor
			height := childSize[1]
			place(ctx, child, measured[i], x+m[0], y+m[1], maxf(0, width-m[0]-m[2]), maxf(0, height-m[1]-m[3]))
			mainCursor += height
		} else {
			height := childSize[1]
			if l.crossAlign == AlignStretch || childBase.heightMod == SizeModeExpand {
				height = innerCrossTarget
			}
			height = clamp(height, 0, innerCrossTarget)

			var y float32
			switch l.crossAlign {
			case AlignCenter:
				y = innerOriginY + (innerCrossTarget-height)/2
			case AlignEnd:
				y = innerOriginY + (innerCrossTarget - height)
			default:
				y = innerOriginY
			}
			x := innerOriginX + mainCursor
			width := childSize[0]
			place(ctx, child, measured[i], x+m[0], y+m[1], maxf(0, width-m[0]-m[2]), maxf(0, height-m[1]-m[3]))
			mainCursor += width
		}
		if i < len(children)-1 {
			mainCursor += gap
		}
	}

	if l.scroll && l.flow == Vertical {
		l.applyScroll(ctx, children)
	}

	return LayoutResult{Size: l.base.size}
}

// place moves a measured child to its final rect. A child whose size
// changed is laid out again at that size; otherwise its subtree is shifted.
func place(ctx *Context, child View, measured [2]float32, x, y, w, h float32) {
	b := child.Node()
	if measured != [2]float32{w, h} {
		b.SetPos(x, y)
		child.Layout(ctx, Constraints{Min: [2]float32{w, h}, Max: [2]float32{w, h}})
		b.SetSize(w, h)
		return
	}
	px, py := b.Pos()
	translate(child, x-px, y-py)
}

// applyScroll moves the offset just enough to show the focused child, keeps
// it within the content, and shifts the laid out children by it.
func (l *LinearLayout) applyScroll(ctx *Context, children []View) {
	if len(children) == 0 {
		l.offset = 0
		return
	}
	_, top := l.base.innerPosition(ctx)
	_, innerH := l.base.innerSize(ctx)
	bottom := top + innerH

	for _, c := range children {
		if !holdsFocus(c) {
			continue
		}
		_, y := c.Node().Pos()
		_, h := c.Node().Size()
		if y-l.offset < top {
			l.offset = y - top
		}
		if y+h-l.offset > bottom {
			l.offset = y + h - bottom
		}
		break
	}

	last := children[len(children)-1].Node()
	contentBottom := last.position[1] + last.size[1]
	l.offset = clamp(l.offset, 0, maxf(0, contentBottom-bottom))

	if l.offset != 0 {
		for _, c := range children {
			translate(c, 0, -l.offset)
		}
	}
}

func holdsFocus(v View) bool {
	b := v.Node()
	if b.focused {
		return true
	}
	for _, c := range b.children {
		if holdsFocus(c) {
			return true
		}
	}
	return false
}

func translate(v View, dx, dy float32) {
	b := v.Node()
	b.position[0] += dx
	b.position[1] += dy
	for _, c := range b.children {
		translate(c, dx, dy)
	}
}

// clipped reports whether a scrolled child lies outside the visible rect.
func (l *LinearLayout) clipped(c View) bool {
	if !l.scroll {
		return false
	}
	cb := c.Node()
	top := l.base.position[1]
	bottom := top + l.base.size[1]
	return cb.position[1] < top || cb.position[1]+cb.size[1] > bottom
}

func (l *LinearLayout) Draw(ctx *Context) {
	l.base.fillBackground(ctx, l.base.color)
	for _, c := range l.base.children {
		if c.Node().visible && !l.clipped(c) {
			c.Draw(ctx)
		}
	}
}

func (l *LinearLayout) Update(now time.Time) {
	for _, c := range l.base.children {
		if c.Node().visible {
			c.Update(now)
		}
	}
}

// Touch offers the input to every visible child so presses and hovers
// outside a child can still end its state.
func (l *LinearLayout) Touch(in TouchInput) bool {
	if !l.base.visible {
		return false
	}
	l.base.hovered = l.base.Contains(in.X, in.Y)
	if l.scroll && in.Flags&TouchDown != 0 && !l.base.hovered {
		return false
	}
	press := in.Flags&TouchDown != 0
	handled := false
	for _, c := range l.base.children {
		if !c.Node().visible || (press && l.clipped(c)) {
			continue
		}
		if c.Touch(in) {
			handled = true
		}
	}
	return handled
}
