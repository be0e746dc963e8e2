package ui

import (
	"math"
	"time"

	"github.com/hubastard/marley/engine/colors"
	"github.com/hubastard/marley/engine/text"
)

type SizeMode int

const (
	SizeModeFit SizeMode = iota
	SizeModeFixed
	SizeModeExpand
)

type Constraints struct {
	Min [2]float32
	Max [2]float32
}

type LayoutResult struct {
	Size [2]float32
}

// Context is handed to every Layout and Draw call of one frame.
type Context struct {
	Viewport [4]float32
	Scale    float32
	Font     *text.Font
	Painter  Painter
}

// Px converts a design-space length to pixels at the context scale.
func (c *Context) Px(v float32) float32 {
	if c == nil || c.Scale <= 0 {
		return v
	}
	return v * c.Scale
}

// View is one node of the retained widget tree.
type View interface {
	Node() *Base
	Layout(ctx *Context, constraints Constraints) LayoutResult
	Draw(ctx *Context)
	Update(now time.Time)
	Touch(in TouchInput) bool
	Key(in KeyInput) bool
	FocusChanged(flags FocusFlags)
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func resolveConstraint(max float32) float32 {
	if max == 0 {
		return float32(math.MaxFloat32)
	}
	return max
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// ------ Helper ------

// Common gives a concrete view its Base, the chainable builder setters and
// leaf behaviour for input and updates. Containers override what they route.
type Common[T any] struct {
	owner T
	base  Base
}

func NewCommon[T any](owner T) Common[T] {
	var b Base
	b.visible = true
	return Common[T]{owner: owner, base: b}
}

func (c *Common[T]) self() View { return any(c.owner).(View) }

func (c *Common[T]) Node() *Base              { return &c.base }
func (c *Common[T]) Position(x, y float32) T  { c.base.SetPos(x, y); return c.owner }
func (c *Common[T]) Size(w, h float32) T      { c.base.SetSize(w, h); return c.owner }
func (c *Common[T]) Color(col colors.Color) T { c.base.SetColor(col); return c.owner }

func (c *Common[T]) WidthFit() T {
	c.base.widthMod = SizeModeFit
	return c.owner
}

func (c *Common[T]) WidthFixed(width float32) T {
	c.base.widthMod = SizeModeFixed
	c.base.widthVal = width
	return c.owner
}

func (c *Common[T]) WidthExpand() T {
	c.base.widthMod = SizeModeExpand
	return c.owner
}

func (c *Common[T]) HeightFit() T {
	c.base.heightMod = SizeModeFit
	return c.owner
}

func (c *Common[T]) HeightFixed(height float32) T {
	c.base.heightMod = SizeModeFixed
	c.base.heightVal = height
	return c.owner
}

func (c *Common[T]) HeightExpand() T {
	c.base.heightMod = SizeModeExpand
	return c.owner
}

func (c *Common[T]) Padding(all float32) T {
	c.base.SetPadding(all, all, all, all)
	return c.owner
}

func (c *Common[T]) Padding2(horizontal, vertical float32) T {
	c.base.SetPadding(horizontal, vertical, horizontal, vertical)
	return c.owner
}

func (c *Common[T]) Padding4(left, top, right, bottom float32) T {
	c.base.SetPadding(left, top, right, bottom)
	return c.owner
}

func (c *Common[T]) Margin(all float32) T {
	c.base.SetMargin(all, all, all, all)
	return c.owner
}

func (c *Common[T]) Margin4(left, top, right, bottom float32) T {
	c.base.SetMargin(left, top, right, bottom)
	return c.owner
}

func (c *Common[T]) Visible(v bool) T {
	c.base.visible = v
	return c.owner
}

func (c *Common[T]) Focusable(v bool) T {
	c.base.focusable = v
	return c.owner
}

func (c *Common[T]) Children(kids ...View) T {
	for _, k := range kids {
		c.base.add(c.self(), k)
	}
	return c.owner
}

// Update advances the click behaviour's hold timer, then the children.
func (c *Common[T]) Update(now time.Time) {
	if c.base.click != nil {
		c.base.click.update(c.self(), now)
	}
	for _, ch := range c.base.children {
		if ch.Node().visible {
			ch.Update(now)
		}
	}
}

// Touch feeds a clickable leaf. Containers route to their children instead.
func (c *Common[T]) Touch(in TouchInput) bool {
	if !c.base.visible {
		return false
	}
	return c.base.touchSelf(c.self(), in)
}

func (c *Common[T]) Key(in KeyInput) bool {
	if c.base.click == nil || !c.base.visible {
		return false
	}
	return c.base.click.key(c.self(), in)
}

func (c *Common[T]) FocusChanged(flags FocusFlags) {
	c.base.focusChanged(c.self(), flags)
}
