package ui

import (
	"time"

	"github.com/hubastard/marley/engine/core"
	"github.com/hubastard/marley/engine/profiler"
	"github.com/hubastard/marley/engine/text"
)

// Screen hosts a view tree as an engine layer. It lays the root out over
// the whole framebuffer, turns window events into touch and key input and
// owns the focus of the tree.
type Screen struct {
	Root  View
	Focus *Focus
	Ctx   Context

	// OnBack fires for a back key nothing in the focus chain consumed.
	OnBack Event[EventParams]

	now func() time.Time
}

var _ core.Layer = (*Screen)(nil)

func NewScreen(root View, painter Painter, font *text.Font) *Screen {
	return &Screen{
		Root:  root,
		Focus: NewFocus(root),
		Ctx:   Context{Scale: 1, Painter: painter, Font: font},
		now:   time.Now,
	}
}

// SetClock replaces the time source used for hold detection.
func (s *Screen) SetClock(now func() time.Time) { s.now = now }

func (s *Screen) Resize(w, h int) {
	s.Ctx.Viewport = [4]float32{0, 0, float32(w), float32(h)}
}

func (s *Screen) SetScale(scale float32) {
	if scale <= 0 {
		scale = 1
	}
	s.Ctx.Scale = scale
}

func (s *Screen) OnAttach(e *core.Engine) {
	s.Resize(e.Window.FramebufferSize())
	s.SetScale(e.Config.UIScale)
	if s.Focus.Focused() == nil {
		s.Focus.SetFocus(s.Focus.DefaultView())
	}
}

func (s *Screen) OnDetach(e *core.Engine) { s.Focus.Clear() }

func (s *Screen) OnUpdate(e *core.Engine, dt float64) {
	e.CheckPhase(core.PhaseUpdate, "ui.Screen.OnUpdate")
	s.Update()
}

// Update advances timers of the tree and revalidates focus after rebuilds.
func (s *Screen) Update() {
	s.Root.Update(s.now())
	if s.Focus.Focused() == nil {
		s.Focus.SetFocus(s.Focus.DefaultView())
	}
}

// Layout sizes the root to the viewport and positions the whole tree.
func (s *Screen) Layout() {
	end := profiler.Start("ui.layout")
	defer end()
	vp := s.Ctx.Viewport
	s.Root.Node().SetPos(vp[0], vp[1])
	s.Root.Layout(&s.Ctx, Constraints{
		Min: [2]float32{vp[2], vp[3]},
		Max: [2]float32{vp[2], vp[3]},
	})
}

func (s *Screen) OnRender(e *core.Engine, alpha float64) {
	e.CheckPhase(core.PhaseRender, "ui.Screen.OnRender")
	s.Layout()
	p := s.Ctx.Painter
	if p == nil {
		return
	}
	p.Begin(s.Ctx.Viewport[2], s.Ctx.Viewport[3])
	s.Root.Draw(&s.Ctx)
	p.End()
}

func (s *Screen) OnEvent(e *core.Engine, ev core.Event) bool {
	switch ev := ev.(type) {
	case core.EventResize:
		s.Resize(ev.W, ev.H)
	case core.EventMouseMove:
		return s.Touch(TouchInput{X: float32(ev.X), Y: float32(ev.Y), Flags: TouchMove, Time: s.now()})
	case core.EventMouseButton:
		if ev.Button != core.MouseLeft {
			return false
		}
		flags := TouchUp
		if ev.Down {
			flags = TouchDown
		}
		return s.Touch(TouchInput{X: float32(ev.X), Y: float32(ev.Y), Flags: flags, Time: s.now()})
	case core.EventKey:
		return s.Key(KeyInput{Key: ev.Key, Down: ev.Down, Repeat: ev.Repeat, Device: ev.Device, Time: s.now()})
	}
	return false
}

// Touch routes pointer input through the tree. A press on a focusable view
// also focuses it.
func (s *Screen) Touch(in TouchInput) bool {
	handled := s.Root.Touch(in)
	if handled && in.Flags&TouchDown != 0 {
		if v := s.hit(s.Root, in.X, in.Y); v != nil {
			s.Focus.SetFocus(v)
		}
	}
	return handled
}

func (s *Screen) hit(v View, x, y float32) View {
	b := v.Node()
	if !b.visible || !b.Contains(x, y) {
		return nil
	}
	kids := b.children
	for i := len(kids) - 1; i >= 0; i-- {
		if t := s.hit(kids[i], x, y); t != nil {
			return t
		}
	}
	if b.IsFocusable() {
		return v
	}
	return nil
}

// Key offers the input to the focused view and then its ancestors. Unused
// navigation keys move focus and unused back keys fire OnBack.
func (s *Screen) Key(in KeyInput) bool {
	start := s.Focus.Focused()
	if start == nil {
		start = s.Root
	}
	for v := start; v != nil; v = v.Node().parent {
		if v.Key(in) {
			return true
		}
	}
	if !in.Down {
		return false
	}
	if dir, ok := NavDirection(in.Key); ok {
		s.Focus.Move(dir)
		return true
	}
	if IsBackKey(in.Key) && !in.Repeat {
		return s.OnBack.Dispatch(EventParams{View: s.Focus.Focused()}) > 0
	}
	return false
}
