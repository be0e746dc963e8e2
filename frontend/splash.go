package frontend

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/marley/engine/colors"
	"github.com/hubastard/marley/engine/core"
	"github.com/hubastard/marley/engine/gfx/renderer2d"
	"github.com/hubastard/marley/engine/scene"
	"github.com/hubastard/marley/engine/sprite"
	"github.com/hubastard/marley/engine/ui"
)

// SpriteRenderer is the part of the 2D renderer the splash draws with.
type SpriteRenderer interface {
	BeginScene(vp mgl32.Mat4)
	EndScene()
	DrawSubTexQuad(x, y, w, h float32, sub renderer2d.SubTexture2D, tint colors.Color, rotationRad float32)
}

type DismissReason int

const (
	DismissInput DismissReason = iota
	DismissTimeout
)

// Splash plays a sprite-sheet animation until any key or click, or until
// MaxDuration passes. A stopped animation is restarted on the next update.
type Splash struct {
	MaxDuration time.Duration
	OnDismiss   ui.Event[DismissReason]

	anim      *sprite.Animation
	sheet     *sprite.Sheet
	r         SpriteRenderer
	cam       *scene.OrthographicCamera
	shown     time.Duration
	dismissed bool
	w, h      int
}

var _ core.Layer = (*Splash)(nil)

// NewSplash animates every cell of sheet for frame each. A nil sheet shows
// nothing and only waits for dismissal.
func NewSplash(r SpriteRenderer, sheet *sprite.Sheet, frame, maxDuration time.Duration) *Splash {
	n := 1
	if sheet != nil && sheet.Len() > 0 {
		n = sheet.Len()
	}
	return &Splash{
		MaxDuration: maxDuration,
		anim:        sprite.NewAnimation(sprite.Uniform(n, frame), true),
		sheet:       sheet,
		r:           r,
		cam:         scene.NewScreenCamera(1, 1),
		w:           1,
		h:           1,
	}
}

func (s *Splash) Animation() *sprite.Animation { return s.anim }
func (s *Splash) Dismissed() bool              { return s.dismissed }

func (s *Splash) SetViewport(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	s.w, s.h = w, h
	s.cam.SetViewportPixels(w, h)
}

func (s *Splash) OnAttach(e *core.Engine) {
	s.SetViewport(e.Window.FramebufferSize())
	s.anim.Start()
}

func (s *Splash) OnDetach(e *core.Engine) {}

func (s *Splash) OnUpdate(e *core.Engine, dt float64) {
	if s.dismissed {
		return
	}
	d := time.Duration(dt * float64(time.Second))
	if !s.anim.Running() {
		s.anim.Start()
	}
	s.anim.Update(d)
	s.shown += d
	if s.MaxDuration > 0 && s.shown >= s.MaxDuration {
		s.dismiss(DismissTimeout)
	}
}

func (s *Splash) OnRender(e *core.Engine, alpha float64) {
	if s.dismissed || s.sheet == nil || s.r == nil {
		return
	}
	side := float32(s.w)
	if s.h < s.w {
		side = float32(s.h)
	}
	side /= 2

	s.r.BeginScene(s.cam.ViewProjection())
	cell := s.sheet.Cell(s.anim.Frame().Index)
	s.r.DrawSubTexQuad(float32(s.w)/2, float32(s.h)/2, side, side, cell, colors.White, 0)
	s.r.EndScene()
}

func (s *Splash) OnEvent(e *core.Engine, ev core.Event) bool {
	switch ev := ev.(type) {
	case core.EventResize:
		s.SetViewport(ev.W, ev.H)
	case core.EventKey:
		if ev.Down && !ev.Repeat {
			s.dismiss(DismissInput)
			return true
		}
	case core.EventMouseButton:
		if ev.Down {
			s.dismiss(DismissInput)
			return true
		}
	}
	return false
}

func (s *Splash) dismiss(reason DismissReason) {
	if s.dismissed {
		return
	}
	s.dismissed = true
	s.anim.Stop()
	core.Logger().Info("splash dismissed", "after", s.shown.Round(time.Millisecond), "timeout", reason == DismissTimeout)
	s.OnDismiss.Dispatch(reason)
}
