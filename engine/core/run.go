package core

import (
	"runtime"
	"time"

	"github.com/hubastard/marley/engine/profiler"
)

// maxFrameDelta caps the update step after a stall (window drag, debugger).
const maxFrameDelta = 250 * time.Millisecond

// Run wires the platform window + renderer and executes the main loop.
//
// Every frame runs strictly in order: poll events, one update pass over the
// layers and the app, one render pass, then Renderer.SwapBuffers which paces
// and presents. Window or renderer creation failure is returned to the caller.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)
	clear := cfg.ClearColor
	rend.SetClearColor(clear[0], clear[1], clear[2], clear[3])
	rend.EnableBlending()

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), Config: cfg, start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		eng.dispatch(app, ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	app.OnStart(eng)
	Logger().Info("engine started", "fps", cfg.TargetFPS, "pacing", cfg.Pacing.String())

	prev := time.Now()
	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		if frame > maxFrameDelta {
			frame = maxFrameDelta
		}
		dt := frame.Seconds()

		// Poll OS events (platform will emit via callbacks)
		eng.phase = PhaseEvents
		win.PollEvents()

		eng.phase = PhaseUpdate
		end := profiler.Start("frame.update")
		eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
		app.OnUpdate(eng, dt)
		end()

		eng.phase = PhaseRender
		end = profiler.Start("frame.render")
		rend.Clear()
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, 1) })
		app.OnRender(eng, 1)
		end()

		eng.phase = PhasePresent
		end = profiler.Start("frame.present")
		rend.SwapBuffers()
		end()
		eng.phase = PhaseIdle
	}

	app.OnShutdown(eng)
	for {
		l, ok := eng.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(eng)
	}
	Logger().Info("engine exit", "uptime", eng.Uptime().Round(time.Millisecond))
	return nil
}

// dispatch offers ev to the layers top-down, then to the app if unhandled.
func (e *Engine) dispatch(app App, ev Event) {
	e.Input.Handle(ev)
	if _, ok := ev.(EventCloseRequested); ok {
		e.Window.RequestClose()
	}
	handled := false
	e.Layers.ForEachReverse(func(l Layer) bool {
		handled = l.OnEvent(e, ev)
		return handled
	})
	if !handled {
		app.OnEvent(e, ev)
	}
}
