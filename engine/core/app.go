package core

import "time"

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called once per update tick
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events, after the layers
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	Config   Config

	start time.Time
	phase Phase
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Phase reports which part of the frame is currently executing.
func (e *Engine) Phase() Phase { return e.phase }

// CheckPhase logs when op runs outside the expected frame phase.
func (e *Engine) CheckPhase(want Phase, op string) bool {
	if e.phase == want {
		return true
	}
	Logger().Debug("frame phase mismatch", "op", op, "want", want.String(), "got", e.phase.String())
	return false
}

// PushLayer attaches l on top of the stack.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// RemoveLayer detaches l if it is on the stack.
func (e *Engine) RemoveLayer(l Layer) bool {
	if !e.Layers.Remove(l) {
		return false
	}
	l.OnDetach(e)
	return true
}

// Phase of the frame loop. Replaces per-thread debug names: everything runs on
// the main thread, so the phase is the only useful tag.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEvents
	PhaseUpdate
	PhaseRender
	PhasePresent
)

func (p Phase) String() string {
	switch p {
	case PhaseEvents:
		return "events"
	case PhaseUpdate:
		return "update"
	case PhaseRender:
		return "render"
	case PhasePresent:
		return "present"
	default:
		return "idle"
	}
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer is the frame-level contract the loop drives.
type Renderer interface {
	Resize(w, h int)
	Clear()
	SetClearColor(r, g, b, a float32)
	SwapBuffers()
	EnableBlending()
	DisableBlending()
	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type Device int

const (
	DeviceKeyboard Device = iota
	DeviceController
)

type EventKey struct {
	Key    Key
	Down   bool
	Repeat bool
	Mods   Mod
	Device Device
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X, Y   float64
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyP

	// Controller buttons arrive as keys with Device == DeviceController.
	KeyPadUp
	KeyPadDown
	KeyPadLeft
	KeyPadRight
	KeyPadA
	KeyPadB
	KeyPadStart
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // RGBA
	TargetFPS  int
	Pacing     PaceMode
	UIScale    float32
}

// DefaultConfig returns the settings the front-end ships with.
func DefaultConfig() Config {
	return Config{
		Title:      "Marley",
		Width:      1280,
		Height:     720,
		ClearColor: [4]float32{0.08, 0.10, 0.12, 1},
		TargetFPS:  30,
		Pacing:     PaceDelta,
		UIScale:    1,
	}
}
