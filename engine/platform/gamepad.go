package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/marley/engine/core"
)

var padButtons = []struct {
	button glfw.GamepadButton
	key    core.Key
}{
	{glfw.ButtonDpadUp, core.KeyPadUp},
	{glfw.ButtonDpadDown, core.KeyPadDown},
	{glfw.ButtonDpadLeft, core.KeyPadLeft},
	{glfw.ButtonDpadRight, core.KeyPadRight},
	{glfw.ButtonA, core.KeyPadA},
	{glfw.ButtonB, core.KeyPadB},
	{glfw.ButtonStart, core.KeyPadStart},
}

type padState [len(glfw.GamepadState{}.Buttons)]bool

// gamepads remembers the last button state of every joystick slot so only
// transitions are reported.
type gamepads struct {
	prev [glfw.JoystickLast + 1]padState
}

func (p *gamepads) poll(emit func(core.Event)) {
	for j := glfw.Joystick1; j <= glfw.JoystickLast; j++ {
		if !j.Present() || !j.IsGamepad() {
			p.prev[j] = padState{}
			continue
		}
		st := j.GetGamepadState()
		if st == nil {
			continue
		}
		for _, b := range padButtons {
			down := st.Buttons[b.button] == glfw.Press
			if down == p.prev[j][b.button] {
				continue
			}
			p.prev[j][b.button] = down
			emit(core.EventKey{Key: b.key, Down: down, Device: core.DeviceController})
		}
	}
}
