package ui

import (
	"time"

	"github.com/hubastard/marley/engine/core"
)

type TouchFlags uint8

const (
	TouchDown TouchFlags = 1 << iota
	TouchUp
	TouchMove
)

// TouchInput is a pointer event in screen pixels.
type TouchInput struct {
	X, Y  float32
	Flags TouchFlags
	Time  time.Time
}

// KeyInput is a key or pad button transition.
type KeyInput struct {
	Key    core.Key
	Down   bool
	Repeat bool
	Device core.Device
	Time   time.Time
}

type FocusFlags uint8

const (
	FocusGained FocusFlags = 1 << iota
	FocusLost
)

// Direction is a focus movement request.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return "right"
}

func (d Direction) axis() Orientation {
	if d == DirLeft || d == DirRight {
		return Horizontal
	}
	return Vertical
}

func (d Direction) step() int {
	if d == DirUp || d == DirLeft {
		return -1
	}
	return 1
}

// IsActivateKey reports keys that press the focused widget.
func IsActivateKey(k core.Key) bool {
	switch k {
	case core.KeyEnter, core.KeySpace, core.KeyPadA, core.KeyPadStart:
		return true
	}
	return false
}

// IsBackKey reports keys that leave the current screen or directory.
func IsBackKey(k core.Key) bool {
	switch k {
	case core.KeyEscape, core.KeyBackspace, core.KeyPadB:
		return true
	}
	return false
}

// NavDirection maps arrows, WASD and the d-pad to a focus direction.
func NavDirection(k core.Key) (Direction, bool) {
	switch k {
	case core.KeyUp, core.KeyW, core.KeyPadUp:
		return DirUp, true
	case core.KeyDown, core.KeyS, core.KeyPadDown:
		return DirDown, true
	case core.KeyLeft, core.KeyA, core.KeyPadLeft:
		return DirLeft, true
	case core.KeyRight, core.KeyD, core.KeyPadRight:
		return DirRight, true
	}
	return 0, false
}
