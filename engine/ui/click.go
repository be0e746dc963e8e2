package ui

import "time"

// DefaultHoldThreshold is how long a press must last to count as a hold.
const DefaultHoldThreshold = 500 * time.Millisecond

// Clickable turns a view into a press target. A press released inside the
// view fires OnClick. With HoldThreshold > 0 the view is also holdable: a
// press kept past the threshold fires OnHoldClick once and the release that
// follows fires nothing.
type Clickable struct {
	HoldThreshold time.Duration
	Payload       string

	OnClick     Event[EventParams]
	OnHoldClick Event[EventParams]
	OnHighlight Event[EventParams]

	down        bool
	viaKey      bool
	holdStart   time.Time
	holdEnabled bool
	holdFired   bool
}

func NewClickable(payload string) *Clickable {
	return &Clickable{Payload: payload}
}

// NewHoldable returns a clickable that also reports holds.
func NewHoldable(payload string, threshold time.Duration) *Clickable {
	if threshold <= 0 {
		threshold = DefaultHoldThreshold
	}
	return &Clickable{Payload: payload, HoldThreshold: threshold}
}

func (c *Clickable) Holdable() bool { return c.HoldThreshold > 0 }
func (c *Clickable) Pressed() bool  { return c.down }

func (c *Clickable) params(v View, flags EventFlags) EventParams {
	return EventParams{View: v, Path: c.Payload, Flags: flags}
}

func (c *Clickable) press(now time.Time, viaKey bool) {
	c.down = true
	c.viaKey = viaKey
	c.holdStart = now
	c.holdEnabled = c.Holdable()
	c.holdFired = false
}

func (c *Clickable) cancel() {
	c.down = false
	c.holdEnabled = false
	c.holdFired = false
}

func (c *Clickable) flags(extra EventFlags) EventFlags {
	if c.viaKey {
		return extra | FlagKey
	}
	return extra
}

// fireHold fires OnHoldClick when the threshold has passed. It fires at most
// once per press.
func (c *Clickable) fireHold(v View, now time.Time) {
	if !c.down || !c.holdEnabled || c.holdFired {
		return
	}
	if now.Sub(c.holdStart) < c.HoldThreshold {
		return
	}
	c.holdFired = true
	c.holdEnabled = false
	c.OnHoldClick.Dispatch(c.params(v, c.flags(FlagHold)))
}

func (c *Clickable) release(v View, inside bool, now time.Time) bool {
	if !c.down {
		return false
	}
	c.fireHold(v, now)
	fired := c.holdFired
	flags := c.flags(0)
	c.cancel()
	if inside && !fired {
		c.OnClick.Dispatch(c.params(v, flags))
	}
	return true
}

func (c *Clickable) update(v View, now time.Time) {
	c.fireHold(v, now)
}

func (c *Clickable) touch(v View, inside bool, in TouchInput) bool {
	switch {
	case in.Flags&TouchDown != 0:
		if !inside {
			return false
		}
		c.press(in.Time, false)
		return true
	case in.Flags&TouchUp != 0:
		if c.viaKey {
			return false
		}
		return c.release(v, inside, in.Time)
	}
	return false
}

func (c *Clickable) key(v View, in KeyInput) bool {
	if !IsActivateKey(in.Key) {
		return false
	}
	if in.Down {
		if !in.Repeat && !c.down {
			c.press(in.Time, true)
		}
		return true
	}
	if !c.viaKey {
		return false
	}
	return c.release(v, true, in.Time)
}
