package core

import "time"

// PaceMode selects how the frame governor spends the remainder of a frame.
type PaceMode int

const (
	// PaceDelta sleeps only for what is left of the interval since the last
	// present, so frame work counts against the budget.
	PaceDelta PaceMode = iota
	// PaceFixedDelay always sleeps the full interval before presenting. Under
	// load the effective rate drops below the target.
	PaceFixedDelay
)

func (m PaceMode) String() string {
	if m == PaceFixedDelay {
		return "fixed"
	}
	return "delta"
}

// ParsePaceMode accepts "delta" or "fixed".
func ParsePaceMode(s string) (PaceMode, bool) {
	switch s {
	case "delta", "":
		return PaceDelta, true
	case "fixed":
		return PaceFixedDelay, true
	}
	return PaceDelta, false
}

// FramePacer is a blocking frame-rate governor called right before a buffer
// swap. It is not a vsync-accurate scheduler.
type FramePacer struct {
	Interval time.Duration
	Mode     PaceMode

	now   func() time.Time
	sleep func(time.Duration)
	last  time.Time
}

func NewFramePacer(fps int, mode PaceMode) *FramePacer {
	p := &FramePacer{Mode: mode, now: time.Now, sleep: time.Sleep}
	if fps > 0 {
		p.Interval = time.Second / time.Duration(fps)
	}
	return p
}

// Wait blocks until the frame may be presented and returns how long it slept.
func (p *FramePacer) Wait() time.Duration {
	if p.Interval <= 0 {
		p.last = p.now()
		return 0
	}

	var d time.Duration
	switch p.Mode {
	case PaceFixedDelay:
		d = p.Interval
	default:
		if !p.last.IsZero() {
			d = p.Interval - p.now().Sub(p.last)
		}
	}
	if d > 0 {
		p.sleep(d)
	} else {
		d = 0
	}
	p.last = p.now()
	return d
}
