package sprite

import "time"

// Frame is one step of an animation: a cell index into a sheet and how long
// it stays on screen.
type Frame struct {
	Index    int
	Duration time.Duration
}

// Animation steps through frames on Update. Time left over when a frame
// ends is carried into the next one, so the sequence does not drift.
type Animation struct {
	frames  []Frame
	Loop    bool
	running bool
	current int
	elapsed time.Duration
}

// NewAnimation builds an animation over frames.
func NewAnimation(frames []Frame, loop bool) *Animation {
	return &Animation{frames: frames, Loop: loop}
}

// Uniform returns count frames, indices 0..count-1, each lasting d.
func Uniform(count int, d time.Duration) []Frame {
	frames := make([]Frame, count)
	for i := range frames {
		frames[i] = Frame{Index: i, Duration: d}
	}
	return frames
}

// Start (re)starts from the first frame.
func (a *Animation) Start() {
	a.current = 0
	a.elapsed = 0
	a.running = len(a.frames) > 0
}

func (a *Animation) Stop() { a.running = false }

func (a *Animation) Running() bool { return a.running }

// Current returns the position of the current frame in the sequence.
func (a *Animation) Current() int { return a.current }

// Remainder is the time already spent on the current frame.
func (a *Animation) Remainder() time.Duration { return a.elapsed }

// Frame returns the current frame.
func (a *Animation) Frame() Frame {
	if len(a.frames) == 0 {
		return Frame{}
	}
	return a.frames[a.current]
}

func (a *Animation) Len() int { return len(a.frames) }

// Update advances by dt. A non-looping animation stops on its last frame.
// Frames with a non-positive duration hold until the animation is restarted.
func (a *Animation) Update(dt time.Duration) {
	if !a.running || dt <= 0 {
		return
	}
	a.elapsed += dt
	for {
		d := a.frames[a.current].Duration
		if d <= 0 || a.elapsed < d {
			return
		}
		a.elapsed -= d
		if a.current+1 < len(a.frames) {
			a.current++
			continue
		}
		if a.Loop {
			a.current = 0
			continue
		}
		a.elapsed = 0
		a.running = false
		return
	}
}
