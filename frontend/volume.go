package frontend

import (
	"context"
	"os/exec"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hubastard/marley/engine/core"
)

var percentRe = regexp.MustCompile(`(\d{1,3})%`)

func volumeCommand(goos string) (string, []string) {
	switch goos {
	case "linux":
		return "amixer", []string{"get", "Master"}
	case "darwin":
		return "osascript", []string{"-e", "output volume of (get volume settings)"}
	}
	return "", nil
}

// QueryVolume asks the desktop mixer for the output volume. Any failure
// reports (0, false).
func QueryVolume(ctx context.Context) (int, bool) {
	name, args := volumeCommand(runtime.GOOS)
	if name == "" {
		return 0, false
	}
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		core.Logger().Debug("volume query failed", "cmd", name, "err", err)
		return 0, false
	}
	return ParseVolume(string(out))
}

// ParseVolume extracts a 0-100 volume from mixer output: the first "NN%"
// token, or the whole output when it is a bare number.
func ParseVolume(out string) (int, bool) {
	s := strings.TrimSpace(out)
	if m := percentRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 100 {
		return 0, false
	}
	return v, true
}

// VolumePoller queries the volume off the main thread and keeps the latest
// answer for the UI to pick up.
type VolumePoller struct {
	Query    func(context.Context) (int, bool)
	Interval time.Duration

	mu     sync.Mutex
	vol    int
	ok     bool
	cancel context.CancelFunc
	done   chan struct{}
}

func NewVolumePoller(interval time.Duration) *VolumePoller {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &VolumePoller{Query: QueryVolume, Interval: interval}
}

// Start queries once right away, then every Interval until Stop.
func (p *VolumePoller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	go func() {
		defer close(p.done)
		t := time.NewTicker(p.Interval)
		defer t.Stop()
		for {
			qctx, cancel := context.WithTimeout(ctx, p.Interval)
			v, ok := p.Query(qctx)
			cancel()
			p.mu.Lock()
			p.vol, p.ok = v, ok
			p.mu.Unlock()

			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
		}
	}()
}

// Stop ends polling and waits for the goroutine to exit.
func (p *VolumePoller) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel = nil
}

// Latest returns the last answer.
func (p *VolumePoller) Latest() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.vol, p.ok
}
