package profiler

import (
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// ScopeStats aggregates every sample recorded under one scope name.
type ScopeStats struct {
	Name  string
	Count int
	Total time.Duration
	Max   time.Duration
}

// Mean returns the average duration of the scope.
func (s ScopeStats) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

var (
	enabled atomic.Bool
	mu      sync.Mutex
	scopes  = map[string]*ScopeStats{}
	now     = time.Now
)

// Init enables recording and clears previous samples.
func Init() {
	Reset()
	enabled.Store(true)
}

// Disable stops recording; Start returns a no-op afterwards.
func Disable() { enabled.Store(false) }

// Reset drops all recorded samples.
func Reset() {
	mu.Lock()
	scopes = map[string]*ScopeStats{}
	mu.Unlock()
}

func noop() {}

// Start begins a scope and returns the func that ends it.
//
//	defer profiler.Start("ui.Layout")()
func Start(name string) func() {
	if !enabled.Load() {
		return noop
	}
	begin := now()
	return func() {
		d := now().Sub(begin)
		if d < 0 {
			d = 0
		}
		record(name, d)
	}
}

func record(name string, d time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	s, ok := scopes[name]
	if !ok {
		s = &ScopeStats{Name: name}
		scopes[name] = s
	}
	s.Count++
	s.Total += d
	if d > s.Max {
		s.Max = d
	}
}

// Snapshot returns the recorded scopes, most expensive first.
func Snapshot() []ScopeStats {
	mu.Lock()
	out := make([]ScopeStats, 0, len(scopes))
	for _, s := range scopes {
		out = append(out, *s)
	}
	mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// LogSummary writes one line per scope at info level.
func LogSummary(l *slog.Logger) {
	for _, s := range Snapshot() {
		l.Info("profile",
			"scope", s.Name,
			"count", s.Count,
			"mean", s.Mean(),
			"max", s.Max,
		)
	}
}
