package frontend

import (
	"time"

	"github.com/hubastard/marley/engine/ui"
)

// Config holds the front-end settings layered on top of core.Config.
type Config struct {
	ROMRoot    string
	Extensions []string // lower-case with the dot; empty lists every file

	AssetsDir     string
	FontPath      string // relative to AssetsDir; empty uses the built-in face
	FontSize      float32
	HoldThreshold time.Duration

	SplashSheet         string // relative to AssetsDir
	SplashCell          [2]int
	SplashFrameDuration time.Duration
	SplashMaxDuration   time.Duration

	VolumeInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		ROMRoot:             ".",
		Extensions:          []string{".gb", ".gbc", ".gba", ".nes", ".sfc", ".smc", ".md", ".zip"},
		AssetsDir:           "assets",
		FontSize:            24,
		HoldThreshold:       ui.DefaultHoldThreshold,
		SplashSheet:         "splash.png",
		SplashCell:          [2]int{128, 128},
		SplashFrameDuration: 80 * time.Millisecond,
		SplashMaxDuration:   3 * time.Second,
		VolumeInterval:      5 * time.Second,
	}
}
