package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/hubastard/marley/engine/assets"
	"github.com/hubastard/marley/engine/core"
	glbackend "github.com/hubastard/marley/engine/gfx/gl"
	"github.com/hubastard/marley/engine/platform"
	"github.com/hubastard/marley/engine/profiler"
	"github.com/hubastard/marley/frontend"
	"github.com/spf13/afero"
)

func main() {
	cfg := core.DefaultConfig()
	fcfg := frontend.DefaultConfig()

	var (
		pacing   = flag.String("pacing", cfg.Pacing.String(), "frame pacing: delta or fixed")
		exts     = flag.String("ext", strings.Join(fcfg.Extensions, ","), "comma separated ROM extensions, empty lists every file")
		emulator = flag.String("emulator", "", "command started with the chosen ROM as its last argument")
		vertPath = flag.String("shader-vert", "", "vertex shader for the 2D renderer, relative to -assets")
		fragPath = flag.String("shader-frag", "", "fragment shader for the 2D renderer, relative to -assets")
		profile  = flag.Bool("profile", false, "collect profiler scopes and log a summary on exit")
		debug    = flag.Bool("debug", false, "debug logging")
	)
	flag.StringVar(&fcfg.ROMRoot, "roms", fcfg.ROMRoot, "ROM root directory")
	flag.StringVar(&fcfg.AssetsDir, "assets", fcfg.AssetsDir, "assets directory")
	flag.StringVar(&fcfg.FontPath, "font", fcfg.FontPath, "TTF font relative to -assets, empty uses the built-in face")
	flag.DurationVar(&fcfg.HoldThreshold, "hold", fcfg.HoldThreshold, "press duration that counts as a hold")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	flag.IntVar(&cfg.TargetFPS, "fps", cfg.TargetFPS, "target frame rate, 0 disables pacing")
	flag.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "enable vsync")
	scale := flag.Float64("scale", float64(cfg.UIScale), "UI scale")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := core.Logger()

	mode, ok := core.ParsePaceMode(*pacing)
	if !ok {
		log.Error("unknown pacing mode", "pacing", *pacing)
		os.Exit(2)
	}
	cfg.Pacing = mode
	cfg.UIScale = float32(*scale)
	fcfg.Extensions = parseExtensions(*exts)

	if *profile {
		profiler.Init()
	}

	fsys := afero.NewOsFs()
	app := frontend.NewApp(fcfg, fsys)
	if *vertPath != "" && *fragPath != "" {
		vs, err := assets.LoadShader(fsys, filepath.Join(fcfg.AssetsDir, *vertPath))
		if err != nil {
			log.Error("load vertex shader", "err", err)
			os.Exit(1)
		}
		fs, err := assets.LoadShader(fsys, filepath.Join(fcfg.AssetsDir, *fragPath))
		if err != nil {
			log.Error("load fragment shader", "err", err)
			os.Exit(1)
		}
		app.VertSrc, app.FragSrc = vs, fs
	}
	if *emulator != "" {
		launch, err := commandLauncher(*emulator)
		if err != nil {
			log.Error("bad -emulator", "err", err)
			os.Exit(2)
		}
		app.Launch = launch
	}

	var win *platform.GLFWWindow
	newWindow := func(c core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(c)
		if err != nil {
			return nil, err
		}
		win = w
		return w, nil
	}
	newRenderer := func(w core.Window, c core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(w, c)
	}

	err := core.Run(app, cfg, newWindow, newRenderer)
	if win != nil {
		win.Destroy()
	}
	if err != nil {
		log.Error("marley exited", "err", err)
		os.Exit(1)
	}
}

func parseExtensions(s string) []string {
	var out []string
	for _, e := range strings.Split(s, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

// commandLauncher runs the emulator detached and reaps it in the background.
func commandLauncher(command string) (frontend.Launcher, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty emulator command %q", command)
	}
	return func(path string) error {
		args := append(fields[1:len(fields):len(fields)], path)
		cmd := exec.Command(fields[0], args...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("start %s: %w", fields[0], err)
		}
		started := time.Now()
		go func() {
			err := cmd.Wait()
			core.Logger().Info("emulator exited", "rom", path, "ran", time.Since(started).Round(time.Second), "err", err)
		}()
		return nil
	}, nil
}
