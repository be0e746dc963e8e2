package frontend

import (
	"context"
	"fmt"
	"image"
	"path/filepath"

	"github.com/hubastard/marley/engine/core"
	glbackend "github.com/hubastard/marley/engine/gfx/gl"
	"github.com/hubastard/marley/engine/gfx/renderer2d"
	"github.com/hubastard/marley/engine/profiler"
	"github.com/hubastard/marley/engine/sprite"
	"github.com/hubastard/marley/engine/text"
	"github.com/hubastard/marley/engine/ui"
	"github.com/spf13/afero"
)

// Launcher starts a chosen ROM.
type Launcher func(path string) error

// App is the Marley front-end: a splash screen, then the ROM browser with
// a status bar.
type App struct {
	Cfg Config
	Fs  afero.Fs

	// Optional shader sources for the 2D renderer. Empty uses the built-in ones.
	VertSrc, FragSrc string
	Launch           Launcher

	r2d      *renderer2d.Renderer2D
	font     *text.Font
	sheetTex *glbackend.Texture
	splash   *Splash
	screen   *ui.Screen
	browser  *ROMBrowser
	status   *StatusBar
	volume   *VolumePoller
	title    string
}

var _ core.App = (*App)(nil)

func NewApp(cfg Config, fsys afero.Fs) *App {
	return &App{Cfg: cfg, Fs: fsys}
}

// mainView is the browser screen root. It hands default focus to the
// browser.
type mainView struct {
	*ui.LinearLayout
	browser *ROMBrowser
}

func (m *mainView) DefaultFocusView() ui.View { return m.browser.DefaultFocusView() }

func uploadAtlas(img image.Image) renderer2d.Texture {
	return glbackend.NewTextureFromImage(img, glbackend.TextureOptions{
		MinFilter: glbackend.FilterLinear, MagFilter: glbackend.FilterLinear,
	})
}

func (a *App) OnStart(e *core.Engine) {
	if err := a.start(e); err != nil {
		core.Logger().Error("front-end start failed", "err", err)
		e.Window.RequestClose()
	}
}

func (a *App) start(e *core.Engine) error {
	rgl, ok := e.Renderer.(*glbackend.RendererGL)
	if !ok {
		return fmt.Errorf("renderer %T is not the GL renderer", e.Renderer)
	}
	r2d, err := renderer2d.New(rgl, a.VertSrc, a.FragSrc, 10000)
	if err != nil {
		return err
	}
	a.r2d = r2d
	a.font = a.loadFont(e.Config.UIScale)

	a.volume = NewVolumePoller(a.Cfg.VolumeInterval)
	a.volume.Start(context.Background())

	a.splash = NewSplash(r2d, a.loadSheet(), a.Cfg.SplashFrameDuration, a.Cfg.SplashMaxDuration)
	a.splash.OnDismiss.Add(func(DismissReason) { a.showBrowser(e) })
	e.PushLayer(a.splash)
	return nil
}

// loadFont rasterises at the UI scale so text stays sharp. A missing font
// file falls back to the built-in face.
func (a *App) loadFont(scale float32) *text.Font {
	if scale <= 0 {
		scale = 1
	}
	size := a.Cfg.FontSize * scale
	if a.Cfg.FontPath != "" {
		path := filepath.Join(a.Cfg.AssetsDir, a.Cfg.FontPath)
		f, err := text.LoadTTF(a.Fs, path, size, uploadAtlas)
		if err == nil {
			return f
		}
		core.Logger().Warn("font load failed, using built-in face", "path", path, "err", err)
	}
	f, err := text.Default(size, uploadAtlas)
	if err != nil {
		core.Logger().Error("built-in font failed", "err", err)
		return nil
	}
	return f
}

func (a *App) loadSheet() *sprite.Sheet {
	path := filepath.Join(a.Cfg.AssetsDir, a.Cfg.SplashSheet)
	tex := glbackend.LoadTexture(a.Fs, path, glbackend.TextureOptions{
		MinFilter: glbackend.FilterNearest, MagFilter: glbackend.FilterNearest,
	})
	if !tex.Valid() {
		return nil
	}
	a.sheetTex = tex
	return sprite.NewSheet(tex, tex.Width(), tex.Height(), a.Cfg.SplashCell[0], a.Cfg.SplashCell[1])
}

func (a *App) showBrowser(e *core.Engine) {
	e.RemoveLayer(a.splash)

	a.browser = NewROMBrowser(a.Cfg.ROMRoot, NewFSLister(a.Fs), a.Cfg)
	a.status = NewStatusBar("Marley", a.volume)
	root := &mainView{
		LinearLayout: ui.NewLinearLayout(ui.Vertical, a.status, a.browser).Gap(0),
		browser:      a.browser,
	}

	a.screen = ui.NewScreen(root, ui.NewBatchPainter(a.r2d), a.font)
	a.browser.AttachFocus(a.screen.Focus)

	a.browser.OnHighlight.Add(func(p ui.EventParams) {
		a.status.SetDetail(filepath.Base(p.Path))
	})
	a.browser.OnChoice.Add(func(p ui.EventParams) { a.launch(p.Path) })
	a.browser.OnHoldChoice.Add(func(p ui.EventParams) {
		a.status.SetDetail("Hold: " + filepath.Base(p.Path))
		core.Logger().Info("rom held", "path", p.Path)
	})
	a.screen.OnBack.Add(func(ui.EventParams) {
		if !a.browser.Back() {
			e.Window.RequestClose()
		}
	})
	e.PushLayer(a.screen)
}

func (a *App) launch(path string) {
	core.Logger().Info("rom chosen", "path", path)
	a.status.SetDetail("Starting " + filepath.Base(path))
	if a.Launch == nil {
		return
	}
	if err := a.Launch(path); err != nil {
		core.Logger().Error("launch failed", "path", path, "err", err)
		a.status.SetDetail("Failed: " + filepath.Base(path))
	}
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	if a.browser == nil {
		return
	}
	title := "Marley - " + a.browser.Path().Current()
	if title != a.title {
		a.title = title
		e.Window.SetTitle(title)
	}
}

func (a *App) OnRender(e *core.Engine, alpha float64) {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) {
	if a.volume != nil {
		a.volume.Stop()
	}
	if a.font != nil {
		a.font.Close()
		if t, ok := a.font.Texture.(*glbackend.Texture); ok {
			t.Delete()
		}
	}
	if a.sheetTex != nil {
		a.sheetTex.Delete()
	}
	if a.r2d != nil {
		a.r2d.Shutdown()
	}
	profiler.LogSummary(core.Logger())
}
