// Package window runs the game in a desktop window on Ebitengine.
package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/mrbinaer"
)

// Config configures the windowed App.
type Config struct {
	Game          *mrbinaer.Config
	Settings      *mrbinaer.SettingsStore
	Log           *mrbinaer.Logger
	ScreenshotDir string
	// Script, when set, replays scripted input on top of real input.
	Script *mrbinaer.TestRunner
}

// App implements ebiten.Game. Each tick runs exactly one session frame; a
// finished session is replaced by a new one until the player quits.
type App struct {
	cfg      mrbinaer.Config
	game     *mrbinaer.Game
	session  *mrbinaer.Session
	input    Input
	injected mrbinaer.Queue
	script   *mrbinaer.TestRunner
	renderer *Renderer
	shots    Screenshots
	clock    *mrbinaer.FrameClock
	log      *mrbinaer.Logger

	frame   mrbinaer.Frame
	pending []string
	reason  mrbinaer.Reason
}

// NewApp loads fonts and audio and starts the first session. Missing fonts
// abort startup.
func NewApp(c Config) (*App, error) {
	cfg := mrbinaer.DefaultConfig()
	if c.Game != nil {
		cfg = *c.Game
	}
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	dir := c.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	a := &App{
		cfg: cfg,
		game: mrbinaer.NewGame(mrbinaer.GameOptions{
			Config:   &cfg,
			Feedback: NewSounds(c.Settings),
			Settings: c.Settings,
			Log:      c.Log,
		}),
		script:   c.Script,
		renderer: NewRenderer(fonts, cfg.Window.Width, cfg.Window.Height),
		shots:    Screenshots{Dir: dir},
		clock:    mrbinaer.NewFrameClock(time.Now()),
		log:      c.Log,
	}
	a.session = a.game.NewSession()
	return a, nil
}

// Run opens the window and blocks until the player quits. It returns why
// the last session ended.
func (a *App) Run() (mrbinaer.Reason, error) {
	ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
	ebiten.SetWindowTitle(a.cfg.Window.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(true)
	if err := ebiten.RunGame(a); err != nil {
		return a.reason, err
	}
	return a.reason, nil
}

// Update runs one session frame.
func (a *App) Update() error {
	if a.session.Stopped() {
		a.reason = a.session.Reason()
		if !a.game.Finish(a.session) {
			return ebiten.Termination
		}
		a.session = a.game.NewSession()
	}

	if a.script != nil {
		a.script.Step(&a.injected, a.session)
	}
	events := append(a.input.Poll(), a.injected.Poll()...)
	a.frame = a.session.Step(events)
	a.pending = append(a.pending, a.frame.Screenshots...)

	ebiten.SetWindowTitle(mrbinaer.Title(a.clock.Tick(time.Now())))
	return nil
}

// Draw renders the frame composed by the last Update.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.frame)
	if len(a.pending) > 0 {
		if err := a.shots.Capture(screen, a.pending, time.Now()); err != nil {
			a.log.Printf("%v", err)
		}
		a.pending = a.pending[:0]
	}
}

// Layout returns the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}
