package app

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	"github.com/depeter/pipdemo/internal/config"
	"github.com/depeter/pipdemo/internal/event"
	"github.com/depeter/pipdemo/internal/pip"
	"github.com/depeter/pipdemo/internal/ui"
)

// Game implements ebiten.Game and runs the UI goroutine: everything the
// engine reports arrives through Queue and is handled in Update.
type Game struct {
	Config   *config.Config
	Queue    *event.Queue
	PiP      *pip.Provider
	Screens  *ui.ScreenManager
	Showcase *ui.ShowcaseScreen

	Width, Height int

	// Init runs once on the first frame, when the window exists and has a
	// native handle. It builds the player and pushes the first screen.
	Init        func() error
	initialized bool

	keys Keybinds
}

// NewGame creates the Game. PiP and screens are wired by Init.
func NewGame(cfg *config.Config, queue *event.Queue) *Game {
	keys, unknown := NewKeybinds(cfg.Keybinds)
	for _, name := range unknown {
		log.WithField("key", name).Warn("unknown keybind, ignored")
	}
	return &Game{
		Config:  cfg,
		Queue:   queue,
		Screens: ui.NewScreenManager(),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
		keys:    keys,
	}
}

func (g *Game) Update() error {
	if !g.initialized {
		g.initialized = true
		if g.Init != nil {
			if err := g.Init(); err != nil {
				return fmt.Errorf("init: %w", err)
			}
		}
	}

	g.Queue.Drain()

	if g.Showcase != nil {
		g.Showcase.SetCanvas(image.Pt(g.Width, g.Height))
	}
	if err := g.Screens.Update(); err != nil {
		return err
	}
	if g.Screens.Len() == 0 {
		return ebiten.Termination
	}
	if g.PiP != nil {
		g.PiP.Update()
	}
	return g.handleInput()
}

func (g *Game) handleInput() error {
	// Alt+Enter toggles fullscreen regardless of keybinds
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		return nil
	}

	action := g.keys.JustPressed()
	if action == ActionQuit {
		if g.Showcase == nil {
			return ebiten.Termination
		}
		g.Showcase.RequestExit()
		return nil
	}
	if action == ActionFullscreen {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		return nil
	}

	if g.Showcase == nil {
		return nil
	}
	view := g.Showcase.View()
	var err error
	switch action {
	case ActionPlayPause:
		err = view.ToggleResume()
	case ActionPiP:
		err = view.TogglePiP()
	}
	if err != nil {
		log.WithError(err).WithField("action", action).Debug("keybind ignored")
	}

	if p, ok := ui.PointerJustPressed(); ok {
		g.Showcase.Press(p)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Screens.Draw(screen)
}

// Layout follows the window so the OSD and video margins track resizes
// and the PiP frame.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Width, g.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Shutdown exits every screen, which detaches the player item.
func (g *Game) Shutdown() {
	g.Screens.ClearStack()
}
