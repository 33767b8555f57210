package cardtable

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	// ExitOnScriptDone closes the window once an attached TestRunner finishes.
	ExitOnScriptDone bool
}

// RunConfigFrom derives a RunConfig from a table Config.
func RunConfigFrom(cfg Config) RunConfig {
	return RunConfig{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		ShowFPS: cfg.Window.ShowFPS,
	}
}

// Run opens a resizable window and runs t until the window is closed.
func Run(t *Table, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(t, cfg.ShowFPS)
	g.ExitOnScriptDone = cfg.ExitOnScriptDone
	err := ebiten.RunGame(g)
	t.Close()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
