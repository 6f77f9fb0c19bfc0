// Package view holds the screens of the game. Exactly one view is active at
// a time; the window owner swaps them between ticks.
package view

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/samurai/obj"
	"github.com/milk9111/samurai/prefabs"
)

// View is a full-screen mode: the menu, the settings screen or the game.
type View interface {
	// OnShow runs when the view becomes active, before its first Update or Draw.
	OnShow()
	// OnHide runs when another view replaces this one.
	OnHide()
	Update() error
	Draw(screen *ebiten.Image)
}

// Navigator owns the active view slot. Both calls take effect between ticks.
type Navigator interface {
	ShowView(v View)
	Quit()
}

// Config is what every view needs to build itself and its successors.
type Config struct {
	Nav      Navigator
	Theme    *Theme
	Player   *prefabs.PlayerSpec
	Textures *obj.Textures
	Logger   *log.Logger
	Debug    bool
}

// withDefaults fills in a default logger and theme.
func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	if c.Theme == nil {
		c.Theme = NewTheme(nil)
	}
	return c
}
