package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/samurai/common"
	"github.com/milk9111/samurai/view"
)

// Game is the window's single active-view slot. Views ask for a swap or for
// termination through ShowView and Quit; both are applied between ticks so a
// half-initialised view is never drawn.
type Game struct {
	frames int

	current view.View
	next    view.View
	quit    bool
	logger  *log.Logger
}

func NewGame(logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{logger: logger}
}

// ShowView queues v to replace the active view before the next tick.
func (g *Game) ShowView(v view.View) {
	if v == nil {
		return
	}
	g.next = v
}

// Quit ends the game loop; nothing is drawn afterwards.
func (g *Game) Quit() {
	g.quit = true
}

// Current returns the active view.
func (g *Game) Current() view.View { return g.current }

func (g *Game) swap() {
	if g.next == nil {
		return
	}
	if g.current != nil {
		g.current.OnHide()
	}
	g.current, g.next = g.next, nil
	g.logger.Debug("show view", "view", fmt.Sprintf("%T", g.current), "frame", g.frames)
	g.current.OnShow()
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	g.swap()
	if g.current == nil {
		return nil
	}
	if err := g.current.Update(); err != nil {
		return err
	}
	if g.quit {
		g.current.OnHide()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.quit || g.current == nil {
		return
	}
	g.current.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}
