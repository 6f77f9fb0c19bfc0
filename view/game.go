package view

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/samurai/common"
	"github.com/milk9111/samurai/obj"
	"github.com/milk9111/samurai/prefabs"
)

const (
	defaultMoveSpeed       = 5
	defaultUpdatesPerFrame = 5
)

// KeySource reports the key-down and key-up events of the current tick.
type KeySource interface {
	Update()
	Pressed() []ebiten.Key
	Released() []ebiten.Key
}

// GameView is where the samurai walks around.
type GameView struct {
	cfg  Config
	menu *MenuView

	input    KeySource
	controls *obj.Controls
	player   *obj.Player
	sprites  *obj.SpriteList
	watcher  *prefabs.Watcher

	moveSpeed       float64
	updatesPerFrame int
	scale           float64
	setUp           bool
}

// NewGameView creates a game view that returns to menu on Escape. Nothing is
// built until the view is shown.
func NewGameView(cfg Config, menu *MenuView) *GameView {
	cfg = cfg.withDefaults()
	v := &GameView{
		cfg:             cfg,
		menu:            menu,
		input:           obj.NewInput(),
		moveSpeed:       defaultMoveSpeed,
		updatesPerFrame: defaultUpdatesPerFrame,
		scale:           1,
	}
	if cfg.Player != nil {
		v.moveSpeed = cfg.Player.MoveSpeed
		v.updatesPerFrame = cfg.Player.UpdatesPerFrame
		if cfg.Player.Scale > 0 {
			v.scale = cfg.Player.Scale
		}
	}
	return v
}

// SetInput replaces the keyboard as the source of key events.
func (v *GameView) SetInput(in KeySource) {
	if in != nil {
		v.input = in
	}
}

// setup places the player at the centre of the screen and starts a fresh
// sprite list. It runs once per view.
func (v *GameView) setup() {
	if v.setUp {
		return
	}
	v.setUp = true

	v.controls = obj.NewControls()
	v.player = obj.NewPlayer(common.ScreenWidth/2, common.ScreenHeight/2, v.cfg.Textures, v.updatesPerFrame)
	v.player.Scale = v.scale
	v.sprites = obj.NewSpriteList()
	v.sprites.Append(v.player)
	v.cfg.Logger.Debug("game: setup", "x", v.player.Position.X, "y", v.player.Position.Y)
}

func (v *GameView) OnShow() {
	v.setup()
	if v.cfg.Debug {
		v.watchPrefabs()
	}
}

func (v *GameView) OnHide() {
	if v.watcher != nil {
		if err := v.watcher.Close(); err != nil {
			v.cfg.Logger.Warn("game: close prefab watcher", "err", err)
		}
		v.watcher = nil
	}
}

// Player returns the samurai, or nil before the view has been shown.
func (v *GameView) Player() *obj.Player { return v.player }

// Sprites returns the live sprites, or nil before the view has been shown.
func (v *GameView) Sprites() *obj.SpriteList { return v.sprites }

// KeyDown sets the velocity of the key's axis. The last key pressed on an
// axis wins.
func (v *GameView) KeyDown(key ebiten.Key) {
	v.setup()
	if key == ebiten.KeyEscape {
		if v.menu != nil {
			v.cfg.Nav.ShowView(v.menu)
		}
		return
	}
	if axis, ok := v.controls.Press(key); ok {
		v.applyAxis(axis)
	}
}

// KeyUp stops the key's axis, or resumes another key still held on it.
func (v *GameView) KeyUp(key ebiten.Key) {
	v.setup()
	if axis, ok := v.controls.Release(key); ok {
		v.applyAxis(axis)
	}
}

func (v *GameView) applyAxis(axis obj.Axis) {
	change := v.controls.Direction(axis) * v.moveSpeed
	switch axis {
	case obj.AxisX:
		v.player.SetChangeX(change)
	case obj.AxisY:
		v.player.SetChangeY(change)
	}
}

// Update dispatches this tick's key events, then moves and animates every
// sprite.
func (v *GameView) Update() error {
	v.setup()
	v.reloadPrefabs()

	v.input.Update()
	for _, key := range v.input.Pressed() {
		v.KeyDown(key)
	}
	for _, key := range v.input.Released() {
		v.KeyUp(key)
	}

	v.sprites.Update()
	return nil
}

func (v *GameView) Draw(screen *ebiten.Image) {
	v.setup()
	screen.Fill(v.cfg.Theme.GameBackground)
	v.sprites.Draw(screen)

	if v.cfg.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nFPS: %.2f", v.player, ebiten.ActualFPS()))
	}
}

// ApplyPlayerSpec retunes the live player from a reloaded prefab.
func (v *GameView) ApplyPlayerSpec(spec *prefabs.PlayerSpec) {
	if spec == nil {
		return
	}
	v.setup()
	v.moveSpeed = spec.MoveSpeed
	if spec.UpdatesPerFrame != v.updatesPerFrame {
		v.updatesPerFrame = spec.UpdatesPerFrame
		v.player.SetUpdatesPerFrame(spec.UpdatesPerFrame)
	}
	if spec.Scale > 0 {
		v.scale = spec.Scale
		v.player.Scale = spec.Scale
	}
	v.applyAxis(obj.AxisX)
	v.applyAxis(obj.AxisY)
}

func (v *GameView) watchPrefabs() {
	if v.watcher != nil {
		return
	}
	if _, err := os.Stat(prefabs.Dir); err != nil {
		v.cfg.Logger.Debug("game: no prefab directory to watch", "dir", prefabs.Dir)
		return
	}
	w, err := prefabs.NewWatcher(prefabs.Dir)
	if err != nil {
		v.cfg.Logger.Warn("game: watch prefabs", "err", err)
		return
	}
	v.watcher = w
	v.cfg.Logger.Debug("game: watching prefabs", "dir", prefabs.Dir)
}

func (v *GameView) reloadPrefabs() {
	if v.watcher == nil {
		return
	}
	for _, name := range v.watcher.Drain() {
		if name != prefabs.PlayerSpecFile {
			continue
		}
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			v.cfg.Logger.Error("game: reload player prefab", "err", err)
			continue
		}
		v.ApplyPlayerSpec(spec)
		v.cfg.Logger.Info("game: reloaded player prefab", "move_speed", spec.MoveSpeed, "updates_per_frame", spec.UpdatesPerFrame)
	}
}
