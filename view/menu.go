package view

import "github.com/hajimehoshi/ebiten/v2"

const (
	LabelStart    = "Start Game"
	LabelSettings = "Settings"
	LabelQuit     = "Quit"
)

// MenuView is the title screen.
type MenuView struct {
	*buttonBox

	cfg      Config
	settings *SettingsView
}

func NewMenuView(cfg Config) *MenuView {
	cfg = cfg.withDefaults()
	v := &MenuView{cfg: cfg}
	v.buttonBox = newButtonBox(cfg.Theme, []button{
		{LabelStart, v.onClickStart},
		{LabelSettings, v.onClickSettings},
		{LabelQuit, v.onClickQuit},
	}, false)
	return v
}

func (v *MenuView) onClickStart() {
	v.cfg.Logger.Debug("menu: start game")
	v.cfg.Nav.ShowView(NewGameView(v.cfg, v))
}

func (v *MenuView) onClickSettings() {
	if v.settings == nil {
		v.settings = NewSettingsView(v.cfg, v)
	}
	v.cfg.Nav.ShowView(v.settings)
}

func (v *MenuView) onClickQuit() {
	v.cfg.Logger.Info("menu: quit")
	v.cfg.Nav.Quit()
}

func (v *MenuView) OnShow() {}

func (v *MenuView) OnHide() {}

func (v *MenuView) Update() error {
	v.ui.Update()
	return nil
}

func (v *MenuView) Draw(screen *ebiten.Image) {
	screen.Fill(v.cfg.Theme.MenuBackground)
	v.ui.Draw(screen)
}
