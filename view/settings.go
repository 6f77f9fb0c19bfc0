package view

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/samurai/common"
)

const (
	LabelBack    = "Back"
	LabelGeneral = "General"
	LabelControl = "Control"
)

// SettingsView is reached from the menu. General and Control only describe
// the fixed setup; nothing here is editable.
type SettingsView struct {
	*buttonBox

	cfg  Config
	menu *MenuView
}

func NewSettingsView(cfg Config, menu *MenuView) *SettingsView {
	cfg = cfg.withDefaults()
	v := &SettingsView{cfg: cfg, menu: menu}
	v.buttonBox = newButtonBox(cfg.Theme, []button{
		{LabelBack, v.onClickBack},
		{LabelGeneral, v.onClickGeneral},
		{LabelControl, v.onClickControl},
	}, true)
	return v
}

func (v *SettingsView) onClickBack() {
	v.cfg.Nav.ShowView(v.menu)
}

func (v *SettingsView) onClickGeneral() {
	v.cfg.Logger.Debug("settings: general")
	v.setDetail(fmt.Sprintf("Window %dx%d, debug %v", common.ScreenWidth, common.ScreenHeight, v.cfg.Debug))
}

func (v *SettingsView) onClickControl() {
	v.cfg.Logger.Debug("settings: control")
	v.setDetail("Arrow keys move, Esc returns to the menu")
}

// OnShow clears the description left from a previous visit.
func (v *SettingsView) OnShow() {
	v.setDetail("")
}

func (v *SettingsView) OnHide() {}

func (v *SettingsView) Update() error {
	v.ui.Update()
	return nil
}

func (v *SettingsView) Draw(screen *ebiten.Image) {
	screen.Fill(v.cfg.Theme.MenuBackground)
	v.ui.Draw(screen)
}
