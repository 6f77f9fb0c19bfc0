package view

import (
	"image/color"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/samurai/prefabs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// Theme carries the shared look of the menu screens.
type Theme struct {
	Face           ebtext.Face
	MenuBackground color.Color
	GameBackground color.Color
	TextColor      color.Color
	ButtonImage    *widget.ButtonImage
	ButtonText     *widget.ButtonTextColor
	ButtonWidth    int
	ButtonHeight   int
	Spacing        int
}

// NewTheme builds a theme from the theme prefab. A nil spec or missing fields
// fall back to flat gray buttons on a gray background.
func NewTheme(spec *prefabs.ThemeSpec) *Theme {
	if spec == nil {
		spec = &prefabs.ThemeSpec{}
	}
	btn := spec.Button

	textColor := btn.Text.Or(colornames.White)
	t := &Theme{
		Face:           ebtext.NewGoXFace(basicfont.Face7x13),
		MenuBackground: spec.MenuBackground.Or(colornames.Gray),
		GameBackground: spec.GameBackground.Or(colornames.White),
		TextColor:      textColor,
		ButtonImage: &widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(btn.Idle.Or(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff})),
			Hover:   imageui.NewNineSliceColor(btn.Hover.Or(color.NRGBA{R: 0x5c, G: 0x5c, B: 0x5c, A: 0xff})),
			Pressed: imageui.NewNineSliceColor(btn.Pressed.Or(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})),
		},
		ButtonText:   &widget.ButtonTextColor{Idle: textColor},
		ButtonWidth:  btn.Width,
		ButtonHeight: btn.Height,
		Spacing:      btn.Spacing,
	}
	if t.ButtonWidth <= 0 {
		t.ButtonWidth = 200
	}
	if t.ButtonHeight <= 0 {
		t.ButtonHeight = 40
	}
	if t.Spacing <= 0 {
		t.Spacing = 25
	}
	return t
}
