package view

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

type button struct {
	label   string
	onClick func()
}

// buttonBox is a centred vertical column of flat buttons, optionally followed
// by a line of text. The widget tree is built once, so returning to a view
// shows the same layout with the same bindings.
type buttonBox struct {
	ui     *ebitenui.UI
	column *widget.Container
	detail *widget.Text
}

func newButtonBox(theme *Theme, buttons []button, withDetail bool) *buttonBox {
	b := &buttonBox{}

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(theme.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	for _, btn := range buttons {
		onClick := btn.onClick
		column.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonImage),
			widget.ButtonOpts.Text(btn.label, &theme.Face, theme.ButtonText),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(theme.ButtonWidth, theme.ButtonHeight),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	if withDetail {
		b.detail = widget.NewText(
			widget.TextOpts.Text("", &theme.Face, theme.TextColor),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		)
		column.AddChild(b.detail)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(column)
	root.Validate()

	b.column = column
	b.ui = &ebitenui.UI{Container: root}
	return b
}

// Buttons returns the button widgets in layout order.
func (b *buttonBox) Buttons() []*widget.Button {
	var out []*widget.Button
	for _, child := range b.column.Children() {
		if btn, ok := child.(*widget.Button); ok {
			out = append(out, btn)
		}
	}
	return out
}

// Labels returns the button labels in layout order.
func (b *buttonBox) Labels() []string {
	var labels []string
	for _, btn := range b.Buttons() {
		labels = append(labels, buttonLabel(btn))
	}
	return labels
}

// Click clicks the button labelled label. Like a mouse click, the handler
// runs when the UI next processes its events.
func (b *buttonBox) Click(label string) bool {
	for _, btn := range b.Buttons() {
		if buttonLabel(btn) == label {
			btn.Click()
			return true
		}
	}
	return false
}

func buttonLabel(btn *widget.Button) string {
	if t := btn.Text(); t != nil {
		return t.Label
	}
	return ""
}

func (b *buttonBox) setDetail(s string) {
	if b.detail != nil {
		b.detail.Label = s
	}
}

func (b *buttonBox) Detail() string {
	if b.detail == nil {
		return ""
	}
	return b.detail.Label
}
