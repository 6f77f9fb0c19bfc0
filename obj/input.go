package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input turns ebiten's polled keyboard state into key-down and key-up events
// for the current tick.
type Input struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keys that went down or up this tick.
func (i *Input) Update() {
	i.pressed = inpututil.AppendJustPressedKeys(i.pressed[:0])
	i.released = inpututil.AppendJustReleasedKeys(i.released[:0])
}

// Pressed returns the keys that went down this tick.
func (i *Input) Pressed() []ebiten.Key { return i.pressed }

// Released returns the keys that went up this tick.
func (i *Input) Released() []ebiten.Key { return i.released }
