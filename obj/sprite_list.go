package obj

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is anything the game view updates and draws every tick.
type Sprite interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SpriteList holds the live sprites of a view in draw order.
type SpriteList struct {
	sprites []Sprite
}

func NewSpriteList() *SpriteList {
	return &SpriteList{}
}

func (l *SpriteList) Append(s Sprite) {
	if s == nil {
		return
	}
	l.sprites = append(l.sprites, s)
}

func (l *SpriteList) Len() int { return len(l.sprites) }

func (l *SpriteList) Clear() { l.sprites = nil }

func (l *SpriteList) Update() {
	for _, s := range l.sprites {
		s.Update()
	}
}

func (l *SpriteList) Draw(screen *ebiten.Image) {
	for _, s := range l.sprites {
		s.Draw(screen)
	}
}
