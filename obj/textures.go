package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/samurai/assets"
	"github.com/milk9111/samurai/prefabs"
)

// Textures holds the player's frame tables. Each entry is a texture pair:
// [0] faces right, [1] faces left.
type Textures struct {
	Idle [][2]*ebiten.Image
	Walk [][2]*ebiten.Image
}

// LoadTextures loads every idle and walk frame named by the spec. Any missing
// or undecodable frame fails the whole load.
func LoadTextures(spec *prefabs.PlayerSpec) (*Textures, error) {
	if spec == nil {
		return nil, fmt.Errorf("obj: load textures: nil player spec")
	}
	anim := spec.Animation
	idle, err := assets.LoadAnimation(anim.Dir, anim.Idle.Name, anim.Idle.FrameCount)
	if err != nil {
		return nil, fmt.Errorf("obj: load %s textures: %w", spec.Name, err)
	}
	walk, err := assets.LoadAnimation(anim.Dir, anim.Walk.Name, anim.Walk.FrameCount)
	if err != nil {
		return nil, fmt.Errorf("obj: load %s textures: %w", spec.Name, err)
	}
	return &Textures{Idle: idle, Walk: walk}, nil
}
