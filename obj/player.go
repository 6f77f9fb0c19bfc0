package obj

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/samurai/component"
)

// animState is implemented by each animation state. Every state owns its own
// frame counter on the player, so switching states never resumes a cycle
// from another state's position.
type animState interface {
	Name() string
	counter(p *Player) *component.FrameCounter
	table(p *Player) [][2]*ebiten.Image
}

type idleState struct{}

func (idleState) Name() string { return "idle" }
func (idleState) counter(p *Player) *component.FrameCounter { return &p.idleFrames }
func (idleState) table(p *Player) [][2]*ebiten.Image { return p.textures.Idle }

type walkingState struct{}

func (walkingState) Name() string { return "walking" }
func (walkingState) counter(p *Player) *component.FrameCounter { return &p.walkFrames }
func (walkingState) table(p *Player) [][2]*ebiten.Image { return p.textures.Walk }

// singletons for each state to avoid allocating on every transition
var (
	stateIdle    animState = &idleState{}
	stateWalking animState = &walkingState{}
)

// Player is the samurai: position and velocity in screen pixels, a facing
// and the idle/walk texture tables it animates through.
type Player struct {
	Position cp.Vector
	Velocity cp.Vector
	Facing   component.Facing
	Scale    float64

	textures   *Textures
	idleFrames component.FrameCounter
	walkFrames component.FrameCounter
	state      animState
	frame      int
	texture    *ebiten.Image
}

// NewPlayer creates a player at (x, y) facing right and at rest. Each texture
// frame is held for updatesPerFrame animation updates.
func NewPlayer(x, y float64, textures *Textures, updatesPerFrame int) *Player {
	if textures == nil {
		textures = &Textures{}
	}
	p := &Player{
		Position:   cp.Vector{X: x, Y: y},
		Facing:     component.FacingRight,
		Scale:      1,
		textures:   textures,
		idleFrames: component.NewFrameCounter(len(textures.Idle), updatesPerFrame),
		walkFrames: component.NewFrameCounter(len(textures.Walk), updatesPerFrame),
		state:      stateIdle,
	}
	p.texture = p.lookup()
	return p
}

func (p *Player) ChangeX() float64 { return p.Velocity.X }
func (p *Player) ChangeY() float64 { return p.Velocity.Y }

func (p *Player) SetChangeX(v float64) { p.Velocity.X = v }
func (p *Player) SetChangeY(v float64) { p.Velocity.Y = v }

// Walking reports whether the player is in the walking state.
func (p *Player) Walking() bool { return p.state == stateWalking }

// State returns the name of the current animation state.
func (p *Player) State() string { return p.state.Name() }

// Frame returns the frame index into the current state's table.
func (p *Player) Frame() int { return p.frame }

// Texture returns the image selected by the last animation update.
func (p *Player) Texture() *ebiten.Image { return p.texture }

// SetUpdatesPerFrame changes the playback throttle of both cycles.
func (p *Player) SetUpdatesPerFrame(n int) {
	p.idleFrames.SetUpdatesPerFrame(n)
	p.walkFrames.SetUpdatesPerFrame(n)
	p.frame = p.state.counter(p).Index()
	p.texture = p.lookup()
}

// Update advances one tick: position first, then animation.
func (p *Player) Update() {
	p.UpdatePosition()
	p.UpdateAnimation()
}

// UpdatePosition applies velocity with an implicit timestep of one tick.
func (p *Player) UpdatePosition() {
	p.Position = p.Position.Add(p.Velocity)
}

// UpdateAnimation picks the state from velocity, flips facing on a strict
// sign change of horizontal velocity, advances the active state's counter and
// selects table[state][frame][facing].
func (p *Player) UpdateAnimation() {
	p.Facing = p.Facing.Next(p.Velocity.X)

	if p.Velocity.X == 0 && p.Velocity.Y == 0 {
		p.state = stateIdle
	} else {
		p.state = stateWalking
	}

	p.frame = p.state.counter(p).Advance()
	p.texture = p.lookup()
}

func (p *Player) lookup() *ebiten.Image {
	table := p.state.table(p)
	if p.frame < 0 || p.frame >= len(table) {
		return nil
	}
	return table[p.frame][p.Facing]
}

// Draw renders the current texture centred on the player position.
func (p *Player) Draw(screen *ebiten.Image) {
	if p.texture == nil {
		return
	}
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	b := p.texture.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		math.Round(p.Position.X-float64(b.Dx())*scale/2),
		math.Round(p.Position.Y-float64(b.Dy())*scale/2),
	)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(p.texture, op)
}

func (p *Player) String() string {
	return fmt.Sprintf("state: %s, facing: %s, frame: %d, pos: (%.0f, %.0f), vel: (%.0f, %.0f)",
		p.state.Name(), p.Facing, p.frame, p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y)
}
