package obj

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/samurai/component"
)

const speed = 5

func testTextures(idle, walk int) *Textures {
	table := func(n int) [][2]*ebiten.Image {
		t := make([][2]*ebiten.Image, n)
		for i := range t {
			t[i] = [2]*ebiten.Image{ebiten.NewImage(1, 1), ebiten.NewImage(1, 1)}
		}
		return t
	}
	return &Textures{Idle: table(idle), Walk: table(walk)}
}

func TestPlayerStartsIdleFacingRight(t *testing.T) {
	tex := testTextures(4, 8)
	p := NewPlayer(683, 384, tex, 5)

	if !p.Position.Equal(cp.Vector{X: 683, Y: 384}) {
		t.Fatalf("unexpected start position %v", p.Position)
	}
	if p.Facing != component.FacingRight || p.Walking() || p.Frame() != 0 {
		t.Fatalf("unexpected start state: %s", p)
	}
	if p.Texture() != tex.Idle[0][component.FacingRight] {
		t.Fatalf("expected first right-facing idle frame")
	}
}

func TestPlayerWalkRightThenRelease(t *testing.T) {
	p := NewPlayer(0, 0, testTextures(4, 8), 5)

	p.SetChangeX(speed)
	p.Update()
	if p.ChangeX() != speed || p.Position.X != speed {
		t.Fatalf("expected one step right, got %s", p)
	}
	if !p.Walking() || p.Facing != component.FacingRight {
		t.Fatalf("expected walking right, got %s", p)
	}

	p.SetChangeX(0)
	p.Update()
	if p.Walking() || p.State() != "idle" {
		t.Fatalf("expected idle after release, got %s", p)
	}
	if p.Facing != component.FacingRight {
		t.Fatalf("facing should stay right at rest, got %s", p.Facing)
	}
	if p.Position.X != speed {
		t.Fatalf("position should hold at rest, got %v", p.Position)
	}
}

func TestPlayerFacingHysteresis(t *testing.T) {
	cases := []struct {
		name   string
		start  component.Facing
		vx, vy float64
		want   component.Facing
	}{
		{"right_press_left_flips", component.FacingRight, -speed, 0, component.FacingLeft},
		{"left_press_right_flips", component.FacingLeft, speed, 0, component.FacingRight},
		{"left_at_rest_stays_left", component.FacingLeft, 0, 0, component.FacingLeft},
		{"left_moving_vertically_stays_left", component.FacingLeft, 0, speed, component.FacingLeft},
		{"right_moving_right_stays", component.FacingRight, speed, 0, component.FacingRight},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPlayer(0, 0, testTextures(4, 8), 5)
			p.Facing = c.start
			p.SetChangeX(c.vx)
			p.SetChangeY(c.vy)
			p.UpdateAnimation()
			if p.Facing != c.want {
				t.Fatalf("facing = %s, want %s", p.Facing, c.want)
			}
		})
	}
}

func TestPlayerVerticalMovementWalks(t *testing.T) {
	p := NewPlayer(10, 10, testTextures(4, 8), 5)
	p.SetChangeY(-speed)
	p.Update()
	if !p.Walking() {
		t.Fatalf("vertical motion should walk, got %s", p)
	}
	if p.Position.Y != 10-speed || p.Position.X != 10 {
		t.Fatalf("unexpected position %v", p.Position)
	}
}

func TestPlayerTextureLookup(t *testing.T) {
	tex := testTextures(4, 8)
	p := NewPlayer(0, 0, tex, 1)

	p.SetChangeX(-speed)
	for i := 0; i < 20; i++ {
		p.UpdateAnimation()
		want := tex.Walk[p.Frame()][component.FacingLeft]
		if p.Texture() != want {
			t.Fatalf("tick %d: texture is not walk[%d][left]", i, p.Frame())
		}
	}

	p.SetChangeX(0)
	for i := 0; i < 20; i++ {
		p.UpdateAnimation()
		want := tex.Idle[p.Frame()][component.FacingLeft]
		if p.Texture() != want {
			t.Fatalf("tick %d: texture is not idle[%d][left]", i, p.Frame())
		}
	}
}

func TestPlayerStateCountersAreIndependent(t *testing.T) {
	p := NewPlayer(0, 0, testTextures(4, 8), 1)

	p.SetChangeX(speed)
	for i := 0; i < 7; i++ {
		p.UpdateAnimation()
	}
	if p.Frame() != 7 {
		t.Fatalf("expected last walk frame, got %d", p.Frame())
	}

	p.SetChangeX(0)
	p.UpdateAnimation()
	if p.Frame() != 1 {
		t.Fatalf("idle should continue its own cycle, got frame %d", p.Frame())
	}

	p.SetChangeX(speed)
	p.UpdateAnimation()
	if p.Frame() != 0 {
		t.Fatalf("walk should resume from its own counter and wrap, got frame %d", p.Frame())
	}
}

func TestPlayerFrameIndexInRange(t *testing.T) {
	tex := testTextures(4, 8)
	p := NewPlayer(0, 0, tex, 5)

	moves := []float64{speed, 0, -speed, 0}
	for i := 0; i < 200000; i++ {
		p.SetChangeX(moves[(i/37)%len(moves)])
		p.UpdateAnimation()
		limit := len(tex.Idle)
		if p.Walking() {
			limit = len(tex.Walk)
		}
		if p.Frame() < 0 || p.Frame() >= limit {
			t.Fatalf("tick %d: frame %d out of range [0, %d)", i, p.Frame(), limit)
		}
		if p.Texture() == nil {
			t.Fatalf("tick %d: no texture selected", i)
		}
	}
}

func TestPlayerStaticIdle(t *testing.T) {
	tex := testTextures(1, 8)
	p := NewPlayer(0, 0, tex, 5)
	for i := 0; i < 50; i++ {
		p.UpdateAnimation()
		if p.Frame() != 0 || p.Texture() != tex.Idle[0][component.FacingRight] {
			t.Fatalf("single-frame idle should never advance, got frame %d", p.Frame())
		}
	}
}

func TestPlayerWithoutTextures(t *testing.T) {
	p := NewPlayer(1, 2, nil, 0)
	p.SetChangeX(speed)
	p.Update()
	if p.Texture() != nil {
		t.Fatalf("expected no texture without tables")
	}
	p.Draw(ebiten.NewImage(4, 4))
}

func TestPlayerSetUpdatesPerFrame(t *testing.T) {
	p := NewPlayer(0, 0, testTextures(4, 8), 5)
	p.SetChangeX(speed)
	for i := 0; i < 12; i++ {
		p.UpdateAnimation()
	}
	if p.Frame() != 2 {
		t.Fatalf("expected frame 2 after 12 ticks at 5 updates/frame, got %d", p.Frame())
	}

	p.SetUpdatesPerFrame(1)
	if p.Frame() != 0 {
		t.Fatalf("throttle change should restart the cycle, got %d", p.Frame())
	}
	p.UpdateAnimation()
	if p.Frame() != 1 {
		t.Fatalf("expected one frame per update, got %d", p.Frame())
	}
}
