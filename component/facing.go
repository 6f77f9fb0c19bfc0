package component

// Facing is the horizontal orientation of a sprite.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "right"
	case FacingLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Next returns the facing after observing horizontal velocity vx. The facing
// only flips when vx strictly disagrees with it; zero keeps the current one.
func (f Facing) Next(vx float64) Facing {
	switch {
	case vx < 0 && f == FacingRight:
		return FacingLeft
	case vx > 0 && f == FacingLeft:
		return FacingRight
	default:
		return f
	}
}
