package obj

import "github.com/hajimehoshi/ebiten/v2"

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

type binding struct {
	axis Axis
	dir  float64
}

// arrowKeys maps the arrow keys onto screen axes; y grows downward.
var arrowKeys = map[ebiten.Key]binding{
	ebiten.KeyArrowLeft:  {AxisX, -1},
	ebiten.KeyArrowRight: {AxisX, 1},
	ebiten.KeyArrowUp:    {AxisY, -1},
	ebiten.KeyArrowDown:  {AxisY, 1},
}

// Controls tracks the held direction keys per axis. The most recently
// pressed key that is still held drives its axis, so releasing one of two
// opposing keys resumes motion toward the other.
type Controls struct {
	held [2][]ebiten.Key
}

func NewControls() *Controls {
	return &Controls{}
}

// Press records a key-down. It reports the affected axis, or false when the
// key is not a direction key.
func (c *Controls) Press(key ebiten.Key) (Axis, bool) {
	b, ok := arrowKeys[key]
	if !ok {
		return 0, false
	}
	c.held[b.axis] = append(remove(c.held[b.axis], key), key)
	return b.axis, true
}

// Release records a key-up. It reports the affected axis, or false when the
// key is not a direction key.
func (c *Controls) Release(key ebiten.Key) (Axis, bool) {
	b, ok := arrowKeys[key]
	if !ok {
		return 0, false
	}
	c.held[b.axis] = remove(c.held[b.axis], key)
	return b.axis, true
}

// Direction returns -1, 0 or +1 for the axis.
func (c *Controls) Direction(axis Axis) float64 {
	keys := c.held[axis]
	if len(keys) == 0 {
		return 0
	}
	return arrowKeys[keys[len(keys)-1]].dir
}

// Reset forgets every held key.
func (c *Controls) Reset() {
	c.held = [2][]ebiten.Key{}
}

func remove(keys []ebiten.Key, key ebiten.Key) []ebiten.Key {
	out := keys[:0]
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}
