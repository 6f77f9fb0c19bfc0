package component

// FrameCounter throttles an animation cycle to the tick rate. The counter
// advances once per Advance call and wraps back to zero once it exceeds
// (Frames-1)*UpdatesPerFrame, so Index is always within [0, Frames-1].
type FrameCounter struct {
	Frames          int
	UpdatesPerFrame int

	tick int
}

// NewFrameCounter creates a counter for an animation with the given number of
// frames, each held for updatesPerFrame ticks. Non-positive values become 1.
func NewFrameCounter(frames, updatesPerFrame int) FrameCounter {
	c := FrameCounter{Frames: frames, UpdatesPerFrame: updatesPerFrame}
	c.normalize()
	return c
}

func (c *FrameCounter) normalize() {
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.UpdatesPerFrame <= 0 {
		c.UpdatesPerFrame = 1
	}
}

// Advance moves the counter forward one tick and returns the new frame index.
func (c *FrameCounter) Advance() int {
	c.normalize()
	c.tick++
	if c.tick > (c.Frames-1)*c.UpdatesPerFrame {
		c.tick = 0
	}
	return c.Index()
}

// Index returns the current frame index.
func (c *FrameCounter) Index() int {
	c.normalize()
	idx := c.tick / c.UpdatesPerFrame
	if idx >= c.Frames {
		// UpdatesPerFrame or Frames shrank since the last Advance.
		c.tick = 0
		return 0
	}
	return idx
}

// Tick returns the raw counter value.
func (c *FrameCounter) Tick() int { return c.tick }

// SetUpdatesPerFrame changes the playback throttle, restarting the cycle.
func (c *FrameCounter) SetUpdatesPerFrame(n int) {
	c.UpdatesPerFrame = n
	c.Reset()
}

// Reset sets the counter back to the first frame.
func (c *FrameCounter) Reset() {
	c.tick = 0
	c.normalize()
}
