package behaviour

// FrameClock tracks scene time. It only moves when the owning manager
// advances a frame, so a frame's logic always sees a single "now".
type FrameClock struct {
	now        float64
	delta      float32
	fixedDelta float32
	frame      uint64
}

func (c *FrameClock) Advance(deltaTime float32) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	c.delta = deltaTime
	c.now += float64(deltaTime)
	c.frame++
}

func (c *FrameClock) Now() float64 {
	return c.now
}

func (c *FrameClock) DeltaTime() float32 {
	return c.delta
}

// FixedDeltaTime is the step passed to the last FixedUpdateAll
func (c *FrameClock) FixedDeltaTime() float32 {
	return c.fixedDelta
}

func (c *FrameClock) Frame() uint64 {
	return c.frame
}
