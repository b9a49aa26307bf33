package chip8

// TickTimers decrements the delay and sound timers and has to be called at
// 60 Hz. It returns whether a tone should be played for this tick, which is
// the case when the sound timer was running at the start of the tick.
func (c *Chip8) TickTimers() bool {
	if c.reg.DT > 0 {
		c.reg.DT--
	}

	if c.reg.ST > 0 {
		c.reg.ST--
		return true
	}
	return false
}
