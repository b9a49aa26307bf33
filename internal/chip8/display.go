package chip8

// draw XORs an n byte sprite from memory at I onto the framebuffer. The
// origin wraps around the screen, pixels past the right edge are clipped and
// rows continue at the top once the bottom edge is passed. VF is set to 1
// if any set pixel was cleared.
func (c *Chip8) draw(vx, vy, n uint8) {
	x := int(vx) % ScreenWidth
	y := int(vy) % ScreenHeight

	var collision byte
	for row := range uint16(n) {
		sprite := c.mem.read(c.reg.I + row)
		line := c.screen[y*ScreenWidth : (y+1)*ScreenWidth]

		for bit := range spriteWidth {
			col := x + bit
			if col >= ScreenWidth {
				break
			}

			pixel := line[col] & 1
			value := (sprite >> (spriteWidth - 1 - bit)) & 1
			collision |= pixel & value
			line[col] = (pixel ^ value) * PixelOn
		}

		y = (y + 1) % ScreenHeight
	}

	c.reg.V[FlagRegister] = collision
	c.screenUpdated = true
}
