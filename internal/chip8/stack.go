package chip8

// Return addresses are stored little-endian in the stack region at SP.
// Outside of strict mode SP is not bounded and wraps as an 8-bit value.

func (c *Chip8) push(address uint16) error {
	sp := c.reg.SP
	if c.strict && int(sp)+2 > StackEnd {
		return &MemoryFaultError{Address: uint16(sp), Access: AccessPush, Err: ErrStackOverflow}
	}

	// the last stack byte is shared with the font table, write drops it
	c.mem.write(uint16(sp), byte(address))
	c.mem.write(uint16(sp)+1, byte(address>>8))
	c.reg.SP = sp + 2
	return nil
}

func (c *Chip8) pop() (uint16, error) {
	if c.strict && c.reg.SP < 2 {
		return 0, &MemoryFaultError{Address: uint16(c.reg.SP), Access: AccessPop, Err: ErrStackUnderflow}
	}

	c.reg.SP -= 2
	sp := uint16(c.reg.SP)
	lo := c.mem.read(sp)
	hi := c.mem.read(sp + 1)
	return uint16(hi)<<8 | uint16(lo), nil
}
