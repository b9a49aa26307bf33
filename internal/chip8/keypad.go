package chip8

// SetKey sets the state of a single key, the key index is used modulo 16.
func (c *Chip8) SetKey(key uint8, down bool) {
	c.keys[key&0x0F] = down
}

// SetKeys replaces the state of all keys.
func (c *Chip8) SetKeys(keys [KeyCount]bool) {
	c.keys = keys
}

// Keys returns the state of all keys.
func (c *Chip8) Keys() [KeyCount]bool {
	return c.keys
}

// PressedKey returns the lowest index of all keys that are down.
func (c *Chip8) PressedKey() (uint8, bool) {
	for i, down := range c.keys {
		if down {
			return uint8(i), true
		}
	}
	return 0, false
}

// WaitRegister returns the index of the register that receives the next
// delivered key, ok is false if the machine is not awaiting a key.
func (c *Chip8) WaitRegister() (register uint8, ok bool) {
	return c.waitRegister, c.waiting
}

// DeliverKey resolves a key wait by writing the key index to the waiting
// register. It returns false and changes nothing if no wait is active.
func (c *Chip8) DeliverKey(key uint8) bool {
	if !c.waiting {
		return false
	}

	c.reg.V[c.waitRegister] = key & 0x0F
	c.waiting = false
	c.waitRegister = 0
	return true
}

// awaitKey clears all key states and suspends execution until a key is
// delivered to register x.
func (c *Chip8) awaitKey(x uint8) {
	clear(c.keys[:])
	c.waiting = true
	c.waitRegister = x
}
