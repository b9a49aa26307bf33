package chip8

import (
	"github.com/retroenv/retrogolib/log"
)

// operation is an entry of the dispatch table. An instruction word matches
// when word&mask == value.
type operation struct {
	mask  uint16
	value uint16
	exec  func(c *Chip8, op Opcode) error
}

// operations maps the first nibble of an instruction word to the operations
// that share it.
var operations = [16][]operation{
	0x0: {
		{mask: 0xFFFF, value: 0x00E0, exec: (*Chip8).cls},
		{mask: 0xFFFF, value: 0x00EE, exec: (*Chip8).ret},
	},
	0x1: {{mask: 0xF000, value: 0x1000, exec: (*Chip8).jp}},
	0x2: {{mask: 0xF000, value: 0x2000, exec: (*Chip8).call}},
	0x3: {{mask: 0xF000, value: 0x3000, exec: (*Chip8).seByte}},
	0x4: {{mask: 0xF000, value: 0x4000, exec: (*Chip8).sneByte}},
	0x5: {{mask: 0xF00F, value: 0x5000, exec: (*Chip8).seRegister}},
	0x6: {{mask: 0xF000, value: 0x6000, exec: (*Chip8).ldByte}},
	0x7: {{mask: 0xF000, value: 0x7000, exec: (*Chip8).addByte}},
	0x8: {
		{mask: 0xF00F, value: 0x8000, exec: (*Chip8).ldRegister},
		{mask: 0xF00F, value: 0x8001, exec: (*Chip8).or},
		{mask: 0xF00F, value: 0x8002, exec: (*Chip8).and},
		{mask: 0xF00F, value: 0x8003, exec: (*Chip8).xor},
		{mask: 0xF00F, value: 0x8004, exec: (*Chip8).addRegister},
		{mask: 0xF00F, value: 0x8005, exec: (*Chip8).sub},
		{mask: 0xF00F, value: 0x8006, exec: (*Chip8).shr},
		{mask: 0xF00F, value: 0x8007, exec: (*Chip8).subn},
		{mask: 0xF00F, value: 0x800E, exec: (*Chip8).shl},
	},
	0x9: {{mask: 0xF00F, value: 0x9000, exec: (*Chip8).sneRegister}},
	0xA: {{mask: 0xF000, value: 0xA000, exec: (*Chip8).ldIndex}},
	0xB: {{mask: 0xF000, value: 0xB000, exec: (*Chip8).jpOffset}},
	0xC: {{mask: 0xF000, value: 0xC000, exec: (*Chip8).rnd}},
	0xD: {{mask: 0xF000, value: 0xD000, exec: (*Chip8).drw}},
	0xE: {
		{mask: 0xF0FF, value: 0xE09E, exec: (*Chip8).skp},
		{mask: 0xF0FF, value: 0xE0A1, exec: (*Chip8).sknp},
	},
	0xF: {
		{mask: 0xF0FF, value: 0xF007, exec: (*Chip8).ldDelay},
		{mask: 0xF0FF, value: 0xF00A, exec: (*Chip8).ldKey},
		{mask: 0xF0FF, value: 0xF015, exec: (*Chip8).setDelay},
		{mask: 0xF0FF, value: 0xF018, exec: (*Chip8).setSound},
		{mask: 0xF0FF, value: 0xF01E, exec: (*Chip8).addIndex},
		{mask: 0xF0FF, value: 0xF029, exec: (*Chip8).ldFont},
		{mask: 0xF0FF, value: 0xF033, exec: (*Chip8).bcd},
		{mask: 0xF0FF, value: 0xF055, exec: (*Chip8).storeRegisters},
		{mask: 0xF0FF, value: 0xF065, exec: (*Chip8).loadRegisters},
	},
}

// Step executes a single instruction. While the machine awaits a key press
// no instruction is fetched and Step returns nil without changing any state.
func (c *Chip8) Step() error {
	c.screenUpdated = false
	if c.waiting {
		return nil
	}

	pc := c.reg.PC
	word, err := c.mem.fetch(pc, c.strict)
	if err != nil {
		return err
	}
	c.reg.PC += opcodeSize

	op := Decode(word)
	if c.logger != nil {
		c.logger.Debug("Executing",
			log.Hex("address", pc),
			log.Hex("opcode", word),
			log.String("instruction", Mnemonic(word)))
	}

	exec := lookup(word)
	if exec == nil {
		return &UnknownOpcodeError{Address: pc, Opcode: op}
	}
	return exec(c, op)
}

func lookup(word uint16) func(c *Chip8, op Opcode) error {
	for _, op := range operations[word>>12] {
		if word&op.mask == op.value {
			return op.exec
		}
	}
	return nil
}

func (c *Chip8) skipIf(condition bool) {
	if condition {
		c.reg.PC += opcodeSize
	}
}

func (c *Chip8) cls(Opcode) error {
	clear(c.screen[:])
	c.screenUpdated = true
	return nil
}

func (c *Chip8) ret(Opcode) error {
	address, err := c.pop()
	if err != nil {
		return err
	}
	c.reg.PC = address
	return nil
}

func (c *Chip8) jp(op Opcode) error {
	c.reg.PC = op.Address
	return nil
}

func (c *Chip8) call(op Opcode) error {
	if err := c.push(c.reg.PC); err != nil {
		return err
	}
	c.reg.PC = op.Address
	return nil
}

func (c *Chip8) seByte(op Opcode) error {
	c.skipIf(c.reg.V[op.X()] == op.Byte)
	return nil
}

func (c *Chip8) sneByte(op Opcode) error {
	c.skipIf(c.reg.V[op.X()] != op.Byte)
	return nil
}

func (c *Chip8) seRegister(op Opcode) error {
	c.skipIf(c.reg.V[op.X()] == c.reg.V[op.Y()])
	return nil
}

func (c *Chip8) sneRegister(op Opcode) error {
	c.skipIf(c.reg.V[op.X()] != c.reg.V[op.Y()])
	return nil
}

func (c *Chip8) ldByte(op Opcode) error {
	c.reg.V[op.X()] = op.Byte
	return nil
}

func (c *Chip8) addByte(op Opcode) error {
	c.reg.V[op.X()] += op.Byte
	return nil
}

func (c *Chip8) ldRegister(op Opcode) error {
	c.reg.V[op.X()] = c.reg.V[op.Y()]
	return nil
}

func (c *Chip8) or(op Opcode) error {
	c.reg.V[op.X()] |= c.reg.V[op.Y()]
	return nil
}

func (c *Chip8) and(op Opcode) error {
	c.reg.V[op.X()] &= c.reg.V[op.Y()]
	return nil
}

func (c *Chip8) xor(op Opcode) error {
	c.reg.V[op.X()] ^= c.reg.V[op.Y()]
	return nil
}

// The flag is written after the result, so VF as destination holds the flag.

func (c *Chip8) addRegister(op Opcode) error {
	vx, vy := c.reg.V[op.X()], c.reg.V[op.Y()]
	sum := uint16(vx) + uint16(vy)
	c.reg.V[op.X()] = byte(sum)
	c.reg.V[FlagRegister] = byte(sum >> 8)
	return nil
}

func (c *Chip8) sub(op Opcode) error {
	vx, vy := c.reg.V[op.X()], c.reg.V[op.Y()]
	c.reg.V[op.X()] = vx - vy
	c.reg.V[FlagRegister] = boolToByte(vx >= vy)
	return nil
}

func (c *Chip8) subn(op Opcode) error {
	vx, vy := c.reg.V[op.X()], c.reg.V[op.Y()]
	c.reg.V[op.X()] = vy - vx
	c.reg.V[FlagRegister] = boolToByte(vy >= vx)
	return nil
}

// shr and shl only use Vx, Vy is ignored.
func (c *Chip8) shr(op Opcode) error {
	vx := c.reg.V[op.X()]
	c.reg.V[op.X()] = vx >> 1
	c.reg.V[FlagRegister] = vx & 0x01
	return nil
}

func (c *Chip8) shl(op Opcode) error {
	vx := c.reg.V[op.X()]
	c.reg.V[op.X()] = vx << 1
	c.reg.V[FlagRegister] = vx >> 7
	return nil
}

func (c *Chip8) ldIndex(op Opcode) error {
	c.reg.I = op.Address
	return nil
}

func (c *Chip8) jpOffset(op Opcode) error {
	c.reg.PC = op.Address + uint16(c.reg.V[0])
	return nil
}

func (c *Chip8) rnd(op Opcode) error {
	c.reg.V[op.X()] = c.random() & op.Byte
	return nil
}

func (c *Chip8) drw(op Opcode) error {
	c.draw(c.reg.V[op.X()], c.reg.V[op.Y()], op.Nibble)
	return nil
}

func (c *Chip8) skp(op Opcode) error {
	c.skipIf(c.keys[c.reg.V[op.X()]&0x0F])
	return nil
}

func (c *Chip8) sknp(op Opcode) error {
	c.skipIf(!c.keys[c.reg.V[op.X()]&0x0F])
	return nil
}

func (c *Chip8) ldDelay(op Opcode) error {
	c.reg.V[op.X()] = c.reg.DT
	return nil
}

func (c *Chip8) ldKey(op Opcode) error {
	c.awaitKey(op.X())
	return nil
}

func (c *Chip8) setDelay(op Opcode) error {
	c.reg.DT = c.reg.V[op.X()]
	return nil
}

func (c *Chip8) setSound(op Opcode) error {
	c.reg.ST = c.reg.V[op.X()]
	return nil
}

func (c *Chip8) addIndex(op Opcode) error {
	c.reg.I += uint16(c.reg.V[op.X()])
	return nil
}

func (c *Chip8) ldFont(op Opcode) error {
	digit := c.reg.V[op.X()] & 0x0F
	c.reg.I = FontStart + uint16(digit)*GlyphSize
	return nil
}

func (c *Chip8) bcd(op Opcode) error {
	vx := c.reg.V[op.X()]
	digits := [3]byte{vx / 100, (vx / 10) % 10, vx % 10}
	for i, digit := range digits {
		if err := c.writeMemory(c.reg.I+uint16(i), digit); err != nil {
			return err
		}
	}
	return nil
}

func (c *Chip8) storeRegisters(op Opcode) error {
	x := uint16(op.X())
	for i := uint16(0); i <= x; i++ {
		if err := c.writeMemory(c.reg.I+i, c.reg.V[i]); err != nil {
			return err
		}
	}
	c.reg.I += x + 1
	return nil
}

func (c *Chip8) loadRegisters(op Opcode) error {
	x := uint16(op.X())
	for i := uint16(0); i <= x; i++ {
		c.reg.V[i] = c.mem.read(c.reg.I + i)
	}
	c.reg.I += x + 1
	return nil
}

// writeMemory stores a byte for an instruction. Writes to the font table are
// dropped, or reported as fault in strict mode.
func (c *Chip8) writeMemory(address uint16, value byte) error {
	if c.mem.write(address, value) || !c.strict {
		return nil
	}
	return &MemoryFaultError{
		Address: address & addressMask,
		Access:  AccessWrite,
		Err:     ErrProtectedMemory,
	}
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
