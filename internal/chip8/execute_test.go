package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestStep_AddByteWraps(t *testing.T) {
	c := newTestMachine(t,
		0x7AFF, // ADD VA, 0xFF
		0x7AFF, // ADD VA, 0xFF
	)
	c.reg.V[0xA] = 0x01
	c.reg.V[FlagRegister] = 0x42
	run(t, c, 1)
	assert.Equal(t, byte(0x00), c.reg.V[0xA])
	run(t, c, 1)
	assert.Equal(t, byte(0xFF), c.reg.V[0xA])
	assert.Equal(t, byte(0x42), c.reg.V[FlagRegister])
}

func TestStep_Arithmetic(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		vx, vy byte
		want   byte
		flag   byte
	}{
		{"add overflow", 0x8124, 0xFF, 0x01, 0x00, 1},
		{"add no overflow", 0x8124, 0x01, 0x01, 0x02, 0},
		{"sub no borrow", 0x8125, 0x05, 0x03, 0x02, 1},
		{"sub borrow", 0x8125, 0x03, 0x05, 0xFE, 0},
		{"sub equal", 0x8125, 0x07, 0x07, 0x00, 1},
		{"shr lsb set", 0x8126, 0x03, 0xFF, 0x01, 1},
		{"shr lsb clear", 0x8126, 0x02, 0xFF, 0x01, 0},
		{"subn no borrow", 0x8127, 0x03, 0x05, 0x02, 1},
		{"subn borrow", 0x8127, 0x05, 0x03, 0xFE, 0},
		{"shl msb set", 0x812E, 0x81, 0x00, 0x02, 1},
		{"shl msb clear", 0x812E, 0x41, 0x00, 0x82, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestMachine(t, tt.opcode)
			c.reg.V[1] = tt.vx
			c.reg.V[2] = tt.vy
			c.reg.V[FlagRegister] = 0x55
			run(t, c, 1)
			assert.Equal(t, tt.want, c.reg.V[1])
			assert.Equal(t, tt.flag, c.reg.V[FlagRegister])
			assert.Equal(t, tt.vy, c.reg.V[2])
		})
	}
}

func TestStep_Logic(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		want   byte
	}{
		{"ld", 0x8120, 0x0F},
		{"or", 0x8121, 0x3F},
		{"and", 0x8122, 0x0C},
		{"xor", 0x8123, 0x33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestMachine(t, tt.opcode)
			c.reg.V[1] = 0x3C
			c.reg.V[2] = 0x0F
			c.reg.V[FlagRegister] = 0x77
			run(t, c, 1)
			assert.Equal(t, tt.want, c.reg.V[1])
			assert.Equal(t, byte(0x77), c.reg.V[FlagRegister])
		})
	}
}

func TestStep_FlagRegisterAsDestination(t *testing.T) {
	c := newTestMachine(t, 0x8F14) // ADD VF, V1
	c.reg.V[FlagRegister] = 0xFF
	c.reg.V[1] = 0x02
	run(t, c, 1)
	assert.Equal(t, byte(1), c.reg.V[FlagRegister])
}

func TestStep_Skips(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		vx, vy byte
		skip   bool
	}{
		{"se byte equal", 0x3142, 0x42, 0, true},
		{"se byte different", 0x3142, 0x41, 0, false},
		{"sne byte equal", 0x4142, 0x42, 0, false},
		{"sne byte different", 0x4142, 0x41, 0, true},
		{"se register equal", 0x5120, 0x10, 0x10, true},
		{"se register different", 0x5120, 0x10, 0x11, false},
		{"sne register equal", 0x9120, 0x10, 0x10, false},
		{"sne register different", 0x9120, 0x10, 0x11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestMachine(t, tt.opcode)
			c.reg.V[1] = tt.vx
			c.reg.V[2] = tt.vy
			run(t, c, 1)
			want := uint16(ProgramStart + 2)
			if tt.skip {
				want += 2
			}
			assert.Equal(t, want, c.reg.PC)
		})
	}
}

func TestStep_Jumps(t *testing.T) {
	c := newTestMachine(t, 0x1456) // JP 0x456
	run(t, c, 1)
	assert.Equal(t, uint16(0x456), c.reg.PC)

	c = newTestMachine(t, 0xB300) // JP V0, 0x300
	c.reg.V[0] = 0x12
	run(t, c, 1)
	assert.Equal(t, uint16(0x312), c.reg.PC)
}

func TestStep_CallReturn(t *testing.T) {
	c := newTestMachine(t,
		0x2206, // 0x200: CALL 0x206
		0x6101, // 0x202: LD V1, 0x01
		0x1202, // 0x204: JP 0x202
		0x00EE, // 0x206: RET
	)

	run(t, c, 1)
	assert.Equal(t, uint16(0x206), c.reg.PC)
	assert.Equal(t, uint8(2), c.reg.SP)
	mem := c.Memory()
	assert.Equal(t, []byte{0x02, 0x02}, mem[0:2])

	run(t, c, 1)
	assert.Equal(t, uint16(0x202), c.reg.PC)
	assert.Equal(t, uint8(0), c.reg.SP)
}

func TestStep_NestedCalls(t *testing.T) {
	c := newTestMachine(t,
		0x2204, // 0x200: CALL 0x204
		0x1200, // 0x202: JP 0x200
		0x2208, // 0x204: CALL 0x208
		0x00EE, // 0x206: RET
		0x00EE, // 0x208: RET
	)

	run(t, c, 2)
	assert.Equal(t, uint8(4), c.reg.SP)
	run(t, c, 1)
	assert.Equal(t, uint16(0x206), c.reg.PC)
	run(t, c, 1)
	assert.Equal(t, uint16(0x202), c.reg.PC)
	assert.Equal(t, uint8(0), c.reg.SP)
}

func TestStep_Index(t *testing.T) {
	c := newTestMachine(t,
		0xA123, // LD I, 0x123
		0xF31E, // ADD I, V3
	)
	c.reg.V[3] = 0xFF
	c.reg.V[FlagRegister] = 0x09
	run(t, c, 2)
	assert.Equal(t, uint16(0x222), c.reg.I)
	assert.Equal(t, byte(0x09), c.reg.V[FlagRegister])
}

func TestStep_Random(t *testing.T) {
	c := New(WithRandom(func() byte { return 0xAB }))
	assert.NoError(t, c.LoadBytes(program(0xC20F, 0xC3F0)))
	run(t, c, 2)
	assert.Equal(t, byte(0x0B), c.reg.V[2])
	assert.Equal(t, byte(0xA0), c.reg.V[3])
}

func TestStep_Timers(t *testing.T) {
	c := newTestMachine(t,
		0xF115, // LD DT, V1
		0xF218, // LD ST, V2
		0xF307, // LD V3, DT
	)
	c.reg.V[1] = 0x30
	c.reg.V[2] = 0x04
	run(t, c, 2)
	assert.Equal(t, uint8(0x30), c.reg.DT)
	assert.Equal(t, uint8(0x04), c.reg.ST)

	c.TickTimers()
	run(t, c, 1)
	assert.Equal(t, byte(0x2F), c.reg.V[3])
}

func TestStep_Font(t *testing.T) {
	c := newTestMachine(t, 0xF429) // LD F, V4
	c.reg.V[4] = 0x0A
	run(t, c, 1)
	assert.Equal(t, uint16(FontStart+0x0A*GlyphSize), c.reg.I)

	mem := c.Memory()
	assert.Equal(t, []byte{0xF0, 0x90, 0xF0, 0x90, 0x90}, mem[c.reg.I:c.reg.I+GlyphSize])
}

func TestStep_BCD(t *testing.T) {
	tests := []struct {
		value byte
		want  []byte
	}{
		{234, []byte{2, 3, 4}},
		{7, []byte{0, 0, 7}},
		{100, []byte{1, 0, 0}},
		{255, []byte{2, 5, 5}},
	}

	for _, tt := range tests {
		c := newTestMachine(t, 0xF533) // LD B, V5
		c.reg.V[5] = tt.value
		c.reg.I = 0x300
		run(t, c, 1)
		mem := c.Memory()
		assert.Equal(t, tt.want, mem[0x300:0x303])
		assert.Equal(t, uint16(0x300), c.reg.I)
	}
}

func TestStep_StoreLoadRegisters(t *testing.T) {
	c := newTestMachine(t,
		0xF355, // LD [I], V3
		0xA400, // LD I, 0x400
		0xF265, // LD V2, [I]
	)
	c.reg.V = [RegisterCount]byte{0x10, 0x11, 0x12, 0x13, 0x14}
	c.reg.I = 0x400
	run(t, c, 1)

	mem := c.Memory()
	assert.Equal(t, []byte{0x10, 0x11, 0x12, 0x13, 0x00}, mem[0x400:0x405])
	assert.Equal(t, uint16(0x404), c.reg.I)

	c.reg.V = [RegisterCount]byte{}
	run(t, c, 2)
	assert.Equal(t, byte(0x10), c.reg.V[0])
	assert.Equal(t, byte(0x11), c.reg.V[1])
	assert.Equal(t, byte(0x12), c.reg.V[2])
	assert.Equal(t, byte(0x00), c.reg.V[3])
	assert.Equal(t, uint16(0x403), c.reg.I)
}

func TestStep_ProtectedFont(t *testing.T) {
	c := newTestMachine(t, 0xF033) // LD B, V0
	c.reg.V[0] = 123
	c.reg.I = FontStart
	run(t, c, 1)
	mem := c.Memory()
	assert.Equal(t, font[:3], mem[FontStart:FontStart+3])

	c = New(WithStrict(true))
	assert.NoError(t, c.LoadBytes(program(0xF033)))
	c.reg.I = FontStart
	err := c.Step()
	assert.True(t, errors.Is(err, ErrProtectedMemory))
	assert.True(t, errors.Is(err, ErrMemoryFault))
}

func TestStep_UnknownOpcode(t *testing.T) {
	tests := []uint16{0x0123, 0x5121, 0x800F, 0x9128, 0xE1FF, 0xF1FF, 0x00E1}

	for _, word := range tests {
		c := newTestMachine(t, word)
		err := c.Step()
		var unknown *UnknownOpcodeError
		assert.True(t, errors.As(err, &unknown))
		assert.True(t, errors.Is(err, ErrUnknownOpcode))
		assert.Equal(t, word, unknown.Opcode.Word)
		assert.Equal(t, uint16(ProgramStart), unknown.Address)
	}
}

func TestStep_FetchFault(t *testing.T) {
	c := newTestMachine(t, 0x1100) // JP 0x100
	run(t, c, 1)
	err := c.Step()
	var fault *MemoryFaultError
	assert.True(t, errors.As(err, &fault))
	assert.Equal(t, uint16(0x100), fault.Address)
	assert.Equal(t, uint16(0x100), c.reg.PC)

	c = New(WithStrict(true))
	assert.NoError(t, c.LoadBytes(program(0xB200, 0x0000)))
	c.reg.V[0] = 1
	run(t, c, 1)
	err = c.Step()
	assert.True(t, errors.Is(err, ErrMemoryFault))
}

func TestStep_StackBounds(t *testing.T) {
	c := New(WithStrict(true))
	assert.NoError(t, c.LoadBytes(program(0x00EE)))
	err := c.Step()
	assert.True(t, errors.Is(err, ErrStackUnderflow))

	c = New(WithStrict(true))
	assert.NoError(t, c.LoadBytes(program(0x2200))) // CALL 0x200, recursing forever
	for range (StackEnd - 1) / 2 {
		assert.NoError(t, c.Step())
	}
	err = c.Step()
	assert.True(t, errors.Is(err, ErrStackOverflow))
}

func TestStep_StackPermissive(t *testing.T) {
	c := newTestMachine(t, 0x00EE)
	run(t, c, 1)
	assert.Equal(t, uint8(0xFE), c.reg.SP)
}

func TestFinished(t *testing.T) {
	c := newTestMachine(t, 0x6001, 0x6102)
	assert.False(t, c.Finished())
	run(t, c, 2)
	assert.True(t, c.Finished())
}
