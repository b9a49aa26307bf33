package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		word    uint16
		nibbles [4]uint8
		address uint16
		byte    uint8
		nibble  uint8
	}{
		{"clear screen", 0x00E0, [4]uint8{0x0, 0x0, 0xE, 0x0}, 0x0E0, 0xE0, 0x0},
		{"jump", 0x1ABC, [4]uint8{0x1, 0xA, 0xB, 0xC}, 0xABC, 0xBC, 0xC},
		{"draw", 0xD125, [4]uint8{0xD, 0x1, 0x2, 0x5}, 0x125, 0x25, 0x5},
		{"all bits", 0xFFFF, [4]uint8{0xF, 0xF, 0xF, 0xF}, 0xFFF, 0xFF, 0xF},
		{"zero", 0x0000, [4]uint8{}, 0x000, 0x00, 0x0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := Decode(tt.word)
			assert.Equal(t, tt.word, op.Word)
			assert.Equal(t, tt.nibbles, op.Nibbles)
			assert.Equal(t, tt.address, op.Address)
			assert.Equal(t, tt.byte, op.Byte)
			assert.Equal(t, tt.nibble, op.Nibble)
			assert.Equal(t, tt.nibbles[1], op.X())
			assert.Equal(t, tt.nibbles[2], op.Y())
		})
	}
}

func TestOpcode_String(t *testing.T) {
	op := Decode(0xD125)
	assert.Equal(t, "D125", op.String())
	assert.Equal(t, "(D, 1, 2, 5)", op.NibbleString())
}
