package chip8

import "fmt"

// Opcode is a decoded CHIP-8 instruction word.
type Opcode struct {
	Word    uint16   // raw big-endian instruction word
	Nibbles [4]uint8 // the four 4-bit fields, most significant first
	Address uint16   // nnn, the lowest 12 bits
	Byte    uint8    // kk, the lowest 8 bits
	Nibble  uint8    // n, the lowest 4 bits
}

// Decode splits an instruction word into its nibbles and operand views.
func Decode(word uint16) Opcode {
	return Opcode{
		Word: word,
		Nibbles: [4]uint8{
			uint8(word >> 12),
			uint8(word>>8) & 0x0F,
			uint8(word>>4) & 0x0F,
			uint8(word) & 0x0F,
		},
		Address: word & 0x0FFF,
		Byte:    uint8(word),
		Nibble:  uint8(word) & 0x0F,
	}
}

// X returns the index of the Vx register operand.
func (o Opcode) X() uint8 {
	return o.Nibbles[1]
}

// Y returns the index of the Vy register operand.
func (o Opcode) Y() uint8 {
	return o.Nibbles[2]
}

// NibbleString returns the decoded nibble pattern, for example "(D, 1, 2, 5)".
func (o Opcode) NibbleString() string {
	return fmt.Sprintf("(%X, %X, %X, %X)", o.Nibbles[0], o.Nibbles[1], o.Nibbles[2], o.Nibbles[3])
}

func (o Opcode) String() string {
	return fmt.Sprintf("%04X", o.Word)
}
