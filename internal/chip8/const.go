package chip8

// Memory layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// ProgramStart is the address that ROMs are loaded to and execution starts at.
	ProgramStart = 0x200

	// MaxProgramSize is the maximum size of a ROM in bytes.
	MaxProgramSize = MemorySize - ProgramStart

	// StackStart is the address of the first byte of the stack region.
	StackStart = 0x000

	// StackEnd is the first address after the stack region, it is shared
	// with the first byte of the font table.
	StackEnd = 0x0FF

	// FontStart is the address of the first glyph of the built-in font.
	FontStart = 0x0FF

	// FontEnd is the first address after the built-in font.
	FontEnd = FontStart + 16*GlyphSize

	// GlyphSize is the size of a single font glyph in bytes.
	GlyphSize = 5

	addressMask = MemorySize - 1
	opcodeSize  = 2
)

// Display constants.
const (
	ScreenWidth  = 64
	ScreenHeight = 32

	// PixelOn is the framebuffer value of a set pixel, unset pixels are 0.
	PixelOn = 0xFF

	spriteWidth = 8
)

// Register file constants.
const (
	RegisterCount = 16
	KeyCount      = 16

	// FlagRegister is the index of VF, the carry, borrow and collision flag.
	FlagRegister = 0xF
)

var font = [...]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
