package chip8

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// State is the execution state of the machine.
type State int

// Machine states.
const (
	Running State = iota
	AwaitingKey
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingKey:
		return "awaiting key"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Registers is a snapshot of the register file.
type Registers struct {
	V  [RegisterCount]byte // general purpose registers, VF doubles as flag
	I  uint16              // index register
	PC uint16              // program counter
	SP uint8               // stack pointer, counts bytes pushed
	DT uint8               // delay timer
	ST uint8               // sound timer
}

// Chip8 is a CHIP-8 virtual machine. It is not safe for concurrent use.
type Chip8 struct {
	logger *log.Logger
	strict bool
	random func() byte

	mem *memory
	reg Registers

	keys         [KeyCount]bool
	waiting      bool
	waitRegister uint8

	screen        [ScreenWidth * ScreenHeight]byte
	screenUpdated bool
}

// Option configures a Chip8 at construction.
type Option func(*Chip8)

// WithLogger enables debug logging of every executed instruction.
func WithLogger(logger *log.Logger) Option {
	return func(c *Chip8) {
		c.logger = logger
	}
}

// WithStrict enables strict bounds checking. Stack overflows and underflows,
// writes to the font table and misaligned fetches are reported as errors
// instead of being tolerated.
func WithStrict(strict bool) Option {
	return func(c *Chip8) {
		c.strict = strict
	}
}

// WithRandom sets the source of random bytes used by the Cxkk instruction.
func WithRandom(random func() byte) Option {
	return func(c *Chip8) {
		c.random = random
	}
}

// New returns a new machine with the font loaded, all other state zeroed
// and the program counter at ProgramStart.
func New(options ...Option) *Chip8 {
	c := &Chip8{
		random: func() byte {
			return byte(rand.UintN(256))
		},
		mem: newMemory(),
	}
	c.reg.PC = ProgramStart

	for _, option := range options {
		option(c)
	}
	return c
}

// Load copies a ROM from the reader into program memory.
func (c *Chip8) Load(r io.Reader) error {
	n, err := c.mem.load(r)
	if err != nil {
		return err
	}
	if c.logger != nil {
		c.logger.Debug("ROM loaded",
			log.Int("size", n),
			log.Hex("end", c.mem.end))
	}
	return nil
}

// LoadBytes copies the ROM data into program memory.
func (c *Chip8) LoadBytes(data []byte) error {
	return c.Load(bytes.NewReader(data))
}

// LoadFile reads the ROM file at the given path into program memory.
func (c *Chip8) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening ROM file '%s': %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := c.Load(file); err != nil {
		return fmt.Errorf("loading ROM file '%s': %w", path, err)
	}
	return nil
}

// Reboot resets the machine to its initial state while keeping the loaded
// program. Program bytes that were overwritten at runtime are not restored.
func (c *Chip8) Reboot() {
	c.reg = Registers{PC: ProgramStart}

	clear(c.keys[:])
	c.waiting = false
	c.waitRegister = 0
	clear(c.screen[:])
	c.screenUpdated = false

	c.mem.reset()
}

// Finished returns whether the program counter reached the end of the loaded program.
func (c *Chip8) Finished() bool {
	return int(c.reg.PC) == c.mem.end
}

// State returns the execution state of the machine.
func (c *Chip8) State() State {
	if c.waiting {
		return AwaitingKey
	}
	return Running
}

// Registers returns a snapshot of the register file.
func (c *Chip8) Registers() Registers {
	return c.reg
}

// ProgramEnd returns the first address after the loaded program.
func (c *Chip8) ProgramEnd() uint16 {
	return uint16(c.mem.end)
}

// Memory returns a copy of the memory contents.
func (c *Chip8) Memory() [MemorySize]byte {
	return c.mem.data
}

// Screen returns the framebuffer in row-major order, one byte per pixel.
// The returned slice is owned by the machine and must not be modified.
func (c *Chip8) Screen() []byte {
	return c.screen[:]
}

// ScreenUpdated returns whether the last executed instruction changed the framebuffer.
func (c *Chip8) ScreenUpdated() bool {
	return c.screenUpdated
}
