package chip8

import (
	"errors"
	"fmt"
	"io"
)

// memory is the 4KB address space of the machine with the font table baked in.
type memory struct {
	data [MemorySize]byte
	end  int // first address after the loaded program
}

func newMemory() *memory {
	m := &memory{
		end: ProgramStart,
	}
	copy(m.data[FontStart:FontEnd], font[:])
	return m
}

// load copies the ROM from the reader to the program region and returns the
// number of bytes read.
func (m *memory) load(r io.Reader) (int, error) {
	var buf [MaxProgramSize + 1]byte
	n, err := io.ReadFull(r, buf[:])
	switch {
	case err == nil:
		return 0, fmt.Errorf("%w: more than %d bytes", ErrROMTooLarge, MaxProgramSize)
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
	default:
		return 0, fmt.Errorf("reading ROM: %w", err)
	}

	program := m.data[ProgramStart:]
	copy(program, buf[:n])
	clear(program[n:])
	m.end = ProgramStart + n
	return n, nil
}

// reset zeroes the stack and all memory after the loaded program.
func (m *memory) reset() {
	clear(m.data[StackStart:StackEnd])
	clear(m.data[m.end:])
}

// fetch reads the big-endian instruction word at the given address.
func (m *memory) fetch(address uint16, aligned bool) (uint16, error) {
	if int(address) < ProgramStart || int(address) >= m.end {
		return 0, &MemoryFaultError{Address: address, Access: AccessFetch}
	}
	if aligned && address%opcodeSize != 0 {
		return 0, &MemoryFaultError{Address: address, Access: AccessFetch}
	}
	hi := m.data[address]
	lo := m.data[(int(address)+1)&addressMask]
	return uint16(hi)<<8 | uint16(lo), nil
}

// read returns the byte at the address, only the lowest 12 bits are used.
func (m *memory) read(address uint16) byte {
	return m.data[address&addressMask]
}

// write stores a byte, only the lowest 12 bits of the address are used.
// Writes to the font table are rejected and reported as false.
func (m *memory) write(address uint16, value byte) bool {
	address &= addressMask
	if isFontAddress(address) {
		return false
	}
	m.data[address] = value
	return true
}

func isFontAddress(address uint16) bool {
	return address >= FontStart && address < FontEnd
}
