package chip8

import (
	"fmt"
	"io"
)

// DumpProgram writes a listing of all instruction words of the loaded program.
func (c *Chip8) DumpProgram(w io.Writer) error {
	for address := ProgramStart; address < c.mem.end; address += opcodeSize {
		word := uint16(c.mem.data[address])<<8 | uint16(c.mem.data[(address+1)&addressMask])
		if err := dumpLine(w, uint16(address), Decode(word)); err != nil {
			return err
		}
	}
	return nil
}

// DumpState writes the instruction at PC and the register file.
func (c *Chip8) DumpState(w io.Writer) error {
	pc := c.reg.PC
	word := uint16(c.mem.read(pc))<<8 | uint16(c.mem.read(pc+1))
	if err := dumpLine(w, pc, Decode(word)); err != nil {
		return err
	}

	for row := 0; row < RegisterCount; row += 8 {
		if _, err := io.WriteString(w, "\t"); err != nil {
			return err
		}
		for i := row; i < row+8; i++ {
			if _, err := fmt.Fprintf(w, "v%x: %02x ", i, c.reg.V[i]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\ti: %03X\n\tsp: %02X\n\tdt: %02X\n\tst: %02X\n\tstate: %s\n",
		c.reg.I, c.reg.SP, c.reg.DT, c.reg.ST, c.State())
	return err
}

func dumpLine(w io.Writer, address uint16, op Opcode) error {
	name := Mnemonic(op.Word)
	if name == "" {
		name = "?"
	}
	_, err := fmt.Fprintf(w, "0x%03X:\t%04X\t%-5s\t%s\n", address, op.Word, name, op.NibbleString())
	return err
}
