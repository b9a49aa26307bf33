package chip8

import (
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Mnemonic returns the assembler name of the instruction word, or an empty
// string if the word is not a known instruction.
func Mnemonic(word uint16) string {
	opcodes := chip8cpu.Opcodes[int(word>>12)]
	for _, op := range opcodes {
		if op.Info.Mask&word == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name
		}
	}
	return ""
}
