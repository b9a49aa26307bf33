// Package chip8 implements the CHIP-8 virtual machine.
//
// # Memory Layout
//
// The machine has 4KB of memory (0x000-0xFFF):
//   - 0x000-0x0FE: stack of return addresses, addressed by SP
//   - FontStart-FontEnd: built-in hexadecimal digit sprites, 16 glyphs of 5 bytes
//   - ProgramStart-0xFFF: the loaded ROM, followed by free memory
//
// # Execution
//
// The host drives two independent clocks. Step executes exactly one
// instruction and is called at the chosen instruction rate. TickTimers
// decrements the delay and sound timers and is called at 60 Hz. After each
// call the host can read the framebuffer returned by Screen and the updated
// flag returned by ScreenUpdated.
//
// # Key Wait
//
// The Fx0A instruction suspends the machine in the AwaitingKey state. While
// suspended, Step is a no-op. The host resolves the wait by calling
// DeliverKey with the index of a pressed key.
//
// # Errors
//
// Step returns a *MemoryFaultError for fetches outside of the loaded program
// and an *UnknownOpcodeError for words that do not decode to a CHIP-8
// instruction. Both leave the machine in an undefined state; the caller
// decides whether to stop or reboot.
//
// Fetches from odd addresses are accepted unless the machine was created
// WithStrict(true), which also faults on them.
//
// # Usage Example
//
//	emu := chip8.New(chip8.WithLogger(logger))
//	if err := emu.LoadFile("pong.ch8"); err != nil {
//		return fmt.Errorf("loading ROM: %w", err)
//	}
//	for !emu.Finished() {
//		if err := emu.Step(); err != nil {
//			return err
//		}
//	}
package chip8
