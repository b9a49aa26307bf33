package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// program assembles instruction words into ROM bytes.
func program(words ...uint16) []byte {
	data := make([]byte, 0, len(words)*2)
	for _, w := range words {
		data = append(data, byte(w>>8), byte(w))
	}
	return data
}

// newTestMachine returns a machine with the given instruction words loaded.
func newTestMachine(t *testing.T, words ...uint16) *Chip8 {
	t.Helper()
	c := New()
	assert.NoError(t, c.LoadBytes(program(words...)))
	return c
}

// run executes the given number of instructions.
func run(t *testing.T, c *Chip8, steps int) {
	t.Helper()
	for range steps {
		assert.NoError(t, c.Step())
	}
}
