//go:build !headless

package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// OtoBeeper outputs the tone using the oto audio library.
type OtoBeeper struct {
	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	tone    tone
	samples []float32
}

// NewOtoBeeper opens the audio device and starts a player that outputs
// silence until Beep is called.
func NewOtoBeeper() (*OtoBeeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	b := &OtoBeeper{
		ctx: ctx,
	}
	b.player = ctx.NewPlayer(b)
	b.player.Play()
	return b, nil
}

// Beep extends the currently playing tone by one tone duration.
func (b *OtoBeeper) Beep() {
	b.mu.Lock()
	b.tone.extend()
	b.mu.Unlock()
}

// Read implements io.Reader for the oto player.
func (b *OtoBeeper) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(p) / 4
	if cap(b.samples) < n {
		b.samples = make([]float32, n)
	}
	samples := b.samples[:n]
	b.tone.fill(samples)

	for i, sample := range samples {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(sample))
	}
	return n * 4, nil
}

// Close stops the player.
func (b *OtoBeeper) Close() error {
	return b.player.Close()
}

// New returns the oto beeper, or a muted beeper if mute is set.
func New(mute bool) (Beeper, error) {
	if mute {
		return Mute{}, nil
	}
	return NewOtoBeeper()
}
