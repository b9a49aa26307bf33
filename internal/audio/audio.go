// Package audio outputs the tone that is requested by the sound timer.
package audio

import (
	"math"
)

// Tone settings.
const (
	SampleRate    = 44100
	ToneFrequency = 815 // Hz
	ToneDuration  = 12  // milliseconds per beep
	ToneVolume    = 0.3
)

// Beeper plays a short tone for every call to Beep.
type Beeper interface {
	Beep()
	Close() error
}

// Mute is a Beeper that does not output anything.
type Mute struct{}

// Beep does nothing.
func (Mute) Beep() {}

// Close does nothing.
func (Mute) Close() error {
	return nil
}

// tone generates the samples of a sine wave with a fixed amount of
// remaining samples, silence is returned once they are used up.
type tone struct {
	phase     float64
	remaining int
}

func (t *tone) extend() {
	t.remaining += SampleRate * ToneDuration / 1000
}

func (t *tone) fill(samples []float32) {
	step := 2 * math.Pi * ToneFrequency / SampleRate
	for i := range samples {
		if t.remaining <= 0 {
			samples[i] = 0
			continue
		}
		samples[i] = float32(math.Sin(t.phase) * ToneVolume)
		t.phase = math.Mod(t.phase+step, 2*math.Pi)
		t.remaining--
	}
}
