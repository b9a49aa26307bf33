//go:build headless

package audio

// New returns a muted beeper, audio output is not available in headless builds.
func New(bool) (Beeper, error) {
	return Mute{}, nil
}
