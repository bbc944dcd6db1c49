package alert

import "github.com/gen2brain/beeep"

// Tone parameters: 1kHz for 500ms per beep.
const (
	beepFreq     = 1000.0
	beepDuration = 500
)

// SystemBeep returns an emit function that plays a system beep. Emission
// errors are swallowed; an inaudible alarm must not disturb the poll loop.
func SystemBeep() func() {
	return func() {
		_ = beeep.Beep(beepFreq, beepDuration)
	}
}
