// piano.go - Struck-string approximation: decaying partials plus cubic saturation

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package synth

import (
	"fmt"
	"math"
)

// DecayingTone is Tone with an exponential envelope and an output divisor.
//
// The envelope exponent grows with the phase of the fundamental, so higher
// notes die away sooner in absolute time. ampScale divides the output.
func DecayingTone(hz, duration, phaseMul, ampScale float64) (SampleBuffer, error) {
	n, err := sampleSpan(duration)
	if err != nil {
		return nil, err
	}
	step := phaseStep(hz)
	buf := make(SampleBuffer, n+1)
	for i := range buf {
		phase := step * float64(i)
		buf[i] = math.Sin(phaseMul*phase) * math.Exp(-DECAY_RATE*phase) / ampScale
	}
	return buf, nil
}

// StackOvertone is one step of the overtone fold. Overtone index i sounds
// the (i+2)-th partial at 1/2^(i+1) level and blends it in at a fixed 10%.
func StackOvertone(root SampleBuffer, hz, duration float64, index int) (SampleBuffer, error) {
	partial, err := DecayingTone(hz, duration, float64(index+2), math.Pow(2, float64(index+1)))
	if err != nil {
		return nil, err
	}
	return Combine(root, partial, OVERTONE_ROOT_WEIGHT, OVERTONE_BLEND_WEIGHT)
}

// Saturate blends a buffer 50/50 with its cube, adding odd harmonics.
func Saturate(root SampleBuffer) (SampleBuffer, error) {
	return Combine(root, Cube(root), SATURATION_DRY_WEIGHT, SATURATION_CUBE_WEIGHT)
}

// PianoNote builds a piano-like note offset semitones above middle C.
//
// overtones has no upper bound, but every added partial is scaled down by
// another factor of two, so large counts only add rounding noise.
func PianoNote(offset int, duration float64, overtones int) (SampleBuffer, error) {
	if overtones < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOvertones, overtones)
	}
	hz := FrequencyFromMiddleC(offset)

	root, err := DecayingTone(hz, duration, 1, 1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < overtones; i++ {
		if root, err = StackOvertone(root, hz, duration, i); err != nil {
			return nil, err
		}
	}
	return Saturate(root)
}
