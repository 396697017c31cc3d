// tone.go - Sample buffers and sine tone generation

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

// SampleBuffer is a mono run of amplitude samples at SAMPLE_RATE.
// Builders always return a freshly allocated buffer; nothing in this
// package writes into a buffer it did not allocate.
type SampleBuffer []float64

// Float32 converts the buffer for float32 audio backends.
func (b SampleBuffer) Float32() []float32 {
	out := make([]float32, len(b))
	for i, v := range b {
		out[i] = float32(v)
	}
	return out
}

// Seconds returns the playing time of the buffer.
func (b SampleBuffer) Seconds() float64 {
	return float64(len(b)) / SAMPLE_RATE
}

// SampleCount returns the buffer length for a tone of the given duration:
// floor(SAMPLE_RATE * duration) + 1.
func SampleCount(duration float64) (int, error) {
	n, err := sampleSpan(duration)
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

// sampleSpan returns floor(SAMPLE_RATE * seconds), the N of the N+1 sample
// rule. Negative or NaN durations are rejected.
func sampleSpan(seconds float64) (int, error) {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("%w: %v seconds", ErrInvalidDuration, seconds)
	}
	return int(math.Floor(SAMPLE_RATE * seconds)), nil
}

// phaseStep is the per-sample phase increment of a tone at hz
func phaseStep(hz float64) float64 {
	return 2 * math.Pi * hz / SAMPLE_RATE
}

// Tone generates a sine wave at hz lasting duration seconds.
//
// phaseMul multiplies the phase argument, not the output level: passing k
// yields the phase-accelerated sine used for the k-th partial.
func Tone(hz, duration, phaseMul float64) (SampleBuffer, error) {
	n, err := sampleSpan(duration)
	if err != nil {
		return nil, err
	}
	step := phaseStep(hz)
	buf := make(SampleBuffer, n+1)
	for i := range buf {
		buf[i] = math.Sin(phaseMul * step * float64(i))
	}
	return buf, nil
}

// Silence returns an all-zero buffer with the same length rule as Tone.
func Silence(duration float64) (SampleBuffer, error) {
	n, err := SampleCount(duration)
	if err != nil {
		return nil, err
	}
	return make(SampleBuffer, n), nil
}
