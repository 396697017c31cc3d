// harmonic.go - Notes built from a fundamental and its octave partials

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

// HarmonicNote builds a "natural" note offset semitones above middle C: the
// fundamental blended 3:1 against an even mix of the octave above and the
// octave below.
func HarmonicNote(offset int, duration float64) (SampleBuffer, error) {
	hz := FrequencyFromMiddleC(offset)

	a, err := Tone(hz, duration, 1)
	if err != nil {
		return nil, err
	}
	octaves, err := octavePair(hz, duration)
	if err != nil {
		return nil, err
	}
	return Combine(a, octaves, HARMONIC_FUNDAMENTAL_WEIGHT, HARMONIC_OCTAVES_WEIGHT)
}

// SimpleNote builds the 440 Hz family note offset semitones above A4. It is
// the octave pair alone, without the fundamental.
func SimpleNote(offset int, duration float64) (SampleBuffer, error) {
	return octavePair(FrequencyFromA4(offset), duration)
}

// PureTone is a bare sine offset semitones above A4.
func PureTone(offset int, duration float64) (SampleBuffer, error) {
	return Tone(FrequencyFromA4(offset), duration, 1)
}

// octavePair mixes 2*hz and hz/2 at equal weight
func octavePair(hz, duration float64) (SampleBuffer, error) {
	hi, err := Tone(2*hz, duration, 1)
	if err != nil {
		return nil, err
	}
	lo, err := Tone(hz/2, duration, 1)
	if err != nil {
		return nil, err
	}
	return Combine(hi, lo, HARMONIC_HI_WEIGHT, HARMONIC_LO_WEIGHT)
}
