// pitch.go - Note names, semitone offsets and the two frequency references

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

// noteNames is the chromatic order of the recognised symbols
var noteNames = [SEMITONES_PER_OCTAVE]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// noteSemitones maps a symbol to its index within the octave. Read-only
// after init.
var noteSemitones = func() map[string]int {
	m := make(map[string]int, len(noteNames))
	for i, name := range noteNames {
		m[name] = i
	}
	return m
}()

// NoteNames returns the twelve recognised symbols in chromatic order.
func NoteNames() []string {
	out := make([]string, len(noteNames))
	copy(out, noteNames[:])
	return out
}

// Resolve converts a note symbol and octave into semitones above middle C.
// Symbols are matched exactly: "C#" is valid, "c#" and "Db" are not.
func Resolve(symbol string, octave int) (int, error) {
	idx, ok := noteSemitones[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNoteSymbol, symbol)
	}
	return idx + (octave-REFERENCE_OCTAVE)*SEMITONES_PER_OCTAVE, nil
}

// ResolveFromA4 converts a note symbol and octave into semitones above A4,
// the offset expected by FrequencyFromA4.
func ResolveFromA4(symbol string, octave int) (int, error) {
	offset, err := Resolve(symbol, octave)
	if err != nil {
		return 0, err
	}
	return offset - A4_FROM_MIDDLE_C, nil
}

// NoteName is the inverse of Resolve.
func NoteName(offset int) (string, int) {
	octave := floorDiv(offset, SEMITONES_PER_OCTAVE)
	idx := offset - octave*SEMITONES_PER_OCTAVE
	return noteNames[idx], octave + REFERENCE_OCTAVE
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FrequencyFromMiddleC returns the equal-temperament frequency of a note
// offset semitones above middle C. Used by the harmonic and piano notes.
func FrequencyFromMiddleC(offset int) float64 {
	return MIDDLE_C_HZ * math.Pow(2, float64(offset)/SEMITONES_PER_OCTAVE)
}

// FrequencyFromA4 returns the equal-temperament frequency of a note offset
// semitones above A4. Used only by the simple single-tone family; the two
// families are never mixed in one buffer.
func FrequencyFromA4(offset int) float64 {
	return A4_HZ * math.Pow(2, float64(offset)/SEMITONES_PER_OCTAVE)
}
