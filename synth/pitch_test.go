package synth

import (
	"errors"
	"math"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		symbol string
		octave int
		want   int
	}{
		{"C", 4, 0},
		{"C#", 4, 1},
		{"A", 4, 9},
		{"B", 4, 11},
		{"B", 3, -1},
		{"C", 5, 12},
		{"F#", 3, -6},
		{"C", 0, -48},
		{"A#", 9, 70},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.symbol, tt.octave)
		if err != nil {
			t.Errorf("Resolve(%q, %d) returned error: %v", tt.symbol, tt.octave, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q, %d) = %d, want %d", tt.symbol, tt.octave, got, tt.want)
		}
	}
}

func TestResolve_UnknownSymbol(t *testing.T) {
	for _, symbol := range []string{"", "c", "c#", "Db", "H", "C##", " C", "E#4"} {
		_, err := Resolve(symbol, 4)
		if !errors.Is(err, ErrUnknownNoteSymbol) {
			t.Errorf("Resolve(%q, 4) error = %v, want ErrUnknownNoteSymbol", symbol, err)
		}
	}
}

func TestResolveFromA4(t *testing.T) {
	got, err := ResolveFromA4("A", 4)
	if err != nil {
		t.Fatalf("ResolveFromA4 returned error: %v", err)
	}
	if got != 0 {
		t.Errorf("ResolveFromA4(A, 4) = %d, want 0", got)
	}
	got, _ = ResolveFromA4("C", 4)
	if got != -9 {
		t.Errorf("ResolveFromA4(C, 4) = %d, want -9", got)
	}
	if _, err := ResolveFromA4("Bb", 4); !errors.Is(err, ErrUnknownNoteSymbol) {
		t.Errorf("ResolveFromA4(Bb) error = %v, want ErrUnknownNoteSymbol", err)
	}
}

// TestFrequency_OctaveDoubling checks both reference functions double
// every twelve semitones.
func TestFrequency_OctaveDoubling(t *testing.T) {
	funcs := map[string]func(int) float64{
		"middle C": FrequencyFromMiddleC,
		"A4":       FrequencyFromA4,
	}
	for name, freq := range funcs {
		for offset := -36; offset <= 36; offset++ {
			lo := freq(offset)
			hi := freq(offset + 12)
			if math.Abs(hi-2*lo) > 1e-9*hi {
				t.Errorf("%s: f(%d)=%v, f(%d)=%v, not an octave apart", name, offset, lo, offset+12, hi)
			}
		}
	}
}

func TestFrequency_A4OnBothReferences(t *testing.T) {
	offset, err := Resolve("A", 4)
	if err != nil {
		t.Fatalf("Resolve(A, 4) returned error: %v", err)
	}
	if offset != 9 {
		t.Fatalf("Resolve(A, 4) = %d, want 9", offset)
	}
	if f := FrequencyFromMiddleC(offset); math.Abs(f-440) > 0.01 {
		t.Errorf("FrequencyFromMiddleC(9) = %v, want 440 within 0.01", f)
	}

	a4, _ := ResolveFromA4("A", 4)
	if f := FrequencyFromA4(a4); f != 440 {
		t.Errorf("FrequencyFromA4(%d) = %v, want 440", a4, f)
	}

	// The same offset names different pitches on the two references
	if f := FrequencyFromA4(9); math.Abs(f-739.99) > 0.01 {
		t.Errorf("FrequencyFromA4(9) = %v, want ~739.99", f)
	}
}

func TestFrequency_MiddleC(t *testing.T) {
	if f := FrequencyFromMiddleC(0); f != MIDDLE_C_HZ {
		t.Errorf("FrequencyFromMiddleC(0) = %v, want %v", f, MIDDLE_C_HZ)
	}
}

func TestNoteName_RoundTrip(t *testing.T) {
	for offset := -60; offset <= 60; offset++ {
		symbol, octave := NoteName(offset)
		got, err := Resolve(symbol, octave)
		if err != nil {
			t.Fatalf("NoteName(%d) = %q %d, which does not resolve: %v", offset, symbol, octave, err)
		}
		if got != offset {
			t.Errorf("Resolve(NoteName(%d)) = %d", offset, got)
		}
	}
}

func TestNoteNames_ReturnsCopy(t *testing.T) {
	names := NoteNames()
	if len(names) != 12 {
		t.Fatalf("NoteNames() has %d entries, want 12", len(names))
	}
	names[0] = "X"
	if _, err := Resolve("C", 4); err != nil {
		t.Errorf("mutating NoteNames() result changed the table: %v", err)
	}
	if NoteNames()[0] != "C" {
		t.Error("NoteNames() returned shared storage")
	}
}
