package synth

import (
	"errors"
	"math"
	"testing"
)

func TestPianoNote_Idempotent(t *testing.T) {
	a, err := PianoNote(3, 0.5, 4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := PianoNote(3, 0.5, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

// TestPianoNote_FoldSteps rebuilds a two-overtone note one step at a time.
func TestPianoNote_FoldSteps(t *testing.T) {
	const offset, duration = -5, 0.25
	hz := FrequencyFromMiddleC(offset)

	root, err := DecayingTone(hz, duration, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if root, err = StackOvertone(root, hz, duration, i); err != nil {
			t.Fatal(err)
		}
	}
	want, err := Saturate(root)
	if err != nil {
		t.Fatal(err)
	}

	got, err := PianoNote(offset, duration, 2)
	if err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStackOvertone_Weights(t *testing.T) {
	const hz, duration = 300.0, 0.05
	root, _ := DecayingTone(hz, duration, 1, 1)
	// index 1 sounds the third partial at a quarter level
	partial, _ := DecayingTone(hz, duration, 3, 4)

	got, err := StackOvertone(root, hz, duration, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := range got {
		if want := root[i]*0.9 + partial[i]*0.1; got[i] != want {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want)
		}
	}

	if _, err := StackOvertone(root[:10], hz, duration, 0); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short root error = %v, want ErrLengthMismatch", err)
	}
}

func TestSaturate(t *testing.T) {
	got, err := Saturate(SampleBuffer{-1, -0.5, 0, 0.5, 1})
	if err != nil {
		t.Fatal(err)
	}
	want := SampleBuffer{-1, -0.3125, 0, 0.3125, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Saturate[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPianoNote_ZeroOvertones(t *testing.T) {
	hz := FrequencyFromMiddleC(0)
	root, _ := DecayingTone(hz, 0.1, 1, 1)
	want, _ := Saturate(root)

	got, err := PianoNote(0, 0.1, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPianoNote_InvalidArguments(t *testing.T) {
	if _, err := PianoNote(0, 1, -1); !errors.Is(err, ErrInvalidOvertones) {
		t.Errorf("overtones=-1 error = %v, want ErrInvalidOvertones", err)
	}
	if _, err := PianoNote(0, -1, 4); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("duration=-1 error = %v, want ErrInvalidDuration", err)
	}
}

func TestDecayingTone_Envelope(t *testing.T) {
	buf, err := DecayingTone(440, 2, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	window := SAMPLE_RATE / 10
	head := Analyze(buf[:window]).Peak
	tail := Analyze(buf[len(buf)-window:]).Peak
	if tail >= head {
		t.Errorf("envelope does not decay: head peak %v, tail peak %v", head, tail)
	}
	// exp(-0.0004 * 2π * 440 * 2) ≈ 0.11
	if tail > 0.15 {
		t.Errorf("tail peak %v, want below 0.15", tail)
	}
}

func TestDecayingTone_AmpScale(t *testing.T) {
	full, _ := DecayingTone(523.25, 0.1, 1, 1)
	quarter, err := DecayingTone(523.25, 0.1, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i := range full {
		if math.Abs(quarter[i]*4-full[i]) > 1e-12 {
			t.Fatalf("sample %d: %v*4 != %v", i, quarter[i], full[i])
		}
	}
}

func TestPianoNote_DominantIsFundamental(t *testing.T) {
	buf, err := PianoNote(0, 1, DEFAULT_OVERTONES)
	if err != nil {
		t.Fatal(err)
	}
	if f := DominantFrequency(buf); math.Abs(f-MIDDLE_C_HZ) > 2 {
		t.Errorf("dominant frequency = %v, want ~%v", f, MIDDLE_C_HZ)
	}
}
