package synth

import (
	"math"
	"testing"
)

func TestHarmonicNote_MiddleCOneSecond(t *testing.T) {
	buf, err := HarmonicNote(0, 1.0)
	if err != nil {
		t.Fatalf("HarmonicNote(0, 1) returned error: %v", err)
	}
	if len(buf) != 44101 {
		t.Errorf("HarmonicNote(0, 1) length = %d, want 44101", len(buf))
	}
}

// TestHarmonicNote_Blend rebuilds the note from its parts and expects the
// same samples.
func TestHarmonicNote_Blend(t *testing.T) {
	const offset, duration = 7, 0.2
	hz := FrequencyFromMiddleC(offset)

	a, _ := Tone(hz, duration, 1)
	hi, _ := Tone(2*hz, duration, 1)
	lo, _ := Tone(hz/2, duration, 1)

	got, err := HarmonicNote(offset, duration)
	if err != nil {
		t.Fatal(err)
	}
	for i := range got {
		h := hi[i]*0.5 + lo[i]*0.5
		want := a[i]*0.75 + h*0.25
		if got[i] != want {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestHarmonicNote_DominantIsFundamental(t *testing.T) {
	buf, err := HarmonicNote(0, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if f := DominantFrequency(buf); math.Abs(f-MIDDLE_C_HZ) > 1.5 {
		t.Errorf("dominant frequency = %v, want ~%v", f, MIDDLE_C_HZ)
	}
	if peak := Analyze(buf).Peak; peak > 1 {
		t.Errorf("peak = %v, want <= 1", peak)
	}
}

func TestSimpleNote_OctavePairOnly(t *testing.T) {
	const duration = 0.1
	got, err := SimpleNote(0, duration)
	if err != nil {
		t.Fatal(err)
	}
	hi, _ := Tone(880, duration, 1)
	lo, _ := Tone(220, duration, 1)
	for i := range got {
		if want := hi[i]*0.5 + lo[i]*0.5; got[i] != want {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestPureTone_A4(t *testing.T) {
	buf, err := PureTone(0, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if f := DominantFrequency(buf); math.Abs(f-440) > 1.5 {
		t.Errorf("dominant frequency = %v, want ~440", f)
	}
}

func TestHarmonicNote_InvalidDuration(t *testing.T) {
	if _, err := HarmonicNote(0, -1); err == nil {
		t.Error("HarmonicNote with negative duration should fail")
	}
	if _, err := SimpleNote(0, -1); err == nil {
		t.Error("SimpleNote with negative duration should fail")
	}
}
