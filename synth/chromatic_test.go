package synth

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestChromaticLength_Formula(t *testing.T) {
	tests := []struct {
		duration, shift float64
	}{
		{1, 1.0 / 3},
		{2, 0.5},
		{0.5, 0},
		{0.3, 0.1},
		{2, 2.0 / 3},
	}
	for _, tt := range tests {
		got, err := ChromaticLength(tt.duration, tt.shift)
		if err != nil {
			t.Fatalf("ChromaticLength(%v, %v) returned error: %v", tt.duration, tt.shift, err)
		}
		n := int(math.Floor(SAMPLE_RATE * tt.duration))
		shift := int(math.Floor(SAMPLE_RATE * tt.shift))
		if want := (n-shift)*12 + 1; got != want {
			t.Errorf("ChromaticLength(%v, %v) = %d, want %d", tt.duration, tt.shift, got, want)
		}
	}
}

func TestChromatic_Length(t *testing.T) {
	const duration, shift = 0.2, 0.05
	buf, err := Chromatic(context.Background(), 0, duration, shift, 2)
	if err != nil {
		t.Fatalf("Chromatic returned error: %v", err)
	}
	want := (int(math.Floor(SAMPLE_RATE*duration))-int(math.Floor(SAMPLE_RATE*shift)))*12 + 1
	if len(buf) != want {
		t.Errorf("Chromatic length = %d, want %d", len(buf), want)
	}
}

func TestChromatic_InvalidTimeShift(t *testing.T) {
	tests := []struct {
		name            string
		duration, shift float64
	}{
		{"shift equals duration", 2.0, 2.0},
		{"shift exceeds duration", 1.0, 1.5},
		{"negative shift", 1.0, -0.1},
		{"zero length note", 0, 0},
	}
	for _, tt := range tests {
		_, err := Chromatic(context.Background(), 0, tt.duration, tt.shift, 4)
		if !errors.Is(err, ErrInvalidTimeShift) {
			t.Errorf("%s: error = %v, want ErrInvalidTimeShift", tt.name, err)
		}
		if _, err := ChromaticLength(tt.duration, tt.shift); !errors.Is(err, ErrInvalidTimeShift) {
			t.Errorf("%s: ChromaticLength error = %v, want ErrInvalidTimeShift", tt.name, err)
		}
	}
}

func TestChromatic_InvalidArguments(t *testing.T) {
	if _, err := Chromatic(context.Background(), 0, -1, 0, 4); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("negative duration error = %v, want ErrInvalidDuration", err)
	}
	if _, err := Chromatic(context.Background(), 0, 1, 0.2, -3); !errors.Is(err, ErrInvalidOvertones) {
		t.Errorf("negative overtones error = %v, want ErrInvalidOvertones", err)
	}
}

// TestChromatic_OverlapAdd builds the run sequentially and expects the
// concurrent result to match sample for sample.
func TestChromatic_OverlapAdd(t *testing.T) {
	const start, duration, shift, overtones = -3, 0.1, 0.03, 1
	n := int(math.Floor(SAMPLE_RATE * duration))
	s := int(math.Floor(SAMPLE_RATE * shift))

	want := make(SampleBuffer, (n-s)*12+1)
	for i := 0; i < 12; i++ {
		note, err := PianoNote(start+i, duration, overtones)
		if err != nil {
			t.Fatal(err)
		}
		for j := 0; j < len(note)-s; j++ {
			want[j+(n-s)*i] += note[j]
		}
	}

	got, err := Chromatic(context.Background(), start, duration, shift, overtones)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChromatic_NoOverlapStartsEachNoteOnStride(t *testing.T) {
	const duration = 0.05
	n := int(math.Floor(SAMPLE_RATE * duration))

	got, err := Chromatic(context.Background(), 0, duration, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	// Away from the single shared boundary sample, every slot belongs to
	// exactly one note.
	for i := 0; i < 12; i++ {
		note, _ := PianoNote(i, duration, 0)
		for j := 1; j < n; j++ {
			if got[n*i+j] != note[j] {
				t.Fatalf("note %d sample %d = %v, want %v", i, j, got[n*i+j], note[j])
			}
		}
	}
}

func TestChromatic_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Chromatic(ctx, 0, 0.1, 0.02, 4); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context error = %v, want context.Canceled", err)
	}
}
