package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/intuitionamiga/tunedeluxe/synth"
)

// recordingSink keeps what it was asked to play
type recordingSink struct {
	labels  []string
	buffers []synth.SampleBuffer
	closed  bool
}

func (r *recordingSink) Play(label string, buf synth.SampleBuffer) error {
	r.labels = append(r.labels, label)
	r.buffers = append(r.buffers, buf)
	return nil
}

func (r *recordingSink) Close() error {
	r.closed = true
	return nil
}

func quietSettings() Settings {
	s := defaultSettings()
	s.SingleNotes = 2
	s.PianoNotes = 1
	return s
}

func runSession(t *testing.T, input string, settings Settings) (*recordingSink, string) {
	t.Helper()
	var out bytes.Buffer
	sink := &recordingSink{}
	prompt := NewScannerPrompt(strings.NewReader(input), &out)
	if err := NewSession(prompt, &out, sink, settings).Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return sink, out.String()
}

func TestSession_AllStages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tune.txt")
	if err := os.WriteFile(path, []byte("C 4 0.1\nE 4 0.1\nG 4 0.2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	input := strings.Join([]string{
		"C 4 0.1",
		"A 4 0.1",
		"F# 3 0.2",
		"C 4 0.03",
		path,
	}, "\n")
	sink, out := runSession(t, input, quietSettings())

	want := []string{
		"harmonic C4 0.1s",
		"harmonic A4 0.1s",
		"piano F#3 0.2s",
		"chromatic C4..B4 0.03s",
		"piano C4 0.1s",
		"piano E4 0.1s",
		"piano G4 0.2s",
	}
	if len(sink.labels) != len(want) {
		t.Fatalf("played %v, want %v", sink.labels, want)
	}
	for i := range want {
		if sink.labels[i] != want[i] {
			t.Errorf("buffer %d = %q, want %q", i, sink.labels[i], want[i])
		}
	}

	harmonic, _ := synth.HarmonicNote(0, 0.1)
	if len(sink.buffers[0]) != len(harmonic) || sink.buffers[0][100] != harmonic[100] {
		t.Error("first buffer is not the harmonic note for C4")
	}
	ratio := quietSettings().ShiftRatio
	chromLen, _ := synth.ChromaticLength(0.03, 0.03*ratio)
	if len(sink.buffers[3]) != chromLen {
		t.Errorf("chromatic buffer length = %d, want %d", len(sink.buffers[3]), chromLen)
	}

	for _, banner := range []string{"superimposed harmonics", "mimic a piano", "chromatic scale", "from a file", "Rendered tune"} {
		if !strings.Contains(out, banner) {
			t.Errorf("output is missing %q", banner)
		}
	}
}


// TestSession_RepromptsBadInput feeds malformed lines between good ones.
func TestSession_RepromptsBadInput(t *testing.T) {
	settings := quietSettings()
	settings.SingleNotes = 1
	settings.PianoNotes = 0

	input := strings.Join([]string{
		"H 4 1",
		"",
		"C 4",
		"C 4 -2",
		"D 4 0.05",
		"C 4 0.02",
		"/no/such/song.txt",
		"",
	}, "\n")
	sink, out := runSession(t, input, settings)

	if len(sink.labels) != 2 {
		t.Fatalf("played %v, want one harmonic note and one scale", sink.labels)
	}
	if sink.labels[0] != "harmonic D4 0.05s" {
		t.Errorf("first note = %q", sink.labels[0])
	}
	if n := strings.Count(out, "Invalid note"); n != 3 {
		t.Errorf("got %d invalid note messages, want 3:\n%s", n, out)
	}
	if !strings.Contains(out, "Cannot load /no/such/song.txt") {
		t.Errorf("missing load failure message:\n%s", out)
	}
}

func TestSession_EndsOnEOF(t *testing.T) {
	sink, out := runSession(t, "C 4 0.05\n", quietSettings())
	if len(sink.labels) != 1 {
		t.Errorf("played %v", sink.labels)
	}
	if !strings.Contains(out, "Input closed") {
		t.Errorf("missing end of input message:\n%s", out)
	}
}

func TestSession_SongLineErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.txt")
	if err := os.WriteFile(path, []byte("C 4 0.05\nX 4 1\nD 4 0.05\n"), 0644); err != nil {
		t.Fatal(err)
	}
	settings := quietSettings()
	settings.SingleNotes = 0
	settings.PianoNotes = 0

	sink, out := runSession(t, "C 4 0.01\n"+path+"\n", settings)
	if len(sink.labels) != 3 {
		t.Fatalf("played %v, want scale plus two song notes", sink.labels)
	}
	if !strings.Contains(out, path+":2: unknown note symbol") {
		t.Errorf("line error not reported as path:line:\n%s", out)
	}
}
