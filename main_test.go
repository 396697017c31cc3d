package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/intuitionamiga/tunedeluxe/song"
	"github.com/intuitionamiga/tunedeluxe/synth"
)

func TestRunOneShots_Order(t *testing.T) {
	dir := t.TempDir()
	songPath := filepath.Join(dir, "a.txt")
	luaPath := filepath.Join(dir, "b.lua")
	if err := os.WriteFile(songPath, []byte("E 4 0.05\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(luaPath, []byte(`rest(0.01) tone("A", 4, 0.05)`), 0644); err != nil {
		t.Fatal(err)
	}

	shots := []oneShot{
		{song.KindHarmonic, "C 4 0.05"},
		{song.KindTone, "A 4 0.05"},
		{song.KindSimple, "A 4 0.05"},
	}
	var out bytes.Buffer
	sink := &recordingSink{}
	if err := runOneShots(context.Background(), &out, shots, songPath, luaPath, sink, defaultSettings()); err != nil {
		t.Fatalf("runOneShots returned error: %v", err)
	}

	want := []string{"harmonic C4 0.05s", "tone A4 0.05s", "simple A4 0.05s", "piano E4 0.05s", "rest 0.01s", "tone A4 0.05s"}
	if len(sink.labels) != len(want) {
		t.Fatalf("played %v, want %v", sink.labels, want)
	}
	for i := range want {
		if sink.labels[i] != want[i] {
			t.Errorf("buffer %d = %q, want %q", i, sink.labels[i], want[i])
		}
	}

	// -tone A 4 sits on the 440 Hz reference
	if hz := synth.DominantFrequency(sink.buffers[1]); hz < 420 || hz > 460 {
		t.Errorf("tone dominant frequency = %v, want about 440", hz)
	}
}

func TestRunOneShots_BadLine(t *testing.T) {
	var out bytes.Buffer
	err := runOneShots(context.Background(), &out, []oneShot{{song.KindPiano, "Q 4 1"}}, "", "", &recordingSink{}, defaultSettings())
	if !errors.Is(err, synth.ErrUnknownNoteSymbol) {
		t.Errorf("runOneShots error = %v, want ErrUnknownNoteSymbol", err)
	}
}

func TestShotFlag(t *testing.T) {
	if shotFlag(song.KindChromatic) != "chromatic" || shotFlag(song.KindTone) != "tone" || shotFlag(song.KindSimple) != "simple" {
		t.Error("shotFlag does not name the command line flag")
	}
}
