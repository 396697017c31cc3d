// music_interfaces.go - Destinations for synthesized buffers

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/intuitionamiga/tunedeluxe/synth"
	"github.com/intuitionamiga/tunedeluxe/wavfile"
)

var ErrPlayerClosed = errors.New("player is closed")

// NoteSink receives finished sample buffers in playing order.
// Implemented by OtoPlayer, WAVRecorder and AnalyzingSink.
type NoteSink interface {
	// Play consumes buf. Audio sinks block until it has been heard.
	Play(label string, buf synth.SampleBuffer) error
	// Close flushes and releases the sink
	Close() error
}

// WAVRecorder appends every buffer to one recording written on Close
type WAVRecorder struct {
	path       string
	sampleRate int
	buf        synth.SampleBuffer
	notes      int
}

func NewWAVRecorder(path string, sampleRate int) *WAVRecorder {
	return &WAVRecorder{path: path, sampleRate: sampleRate}
}

func (r *WAVRecorder) Play(label string, buf synth.SampleBuffer) error {
	logDebug("wav: recording %s (%d samples)", label, len(buf))
	r.buf = append(r.buf, buf...)
	r.notes++
	return nil
}

func (r *WAVRecorder) Close() error {
	if err := wavfile.WriteFile(r.path, r.buf, r.sampleRate); err != nil {
		return err
	}
	fmt.Printf("Wrote %s: %s\n", r.path, exportSummary(r.notes, r.buf))
	return nil
}

// AnalyzingSink prints signal statistics for each buffer before passing
// it on
type AnalyzingSink struct {
	next NoteSink
	out  io.Writer
}

func NewAnalyzingSink(next NoteSink, out io.Writer) *AnalyzingSink {
	return &AnalyzingSink{next: next, out: out}
}

func (a *AnalyzingSink) Play(label string, buf synth.SampleBuffer) error {
	printAnalysis(a.out, label, buf)
	return a.next.Play(label, buf)
}

func (a *AnalyzingSink) Close() error {
	return a.next.Close()
}
