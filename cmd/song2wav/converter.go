package main

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/intuitionamiga/tunedeluxe/song"
	"github.com/intuitionamiga/tunedeluxe/synth"
	"github.com/intuitionamiga/tunedeluxe/wavfile"
)

// One 16-bit quantisation step, plus rounding slack
const VERIFY_TOLERANCE = 1.0 / wavfile.PCM_FULL_SCALE

var ErrVerifyMismatch = errors.New("written file does not match the rendered song")

// Converter renders song files into sample buffers.
type Converter struct {
	opts     song.Options
	messages []string
	errors   int
	events   int
}

// NewConverter creates a Converter with default render options.
func NewConverter() *Converter {
	return &Converter{opts: song.DefaultOptions()}
}

// ConvertFileFromPath loads a song text file or Lua script and renders it.
// Lines that fail are recorded as "input:LINE: message" and left out; the
// returned error is only for files that cannot be loaded at all.
func (c *Converter) ConvertFileFromPath(ctx context.Context, inputPath string) (synth.SampleBuffer, error) {
	s, lineErrs, err := song.Load(inputPath)
	if err != nil {
		return nil, err
	}
	c.record(inputPath, lineErrs)

	rendered, renderErrs := song.Render(ctx, s, c.opts)
	c.record(inputPath, renderErrs)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.events = len(rendered)
	return song.Concat(rendered), nil
}

func (c *Converter) record(inputPath string, lineErrs []*song.LineError) {
	for _, le := range lineErrs {
		c.messages = append(c.messages, fmt.Sprintf("%s:%d: %v", inputPath, le.Line, le.Err))
		c.errors++
	}
}

// Messages returns the per-line failures in the order they were found
func (c *Converter) Messages() []string {
	return c.messages
}

// Verify reads outputPath back and compares it with buf after the same
// clamping the writer applies.
func Verify(outputPath string, buf synth.SampleBuffer) error {
	got, rate, err := wavfile.ReadFile(outputPath)
	if err != nil {
		return err
	}
	if rate != synth.SAMPLE_RATE {
		return fmt.Errorf("%w: sample rate %d", ErrVerifyMismatch, rate)
	}
	if len(got) != len(buf) {
		return fmt.Errorf("%w: %d samples, rendered %d", ErrVerifyMismatch, len(got), len(buf))
	}
	for i, v := range buf {
		want := math.Max(-1, math.Min(1, v))
		if math.Abs(got[i]-want) > VERIFY_TOLERANCE {
			return fmt.Errorf("%w: sample %d is %v, rendered %v", ErrVerifyMismatch, i, got[i], want)
		}
	}
	return nil
}
