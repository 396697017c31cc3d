// render.go - Turning song events into sample buffers

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

package song

import (
	"context"
	"fmt"
	"runtime"

	"github.com/remeh/sizedwaitgroup"

	"github.com/intuitionamiga/tunedeluxe/synth"
)

const DEFAULT_SHIFT_RATIO = 1.0 / 3 // Chromatic overlap as a share of the note length

// Options controls how events are rendered
type Options struct {
	Overtones  int     // Piano overtones per note
	ShiftRatio float64 // Chromatic overlap when an event carries no explicit shift
	Workers    int     // Concurrent renders; 0 means GOMAXPROCS
}

// DefaultOptions matches the behaviour of the interactive session.
func DefaultOptions() Options {
	return Options{
		Overtones:  synth.DEFAULT_OVERTONES,
		ShiftRatio: DEFAULT_SHIFT_RATIO,
	}
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// ResolveShift fills in the chromatic overlap from opts when the event did
// not specify one.
func (e Event) ResolveShift(opts Options) Event {
	if e.Kind == KindChromatic && !e.HasShift {
		e.Shift = e.Duration * opts.ShiftRatio
		e.HasShift = true
	}
	return e
}

// Rendered pairs an event with its finished buffer
type Rendered struct {
	Event  Event
	Buffer synth.SampleBuffer
}

// RenderEvent renders a single event.
func RenderEvent(ctx context.Context, ev Event, opts Options) (synth.SampleBuffer, error) {
	switch ev.Kind {
	case KindPiano:
		return synth.PianoNote(ev.Offset, ev.Duration, opts.Overtones)
	case KindHarmonic:
		return synth.HarmonicNote(ev.Offset, ev.Duration)
	case KindTone:
		return synth.PureTone(ev.Offset-synth.A4_FROM_MIDDLE_C, ev.Duration)
	case KindSimple:
		return synth.SimpleNote(ev.Offset-synth.A4_FROM_MIDDLE_C, ev.Duration)
	case KindChromatic:
		ev = ev.ResolveShift(opts)
		return synth.Chromatic(ctx, ev.Offset, ev.Duration, ev.Shift, opts.Overtones)
	case KindRest:
		return synth.Silence(ev.Duration)
	}
	return nil, fmt.Errorf("unknown event kind %v", ev.Kind)
}

// Render renders every event of s using a bounded pool of workers. The
// result keeps song order; events that fail are reported as LineErrors and
// left out, the rest still render.
func Render(ctx context.Context, s *Song, opts Options) ([]Rendered, []*LineError) {
	bufs := make([]synth.SampleBuffer, len(s.Events))
	errs := make([]error, len(s.Events))

	swg := sizedwaitgroup.New(opts.workers())
	for i, ev := range s.Events {
		if ctx.Err() != nil {
			errs[i] = ctx.Err()
			continue
		}
		swg.Add()
		go func() {
			defer swg.Done()
			bufs[i], errs[i] = RenderEvent(ctx, ev, opts)
		}()
	}
	swg.Wait()

	var out []Rendered
	var lineErrs []*LineError
	for i, ev := range s.Events {
		if errs[i] != nil {
			lineErrs = append(lineErrs, &LineError{Line: ev.Line, Text: ev.Label(), Err: errs[i]})
			continue
		}
		out = append(out, Rendered{Event: ev, Buffer: bufs[i]})
	}
	return out, lineErrs
}

// Concat joins rendered buffers end to end into one new buffer.
func Concat(rendered []Rendered) synth.SampleBuffer {
	total := 0
	for _, r := range rendered {
		total += len(r.Buffer)
	}
	out := make(synth.SampleBuffer, 0, total)
	for _, r := range rendered {
		out = append(out, r.Buffer...)
	}
	return out
}
