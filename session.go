// session.go - The interactive deluxe session

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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/intuitionamiga/tunedeluxe/song"
)

const NOTE_HINT = "Enter the note, its octave and its duration. Ex. 'C 4 2' or 'F# 3 3'"

type lineReader interface {
	ReadLine() (string, error)
}

// Session walks the user through harmonic notes, piano notes, a chromatic
// scale and finally a song file.
type Session struct {
	in       lineReader
	out      io.Writer
	sink     NoteSink
	settings Settings
}

func NewSession(in lineReader, out io.Writer, sink NoteSink, settings Settings) *Session {
	return &Session{in: in, out: out, sink: sink, settings: settings}
}

// Run plays every stage in order. Closing the input ends the session
// early without an error.
func (s *Session) Run(ctx context.Context) error {
	stages := []func(context.Context) error{
		s.singleNotes,
		s.pianoNotes,
		s.chromaticScale,
		s.songFile,
	}
	for _, stage := range stages {
		if err := stage(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out, "Input closed, ending session.")
				return nil
			}
			return err
		}
	}
	return nil
}

func (s *Session) banner(title, hint string) {
	fmt.Fprintf(s.out, "----------------- %s -----------------\n", title)
	fmt.Fprintln(s.out, hint)
}

// readEvent prompts until a line parses. Bad lines are reported and asked
// for again.
func (s *Session) readEvent() (song.Event, error) {
	for {
		line, err := s.in.ReadLine()
		if err != nil {
			return song.Event{}, err
		}
		if line == "" {
			continue
		}
		ev, err := song.ParseLine(line)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid note %q: %v\n", line, err)
			continue
		}
		return ev, nil
	}
}

// playPrompted reads count events of the given kind and plays each one.
// Synthesis failures are reported and the note is asked for again.
func (s *Session) playPrompted(ctx context.Context, kind song.Kind, count int) error {
	opts := s.settings.renderOptions()
	for i := 0; i < count; {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, err := s.readEvent()
		if err != nil {
			return err
		}
		ev.Kind = kind
		buf, err := song.RenderEvent(ctx, ev, opts)
		if err != nil {
			fmt.Fprintf(s.out, "Cannot play %s: %v\n", ev.Label(), err)
			continue
		}
		if err := s.sink.Play(ev.Label(), buf); err != nil {
			return err
		}
		i++
	}
	return nil
}

func (s *Session) singleNotes(ctx context.Context) error {
	if s.settings.SingleNotes == 0 {
		return nil
	}
	s.banner("Playing single notes with superimposed harmonics", NOTE_HINT)
	return s.playPrompted(ctx, song.KindHarmonic, s.settings.SingleNotes)
}

func (s *Session) pianoNotes(ctx context.Context) error {
	if s.settings.PianoNotes == 0 {
		return nil
	}
	s.banner("Playing notes that attempt to mimic a piano", NOTE_HINT)
	return s.playPrompted(ctx, song.KindPiano, s.settings.PianoNotes)
}

func (s *Session) chromaticScale(ctx context.Context) error {
	s.banner("Playing a chromatic scale with piano notes",
		"Enter a starting note, its octave and the duration of each note. Ex. 'C 4 2' or 'F# 3 3'")
	return s.playPrompted(ctx, song.KindChromatic, 1)
}

func (s *Session) songFile(ctx context.Context) error {
	s.banner("Playing music from a file", "Enter a path to a song text file or Lua script, blank to finish")
	for {
		path, err := s.in.ReadLine()
		if err != nil {
			return err
		}
		if path == "" {
			return nil
		}
		sng, lineErrs, err := song.Load(path)
		if err != nil {
			fmt.Fprintf(s.out, "Cannot load %s: %v\n", path, err)
			continue
		}
		reportLineErrors(s.out, path, lineErrs)
		return playSong(ctx, s.out, sng, path, s.sink, s.settings)
	}
}

// reportLineErrors prints each failed line as path:LINE: message
func reportLineErrors(w io.Writer, path string, lineErrs []*song.LineError) {
	for _, le := range lineErrs {
		fmt.Fprintf(w, "%s:%d: %v\n", path, le.Line, le.Err)
		logDebug("%s:%d: %q", path, le.Line, le.Text)
	}
}

// playSong renders sng and sends each event to sink in order. Events that
// fail to render are reported and skipped.
func playSong(ctx context.Context, w io.Writer, sng *song.Song, path string, sink NoteSink, settings Settings) error {
	start := time.Now()
	rendered, renderErrs := song.Render(ctx, sng, settings.renderOptions())
	reportLineErrors(w, path, renderErrs)
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintln(w, renderSummary(sng.Name, len(rendered), samplesIn(rendered), time.Since(start)))

	for _, r := range rendered {
		if err := sink.Play(r.Event.Label(), r.Buffer); err != nil {
			return err
		}
	}
	return nil
}

func samplesIn(rendered []song.Rendered) int {
	n := 0
	for _, r := range rendered {
		n += len(r.Buffer)
	}
	return n
}
