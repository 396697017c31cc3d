// song.go - Note events and the plain-text song file reader

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
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/intuitionamiga/tunedeluxe/synth"
)

// Kind selects which builder renders an event
type Kind int

const (
	KindPiano     Kind = iota // synth.PianoNote, the song-file default
	KindHarmonic              // synth.HarmonicNote
	KindTone                  // synth.PureTone on the 440 Hz reference
	KindChromatic             // synth.Chromatic starting at the event's note
	KindRest                  // silence
	KindSimple                // synth.SimpleNote, octave pair on the 440 Hz reference
)

var kindNames = [...]string{"piano", "harmonic", "tone", "chromatic", "rest", "simple"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	ErrFieldCount  = errors.New("expected <note> <octave> <duration>")
	ErrBadOctave   = errors.New("octave is not an integer")
	ErrBadDuration = errors.New("duration is not a number")
)

// Event is one thing to render. Offset is always semitones above middle C.
type Event struct {
	Kind     Kind
	Symbol   string
	Octave   int
	Offset   int
	Duration float64 // seconds; per note for chromatic runs
	Shift    float64 // chromatic overlap in seconds, when HasShift
	HasShift bool
	Line     int // source line, 0 when not from a file
}

// Label is a short human readable description, e.g. "piano C#4 0.5s".
// Chromatic runs name their first and last note, "chromatic C4..B4 0.5s".
func (e Event) Label() string {
	switch e.Kind {
	case KindRest:
		return fmt.Sprintf("rest %gs", e.Duration)
	case KindChromatic:
		first, firstOct := synth.NoteName(e.Offset)
		last, lastOct := synth.NoteName(e.Offset + synth.CHROMATIC_NOTES - 1)
		return fmt.Sprintf("%s %s%d..%s%d %gs", e.Kind, first, firstOct, last, lastOct, e.Duration)
	}
	return fmt.Sprintf("%s %s%d %gs", e.Kind, e.Symbol, e.Octave, e.Duration)
}

// Seconds is the playing time of the rendered event. Chromatic runs with
// an unresolved shift report zero overlap.
func (e Event) Seconds() float64 {
	if e.Kind != KindChromatic {
		return e.Duration
	}
	n, err := synth.ChromaticLength(e.Duration, e.Shift)
	if err != nil {
		return 0
	}
	return float64(n) / synth.SAMPLE_RATE
}

// Song is an ordered list of events
type Song struct {
	Name   string
	Events []Event
}

// Duration returns the summed playing time of all events.
func (s *Song) Duration() float64 {
	var total float64
	for _, e := range s.Events {
		total += e.Seconds()
	}
	return total
}

// LineError reports a single rejected line or event. Reading and rendering
// carry on past it.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ParseLine parses "<note> <octave> <duration>" into a piano event.
func ParseLine(text string) (Event, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return Event{}, fmt.Errorf("%w, got %d field(s)", ErrFieldCount, len(fields))
	}

	octave, err := strconv.Atoi(fields[1])
	if err != nil {
		return Event{}, fmt.Errorf("%w: %q", ErrBadOctave, fields[1])
	}
	duration, err := strconv.ParseFloat(fields[2], 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return Event{}, fmt.Errorf("%w: %q", ErrBadDuration, fields[2])
	}
	if duration < 0 {
		return Event{}, fmt.Errorf("%w: %v seconds", synth.ErrInvalidDuration, duration)
	}
	offset, err := synth.Resolve(fields[0], octave)
	if err != nil {
		return Event{}, err
	}

	return Event{
		Kind:     KindPiano,
		Symbol:   fields[0],
		Octave:   octave,
		Offset:   offset,
		Duration: duration,
	}, nil
}

// Parse reads a song file body. Blank lines and lines starting with '#'
// are skipped. Malformed lines come back as LineErrors and do not stop the
// rest of the file from being read; the error result is for I/O only.
func Parse(r io.Reader) (*Song, []*LineError, error) {
	s := &Song{}
	var lineErrs []*LineError

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		ev, err := ParseLine(text)
		if err != nil {
			lineErrs = append(lineErrs, &LineError{Line: lineNo, Text: text, Err: err})
			continue
		}
		ev.Line = lineNo
		s.Events = append(s.Events, ev)
	}
	if err := scanner.Err(); err != nil {
		return s, lineErrs, err
	}
	return s, lineErrs, nil
}

// ReadFile parses the song file at path.
func ReadFile(path string) (*Song, []*LineError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	s, lineErrs, err := Parse(f)
	if s != nil {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, lineErrs, err
}

// Load reads either a Lua song script (.lua) or a plain song file.
func Load(path string) (*Song, []*LineError, error) {
	if strings.EqualFold(filepath.Ext(path), ".lua") {
		s, err := LoadScript(path)
		return s, nil, err
	}
	return ReadFile(path)
}
