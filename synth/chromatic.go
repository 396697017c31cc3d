// chromatic.go - Twelve overlapping piano notes assembled by overlap-add

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

package synth

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// chromaticGeometry returns N and shift for a run, validating the shift.
func chromaticGeometry(noteDuration, timeShift float64) (int, int, error) {
	n, err := sampleSpan(noteDuration)
	if err != nil {
		return 0, 0, err
	}
	if timeShift < 0 || math.IsNaN(timeShift) {
		return 0, 0, fmt.Errorf("%w: %v seconds is negative", ErrInvalidTimeShift, timeShift)
	}
	shift := int(math.Floor(SAMPLE_RATE * timeShift))
	if shift >= n {
		return 0, 0, fmt.Errorf("%w: shift of %d samples must be shorter than the %d sample note",
			ErrInvalidTimeShift, shift, n)
	}
	return n, shift, nil
}

// ChromaticLength returns (N-shift)*12 + 1, the length of a chromatic run.
func ChromaticLength(noteDuration, timeShift float64) (int, error) {
	n, shift, err := chromaticGeometry(noteDuration, timeShift)
	if err != nil {
		return 0, err
	}
	return (n-shift)*CHROMATIC_NOTES + 1, nil
}

// Chromatic renders twelve consecutive piano notes starting at start and
// overlap-adds them, each note entering timeShift seconds before the
// previous one ends.
//
// The notes are rendered concurrently; placement into the output always
// follows note order.
func Chromatic(ctx context.Context, start int, noteDuration, timeShift float64, overtones int) (SampleBuffer, error) {
	n, shift, err := chromaticGeometry(noteDuration, timeShift)
	if err != nil {
		return nil, err
	}
	if overtones < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOvertones, overtones)
	}

	notes := make([]SampleBuffer, CHROMATIC_NOTES)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range notes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			note, err := PianoNote(start+i, noteDuration, overtones)
			if err != nil {
				return fmt.Errorf("chromatic note %d: %w", i, err)
			}
			notes[i] = note
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stride := n - shift
	out := make(SampleBuffer, stride*CHROMATIC_NOTES+1)
	for i, note := range notes {
		overlapAdd(out, note[:len(note)-shift], stride*i)
	}
	return out, nil
}

// overlapAdd accumulates src into dst starting at offset
func overlapAdd(dst, src SampleBuffer, offset int) {
	for j, v := range src {
		dst[offset+j] += v
	}
}
