// report.go - Human readable summaries of rendered audio

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
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"github.com/intuitionamiga/tunedeluxe/synth"
	"github.com/intuitionamiga/tunedeluxe/wavfile"
)

const WAV_HEADER_BYTES = 44

const SHORT_UNITS = "y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us"

var shortUnits = mustUnits(SHORT_UNITS)

// mustUnits decodes a durafmt unit list and panics on a malformed literal
func mustUnits(list string) durafmt.Units {
	units, err := durafmt.DefaultUnitsCoder.Decode(list)
	if err != nil {
		panic(fmt.Sprintf("durafmt units %q: %v", list, err))
	}
	return units
}

// durationText formats seconds as m:ss
func durationText(secs float64) string {
	if secs <= 0 {
		return "0:00"
	}
	total := int(math.Round(secs))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// elapsedText formats a wall clock duration to two units, e.g. "1 s 250 ms"
func elapsedText(d time.Duration) string {
	return durafmt.Parse(d).LimitFirstN(2).Format(shortUnits)
}

// wavBytes is the size of buf once written by the wavfile package
func wavBytes(buf synth.SampleBuffer) uint64 {
	return uint64(WAV_HEADER_BYTES + len(buf)*wavfile.BITS_PER_SAMPLE/8)
}

func exportSummary(notes int, buf synth.SampleBuffer) string {
	return fmt.Sprintf("%d notes, %s samples, %s, %s",
		notes, humanize.Comma(int64(len(buf))), durationText(buf.Seconds()), humanize.Bytes(wavBytes(buf)))
}

func renderSummary(name string, events, samples int, elapsed time.Duration) string {
	secs := float64(samples) / synth.SAMPLE_RATE
	return fmt.Sprintf("Rendered %s: %d events, %s of audio in %s",
		name, events, durationText(secs), elapsedText(elapsed))
}

func playbackSummary(played int) string {
	if played == 1 {
		return "Played 1 buffer"
	}
	return fmt.Sprintf("Played %s buffers", humanize.Comma(int64(played)))
}

func printAnalysis(w io.Writer, label string, buf synth.SampleBuffer) {
	st := synth.Analyze(buf)
	fmt.Fprintf(w, "%s: %s samples rms=%.4f peak=%.4f dc=%.5f zc=%d",
		label, humanize.Comma(int64(len(buf))), st.RMS, st.Peak, st.DCOffset, st.ZeroCrossings)
	if hz := synth.DominantFrequency(buf); hz > 0 {
		fmt.Fprintf(w, " dominant=%.1fHz", hz)
	}
	fmt.Fprintln(w)
}
