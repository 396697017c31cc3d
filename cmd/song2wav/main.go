package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/intuitionamiga/tunedeluxe/synth"
	"github.com/intuitionamiga/tunedeluxe/wavfile"
)

func main() {
	outFile := flag.String("o", "", "Output file (default: input with a .wav extension)")
	overtones := flag.Int("overtones", synth.DEFAULT_OVERTONES, "Piano overtones per note")
	stats := flag.Bool("stats", false, "Print render statistics")
	verify := flag.Bool("verify", false, "Read the WAV back and compare it with the rendered song")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: song2wav [options] input.(txt|lua)\n\nRenders a song text file or Lua song script to a 16-bit mono WAV file.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  song2wav songs/twinkle.txt\n")
		fmt.Fprintf(os.Stderr, "  song2wav -o scale.wav -overtones 6 songs/scale.lua\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	inputPath := flag.Arg(0)

	if *overtones < 0 {
		fmt.Fprintf(os.Stderr, "error: -overtones must not be negative\n")
		os.Exit(1)
	}

	conv := NewConverter()
	conv.opts.Overtones = *overtones

	buf, err := conv.ConvertFileFromPath(context.Background(), inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	for _, msg := range conv.Messages() {
		fmt.Fprintln(os.Stderr, msg)
	}

	outputPath := *outFile
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".wav"
	}

	if err := wavfile.WriteFile(outputPath, buf, synth.SAMPLE_RATE); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outputPath, err)
		os.Exit(1)
	}

	if *stats {
		st := synth.Analyze(buf)
		fmt.Printf("Input:  %s (%d events)\n", inputPath, conv.events)
		fmt.Printf("Output: %s (%d samples, %.2fs)\n", outputPath, len(buf), buf.Seconds())
		fmt.Printf("Signal: rms=%.4f peak=%.4f dc=%.5f\n", st.RMS, st.Peak, st.DCOffset)
		if conv.errors > 0 {
			fmt.Printf("Errors: %d line(s) skipped\n", conv.errors)
		}
	}

	if *verify {
		if err := Verify(outputPath, buf); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Verified %s\n", outputPath)
	}

	if conv.errors > 0 {
		fmt.Fprintf(os.Stderr, "%d line(s) failed, %s holds the rest of the song\n", conv.errors, outputPath)
		os.Exit(1)
	}
}
