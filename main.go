// main.go - Main entry point for TuneDeluxe

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
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/intuitionamiga/tunedeluxe/song"
	"github.com/intuitionamiga/tunedeluxe/synth"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147mTuneDeluxe\033[0m - additive sine synthesis for notes, scales and songs")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/IntuitionEngine")
	fmt.Println("License: GPLv3 or later")
}

// oneShot is a single note given on the command line
type oneShot struct {
	kind song.Kind
	line string
}

func main() {
	var (
		songPath     string
		luaPath      string
		noteLine     string
		pianoLine    string
		chromLine    string
		toneLine     string
		simpleLine   string
		wavPath      string
		analyze      bool
		settingsPath string
		saveDefaults bool
		debug        bool
		logDir       string
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&songPath, "song", "", "Play a song text file (or .lua script)")
	flagSet.StringVar(&luaPath, "lua", "", "Play a Lua song script")
	flagSet.StringVar(&noteLine, "note", "", "Play one harmonic note, e.g. \"C 4 2\"")
	flagSet.StringVar(&pianoLine, "piano", "", "Play one piano note, e.g. \"C 4 2\"")
	flagSet.StringVar(&chromLine, "chromatic", "", "Play a chromatic scale from a note, e.g. \"C 4 0.5\"")
	flagSet.StringVar(&toneLine, "tone", "", "Play a pure tone on the 440 Hz reference, e.g. \"A 4 1\"")
	flagSet.StringVar(&simpleLine, "simple", "", "Play the octave pair around a note on the 440 Hz reference, e.g. \"A 4 1\"")
	flagSet.StringVar(&wavPath, "wav", "", "Write everything to a WAV file instead of playing it")
	flagSet.BoolVar(&analyze, "analyze", false, "Print signal statistics for every buffer")
	flagSet.StringVar(&settingsPath, "settings", defaultSettingsPath(), "Settings file")
	flagSet.BoolVar(&saveDefaults, "save-settings", false, "Write the effective settings back to the settings file")
	flagSet.BoolVar(&debug, "debug", false, "Enable debug logging")
	flagSet.StringVar(&logDir, "logdir", "", "Also write logs to timestamped files in this directory")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./tunedeluxe [-note|-piano|-chromatic|-tone|-simple \"C 4 2\"] [-song file] [-lua script] [-wav out.wav] [-analyze]")
		fmt.Println("With no note or song flags an interactive session starts.")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if flagSet.NArg() > 0 {
		fmt.Printf("Error: unexpected argument %q\n", flagSet.Arg(0))
		os.Exit(1)
	}

	boilerPlate()
	setupLogging(debug || tuneDebugEnabled(), logDir)
	defer closeLogging()

	settings, err := loadSettings(settingsPath)
	if err != nil {
		logError("settings: %s: %v, using defaults", settingsPath, err)
	}
	if saveDefaults {
		if err := saveSettings(settingsPath, settings); err != nil {
			logError("save settings: %v", err)
		}
	}

	var sink NoteSink
	var player *OtoPlayer
	if wavPath != "" {
		sink = NewWAVRecorder(wavPath, synth.SAMPLE_RATE)
	} else {
		player, err = NewOtoPlayer(synth.SAMPLE_RATE, settings.Volume)
		if err != nil {
			fmt.Printf("Failed to initialize sound: %v\n", err)
			closeLogging()
			os.Exit(1)
		}
		sink = player
	}
	if analyze {
		sink = NewAnalyzingSink(sink, os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var shots []oneShot
	for _, s := range []oneShot{
		{song.KindHarmonic, noteLine},
		{song.KindPiano, pianoLine},
		{song.KindChromatic, chromLine},
		{song.KindTone, toneLine},
		{song.KindSimple, simpleLine},
	} {
		if s.line != "" {
			shots = append(shots, s)
		}
	}

	if len(shots) > 0 || songPath != "" || luaPath != "" {
		err = runOneShots(ctx, os.Stdout, shots, songPath, luaPath, sink, settings)
	} else {
		prompt := NewNotePrompt(os.Stdin, os.Stdout)
		err = NewSession(prompt, prompt.Out(), sink, settings).Run(ctx)
		prompt.Close()
	}

	if player != nil {
		fmt.Println(playbackSummary(player.Played()))
	}
	if closeErr := sink.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		closeLogging()
		os.Exit(1)
	}
}

// runOneShots plays the command line notes, then the song and the script.
func runOneShots(ctx context.Context, w io.Writer, shots []oneShot, songPath, luaPath string, sink NoteSink, settings Settings) error {
	opts := settings.renderOptions()
	for _, shot := range shots {
		ev, err := song.ParseLine(shot.line)
		if err != nil {
			return fmt.Errorf("-%s %q: %w", shotFlag(shot.kind), shot.line, err)
		}
		ev.Kind = shot.kind
		buf, err := song.RenderEvent(ctx, ev, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", ev.Label(), err)
		}
		if err := sink.Play(ev.Label(), buf); err != nil {
			return err
		}
	}

	if songPath != "" {
		sng, lineErrs, err := song.Load(songPath)
		if err != nil {
			return err
		}
		reportLineErrors(w, songPath, lineErrs)
		if err := playSong(ctx, w, sng, songPath, sink, settings); err != nil {
			return err
		}
	}
	if luaPath != "" {
		sng, err := song.LoadScript(luaPath)
		if err != nil {
			return err
		}
		if err := playSong(ctx, w, sng, luaPath, sink, settings); err != nil {
			return err
		}
	}
	return nil
}

func shotFlag(kind song.Kind) string {
	switch kind {
	case song.KindHarmonic:
		return "note"
	case song.KindPiano:
		return "piano"
	case song.KindChromatic:
		return "chromatic"
	case song.KindSimple:
		return "simple"
	}
	return "tone"
}
