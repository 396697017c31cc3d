package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTuneDebugEnabled(t *testing.T) {
	for value, want := range map[string]bool{"1": true, "TRUE": true, "yes": true, "0": false, "": false, "no": false} {
		t.Setenv("TUNE_DEBUG", value)
		if got := tuneDebugEnabled(); got != want {
			t.Errorf("TUNE_DEBUG=%q: got %v, want %v", value, got, want)
		}
	}
}

func TestSetupLogging_WritesFiles(t *testing.T) {
	var console bytes.Buffer
	logOutput = &console
	defer func() {
		logOutput = os.Stderr
		closeLogging()
	}()

	dir := filepath.Join(t.TempDir(), "logs")
	setupLogging(true, dir)
	logError("render failed: %d", 42)
	logDebug("buffer %s", "ready")

	if !strings.Contains(console.String(), "render failed: 42") || !strings.Contains(console.String(), "debug: ") {
		t.Errorf("console output = %q", console.String())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var errorLog, debugLog bool
	for _, e := range entries {
		errorLog = errorLog || strings.HasPrefix(e.Name(), "error-")
		debugLog = debugLog || strings.HasPrefix(e.Name(), "debug-")
	}
	if !errorLog || !debugLog {
		t.Errorf("log files = %v", entries)
	}

	setDebugLogging(false, dir)
	console.Reset()
	logDebug("hidden")
	if console.Len() != 0 {
		t.Errorf("debug output after disabling: %q", console.String())
	}
}

func TestCloseLogging_ClosesFiles(t *testing.T) {
	var console bytes.Buffer
	logOutput = &console
	defer func() { logOutput = os.Stderr }()

	setupLogging(true, t.TempDir())
	if len(logFiles) != 2 {
		t.Fatalf("got %d open log files, want 2", len(logFiles))
	}
	files := logFiles

	closeLogging()
	closeLogging()

	for _, f := range files {
		if _, err := f.WriteString("late\n"); !errors.Is(err, os.ErrClosed) {
			t.Errorf("%s still open: write returned %v", f.Name(), err)
		}
	}
	if errorLogger != nil || debugLogger != nil || logFiles != nil {
		t.Error("loggers survive closeLogging")
	}

	console.Reset()
	logError("after close %d", 1)
	if !strings.Contains(console.String(), "after close 1") {
		t.Errorf("logError after close wrote %q", console.String())
	}
}
