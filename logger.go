// logger.go - Error and debug logging for the interactive binary

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
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	errorLogger *log.Logger
	debugLogger *log.Logger

	// logOutput is where loggers write besides their log file
	logOutput io.Writer = os.Stderr

	logFiles []*os.File
)

// tuneDebugEnabled reports whether TUNE_DEBUG asks for debug output
func tuneDebugEnabled() bool {
	value := strings.ToLower(os.Getenv("TUNE_DEBUG"))
	return value == "1" || value == "true" || value == "yes"
}

// openLogFile creates a timestamped log file in logDir. An empty logDir
// disables file logging.
func openLogFile(logDir, prefix string) io.Writer {
	if logDir == "" {
		return logOutput
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "could not create log directory: %v\n", err)
		return logOutput
	}
	ts := time.Now().Format("20060102-150405")
	path := filepath.Join(logDir, fmt.Sprintf("%s-%s.log", prefix, ts))
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create log file: %v\n", err)
		return logOutput
	}
	logFiles = append(logFiles, f)
	return io.MultiWriter(logOutput, f)
}

// closeLogging closes every log file and drops the loggers. Safe to call
// more than once.
func closeLogging() {
	errorLogger, debugLogger = nil, nil
	for _, f := range logFiles {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "could not close log file: %v\n", err)
		}
	}
	logFiles = nil
}

func setupLogging(debug bool, logDir string) {
	errorLogger = log.New(openLogFile(logDir, "error"), "", log.LstdFlags)
	setDebugLogging(debug, logDir)
}

func setDebugLogging(enabled bool, logDir string) {
	if !enabled {
		debugLogger = nil
		return
	}
	debugLogger = log.New(openLogFile(logDir, "debug"), "debug: ", log.LstdFlags|log.Lmicroseconds)
}

func logError(format string, v ...interface{}) {
	if errorLogger != nil {
		errorLogger.Printf(format, v...)
		return
	}
	fmt.Fprintf(logOutput, format+"\n", v...)
}

func logDebug(format string, v ...interface{}) {
	if debugLogger != nil {
		debugLogger.Printf(format, v...)
	}
}
