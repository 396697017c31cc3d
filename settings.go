// settings.go - Persistent synthesis settings

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
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"

	"github.com/intuitionamiga/tunedeluxe/song"
	"github.com/intuitionamiga/tunedeluxe/synth"
)

const (
	SETTINGS_FILE        = "settings.json"
	DEFAULT_VOLUME       = 0.5
	DEFAULT_SINGLE_NOTES = 5
	DEFAULT_PIANO_NOTES  = 5
)

type Settings struct {
	Overtones   int     `json:"overtones"`
	ShiftRatio  float64 `json:"shiftRatio"`
	Volume      float64 `json:"volume"`
	SingleNotes int     `json:"singleNotes"`
	PianoNotes  int     `json:"pianoNotes"`
	Workers     int     `json:"workers"`
}

func defaultSettings() Settings {
	return Settings{
		Overtones:   synth.DEFAULT_OVERTONES,
		ShiftRatio:  song.DEFAULT_SHIFT_RATIO,
		Volume:      DEFAULT_VOLUME,
		SingleNotes: DEFAULT_SINGLE_NOTES,
		PianoNotes:  DEFAULT_PIANO_NOTES,
	}
}

// defaultSettingsPath places settings.json next to the executable
func defaultSettingsPath() string {
	exe, err := os.Executable()
	if err != nil {
		return SETTINGS_FILE
	}
	return filepath.Join(filepath.Dir(exe), SETTINGS_FILE)
}

// sanitize replaces out of range values with defaults and logs each one
func (s *Settings) sanitize() {
	def := defaultSettings()
	if s.Overtones < 0 {
		logError("settings: overtones %d is negative, using %d", s.Overtones, def.Overtones)
		s.Overtones = def.Overtones
	}
	// Ratio 1 would shift by the full note length
	if math.IsNaN(s.ShiftRatio) || s.ShiftRatio < 0 || s.ShiftRatio >= 1 {
		logError("settings: shiftRatio %v outside [0,1), using %v", s.ShiftRatio, def.ShiftRatio)
		s.ShiftRatio = def.ShiftRatio
	}
	if math.IsNaN(s.Volume) || s.Volume < 0 || s.Volume > 1 {
		logError("settings: volume %v outside [0,1], using %v", s.Volume, def.Volume)
		s.Volume = def.Volume
	}
	if s.SingleNotes < 0 {
		logError("settings: singleNotes %d is negative, using %d", s.SingleNotes, def.SingleNotes)
		s.SingleNotes = def.SingleNotes
	}
	if s.PianoNotes < 0 {
		logError("settings: pianoNotes %d is negative, using %d", s.PianoNotes, def.PianoNotes)
		s.PianoNotes = def.PianoNotes
	}
	if s.Workers < 0 {
		logError("settings: workers %d is negative, using GOMAXPROCS", s.Workers)
		s.Workers = 0
	}
}

// loadSettings reads path. A missing file yields the defaults; fields the
// file leaves out keep their default values.
func loadSettings(path string) (Settings, error) {
	s := defaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logDebug("settings: %s not found, using defaults", path)
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return defaultSettings(), err
	}
	s.sanitize()
	return s, nil
}

func saveSettings(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// renderOptions maps the settings onto song rendering options
func (s Settings) renderOptions() song.Options {
	return song.Options{
		Overtones:  s.Overtones,
		ShiftRatio: s.ShiftRatio,
		Workers:    s.Workers,
	}
}
