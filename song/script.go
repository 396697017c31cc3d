// script.go - Lua song scripts

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
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/intuitionamiga/tunedeluxe/synth"
)

/*
A song script is plain Lua with a few extra globals:

	piano(note, octave, seconds)          piano note, the song-file default
	note(note, octave, seconds)           harmonic note
	tone(note, octave, seconds)           pure sine on the 440 Hz reference
	simple(note, octave, seconds)         octave pair on the 440 Hz reference
	chromatic(note, octave, seconds [, shift])
	rest(seconds)
	NOTE_NAMES                            {"C", "C#", ... "B"}

Only the base, table, string and math libraries are opened.
*/

// LoadScript runs the Lua song script at path and returns the events it
// produced.
func LoadScript(path string) (*Song, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return RunScript(name, string(src))
}

// RunScript executes Lua source. A script error discards the whole song.
func RunScript(name, source string) (*Song, error) {
	b := &scriptBuilder{song: &Song{Name: name}}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	L.SetGlobal("piano", L.NewFunction(b.noteFunc(KindPiano)))
	L.SetGlobal("note", L.NewFunction(b.noteFunc(KindHarmonic)))
	L.SetGlobal("tone", L.NewFunction(b.noteFunc(KindTone)))
	L.SetGlobal("simple", L.NewFunction(b.noteFunc(KindSimple)))
	L.SetGlobal("chromatic", L.NewFunction(b.chromatic))
	L.SetGlobal("rest", L.NewFunction(b.rest))

	names := L.NewTable()
	for _, n := range synth.NoteNames() {
		names.Append(lua.LString(n))
	}
	L.SetGlobal("NOTE_NAMES", names)

	if err := L.DoString(source); err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	return b.song, nil
}

type scriptBuilder struct {
	song *Song
}

// currentLine returns the script line of the calling Lua code
func currentLine(L *lua.LState) int {
	dbg, ok := L.GetStack(1)
	if !ok {
		return 0
	}
	if _, err := L.GetInfo("l", dbg, lua.LNil); err != nil {
		return 0
	}
	return dbg.CurrentLine
}

// checkNote reads (note, octave, seconds) from the Lua stack
func checkNote(L *lua.LState) Event {
	symbol := L.CheckString(1)
	rawOctave := float64(L.CheckNumber(2))
	duration := float64(L.CheckNumber(3))

	if rawOctave != math.Trunc(rawOctave) || math.IsInf(rawOctave, 0) {
		L.ArgError(2, ErrBadOctave.Error())
	}
	octave := int(rawOctave)

	if duration < 0 {
		L.ArgError(3, "duration must not be negative")
	}
	offset, err := synth.Resolve(symbol, octave)
	if err != nil {
		L.ArgError(1, err.Error())
	}
	return Event{
		Symbol:   symbol,
		Octave:   octave,
		Offset:   offset,
		Duration: duration,
		Line:     currentLine(L),
	}
}

func (b *scriptBuilder) noteFunc(kind Kind) lua.LGFunction {
	return func(L *lua.LState) int {
		ev := checkNote(L)
		ev.Kind = kind
		b.song.Events = append(b.song.Events, ev)
		return 0
	}
}

func (b *scriptBuilder) chromatic(L *lua.LState) int {
	ev := checkNote(L)
	ev.Kind = KindChromatic
	if L.GetTop() >= 4 {
		ev.Shift = float64(L.CheckNumber(4))
		ev.HasShift = true
		if _, err := synth.ChromaticLength(ev.Duration, ev.Shift); err != nil {
			L.ArgError(4, err.Error())
		}
	}
	b.song.Events = append(b.song.Events, ev)
	return 0
}

func (b *scriptBuilder) rest(L *lua.LState) int {
	duration := float64(L.CheckNumber(1))
	if duration < 0 {
		L.ArgError(1, "duration must not be negative")
	}
	b.song.Events = append(b.song.Events, Event{
		Kind:     KindRest,
		Duration: duration,
		Line:     currentLine(L),
	})
	return 0
}
