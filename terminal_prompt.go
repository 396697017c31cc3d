package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const PROMPT = "> "

// NotePrompt reads one line of user input at a time. On a terminal it uses
// raw mode with line editing; otherwise it scans the reader line by line.
type NotePrompt struct {
	terminal     *term.Terminal
	scanner      *bufio.Scanner
	out          io.Writer
	fd           int
	oldTermState *term.State
}

// NewNotePrompt wraps stdin. Call Close to restore the terminal.
func NewNotePrompt(in *os.File, out io.Writer) *NotePrompt {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return NewScannerPrompt(in, out)
	}

	// Put terminal in raw mode; term.Terminal does its own echo and editing.
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "note_prompt: failed to set raw mode: %v\n", err)
		return NewScannerPrompt(in, out)
	}

	rw := struct {
		io.Reader
		io.Writer
	}{in, out}
	t := term.NewTerminal(rw, PROMPT)
	return &NotePrompt{
		terminal:     t,
		out:          t,
		fd:           fd,
		oldTermState: oldState,
	}
}

// NewScannerPrompt reads lines from r without any terminal handling
func NewScannerPrompt(r io.Reader, out io.Writer) *NotePrompt {
	return &NotePrompt{scanner: bufio.NewScanner(r), out: out}
}

// Out is the writer for messages shown between prompts. In raw mode it
// translates newlines for the terminal.
func (p *NotePrompt) Out() io.Writer {
	return p.out
}

// ReadLine returns the next line with surrounding space trimmed, or io.EOF
// when input ends.
func (p *NotePrompt) ReadLine() (string, error) {
	if p.terminal != nil {
		line, err := p.terminal.ReadLine()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}

	fmt.Fprint(p.out, PROMPT)
	if !p.scanner.Scan() {
		fmt.Fprintln(p.out)
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Close restores the terminal state
func (p *NotePrompt) Close() {
	if p.oldTermState != nil {
		_ = term.Restore(p.fd, p.oldTermState)
		p.oldTermState = nil
	}
}
