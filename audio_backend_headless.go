//go:build headless

package main

import "github.com/intuitionamiga/tunedeluxe/synth"

// OtoPlayer without an audio device. Buffers are accepted and dropped.
type OtoPlayer struct {
	closed bool
	volume float64
	played int
}

func NewOtoPlayer(sampleRate int, volume float64) (*OtoPlayer, error) {
	return &OtoPlayer{volume: volume}, nil
}

func (op *OtoPlayer) Play(label string, buf synth.SampleBuffer) error {
	if op.closed {
		return ErrPlayerClosed
	}
	logDebug("headless: dropping %s (%d samples)", label, len(buf))
	op.played++
	return nil
}

func (op *OtoPlayer) Close() error {
	op.closed = true
	return nil
}

func (op *OtoPlayer) Played() int {
	return op.played
}
