//go:build !headless

// audio_backend_oto.go - OTO v3 audio output implementation

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
	"encoding/binary"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/intuitionamiga/tunedeluxe/synth"
)

const (
	OTO_BUFFER_SIZE = 50 * time.Millisecond
	BYTES_PER_FRAME = 4 // mono float32
)

// voice is one buffer queued for playback
type voice struct {
	label   string
	samples []float32
	pos     int
	done    chan struct{}
}

type OtoPlayer struct {
	ctx     *oto.Context
	player  *oto.Player
	current atomic.Pointer[voice] // Atomic for lock-free Read()
	volume  float64
	started bool
	played  int
	mutex   sync.Mutex // Only for setup/control operations
}

func NewOtoPlayer(sampleRate int, volume float64) (*OtoPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   OTO_BUFFER_SIZE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	p := &OtoPlayer{ctx: ctx, volume: volume}
	p.player = ctx.NewPlayer(p)
	return p, nil
}

// Read feeds oto. Only the audio goroutine touches voice.pos.
func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	v := op.current.Load()
	frames := len(p) / BYTES_PER_FRAME
	for i := 0; i < frames; i++ {
		var s float32
		if v != nil && v.pos < len(v.samples) {
			s = v.samples[v.pos]
			v.pos++
		}
		binary.LittleEndian.PutUint32(p[i*BYTES_PER_FRAME:], math.Float32bits(s))
	}
	if v != nil && v.pos >= len(v.samples) && op.current.CompareAndSwap(v, nil) {
		close(v.done)
	}
	return frames * BYTES_PER_FRAME, nil
}

// scaled applies the output volume and clamps to the device range
func (op *OtoPlayer) scaled(buf synth.SampleBuffer) []float32 {
	out := buf.Float32()
	vol := float32(op.volume)
	for i, s := range out {
		v := s * vol
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		out[i] = v
	}
	return out
}

// Play queues buf and blocks until it has been handed to the device.
// It fails with ErrPlayerClosed once Close has run.
func (op *OtoPlayer) Play(label string, buf synth.SampleBuffer) error {
	op.mutex.Lock()
	closed := op.player == nil
	op.mutex.Unlock()
	if closed {
		return ErrPlayerClosed
	}

	v := &voice{label: label, samples: op.scaled(buf), done: make(chan struct{})}
	logDebug("oto: playing %s (%d samples)", label, len(buf))
	op.current.Store(v)
	op.Start()
	<-v.done
	// let the device drain its own buffer before the next note
	time.Sleep(OTO_BUFFER_SIZE)

	op.mutex.Lock()
	op.played++
	op.mutex.Unlock()
	return nil
}

func (op *OtoPlayer) Start() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if !op.started && op.player != nil {
		op.player.Play()
		op.started = true
	}
}

func (op *OtoPlayer) Stop() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.started && op.player != nil {
		op.player.Pause()
		op.started = false
	}
}

func (op *OtoPlayer) Close() error {
	op.Stop()
	// release a Play still waiting on a voice the device will never drain
	if v := op.current.Swap(nil); v != nil {
		close(v.done)
	}
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.player != nil {
		err := op.player.Close()
		op.player = nil
		return err
	}
	return nil
}

// Played returns how many buffers have finished playing
func (op *OtoPlayer) Played() int {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	return op.played
}
