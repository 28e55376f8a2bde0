//go:build !headless

// audio_backend_oto.go - OTO v3 audio output for monitoring a DDS channel

/*
▓█████▄ ▓█████▄   ██████    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▒██▀ ██▌▒██▀ ██▌▒██    ▒    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
░██   █▌░██   █▌░ ▓██▄      ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░▓█▄   ▌░▓█▄   ▌  ▒   ██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░▒████▓ ░▒████▓ ▒██████▒▒   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
 ▒▒▓  ▒  ▒▒▓  ▒ ▒ ▒▓▒ ▒ ░   ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ░ ▒  ▒  ░ ▒  ▒ ░ ░▒  ░ ░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ░ ░  ░  ░ ░  ░ ░  ░  ░        ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
   ░       ░          ░        ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/DDSEngine
License: GPLv3 or later
*/

package main

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/oto/v3"
)

// OtoPlayer plays one channel's real component through the host audio
// device. Oto's callback thread becomes the sample domain: every sample
// it pulls advances the whole pipeline by exactly one tick, so playback
// and the free-running runner loop are mutually exclusive.
type OtoPlayer struct {
	ctx       *oto.Context
	player    *oto.Player
	runner    atomic.Pointer[SignalRunner] // Atomic for lock-free Read()
	channel   int
	sampleBuf []float32 // Pre-allocated sample buffer
	started   bool
	mutex     sync.Mutex // Only for setup/control operations
}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return &OtoPlayer{
		ctx:     ctx,
		started: false,
	}, nil
}

// SetupPlayer attaches the runner and selects which channel to monitor.
func (op *OtoPlayer) SetupPlayer(runner *SignalRunner, channel int) {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if channel < 0 || channel >= runner.core.Channels() {
		channel = 0
	}
	op.channel = channel
	op.runner.Store(runner)
	op.player = op.ctx.NewPlayer(op)
	// Pre-allocate buffer for typical oto buffer sizes (4096 bytes = 1024 float32 samples)
	op.sampleBuf = make([]float32, 4096)
}

func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	// Load runner pointer atomically - no lock needed for the hot path
	runner := op.runner.Load()
	if runner == nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	numSamples := len(p) / 4

	// Ensure our pre-allocated buffer is large enough
	// This should rarely happen after initial SetupPlayer
	if len(op.sampleBuf) < numSamples {
		op.sampleBuf = make([]float32, numSamples)
	}
	samples := op.sampleBuf[:numSamples]

	for i := 0; i < numSamples; i++ {
		frame := runner.Step()
		samples[i] = float32(frame.Real(op.channel)) / 32768.0
	}

	copy(p, (*[1 << 30]byte)(unsafe.Pointer(&samples[0]))[:len(p)])
	return len(p), nil
}

func (op *OtoPlayer) Start() error {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if !op.started && op.player != nil {
		op.player.Play()
		op.started = true
	}
	return nil
}

func (op *OtoPlayer) Stop() error {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.started && op.player != nil {
		op.player.Close()
		op.started = false
	}
	return nil
}

func (op *OtoPlayer) IsStarted() bool {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	return op.started
}
