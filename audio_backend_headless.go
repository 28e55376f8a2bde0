//go:build headless

// audio_backend_headless.go - No-op audio backend for headless builds

package main

type OtoPlayer struct {
	started bool
	runner  *SignalRunner
	channel int
}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	return &OtoPlayer{}, nil
}

func (op *OtoPlayer) SetupPlayer(runner *SignalRunner, channel int) {
	op.runner = runner
	op.channel = channel
}

func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	return len(p), nil
}

func (op *OtoPlayer) Start() error {
	op.started = true
	return nil
}

func (op *OtoPlayer) Stop() error {
	op.started = false
	return nil
}

func (op *OtoPlayer) IsStarted() bool {
	return op.started
}
