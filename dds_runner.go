// dds_runner.go - Sample-domain driver for the DDS core

package main

import (
	"sync"
	"time"
)

// SignalRunner owns the sample domain. Exactly one goroutine advances
// the core: either the runner's own free-run loop (Start) or an audio
// backend pulling samples through Step from its callback thread. Each
// step takes one configuration snapshot from the control port, ticks the
// core once and fans the frame out to the attached sinks.
type SignalRunner struct {
	core *SignalCore
	port *ControlPort
	rate int

	mu    sync.Mutex
	sinks []FrameSink

	stopCh  chan struct{}
	done    chan struct{}
	running bool
}

func NewSignalRunner(core *SignalCore, port *ControlPort, sampleRate int) *SignalRunner {
	if sampleRate <= 0 {
		sampleRate = DDS_SAMPLE_RATE
	}
	return &SignalRunner{
		core: core,
		port: port,
		rate: sampleRate,
	}
}

// AttachSink adds a frame consumer. Attach before the sample domain
// starts ticking.
func (r *SignalRunner) AttachSink(s FrameSink) {
	r.mu.Lock()
	r.sinks = append(r.sinks, s)
	r.mu.Unlock()
}

// Step advances the pipeline by one cycle and returns the emitted frame.
// Single-caller contract: only the sample domain may call this.
func (r *SignalRunner) Step() OutputFrame {
	in := r.port.Snapshot()
	frame := r.core.Tick(in)
	r.port.PublishCycles(r.core.Cycles())
	for _, s := range r.sinks {
		s.PushFrame(frame)
	}
	return frame
}

// StepN advances the pipeline n cycles.
func (r *SignalRunner) StepN(n int) {
	for i := 0; i < n; i++ {
		r.Step()
	}
}

// Start free-runs the pipeline at the configured sample rate on its own
// goroutine. Used when no audio backend is pulling; the two modes are
// mutually exclusive.
func (r *SignalRunner) Start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.stopCh = make(chan struct{})
	r.done = make(chan struct{})
	stopCh, done := r.stopCh, r.done
	r.mu.Unlock()

	go func() {
		defer close(done)

		// Batch ticks per wall-clock interval; per-sample sleeping
		// cannot keep up at audio rates.
		const interval = 5 * time.Millisecond
		batch := int(time.Duration(r.rate) * interval / time.Second)
		if batch < 1 {
			batch = 1
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				r.StepN(batch)
			}
		}
	}()
}

// Stop halts the free-run loop and waits for it to exit.
func (r *SignalRunner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	stopCh, done := r.stopCh, r.done
	r.mu.Unlock()

	close(stopCh)
	<-done
}

// SampleRate returns the configured sample-domain tick rate in Hz.
func (r *SignalRunner) SampleRate() int {
	return r.rate
}
