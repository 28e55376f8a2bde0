// dds_core.go - Synchronous multi-channel DDS datapath

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

// SignalInput is everything the core samples at one clock edge. Reset is
// synchronous: a tick with Reset set force-zeroes every register in the
// pipeline and emits an all-zero frame that same tick.
type SignalInput struct {
	Reset          bool
	PhaseIncrement uint32
	Gain           int16
	WriteEnable    bool
}

// SignalCore is the full datapath: phase control, oscillator bank,
// latency aligner, gain scaler, output packing. One Tick models one
// clock edge; every stage advances exactly once, unconditionally, so the
// core emits exactly one frame per tick with no stalls and no
// data-dependent timing.
//
// The first DDS_LATENCY frames after reset release are pipeline fill.
// There is no valid flag; consumers count cycles.
type SignalCore struct {
	channels int
	cycles   uint64

	gainReg int16

	phase   *PhaseController
	bank    *OscillatorBank
	aligner *LatencyAligner
	scaler  *GainScaler
	output  *OutputPipeline
}

// NewSignalCore builds a core with the given channel count. Every
// channel gets its own oscillator and pipeline registers; the only state
// shared across channels is the broadcast gain snapshot.
func NewSignalCore(channels int) *SignalCore {
	if channels < 1 {
		channels = 1
	}
	return &SignalCore{
		channels: channels,
		phase:    NewPhaseController(channels),
		bank:     NewOscillatorBank(channels),
		aligner:  NewLatencyAligner(channels, DDS_ALIGN_DEPTH),
		scaler:   NewGainScaler(channels),
		output:   NewOutputPipeline(channels),
	}
}

// Tick advances the whole pipeline by one cycle and returns that cycle's
// output frame. The frame's backing array is reused on the next tick;
// callers that retain frames must copy them.
func (c *SignalCore) Tick(in SignalInput) OutputFrame {
	if in.Reset {
		c.Reset()
		return c.output.frame
	}

	words := c.phase.Tick(in.PhaseIncrement, in.WriteEnable)
	raw := c.bank.Tick(words)
	aligned := c.aligner.Tick(raw)
	scaled := c.scaler.Tick(aligned, c.gainReg)
	c.gainReg = in.Gain
	frame := c.output.Tick(scaled)

	c.cycles++
	return frame
}

// Channels returns the fixed channel count.
func (c *SignalCore) Channels() int {
	return c.channels
}

// Cycles returns the number of ticks since construction or the last
// reset.
func (c *SignalCore) Cycles() uint64 {
	return c.cycles
}

// Increment returns the phase increment currently held by the phase
// controller.
func (c *SignalCore) Increment() uint32 {
	return c.phase.Held()
}
