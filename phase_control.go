// phase_control.go - Phase increment capture and per-channel fan-out

package main

// PhaseController holds the shared phase increment and fans it out as one
// control word per channel per cycle. A write-enable strobe adopts the
// increment presented that cycle; the new value reaches the oscillators
// starting the following cycle. Between strobes the held value is
// re-emitted unchanged. No validation: any bit pattern is a legal
// increment and produces a well-defined frequency.
type PhaseController struct {
	held  uint32
	words []uint32
}

func NewPhaseController(channels int) *PhaseController {
	return &PhaseController{
		words: make([]uint32, channels),
	}
}

// Tick emits this cycle's control words, then samples the strobe. The
// returned slice is owned by the controller and overwritten next tick.
func (pc *PhaseController) Tick(increment uint32, writeEnable bool) []uint32 {
	for ch := range pc.words {
		pc.words[ch] = pc.held
	}
	if writeEnable {
		pc.held = increment
	}
	return pc.words
}

// Held returns the increment currently in the holding register.
func (pc *PhaseController) Held() uint32 {
	return pc.held
}
