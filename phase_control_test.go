// phase_control_test.go - Tests for increment capture and fan-out timing

package main

import "testing"

func TestPhaseControllerCaptureNextCycle(t *testing.T) {
	pc := NewPhaseController(2)

	words := pc.Tick(0x1234, false)
	if words[0] != 0 || words[1] != 0 {
		t.Fatalf("expected zero words before any strobe, got %v", words)
	}

	// Strobe cycle still emits the old value; the new increment appears
	// the following cycle.
	words = pc.Tick(0x1234, true)
	if words[0] != 0 {
		t.Fatalf("strobe cycle emitted new value early: %08X", words[0])
	}
	words = pc.Tick(0xFFFF, false)
	if words[0] != 0x1234 {
		t.Fatalf("expected captured value 0x1234, got %08X", words[0])
	}
}

func TestPhaseControllerHoldsBetweenStrobes(t *testing.T) {
	pc := NewPhaseController(1)
	pc.Tick(0xABCD, true)

	// The increment input changes every cycle; without a strobe the held
	// value must not follow it.
	for i := 0; i < 20; i++ {
		words := pc.Tick(uint32(i)*0x1111, false)
		if words[0] != 0xABCD {
			t.Fatalf("cycle %d: held value drifted to %08X", i, words[0])
		}
	}
}

func TestPhaseControllerFanOutUniform(t *testing.T) {
	pc := NewPhaseController(8)
	pc.Tick(0xDEADBEEF, true)
	words := pc.Tick(0, false)
	for ch, w := range words {
		if w != 0xDEADBEEF {
			t.Fatalf("channel %d got %08X, want DEADBEEF", ch, w)
		}
	}
}

// Any bit pattern is a legal increment; the controller performs no
// validation.
func TestPhaseControllerAcceptsAnyPattern(t *testing.T) {
	pc := NewPhaseController(1)
	for _, inc := range []uint32{0, 1, 0x7FFFFFFF, 0x80000000, 0xFFFFFFFF} {
		pc.Tick(inc, true)
		words := pc.Tick(0, false)
		if words[0] != inc {
			t.Fatalf("increment %08X not captured, got %08X", inc, words[0])
		}
	}
}
