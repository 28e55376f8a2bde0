// dds_core_test.go - Pipeline-level properties of the DDS core

package main

import "testing"

// holdInput is a cycle with no strobe: increment input is ignored, gain
// is re-presented every tick as the register file would.
func holdInput(gain int16) SignalInput {
	return SignalInput{Gain: gain}
}

// strobeInput is a cycle with the write-enable asserted.
func strobeInput(inc uint32, gain int16) SignalInput {
	return SignalInput{PhaseIncrement: inc, Gain: gain, WriteEnable: true}
}

// snapFrame copies a frame out of the core's reused backing array.
func snapFrame(f OutputFrame) OutputFrame {
	return append(OutputFrame(nil), f...)
}

func framesEqual(a, b OutputFrame) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// runCore ticks n cycles with a constant input and returns the last
// frame.
func runCore(core *SignalCore, in SignalInput, n int) OutputFrame {
	var f OutputFrame
	for i := 0; i < n; i++ {
		f = core.Tick(in)
	}
	return snapFrame(f)
}

func TestZeroIncrementConstantOutput(t *testing.T) {
	core := NewSignalCore(DDS_NUM_CHANNELS)
	core.Tick(strobeInput(0, GAIN_UNITY))
	steady := runCore(core, holdInput(GAIN_UNITY), 2*DDS_LATENCY)

	wantReal := scaleQ15(DDS_FULL_SCALE, GAIN_UNITY)
	for ch := 0; ch < DDS_NUM_CHANNELS; ch++ {
		if steady.Real(ch) != wantReal || steady.Imag(ch) != 0 {
			t.Fatalf("channel %d steady state (%d, %d), want (%d, 0)",
				ch, steady.Real(ch), steady.Imag(ch), wantReal)
		}
	}

	for i := 0; i < 100; i++ {
		f := core.Tick(holdInput(GAIN_UNITY))
		if !framesEqual(f, steady) {
			t.Fatalf("cycle %d: zero-increment output moved: %v != %v", i, f, steady)
		}
	}
}

func TestPeriodicity(t *testing.T) {
	cases := []struct {
		inc    uint32
		period int
	}{
		{1 << 28, 16},
		{1 << 24, 256},
		{1 << 30, 4},
	}
	for _, c := range cases {
		core := NewSignalCore(1)
		core.Tick(strobeInput(c.inc, GAIN_UNITY))
		runCore(core, holdInput(GAIN_UNITY), 2*DDS_LATENCY)

		frames := make([]OutputFrame, 2*c.period)
		for i := range frames {
			frames[i] = snapFrame(core.Tick(holdInput(GAIN_UNITY)))
		}
		for i := 0; i < c.period; i++ {
			if !framesEqual(frames[i], frames[i+c.period]) {
				t.Fatalf("inc %08X: frame %d != frame %d", c.inc, i, i+c.period)
			}
		}
		if framesEqual(frames[0], frames[c.period/2]) {
			t.Fatalf("inc %08X: output suspiciously constant", c.inc)
		}
	}
}

// A phase change strobed at cycle t first appears on the output bus at
// cycle t+DDS_LATENCY, on every channel at once, regardless of values.
func TestFixedConfigLatency(t *testing.T) {
	for _, inc := range []uint32{1 << 28, 1 << 20, 0xDEADBEEF} {
		core := NewSignalCore(DDS_NUM_CHANNELS)
		core.Tick(strobeInput(0, GAIN_UNITY))
		steady := runCore(core, holdInput(GAIN_UNITY), 3*DDS_LATENCY)

		core.Tick(strobeInput(inc, GAIN_UNITY)) // cycle t
		for i := 1; i < DDS_LATENCY; i++ {
			f := core.Tick(holdInput(GAIN_UNITY))
			if !framesEqual(f, steady) {
				t.Fatalf("inc %08X: output changed early at t+%d", inc, i)
			}
		}
		f := core.Tick(holdInput(GAIN_UNITY))
		if framesEqual(f, steady) {
			t.Fatalf("inc %08X: output unchanged at t+%d", inc, DDS_LATENCY)
		}
		// Simultaneity: both channels moved on the same cycle.
		for ch := 1; ch < DDS_NUM_CHANNELS; ch++ {
			if f[ch] != f[0] {
				t.Fatalf("inc %08X: channels diverged at the latency edge: %v", inc, f)
			}
		}
	}
}

// Gain has no strobe and a shorter register path; its latency is a
// different constant, but still a constant.
func TestFixedGainLatency(t *testing.T) {
	core := NewSignalCore(1)
	core.Tick(strobeInput(0, GAIN_HALF))
	steady := runCore(core, holdInput(GAIN_HALF), 3*DDS_LATENCY)

	wantOld := scaleQ15(DDS_FULL_SCALE, GAIN_HALF)
	if steady.Real(0) != wantOld {
		t.Fatalf("steady real %d, want %d", steady.Real(0), wantOld)
	}

	const newGain = 8192
	core.Tick(holdInput(newGain)) // cycle t
	for i := 1; i < DDS_GAIN_LATENCY; i++ {
		f := core.Tick(holdInput(newGain))
		if f.Real(0) != wantOld {
			t.Fatalf("gain changed early at t+%d: %d", i, f.Real(0))
		}
	}
	f := core.Tick(holdInput(newGain))
	if want := scaleQ15(DDS_FULL_SCALE, newGain); f.Real(0) != want {
		t.Fatalf("gain change not visible at t+%d: got %d, want %d",
			DDS_GAIN_LATENCY, f.Real(0), want)
	}
}

// One frame per tick, unconditionally: cycles advance in lockstep with
// Tick calls no matter what the inputs do.
func TestThroughputOneFramePerTick(t *testing.T) {
	core := NewSignalCore(3)
	for i := 0; i < 1000; i++ {
		in := SignalInput{
			PhaseIncrement: uint32(i) * 0x01010101,
			Gain:           int16(i * 37),
			WriteEnable:    i%7 == 0,
		}
		f := core.Tick(in)
		if len(f) != 3 {
			t.Fatalf("cycle %d: frame has %d words, want 3", i, len(f))
		}
		if core.Cycles() != uint64(i+1) {
			t.Fatalf("cycle count %d after %d ticks", core.Cycles(), i+1)
		}
	}
}

// Reference scenario: N=2, increment 2^28 (1/16 turn per cycle), gain
// 16384 (0.5 in Q15). Both channels emit the same 16-cycle quadrature
// waveform with positive peak 16383 (and -16384 on the negative side,
// the floor of -16383.5 — truncation, not symmetry).
func TestEndToEndReferenceScenario(t *testing.T) {
	core := NewSignalCore(2)
	core.Tick(strobeInput(1<<28, GAIN_HALF))
	runCore(core, holdInput(GAIN_HALF), 2*DDS_LATENCY)

	const period = 16
	frames := make([]OutputFrame, 2*period)
	for i := range frames {
		frames[i] = snapFrame(core.Tick(holdInput(GAIN_HALF)))
	}

	maxReal, minReal := int16(-32768), int16(32767)
	for i, f := range frames {
		if f[0] != f[1] {
			t.Fatalf("frame %d: channels differ: %08X vs %08X", i, f[0], f[1])
		}
		if !framesEqual(f, frames[i%period]) {
			t.Fatalf("frame %d breaks 16-cycle periodicity", i)
		}
		if r := f.Real(0); r > maxReal {
			maxReal = r
		}
		if r := f.Real(0); r < minReal {
			minReal = r
		}
	}
	if maxReal != 16383 {
		t.Fatalf("positive peak %d, want 16383", maxReal)
	}
	if minReal != -16384 {
		t.Fatalf("negative peak %d, want -16384", minReal)
	}

	// Quadrature: real leads imaginary by a quarter period.
	for i := 0; i+period/4 < len(frames); i++ {
		if frames[i].Real(0) != frames[i+period/4].Imag(0) {
			t.Fatalf("frame %d: real %d != imag a quarter period later %d",
				i, frames[i].Real(0), frames[i+period/4].Imag(0))
		}
	}
}

// Channel count is a construction parameter; the datapath replicates
// uniformly for any N.
func TestArbitraryChannelCount(t *testing.T) {
	for _, n := range []int{1, 2, 7, 16} {
		core := NewSignalCore(n)
		core.Tick(strobeInput(1<<28, GAIN_UNITY))
		f := runCore(core, holdInput(GAIN_UNITY), 2*DDS_LATENCY)
		if len(f) != n {
			t.Fatalf("N=%d: frame has %d words", n, len(f))
		}
		for ch := 1; ch < n; ch++ {
			if f[ch] != f[0] {
				t.Fatalf("N=%d: channel %d differs from channel 0", n, ch)
			}
		}
	}
}
