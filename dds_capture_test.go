// dds_capture_test.go - Tests for the frame capture ring and runner fan-out

package main

import (
	"testing"
	"time"
)

func TestFrameCaptureWindowOrder(t *testing.T) {
	fc := NewFrameCapture(1, 4)
	for n := 1; n <= 3; n++ {
		fc.PushFrame(OutputFrame{uint32(n)})
	}
	w := fc.Window()
	if len(w) != 3 {
		t.Fatalf("window length %d, want 3", len(w))
	}
	for i, f := range w {
		if f[0] != uint32(i+1) {
			t.Fatalf("window[%d] = %d, want %d", i, f[0], i+1)
		}
	}
}

func TestFrameCaptureRingWrap(t *testing.T) {
	fc := NewFrameCapture(2, 4)
	for n := 1; n <= 10; n++ {
		fc.PushFrame(OutputFrame{uint32(n), uint32(n * 100)})
	}
	w := fc.Window()
	if len(w) != 4 {
		t.Fatalf("window length %d, want 4", len(w))
	}
	// Oldest surviving frame is 7.
	for i, f := range w {
		want := uint32(7 + i)
		if f[0] != want || f[1] != want*100 {
			t.Fatalf("window[%d] = %v, want {%d, %d}", i, f, want, want*100)
		}
	}
	if fc.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", fc.Len())
	}
}

func TestCaptureWidthFollowsClampedCore(t *testing.T) {
	core := NewSignalCore(0)
	if core.Channels() != 1 {
		t.Fatalf("channel count %d, want clamp to 1", core.Channels())
	}
	port := NewControlPort()
	runner := NewSignalRunner(core, port, DDS_SAMPLE_RATE)
	fc := NewFrameCapture(core.Channels(), 8)
	runner.AttachSink(fc)
	runner.StepN(4)

	w := fc.Window()
	if len(w) != 4 {
		t.Fatalf("captured %d frames, want 4", len(w))
	}
	for i, f := range w {
		if len(f) != core.Channels() {
			t.Fatalf("frame %d is %d channels wide, want %d", i, len(f), core.Channels())
		}
	}
}

func TestRunnerFansOutToSinks(t *testing.T) {
	core := NewSignalCore(2)
	port := NewControlPort()
	runner := NewSignalRunner(core, port, DDS_SAMPLE_RATE)
	fc := NewFrameCapture(2, 64)
	runner.AttachSink(fc)

	port.WriteIncrement(1 << 28)
	port.WriteGain(GAIN_UNITY)
	port.Strobe()
	runner.StepN(40)

	if fc.Len() != 40 {
		t.Fatalf("capture saw %d frames after 40 steps", fc.Len())
	}
	if got := port.HandleRegisterRead(DDS_CYCLES); got != 40 {
		t.Fatalf("published cycle count %d, want 40", got)
	}
}

func TestRunnerFreeRunStartStop(t *testing.T) {
	core := NewSignalCore(1)
	port := NewControlPort()
	runner := NewSignalRunner(core, port, DDS_SAMPLE_RATE)

	runner.Start()
	deadline := time.Now().Add(2 * time.Second)
	for core.Cycles() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	runner.Stop()

	if core.Cycles() == 0 {
		t.Fatal("free-run loop never ticked")
	}
	after := core.Cycles()
	time.Sleep(20 * time.Millisecond)
	if core.Cycles() != after {
		t.Fatal("runner kept ticking after Stop")
	}
}
