// dds_capture.go - Bounded ring capture of output frames

package main

import "sync"

// FrameCapture retains the most recent window of output frames for the
// scope display and for tests. It is a FrameSink; pushes come from the
// sample domain, snapshots from wherever the consumer runs.
type FrameCapture struct {
	mu       sync.Mutex
	channels int
	frames   []uint32 // ring of depth*channels packed words
	depth    int
	pos      int
	filled   bool
}

func NewFrameCapture(channels, depth int) *FrameCapture {
	if depth < 1 {
		depth = 1
	}
	return &FrameCapture{
		channels: channels,
		frames:   make([]uint32, depth*channels),
		depth:    depth,
	}
}

// PushFrame stores one frame, overwriting the oldest once full.
func (fc *FrameCapture) PushFrame(frame OutputFrame) {
	fc.mu.Lock()
	copy(fc.frames[fc.pos*fc.channels:], frame)
	fc.pos++
	if fc.pos == fc.depth {
		fc.pos = 0
		fc.filled = true
	}
	fc.mu.Unlock()
}

// Window copies the captured frames, oldest first, one packed word per
// channel per frame.
func (fc *FrameCapture) Window() []OutputFrame {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	count := fc.pos
	start := 0
	if fc.filled {
		count = fc.depth
		start = fc.pos
	}
	out := make([]OutputFrame, count)
	for i := 0; i < count; i++ {
		idx := (start + i) % fc.depth
		f := make(OutputFrame, fc.channels)
		copy(f, fc.frames[idx*fc.channels:(idx+1)*fc.channels])
		out[i] = f
	}
	return out
}

// Len returns how many frames are currently held.
func (fc *FrameCapture) Len() int {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.filled {
		return fc.depth
	}
	return fc.pos
}
