// dds_interfaces.go - Common interfaces for sample sinks and host backends

package main

// FrameSink is implemented by anything that consumes the output bus.
// PushFrame is called once per tick from the sample domain; the frame's
// backing array is reused after the call returns, so sinks that retain
// data must copy.
type FrameSink interface {
	PushFrame(frame OutputFrame)
}

// AudioOutput is implemented by audio playback backends.
type AudioOutput interface {
	// Start begins pulling samples from the runner.
	Start() error
	// Stop halts playback and releases the device.
	Stop() error
}

// ScopeOutput is implemented by waveform display backends.
type ScopeOutput interface {
	// Start opens the display. Blocking backends return when closed.
	Start() error
	// Stop closes the display.
	Stop() error
	// Done is closed when the display has shut down.
	Done() <-chan struct{}
}
