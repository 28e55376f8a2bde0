//go:build headless

// scope_backend_headless.go - No-op scope backend for headless builds

package main

type ScopeView struct {
	started bool
	done    chan struct{}
}

func NewScopeView(capture *FrameCapture, port *ControlPort, core *SignalCore) (*ScopeView, error) {
	return &ScopeView{done: make(chan struct{})}, nil
}

func (sv *ScopeView) Start() error {
	sv.started = true
	return nil
}

func (sv *ScopeView) Stop() error {
	if sv.started {
		sv.started = false
		close(sv.done)
	}
	return nil
}

func (sv *ScopeView) Done() <-chan struct{} {
	return sv.done
}
