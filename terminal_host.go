// terminal_host.go - Raw-stdin interactive control of the DDS registers

package main

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// Interactive key bindings. Each key becomes one or more control-port
// register writes; the sample domain picks them up at its next tick
// boundary.
//
//	= / -   increment frequency up / down by one step
//	] / [   gain up / down
//	0       zero the increment (constant output)
//	r       pulse reset
//	q, ^C   quit
const (
	hostFreqStep = int64(1) << 24 // 1/256 turn per cycle
	hostGainStep = int16(1024)
)

// TerminalHost reads raw stdin and translates keys into ControlPort
// writes. Only instantiated in main.go for interactive use — never in
// tests.
type TerminalHost struct {
	port         *ControlPort
	quitCh       chan struct{}
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	nonblockSet  bool
	oldTermState *term.State
}

// NewTerminalHost creates a host adapter driving the given control port.
func NewTerminalHost(port *ControlPort) *TerminalHost {
	return &TerminalHost{
		port:   port,
		quitCh: make(chan struct{}),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// QuitRequested is closed when the user presses q or Ctrl-C.
func (h *TerminalHost) QuitRequested() <-chan struct{} {
	return h.quitCh
}

// Start sets stdin to raw non-blocking mode and begins reading keys in a
// goroutine. Call Stop() to restore stdin.
func (h *TerminalHost) Start() {
	h.fd = int(os.Stdin.Fd())

	// Raw mode disables OS-level echo and line buffering so single
	// keypresses arrive immediately.
	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set raw mode: %v\n", err)
		close(h.done)
		return
	}
	h.oldTermState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set nonblocking stdin: %v\n", err)
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
		close(h.done)
		return
	}
	h.nonblockSet = true

	go func() {
		defer close(h.done)
		buf := make([]byte, 1)

		for {
			select {
			case <-h.stopCh:
				return
			default:
			}

			n, err := syscall.Read(h.fd, buf)
			if n > 0 {
				if h.handleKey(buf[0]) {
					return
				}
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
}

// handleKey applies one keypress. Returns true when the host should quit.
func (h *TerminalHost) handleKey(b byte) bool {
	switch b {
	case 'q', 0x03: // q or Ctrl-C
		close(h.quitCh)
		return true
	case '=', '+':
		h.stepIncrement(hostFreqStep)
	case '-':
		h.stepIncrement(-hostFreqStep)
	case '0':
		h.port.WriteIncrement(0)
		h.port.Strobe()
	case ']':
		h.stepGain(hostGainStep)
	case '[':
		h.stepGain(-hostGainStep)
	case 'r':
		// Hold reset long enough for the sample domain to tick at
		// least once, then release.
		h.port.SetReset(true)
		time.Sleep(10 * time.Millisecond)
		h.port.SetReset(false)
	default:
		return false
	}
	h.printStatus()
	return false
}

func (h *TerminalHost) stepIncrement(delta int64) {
	inc := h.port.HandleRegisterRead(DDS_PHASE_INC)
	h.port.WriteIncrement(uint32(int64(inc) + delta))
	h.port.Strobe()
}

func (h *TerminalHost) stepGain(delta int16) {
	gain := int16(uint16(h.port.HandleRegisterRead(DDS_GAIN)))
	next := int32(gain) + int32(delta)
	if next > 32767 {
		next = 32767
	}
	if next < -32768 {
		next = -32768
	}
	h.port.WriteGain(int16(next))
}

// printStatus emits one status line. Raw mode needs explicit \r\n.
func (h *TerminalHost) printStatus() {
	inc := h.port.HandleRegisterRead(DDS_PHASE_INC)
	gain := int16(uint16(h.port.HandleRegisterRead(DDS_GAIN)))
	fmt.Printf("inc=%08X gain=%6d cycles=%d\r\n",
		inc, gain, h.port.HandleRegisterRead(DDS_CYCLES))
}

// Stop terminates the key-reading goroutine and restores stdin.
func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.nonblockSet {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
