// control_port.go - Configuration registers and the clock-domain crossing

package main

import "sync/atomic"

// ControlPort is the boundary between the control-interface clock domain
// and the sample domain. Writers (terminal host, Lua stimulus, MMIO bus)
// run on arbitrary goroutines; the sample domain calls Snapshot exactly
// once per tick and receives a coherent {increment, gain, strobe, reset}
// set with the strobe consumed on read.
//
// All four fields live in one packed 64-bit word so a snapshot can never
// observe a half-written configuration. The underlying hardware leaves
// this crossing unsynchronized and relies on timing constraints; a
// software model with genuinely concurrent writers cannot, hence the
// atomics.
type ControlPort struct {
	state  atomic.Uint64
	cycles atomic.Uint64
}

// state word layout
const (
	portGainShift = 0  // [15:0]  gain, Q15
	portIncShift  = 16 // [47:16] phase increment
	portStrobeBit = uint64(1) << 48
	portResetBit  = uint64(1) << 49
)

func NewControlPort() *ControlPort {
	return &ControlPort{}
}

// WriteIncrement stages a new phase increment. It does not take effect
// until a strobe is written; staged and strobed in either order within
// the same tick, both are seen together.
func (p *ControlPort) WriteIncrement(inc uint32) {
	for {
		old := p.state.Load()
		next := old&^(uint64(0xFFFFFFFF)<<portIncShift) | uint64(inc)<<portIncShift
		if p.state.CompareAndSwap(old, next) {
			return
		}
	}
}

// WriteGain sets the shared Q15 gain. Gain has no strobe; the sample
// domain adopts it at the next tick boundary.
func (p *ControlPort) WriteGain(gain int16) {
	for {
		old := p.state.Load()
		next := old&^uint64(0xFFFF) | uint64(uint16(gain))
		if p.state.CompareAndSwap(old, next) {
			return
		}
	}
}

// Strobe requests adoption of the staged increment. The flag stays set
// until the sample domain consumes it, so a strobe is never lost between
// ticks; two strobes within one tick collapse into one, which matches a
// one-cycle write-enable pulse.
func (p *ControlPort) Strobe() {
	for {
		old := p.state.Load()
		if p.state.CompareAndSwap(old, old|portStrobeBit) {
			return
		}
	}
}

// SetReset asserts or releases the reset line. Reset is level-held, not
// a pulse: the core zeroes itself every tick it is asserted.
func (p *ControlPort) SetReset(on bool) {
	for {
		old := p.state.Load()
		next := old &^ portResetBit
		if on {
			next = old | portResetBit
		}
		if p.state.CompareAndSwap(old, next) {
			return
		}
	}
}

// Snapshot captures the configuration for one tick and consumes the
// strobe. Called only from the sample domain, once per tick.
func (p *ControlPort) Snapshot() SignalInput {
	for {
		old := p.state.Load()
		if old&portStrobeBit == 0 || p.state.CompareAndSwap(old, old&^portStrobeBit) {
			return SignalInput{
				Reset:          old&portResetBit != 0,
				PhaseIncrement: uint32(old >> portIncShift),
				Gain:           int16(uint16(old)),
				WriteEnable:    old&portStrobeBit != 0,
			}
		}
	}
}

// PublishCycles is called by the sample domain after each tick so the
// control domain can read elapsed cycles back.
func (p *ControlPort) PublishCycles(n uint64) {
	p.cycles.Store(n)
}

// HandleRegisterWrite routes an MMIO-style register write.
func (p *ControlPort) HandleRegisterWrite(addr uint32, value uint32) {
	switch addr {
	case DDS_PHASE_INC:
		p.WriteIncrement(value)
	case DDS_GAIN:
		p.WriteGain(int16(uint16(value)))
	case DDS_CTRL:
		if value&DDS_CTRL_STROBE != 0 {
			p.Strobe()
		}
		p.SetReset(value&DDS_CTRL_RESET != 0)
	}
}

// HandleRegisterRead routes an MMIO-style register read.
func (p *ControlPort) HandleRegisterRead(addr uint32) uint32 {
	switch addr {
	case DDS_PHASE_INC:
		return uint32(p.state.Load() >> portIncShift)
	case DDS_GAIN:
		return uint32(uint16(p.state.Load()))
	case DDS_STATUS:
		if p.state.Load()&portResetBit != 0 {
			return DDS_CTRL_RESET
		}
		return 0
	case DDS_CYCLES:
		return uint32(p.cycles.Load())
	default:
		return 0
	}
}
