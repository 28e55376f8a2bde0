// stimulus_lua.go - Lua-scripted register stimulus for the DDS core

package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// LuaStimulus drives the control port from a Lua script with a
// cycle-accurate API, standing in for the host configuration driver.
// Scripts run with the stimulus owning the sample domain: dds.tick(n)
// advances the pipeline deterministically, so a script can reproduce
// exact register/cycle sequences for experiments and goldens.
//
//	dds.write_inc(inc)   stage a 32-bit phase increment
//	dds.strobe()         adopt the staged increment next cycle
//	dds.write_gain(g)    set the shared Q15 gain
//	dds.reset(on)        assert or release reset
//	dds.tick(n)          advance n cycles
//	dds.sample(ch)       -> real, imag of the last emitted frame
//	dds.cycles()         -> cycles since reset release
//	dds.latency()        -> fixed config-to-output latency
type LuaStimulus struct {
	runner *SignalRunner
	port   *ControlPort
	last   OutputFrame
}

func NewLuaStimulus(runner *SignalRunner, port *ControlPort) *LuaStimulus {
	return &LuaStimulus{
		runner: runner,
		port:   port,
		last:   make(OutputFrame, runner.core.Channels()),
	}
}

// RunFile executes a stimulus script from disk.
func (s *LuaStimulus) RunFile(path string) error {
	L := lua.NewState()
	defer L.Close()
	s.register(L)
	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("stimulus script %s: %w", path, err)
	}
	return nil
}

// RunString executes an inline stimulus script.
func (s *LuaStimulus) RunString(src string) error {
	L := lua.NewState()
	defer L.Close()
	s.register(L)
	if err := L.DoString(src); err != nil {
		return fmt.Errorf("stimulus script: %w", err)
	}
	return nil
}

func (s *LuaStimulus) register(L *lua.LState) {
	tbl := L.NewTable()

	L.SetField(tbl, "write_inc", L.NewFunction(func(L *lua.LState) int {
		s.port.WriteIncrement(uint32(L.CheckInt64(1)))
		return 0
	}))
	L.SetField(tbl, "strobe", L.NewFunction(func(L *lua.LState) int {
		s.port.Strobe()
		return 0
	}))
	L.SetField(tbl, "write_gain", L.NewFunction(func(L *lua.LState) int {
		s.port.WriteGain(int16(L.CheckInt(1)))
		return 0
	}))
	L.SetField(tbl, "reset", L.NewFunction(func(L *lua.LState) int {
		s.port.SetReset(L.CheckBool(1))
		return 0
	}))
	L.SetField(tbl, "tick", L.NewFunction(func(L *lua.LState) int {
		n := L.OptInt(1, 1)
		for i := 0; i < n; i++ {
			copy(s.last, s.runner.Step())
		}
		return 0
	}))
	L.SetField(tbl, "sample", L.NewFunction(func(L *lua.LState) int {
		ch := L.OptInt(1, 0)
		if ch < 0 || ch >= len(s.last) {
			L.ArgError(1, "channel out of range")
			return 0
		}
		L.Push(lua.LNumber(s.last.Real(ch)))
		L.Push(lua.LNumber(s.last.Imag(ch)))
		return 2
	}))
	L.SetField(tbl, "cycles", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(s.runner.core.Cycles()))
		return 1
	}))
	L.SetField(tbl, "latency", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(DDS_LATENCY))
		return 1
	}))

	L.SetGlobal("dds", tbl)
}
