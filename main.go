// main.go - CLI entry point for the DDS Engine

/*
▓█████▄ ▓█████▄   ██████    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▒██▀ ██▌▒██▀ ██▌▒██    ▒    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
░██   █▌░██   █▌░ ▓██▄      ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░▓█▄   ▌░▓█▄   ▌  ▒   ██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░▒████▓ ░▒████▓ ▒██████▒▒   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
 ▒▒▓  ▒  ▒▒▓  ▒ ▒ ▒▓▒ ▒ ░   ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ░ ▒  ▒  ░ ▒  ▒ ░ ░▒  ░ ░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ░ ░  ░  ░ ░  ░ ░  ░  ░        ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
   ░       ░          ░        ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/DDSEngine
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Capture window depth shared by the scope and batch modes: one screen
// width of frames.
const scopeCaptureDepth = 640

func boilerPlate() {
	fmt.Println("\nDDS Engine - multi-channel direct digital synthesis core")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("License: GPLv3 or later")
}

func main() {
	boilerPlate()

	var (
		channels  int
		rate      int
		incStr    string
		gain      int
		monitorCh int
		useAudio  bool
		useScope  bool
		script    string
		cycles    int
	)
	flag.IntVar(&channels, "channels", DDS_NUM_CHANNELS, "number of DDS channels")
	flag.IntVar(&rate, "rate", DDS_SAMPLE_RATE, "sample-domain tick rate in Hz")
	flag.StringVar(&incStr, "inc", "0x10000000", "initial phase increment (fraction of a turn, 2^32 = full turn)")
	flag.IntVar(&gain, "gain", GAIN_HALF, "initial Q15 gain (-32768..32767)")
	flag.IntVar(&monitorCh, "channel", 0, "channel monitored by the audio backend")
	flag.BoolVar(&useAudio, "audio", false, "play the monitored channel through the host audio device")
	flag.BoolVar(&useScope, "scope", false, "open the waveform scope window")
	flag.StringVar(&script, "script", "", "run a Lua stimulus script and exit")
	flag.IntVar(&cycles, "cycles", 0, "run this many cycles, dump the final frame and exit")
	flag.Parse()

	inc, err := strconv.ParseUint(incStr, 0, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -inc %q: %v\n", incStr, err)
		os.Exit(1)
	}

	// The core clamps nonsense channel counts; size everything downstream
	// from what it actually built.
	core := NewSignalCore(channels)
	port := NewControlPort()
	runner := NewSignalRunner(core, port, rate)
	capture := NewFrameCapture(core.Channels(), scopeCaptureDepth)
	runner.AttachSink(capture)

	port.WriteIncrement(uint32(inc))
	port.WriteGain(int16(gain))
	port.Strobe()

	// Scripted mode: the script owns the sample domain, nothing else runs.
	if script != "" {
		stim := NewLuaStimulus(runner, port)
		if err := stim.RunFile(script); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	// Batch mode: run, dump the last frame, exit.
	if cycles > 0 {
		var frame OutputFrame
		for i := 0; i < cycles; i++ {
			frame = runner.Step()
		}
		for ch := 0; ch < core.Channels(); ch++ {
			fmt.Printf("ch%d: real=%6d imag=%6d (0x%08X)\n",
				ch, frame.Real(ch), frame.Imag(ch), frame[ch])
		}
		return
	}

	// Interactive mode: the audio backend or the free-run loop owns the
	// sample domain, the terminal host drives the registers.
	var audio *OtoPlayer
	if useAudio {
		audio, err = NewOtoPlayer(rate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed: %v\n", err)
			os.Exit(1)
		}
		audio.SetupPlayer(runner, monitorCh)
		if err := audio.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "audio start failed: %v\n", err)
			os.Exit(1)
		}
	} else {
		runner.Start()
	}

	var scope *ScopeView
	if useScope {
		scope, err = NewScopeView(capture, port, core)
		if err != nil {
			fmt.Fprintf(os.Stderr, "scope init failed: %v\n", err)
			os.Exit(1)
		}
		if err := scope.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "scope start failed: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("\nkeys: =/- frequency  ]/[ gain  0 zero-inc  r reset  q quit")
	host := NewTerminalHost(port)
	host.Start()

	if scope != nil {
		select {
		case <-host.QuitRequested():
		case <-scope.Done():
		}
	} else {
		<-host.QuitRequested()
	}

	host.Stop()
	if scope != nil {
		scope.Stop()
	}
	if audio != nil {
		audio.Stop()
	} else {
		runner.Stop()
	}
}
