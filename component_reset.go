// component_reset.go - Reset() methods for all pipeline components (hard reset support)

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

// Reset is the synchronous hard reset: every register in every stage
// clears to zero within the tick that asserts it. There is no drain
// phase; in-flight pipeline content is discarded. Also reachable through
// SignalInput.Reset and the DDS_CTRL reset bit.
func (c *SignalCore) Reset() {
	c.phase.Reset()
	c.bank.Reset()
	c.aligner.Reset()
	c.scaler.Reset()
	c.output.Reset()
	c.gainReg = 0
	c.cycles = 0
}

// PhaseController.Reset clears the holding register and fan-out words.
func (pc *PhaseController) Reset() {
	pc.held = 0
	for ch := range pc.words {
		pc.words[ch] = 0
	}
}

// OscillatorBank.Reset zeroes every accumulator and pipeline register.
func (b *OscillatorBank) Reset() {
	for ch := range b.oscs {
		b.oscs[ch].reset()
	}
	for ch := range b.out {
		b.out[ch] = SampleWord{}
	}
}

// LatencyAligner.Reset zeroes every delay register.
func (a *LatencyAligner) Reset() {
	for ch := range a.pipes {
		for i := range a.pipes[ch] {
			a.pipes[ch][i] = SampleWord{}
		}
		a.out[ch] = SampleWord{}
	}
	a.pos = 0
}

// GainScaler.Reset zeroes the multiply registers.
func (g *GainScaler) Reset() {
	for ch := range g.reg {
		g.reg[ch] = SampleWord{}
		g.out[ch] = SampleWord{}
	}
}

// OutputPipeline.Reset zeroes the output registers.
func (p *OutputPipeline) Reset() {
	for ch := range p.reg {
		p.reg[ch] = 0
		p.frame[ch] = 0
	}
}
