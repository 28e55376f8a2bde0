// dds_oscillator.go - Numerically-controlled oscillator bank

package main

// SampleWord is one channel's quadrature output for one cycle.
type SampleWord struct {
	Real int16
	Imag int16
}

// nco is a single numerically-controlled oscillator: a 32-bit wrapping
// phase accumulator feeding the sine table, followed by an explicit
// pipeline of DDS_OSC_DEPTH register stages. Each channel owns its own
// nco; no state is shared between channels.
type nco struct {
	acc  uint32
	pipe [DDS_OSC_DEPTH]SampleWord
	pos  int
}

// tick advances the accumulator by this cycle's control word, pushes the
// resulting sample into the pipeline and returns the sample that entered
// DDS_OSC_DEPTH cycles ago. During the first DDS_OSC_DEPTH cycles after
// reset the returned samples are pipeline fill and carry no meaning.
func (o *nco) tick(word uint32) SampleWord {
	o.acc += word
	real, imag := phaseToAmplitude(o.acc)

	out := o.pipe[o.pos]
	o.pipe[o.pos] = SampleWord{Real: real, Imag: imag}
	o.pos++
	if o.pos == DDS_OSC_DEPTH {
		o.pos = 0
	}
	return out
}

func (o *nco) reset() {
	o.acc = 0
	o.pipe = [DDS_OSC_DEPTH]SampleWord{}
	o.pos = 0
}

// OscillatorBank replicates one nco per channel and advances them in
// lockstep, one sample pair per channel per cycle.
type OscillatorBank struct {
	oscs []nco
	out  []SampleWord
}

func NewOscillatorBank(channels int) *OscillatorBank {
	return &OscillatorBank{
		oscs: make([]nco, channels),
		out:  make([]SampleWord, channels),
	}
}

// Tick consumes one control word per channel and emits one sample pair
// per channel. The returned slice is owned by the bank and overwritten
// next tick.
func (b *OscillatorBank) Tick(words []uint32) []SampleWord {
	for ch := range b.oscs {
		b.out[ch] = b.oscs[ch].tick(words[ch])
	}
	return b.out
}

// Phase returns a channel's current accumulator value.
func (b *OscillatorBank) Phase(channel int) uint32 {
	return b.oscs[channel].acc
}
