// gain_scale.go - Shared Q15 gain multiply with bit-exact truncation

package main

// scaleQ15 multiplies a 16-bit sample by a Q15 gain and takes bits 30..15
// of the 32-bit intermediate: plain arithmetic shift, truncated toward
// negative infinity, never rounded, never saturated. Downstream
// calibration depends on this exact behavior, so any "nicer" arithmetic
// here is a bug.
func scaleQ15(sample, gain int16) int16 {
	return int16((int32(sample) * int32(gain)) >> 15)
}

// GainScaler applies one shared gain coefficient to every channel's real
// and imaginary components each cycle, through a single multiply register
// stage. The gain value is a per-tick snapshot broadcast to all channels;
// the scaler never holds per-channel gain state.
type GainScaler struct {
	reg []SampleWord
	out []SampleWord
}

func NewGainScaler(channels int) *GainScaler {
	return &GainScaler{
		reg: make([]SampleWord, channels),
		out: make([]SampleWord, channels),
	}
}

// Tick emits the previous cycle's products and registers this cycle's.
func (g *GainScaler) Tick(in []SampleWord, gain int16) []SampleWord {
	for ch := range g.reg {
		g.out[ch] = g.reg[ch]
		g.reg[ch] = SampleWord{
			Real: scaleQ15(in[ch].Real, gain),
			Imag: scaleQ15(in[ch].Imag, gain),
		}
	}
	return g.out
}
