// dds_lut.go - Sine lookup table for phase-to-amplitude conversion

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

import "math"

// Phase-to-amplitude mapping uses a single full-period sine table indexed
// by the top bits of the 32-bit phase accumulator. Cosine comes from the
// same table with a quarter-turn index offset, so the real and imaginary
// components of a channel are always exactly 90 degrees apart.
const (
	ddsLUTBits  = 12
	ddsLUTSize  = 1 << ddsLUTBits  // 4096 entries (~0.088 degree resolution)
	ddsLUTMask  = ddsLUTSize - 1   // mask for fast modulo
	ddsLUTShift = 32 - ddsLUTBits  // accumulator bits discarded below the index
	ddsLUTQuart = ddsLUTSize / 4   // quarter turn, for cosine
)

// ddsSinLUT holds round(32767*sin(2*pi*i/4096)) for i in [0, 4096).
var ddsSinLUT [ddsLUTSize]int16

func init() {
	for i := 0; i < ddsLUTSize; i++ {
		phase := 2 * math.Pi * float64(i) / float64(ddsLUTSize)
		ddsSinLUT[i] = int16(math.Round(DDS_FULL_SCALE * math.Sin(phase)))
	}
}

// phaseToAmplitude converts a 32-bit accumulator value to a quadrature
// sample pair at full scale. No interpolation: the hardware table is a
// plain ROM lookup and the model must quantize the same way.
func phaseToAmplitude(acc uint32) (real, imag int16) {
	idx := int(acc >> ddsLUTShift)
	imag = ddsSinLUT[idx&ddsLUTMask]
	real = ddsSinLUT[(idx+ddsLUTQuart)&ddsLUTMask]
	return real, imag
}
