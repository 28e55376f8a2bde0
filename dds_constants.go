// dds_constants.go - Register map and pipeline geometry for the DDS core

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

// =============================================================================
// Control register address map
// =============================================================================
//
// The core exposes four 32-bit registers on the control interface. The
// control interface runs in its own clock domain; see control_port.go for
// how writes cross into the sample domain.
//
// Address     Register        Access  Contents
// ---------------------------------------------------------------------------
// 0xD000      DDS_PHASE_INC   R/W     32-bit phase increment, fraction of a
//                                     turn per cycle (2^32 = one full turn)
// 0xD004      DDS_GAIN        R/W     signed 16-bit Q15 gain in bits [15:0],
//                                     shared by every channel
// 0xD008      DDS_CTRL        W       bit 0: write-enable strobe (adopt the
//                                     increment register next cycle)
//                                     bit 1: reset (held until cleared)
// 0xD00C      DDS_STATUS      R       bit 1: reset currently asserted
// 0xD010      DDS_CYCLES      R       low 32 bits of the sample-domain
//                                     cycle counter

const (
	DDS_REG_BASE  = 0xD000
	DDS_PHASE_INC = 0xD000
	DDS_GAIN      = 0xD004
	DDS_CTRL      = 0xD008
	DDS_STATUS    = 0xD00C
	DDS_CYCLES    = 0xD010
	DDS_REG_END   = 0xD010
)

const (
	DDS_CTRL_STROBE = 1 << 0
	DDS_CTRL_RESET  = 1 << 1
)

// =============================================================================
// Pipeline geometry
// =============================================================================

const (
	// Reference instantiation has two channels; NewSignalCore accepts any N.
	DDS_NUM_CHANNELS = 2

	// Stage depths in cycles. The aligner depth must track the multiply
	// path depth; latency_align_test.go checks the skew that results if
	// it ever doesn't.
	DDS_OSC_DEPTH   = 10
	DDS_ALIGN_DEPTH = 4
	DDS_MULT_DEPTH  = 1
	DDS_OUT_DEPTH   = 1

	// Cycles from a write-enable strobe being sampled to the new
	// increment's first effect appearing on the output bus. One cycle for
	// the increment holding register, then the full datapath.
	DDS_LATENCY = 1 + DDS_OSC_DEPTH + DDS_ALIGN_DEPTH + DDS_MULT_DEPTH + DDS_OUT_DEPTH

	// Gain has no strobe and a shorter path: input register, multiply
	// register, output register.
	DDS_GAIN_LATENCY = 1 + DDS_MULT_DEPTH + DDS_OUT_DEPTH
)

// Full-scale oscillator amplitude and unity-ish gain points.
const (
	DDS_FULL_SCALE = 32767
	GAIN_UNITY     = 32767 // 0.99997 in Q15, the closest Q15 gets to 1.0
	GAIN_HALF      = 16384 // 0.5 in Q15
)

// Default sample-domain tick rate for host playback, in Hz. The core
// itself is rate-agnostic; this only paces the runner.
const DDS_SAMPLE_RATE = 44100
