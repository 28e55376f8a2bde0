// output_pipeline.go - Final register stage and output word packing

package main

// OutputFrame is one cycle's packed output bus: one 32-bit word per
// channel, imag in the high half, real in the low half. Frames are
// transient; the core reuses the backing array every tick.
type OutputFrame []uint32

// Real unpacks a channel's real component.
func (f OutputFrame) Real(channel int) int16 {
	return int16(f[channel] & 0xFFFF)
}

// Imag unpacks a channel's imaginary component.
func (f OutputFrame) Imag(channel int) int16 {
	return int16(f[channel] >> 16)
}

// OutputPipeline packs each channel's sample pair into one output word
// behind a final register stage.
type OutputPipeline struct {
	reg   []uint32
	frame OutputFrame
}

func NewOutputPipeline(channels int) *OutputPipeline {
	return &OutputPipeline{
		reg:   make([]uint32, channels),
		frame: make(OutputFrame, channels),
	}
}

func packSample(s SampleWord) uint32 {
	return uint32(uint16(s.Imag))<<16 | uint32(uint16(s.Real))
}

// Tick emits the previously registered frame and registers this cycle's
// input. The returned frame is owned by the pipeline and overwritten
// next tick.
func (p *OutputPipeline) Tick(in []SampleWord) OutputFrame {
	for ch := range p.reg {
		p.frame[ch] = p.reg[ch]
		p.reg[ch] = packSample(in[ch])
	}
	return p.frame
}
