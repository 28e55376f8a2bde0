// latency_align.go - Fixed delay line matching the gain path depth

package main

// LatencyAligner delays every channel's oscillator output by the same
// fixed number of cycles so that the gain applied downstream corresponds
// to the sample that was in flight when the gain register held that
// value. The depth must equal the multiply path's depth; a mismatch does
// not fail, it silently skews gain changes against sample data by the
// difference.
type LatencyAligner struct {
	depth int
	pipes [][]SampleWord
	pos   int
	out   []SampleWord
}

func NewLatencyAligner(channels, depth int) *LatencyAligner {
	pipes := make([][]SampleWord, channels)
	for ch := range pipes {
		pipes[ch] = make([]SampleWord, depth)
	}
	return &LatencyAligner{
		depth: depth,
		pipes: pipes,
		out:   make([]SampleWord, channels),
	}
}

// Tick shifts one sample pair per channel into the delay line and emits
// the pair that entered depth cycles ago.
func (a *LatencyAligner) Tick(in []SampleWord) []SampleWord {
	for ch := range a.pipes {
		a.out[ch] = a.pipes[ch][a.pos]
		a.pipes[ch][a.pos] = in[ch]
	}
	a.pos++
	if a.pos == a.depth {
		a.pos = 0
	}
	return a.out
}
