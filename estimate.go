package blooms

import (
	"math"
	"math/bits"
)

// SetBits returns the exact number of bits set across all cells.
func (f *Filter) SetBits() int {
	var set int
	for _, c := range f.cells {
		set += bits.OnesCount8(c)
	}
	return set
}

// FillRatio returns the exact fraction of bits that are set.
func (f *Filter) FillRatio() float64 {
	return float64(f.SetBits()) / float64(len(f.cells)*8)
}

// positionsPerMember returns the number of bit positions a member of the
// given (post-encoding) byte length touches: one per 4-byte chunk.
func positionsPerMember(length int) int {
	if length < 0 {
		length = 0
	}
	return (length + 3) / 4
}

// Saturation estimates the fraction of all possible members of the given
// (post-encoding) byte length that the filter accepts. The chunks of a
// uniformly random member derive independent positions, so the estimate is
// the product of per-chunk pass probabilities read from the buffer's actual
// contents. A short trailing chunk can only address a prefix of the buffer,
// and that prefix fills faster than the buffer as a whole; its pass
// probability is measured over the addressable region rather than taken
// from the global fill ratio. The result tracks a large-sample empirical
// acceptance rate to within sampling noise in both directions, so it never
// trails the filter's true state by more than a small bounded error.
func (f *Filter) Saturation(length int) float64 {
	if length <= 0 {
		return 1
	}
	s := math.Pow(f.chunkPassRatio(4), float64(length/4))
	if rest := length % 4; rest > 0 {
		s *= f.chunkPassRatio(rest)
	}
	return s
}

// chunkPassRatio returns the probability that the bit derived from a single
// uniformly random chunk of the given byte width (1..4) is set. A chunk of
// width w addresses 2^(8w-3) consecutive cells before wrapping: when that
// span falls short of the buffer only the local fill of the prefix counts,
// and when it wraps, cells covered one extra time by the final partial pass
// are weighted accordingly.
func (f *Filter) chunkPassRatio(width int) float64 {
	span := uint64(1) << (8*width - 3)
	cells := uint64(len(f.cells))
	if span <= cells {
		var set int
		for _, c := range f.cells[:span] {
			set += bits.OnesCount8(c)
		}
		return float64(set) / float64(span*8)
	}
	whole := span / cells
	rem := int(span % cells)
	var weighted uint64
	for i, c := range f.cells {
		hits := whole
		if i < rem {
			hits++
		}
		weighted += hits * uint64(bits.OnesCount8(c))
	}
	return float64(weighted) / float64(span*8)
}

// Capacity estimates how many distinct members of the given (post-encoding)
// byte length were inserted to reach the supplied saturation. It inverts the
// classical fill formula p = 1 - e^(-kn/m): the saturation is mapped back to
// a fill ratio p = s^(1/k), then n = -(m/k)*ln(1-p).
//
// Estimates are reliable within a small multiplicative factor while the fill
// ratio stays below roughly 0.75; beyond that the inversion degrades by
// construction. A saturation of one (or a zero-length member) yields +Inf,
// and a saturation of zero yields zero.
func (f *Filter) Capacity(length int, saturation float64) float64 {
	k := float64(positionsPerMember(length))
	if saturation <= 0 {
		return 0
	}
	if k == 0 || saturation >= 1 {
		return math.Inf(1)
	}
	m := float64(f.BitCap())
	p := math.Pow(saturation, 1/k)
	return -(m / k) * math.Log(1-p)
}
