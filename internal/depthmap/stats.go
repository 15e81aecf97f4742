package depthmap

import "autostereogram/internal/raster"

// Stats summarizes the sample distribution of a depth map.
type Stats struct {
	Min       uint8
	Max       uint8
	Mean      float64
	Histogram [256]int
}

// Describe computes Stats for a single-channel buffer.
func Describe(b *raster.Buffer) (Stats, error) {
	if err := checkDepth(b); err != nil {
		return Stats{}, err
	}
	var s Stats
	s.Min, s.Max = MinMax(b)
	sum := 0
	for _, v := range b.Pix {
		s.Histogram[v]++
		sum += int(v)
	}
	s.Mean = float64(sum) / float64(len(b.Pix))
	return s, nil
}

// Distinct returns how many different sample values occur.
func (s Stats) Distinct() int {
	n := 0
	for _, c := range s.Histogram {
		if c > 0 {
			n++
		}
	}
	return n
}
