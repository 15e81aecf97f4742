// Package depthmap prepares single-channel depth maps for synthesis.
// Higher samples mean nearer surfaces and larger displacement.
package depthmap

import (
	"fmt"

	"autostereogram/internal/raster"
)

// Options selects the preprocessing stages. Enabled stages run in the
// order invert, normalize, binarize.
type Options struct {
	Invert    bool
	Normalize bool
	Binarize  bool
}

// BinarizeThreshold is the first sample value mapped to 255.
const BinarizeThreshold = 128

// Preprocess applies the enabled stages to b in place.
func Preprocess(b *raster.Buffer, opts Options) error {
	if err := checkDepth(b); err != nil {
		return err
	}
	if opts.Invert {
		Invert(b)
	}
	if opts.Normalize {
		Normalize(b)
	}
	if opts.Binarize {
		Binarize(b)
	}
	return nil
}

// Invert replaces every sample v with 255-v.
func Invert(b *raster.Buffer) {
	for i, v := range b.Pix {
		b.Pix[i] = 255 - v
	}
}

// Normalize stretches the samples so the minimum maps to 0 and the maximum
// to 255, rounding to nearest. A flat map has no range to stretch and is
// left unchanged; the return value reports whether anything was remapped.
func Normalize(b *raster.Buffer) bool {
	if len(b.Pix) == 0 {
		return false
	}
	lo, hi := MinMax(b)
	if lo == hi {
		return false
	}
	span := int(hi) - int(lo)

	var lut [256]uint8
	for v := int(lo); v <= int(hi); v++ {
		// round((v-lo)/span*255) with integer half-up rounding
		lut[v] = uint8(((v-int(lo))*255*2 + span) / (2 * span))
	}
	for i, v := range b.Pix {
		b.Pix[i] = lut[v]
	}
	return true
}

// Binarize maps samples below BinarizeThreshold to 0 and the rest to 255.
func Binarize(b *raster.Buffer) {
	for i, v := range b.Pix {
		if v < BinarizeThreshold {
			b.Pix[i] = 0
		} else {
			b.Pix[i] = 255
		}
	}
}

// MinMax returns the smallest and largest sample of b.
func MinMax(b *raster.Buffer) (lo, hi uint8) {
	lo, hi = 255, 0
	for _, v := range b.Pix {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func checkDepth(b *raster.Buffer) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("depthmap: %w", err)
	}
	if b.Channels != 1 {
		return fmt.Errorf("depthmap: depth map has %d channels, want 1", b.Channels)
	}
	return nil
}
