// Package noise generates random color tiles.
package noise

import (
	"math/rand/v2"

	"autostereogram/internal/raster"
)

// DefaultSize is the edge length of the generated tiles.
const DefaultSize = 128

// WhiteNoise fills a size×size RGB tile with uniform random samples from a
// seeded generator. The grey tile reuses the first size×size samples of the
// same stream, so both are reproducible from the seed.
func WhiteNoise(size int, seed uint64) (rgb, grey *raster.Buffer) {
	rgb = raster.New(size, size, 3)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range rgb.Pix {
		rgb.Pix[i] = uint8(rng.IntN(256))
	}

	grey = raster.New(size, size, 1)
	copy(grey.Pix, rgb.Pix)
	return rgb, grey
}
