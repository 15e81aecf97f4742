package raster

// Wrap folds a coordinate into [0, n), also for negative values.
func Wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// TexelOffset returns the sample index of (x, y) with the buffer tiled
// infinitely in both directions.
func (b *Buffer) TexelOffset(x, y int) int {
	return b.Offset(Wrap(x, b.Width), Wrap(y, b.Height))
}

// Texel returns the samples of pixel (x, y) with tiling. The slice aliases Pix.
func (b *Buffer) Texel(x, y int) []uint8 {
	i := b.TexelOffset(x, y)
	return b.Pix[i : i+b.Channels]
}
