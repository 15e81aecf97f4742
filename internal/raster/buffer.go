package raster

import "fmt"

// Buffer is a flat row-major pixel buffer with interleaved 8-bit samples.
// len(Pix) == Width*Height*Channels.
type Buffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// MaxChannels is the largest channel count a Buffer may carry.
const MaxChannels = 4

// New allocates a zeroed buffer.
func New(w, h, channels int) *Buffer {
	return &Buffer{
		Width:    w,
		Height:   h,
		Channels: channels,
		Pix:      make([]uint8, w*h*channels),
	}
}

// Empty reports whether b is nil or holds no samples.
func (b *Buffer) Empty() bool {
	return b == nil || b.Width <= 0 || b.Height <= 0 || len(b.Pix) == 0
}

// Validate checks dimensions, channel count and sample length.
func (b *Buffer) Validate() error {
	if b.Empty() {
		return fmt.Errorf("raster: empty buffer")
	}
	if b.Channels < 1 || b.Channels > MaxChannels {
		return fmt.Errorf("raster: %d channels out of range [1,%d]", b.Channels, MaxChannels)
	}
	if want := b.Width * b.Height * b.Channels; len(b.Pix) != want {
		return fmt.Errorf("raster: %dx%dx%d buffer has %d samples, want %d",
			b.Width, b.Height, b.Channels, len(b.Pix), want)
	}
	return nil
}

// Offset returns the index of the first sample of pixel (x, y).
func (b *Buffer) Offset(x, y int) int {
	return (y*b.Width + x) * b.Channels
}

// Row returns the samples of row y.
func (b *Buffer) Row(y int) []uint8 {
	stride := b.Width * b.Channels
	return b.Pix[y*stride : (y+1)*stride]
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.Pix = make([]uint8, len(b.Pix))
	copy(c.Pix, b.Pix)
	return &c
}
