package depthmap

import (
	"fmt"

	"autostereogram/internal/raster"
)

// PadLeft returns a copy of b widened by n zero columns on the left.
// Used with n = tile width to make room for the leftward drift of
// self-referential synthesis.
func PadLeft(b *raster.Buffer, n int) (*raster.Buffer, error) {
	if err := checkDepth(b); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("depthmap: negative left padding %d", n)
	}
	if n == 0 {
		return b.Clone(), nil
	}

	out := raster.New(b.Width+n, b.Height, 1)
	for y := 0; y < b.Height; y++ {
		copy(out.Row(y)[n:], b.Row(y))
	}
	return out, nil
}

// PadCenter returns a copy of b on a zero canvas xMul times as wide and
// yMul times as tall, with the original centered. Multipliers below 2
// leave that axis unpadded.
func PadCenter(b *raster.Buffer, xMul, yMul int) (*raster.Buffer, error) {
	if err := checkDepth(b); err != nil {
		return nil, err
	}
	if xMul < 1 {
		xMul = 1
	}
	if yMul < 1 {
		yMul = 1
	}
	if xMul == 1 && yMul == 1 {
		return b.Clone(), nil
	}

	out := raster.New(b.Width*xMul, b.Height*yMul, 1)
	xOff := (out.Width - b.Width) / 2
	yOff := (out.Height - b.Height) / 2
	for y := 0; y < b.Height; y++ {
		copy(out.Row(y + yOff)[xOff:], b.Row(y))
	}
	return out, nil
}
