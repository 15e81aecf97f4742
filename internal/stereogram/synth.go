// Package stereogram turns a repeating color tile and a depth map into a
// single-image autostereogram.
package stereogram

import (
	"errors"
	"fmt"
	"sync"

	"autostereogram/internal/raster"
)

// ErrInvalidInput is wrapped by every error caused by unusable buffers.
var ErrInvalidInput = errors.New("stereogram: invalid input")

// Strategy selects how each output pixel finds its source color.
type Strategy int

const (
	// SelfReferential copies from pixels already written earlier in the
	// same output row once the reference lies past the first tile width.
	SelfReferential Strategy = iota
	// BackwardReference always samples the color tile, shifted left by the
	// depth offset.
	BackwardReference
)

func (s Strategy) String() string {
	switch s {
	case SelfReferential:
		return "self-referential"
	case BackwardReference:
		return "backward-reference"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Params controls one synthesis call.
type Params struct {
	// MaxDepthOffset is the displacement in pixels for depth sample 255.
	MaxDepthOffset int
	Strategy       Strategy
	// Workers splits rows across goroutines; values below 2 run serially.
	Workers int
}

// DepthOffset returns floor(v/255 * maxOffset).
func DepthOffset(v uint8, maxOffset int) int {
	return int(v) * maxOffset / 255
}

// Synthesize produces an output buffer the size of depth with tile's
// channel count. Neither input is modified.
func Synthesize(tile, depth *raster.Buffer, p Params) (*raster.Buffer, error) {
	if err := checkInputs(tile, depth); err != nil {
		return nil, err
	}
	if p.MaxDepthOffset < 0 {
		return nil, fmt.Errorf("%w: negative max depth offset %d", ErrInvalidInput, p.MaxDepthOffset)
	}

	var fill func(out *raster.Buffer, y int)
	switch p.Strategy {
	case SelfReferential:
		fill = func(out *raster.Buffer, y int) { selfReferentialRow(out, tile, depth, y, p.MaxDepthOffset) }
	case BackwardReference:
		fill = func(out *raster.Buffer, y int) { backwardRow(out, tile, depth, y, p.MaxDepthOffset) }
	default:
		return nil, fmt.Errorf("%w: unknown strategy %v", ErrInvalidInput, p.Strategy)
	}

	out := raster.New(depth.Width, depth.Height, tile.Channels)
	forEachRow(out.Height, p.Workers, func(y int) { fill(out, y) })
	return out, nil
}

func checkInputs(tile, depth *raster.Buffer) error {
	if tile.Empty() {
		return fmt.Errorf("%w: empty color tile", ErrInvalidInput)
	}
	if depth.Empty() {
		return fmt.Errorf("%w: empty depth map", ErrInvalidInput)
	}
	if err := tile.Validate(); err != nil {
		return fmt.Errorf("%w: color tile: %v", ErrInvalidInput, err)
	}
	if err := depth.Validate(); err != nil {
		return fmt.Errorf("%w: depth map: %v", ErrInvalidInput, err)
	}
	if depth.Channels != 1 {
		return fmt.Errorf("%w: depth map has %d channels, want 1", ErrInvalidInput, depth.Channels)
	}
	return nil
}

// backwardRow samples tile column (ix - offset) mod tileWidth.
func backwardRow(out, tile, depth *raster.Buffer, y, maxOffset int) {
	c := tile.Channels
	row := out.Row(y)
	depthRow := depth.Row(y)
	for ix, v := range depthRow {
		src := tile.Texel(ix-DepthOffset(v, maxOffset), y)
		copy(row[ix*c:ix*c+c], src)
	}
}

// selfReferentialRow fills row y strictly left to right. Pixels [0, ix) are
// final when pixel ix is written, and a copy only ever reads that prefix.
func selfReferentialRow(out, tile, depth *raster.Buffer, y, maxOffset int) {
	c := tile.Channels
	tw := tile.Width
	row := out.Row(y)
	depthRow := depth.Row(y)
	for ix, v := range depthRow {
		d := DepthOffset(v, maxOffset)
		dst := row[ix*c : ix*c+c]
		ref := ix + d - tw
		// ref >= ix only happens when the offset reaches the tile width
		if ref < tw || ref >= ix {
			copy(dst, tile.Texel(ix+d, y))
			continue
		}
		copy(dst, row[ref*c:ref*c+c])
	}
}

func forEachRow(height, workers int, fn func(y int)) {
	if workers < 2 || height < 2 {
		for y := 0; y < height; y++ {
			fn(y)
		}
		return
	}
	if workers > height {
		workers = height
	}

	rows := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				fn(y)
			}
		}()
	}
	for y := 0; y < height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
}
