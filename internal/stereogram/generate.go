package stereogram

import (
	"fmt"
	"strings"

	"autostereogram/internal/depthmap"
	"autostereogram/internal/raster"
)

// Variant bundles a synthesis strategy with its padding policy.
type Variant int

const (
	// Calibrated uses self-referential synthesis on a depth map padded on
	// the left by one tile width.
	Calibrated Variant = iota
	// Classic uses backward-reference synthesis on a depth map centered on
	// a canvas enlarged by integer multipliers.
	Classic
)

// DefaultMaxDepthOffset is the displacement used when none is configured.
const DefaultMaxDepthOffset = 20

func (v Variant) String() string {
	switch v {
	case Calibrated:
		return "calibrated"
	case Classic:
		return "classic"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Strategy returns the synthesis strategy the variant runs.
func (v Variant) Strategy() Strategy {
	if v == Classic {
		return BackwardReference
	}
	return SelfReferential
}

// ParseVariant maps a mode name to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "calibrated":
		return Calibrated, nil
	case "classic":
		return Classic, nil
	}
	return 0, fmt.Errorf("stereogram: unknown mode %q (want calibrated or classic)", s)
}

// Options configures a full Generate run.
type Options struct {
	Depth          depthmap.Options
	MaxDepthOffset int
	Variant        Variant
	// PadX and PadY are the canvas multipliers of the Classic variant.
	PadX, PadY int
	HelperDots bool
	Workers    int
}

// Generate preprocesses a copy of depth, pads it according to the variant,
// synthesizes the image and optionally stamps the helper dots.
func Generate(tile, depth *raster.Buffer, opts Options) (*raster.Buffer, error) {
	if err := checkInputs(tile, depth); err != nil {
		return nil, err
	}

	work := depth.Clone()
	if err := depthmap.Preprocess(work, opts.Depth); err != nil {
		return nil, err
	}

	var err error
	switch opts.Variant {
	case Calibrated:
		work, err = depthmap.PadLeft(work, tile.Width)
	case Classic:
		work, err = depthmap.PadCenter(work, opts.PadX, opts.PadY)
	default:
		return nil, fmt.Errorf("%w: unknown variant %v", ErrInvalidInput, opts.Variant)
	}
	if err != nil {
		return nil, err
	}

	out, err := Synthesize(tile, work, Params{
		MaxDepthOffset: opts.MaxDepthOffset,
		Strategy:       opts.Variant.Strategy(),
		Workers:        opts.Workers,
	})
	if err != nil {
		return nil, err
	}

	if opts.HelperDots {
		DrawHelperDots(out, tile.Width)
	}
	return out, nil
}
