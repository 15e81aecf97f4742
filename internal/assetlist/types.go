package assetlist

// ColorDef is one repeating color tile.
type ColorDef struct {
	File      string // e.g. "Assets/color_candy.jpg"
	ShortName string // used in output file names
}

// DepthDef is one depth map with its preprocessing settings.
type DepthDef struct {
	File      string
	ShortName string
	Invert    bool
	Normalize bool
	Binarize  bool
	PadX      int // canvas multipliers for the classic mode
	PadY      int
}

// List is the full set of inputs; every color is paired with every depth.
type List struct {
	Colors []ColorDef
	Depths []DepthDef
}

// Pair is one (color, depth) combination.
type Pair struct {
	Color ColorDef
	Depth DepthDef
}

// Name returns the output stem "<depth>_<color>".
func (p Pair) Name() string {
	return p.Depth.ShortName + "_" + p.Color.ShortName
}

// Pairs expands the list with colors in the outer loop.
func (l List) Pairs() []Pair {
	pairs := make([]Pair, 0, len(l.Colors)*len(l.Depths))
	for _, c := range l.Colors {
		for _, d := range l.Depths {
			pairs = append(pairs, Pair{Color: c, Depth: d})
		}
	}
	return pairs
}
