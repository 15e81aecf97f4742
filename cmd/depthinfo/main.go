package main

import (
	"flag"
	"fmt"
	"os"

	"autostereogram/internal/depthmap"
	"autostereogram/internal/raster"
	"autostereogram/internal/texture"
)

func main() {
	invert := flag.Bool("invert", false, "Invert before reporting")
	normalize := flag.Bool("normalize", false, "Normalize before reporting")
	binarize := flag.Bool("binarize", false, "Binarize before reporting")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: depthinfo [-invert] [-normalize] [-binarize] <depth image>...")
		os.Exit(2)
	}

	opts := depthmap.Options{Invert: *invert, Normalize: *normalize, Binarize: *binarize}
	failed := 0
	for _, path := range flag.Args() {
		if err := report(path, opts); err != nil {
			fmt.Fprintf(os.Stderr, "ERR %v\n", err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func report(path string, opts depthmap.Options) error {
	buf, err := texture.Load(path, texture.DepthChannels)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %dx%d\n", path, buf.Width, buf.Height)
	if err := printStats("raw", buf); err != nil {
		return err
	}

	if opts == (depthmap.Options{}) {
		return nil
	}
	lo, hi := depthmap.MinMax(buf)
	if opts.Normalize && lo == hi {
		fmt.Printf("  flat map (%d), normalize skipped\n", lo)
	}
	if err := depthmap.Preprocess(buf, opts); err != nil {
		return err
	}
	return printStats("processed", buf)
}

func printStats(label string, buf *raster.Buffer) error {
	s, err := depthmap.Describe(buf)
	if err != nil {
		return err
	}
	near := 0
	for v := depthmap.BinarizeThreshold; v < 256; v++ {
		near += s.Histogram[v]
	}
	fmt.Printf("  %-9s min=%3d max=%3d mean=%6.1f distinct=%3d near=%.0f%%\n",
		label, s.Min, s.Max, s.Mean, s.Distinct(), 100*float64(near)/float64(len(buf.Pix)))
	return nil
}
