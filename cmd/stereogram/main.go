package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"autostereogram/internal/assetlist"
	"autostereogram/internal/batch"
	"autostereogram/internal/config"
	"autostereogram/internal/raster"
	"autostereogram/internal/stereogram"
	"autostereogram/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	baseDir := flag.String("base", "", "Base directory (default: auto-detect)")
	assetDir := flag.String("assets", "", "Asset directory (default: Assets)")
	listFile := flag.String("list", "", "Asset list XML (default: built-in list)")
	outputDir := flag.String("output", "", "Output directory (default: out)")
	mode := flag.String("mode", "", "Synthesis mode: calibrated|classic (default: calibrated)")
	maxOffset := flag.Int("max-offset", -1, "Max depth offset in pixels, 0 for plain tiling (default: 20)")
	noDots := flag.Bool("no-dots", false, "Do not draw helper dots")
	format := flag.String("format", "", "Output format: png|webp (default: png)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	colorFile := flag.String("color", "", "Render a single pair: color tile file")
	depthFile := flag.String("depth", "", "Render a single pair: depth map file")
	invert := flag.Bool("invert", false, "Single pair: invert depth")
	normalize := flag.Bool("normalize", false, "Single pair: normalize depth")
	binarize := flag.Bool("binarize", false, "Single pair: binarize depth")
	padX := flag.Int("pad-x", 2, "Single pair: classic mode X pad multiplier")
	padY := flag.Int("pad-y", 2, "Single pair: classic mode Y pad multiplier")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	var offsetFlag *int
	if *maxOffset >= 0 {
		offsetFlag = maxOffset
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		BaseDir:        *baseDir,
		AssetDir:       *assetDir,
		AssetListXML:   *listFile,
		OutputDir:      *outputDir,
		Mode:           *mode,
		MaxDepthOffset: offsetFlag,
		Format:         *format,
		Workers:        *workers,
		NoDots:         *noDots,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	variant, _ := stereogram.ParseVariant(cfg.Mode)

	batchCfg := batch.Config{
		OutputDir:      cfg.OutputDir,
		Variant:        variant,
		MaxDepthOffset: cfg.Offset(),
		HelperDots:     cfg.Dots(),
		TileWidth:      cfg.TileWidth,
		DepthWidth:     cfg.DepthWidth,
		Format:         cfg.Format,
		Workers:        cfg.Workers,
		Progress:       true,
	}

	// Single pair: resolve the two files directly, no asset index needed
	if *colorFile != "" || *depthFile != "" {
		if *colorFile == "" || *depthFile == "" {
			fmt.Fprintln(os.Stderr, "Error: -color and -depth must be given together")
			os.Exit(2)
		}
		batchCfg.Resolver = fileResolver{}
		pair := assetlist.Pair{
			Color: assetlist.ColorDef{File: *colorFile, ShortName: stem(*colorFile)},
			Depth: assetlist.DepthDef{
				File:      *depthFile,
				ShortName: stem(*depthFile),
				Invert:    *invert,
				Normalize: *normalize,
				Binarize:  *binarize,
				PadX:      *padX,
				PadY:      *padY,
			},
		}
		r := batch.ProcessPair(batchCfg, pair)
		if !r.Success {
			fmt.Fprintf(os.Stderr, "Could not create %s: %s\n", r.Output, r.Error)
			os.Exit(1)
		}
		fmt.Printf("%s saved (%dx%d)\n", r.Output, r.Width, r.Height)
		return
	}

	// Load asset list
	list := assetlist.Default()
	if cfg.AssetListXML != "" {
		var err error
		list, err = assetlist.Parse(cfg.AssetListXML)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading asset list: %v\n", err)
			os.Exit(1)
		}
	}
	pairs := list.Pairs()
	if len(pairs) == 0 {
		fmt.Println("No pairs to render.")
		os.Exit(0)
	}

	// Build asset index
	index, err := texture.BuildIndex(cfg.AssetDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	batchCfg.Resolver = texture.NewCache(index)
	fmt.Printf("Assets: %d indexed in %s\n", index.Len(), cfg.AssetDir)

	fmt.Printf("Autostereogram batch (%s, max offset %d, dots %v)\n", cfg.Mode, cfg.Offset(), cfg.Dots())
	fmt.Printf("Pairs: %d (%d colors × %d depths), Workers: %d\n", len(pairs), len(list.Colors), len(list.Depths), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batchCfg, pairs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var failures []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			fmt.Printf("  %s saved\n", r.Output)
		} else {
			failed++
			failures = append(failures, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(pairs))

	if len(failures) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(failures) < limit {
			limit = len(failures)
		}
		for _, e := range failures[:limit] {
			fmt.Printf("  Could not create %s: %s\n", e.Output, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, batchCfg, pairs, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// fileResolver loads names as plain file paths.
type fileResolver struct{}

func (fileResolver) Resolve(name string, channels int) (*raster.Buffer, error) {
	return texture.Load(name, channels)
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
