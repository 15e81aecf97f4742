package batch

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"autostereogram/internal/assetlist"
	"autostereogram/internal/depthmap"
	"autostereogram/internal/stereogram"
	"autostereogram/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir      string
	Resolver       texture.Resolver
	Variant        stereogram.Variant
	MaxDepthOffset int
	HelperDots     bool
	TileWidth      int // 0 keeps the decoded width
	DepthWidth     int // 0 keeps the decoded width
	Format         string
	Workers        int
	// Progress prints a progress line every two seconds when true.
	Progress bool
}

// Result holds the outcome of processing one pair.
type Result struct {
	Name    string
	Output  string
	Width   int
	Height  int
	Success bool
	Error   string
}

// Run processes all pairs using a worker pool. A failing pair never stops
// the others.
func Run(cfg Config, pairs []assetlist.Pair) []Result {
	total := len(pairs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f pairs/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	pairChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range pairChan {
				results[idx] = ProcessPair(cfg, pairs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range pairs {
		pairChan <- i
	}
	close(pairChan)

	wg.Wait()
	close(done)

	return results
}

// OutputPath returns where a pair's image is written.
func OutputPath(cfg Config, pair assetlist.Pair) string {
	return filepath.Join(cfg.OutputDir, pair.Name()+"."+cfg.Format)
}

// ProcessPair loads, synthesizes and encodes a single pair.
func ProcessPair(cfg Config, pair assetlist.Pair) Result {
	res := Result{Name: pair.Name(), Output: OutputPath(cfg, pair)}
	fail := func(format string, args ...any) Result {
		res.Error = fmt.Sprintf(format, args...)
		return res
	}

	tile, err := cfg.Resolver.Resolve(pair.Color.File, texture.ColorChannels)
	if err != nil {
		return fail("color: %v", err)
	}
	depth, err := cfg.Resolver.Resolve(pair.Depth.File, texture.DepthChannels)
	if err != nil {
		return fail("depth: %v", err)
	}

	if tile, err = texture.ScaleTile(tile, cfg.TileWidth); err != nil {
		return fail("%v", err)
	}
	if depth, err = texture.ScaleDepth(depth, cfg.DepthWidth); err != nil {
		return fail("%v", err)
	}

	out, err := stereogram.Generate(tile, depth, stereogram.Options{
		Depth: depthmap.Options{
			Invert:    pair.Depth.Invert,
			Normalize: pair.Depth.Normalize,
			Binarize:  pair.Depth.Binarize,
		},
		MaxDepthOffset: cfg.MaxDepthOffset,
		Variant:        cfg.Variant,
		PadX:           pair.Depth.PadX,
		PadY:           pair.Depth.PadY,
		HelperDots:     cfg.HelperDots,
		// pairs already run in parallel
		Workers: 1,
	})
	if err != nil {
		return fail("%v", err)
	}

	if err := texture.Save(res.Output, out, cfg.Format); err != nil {
		return fail("encode: %v", err)
	}

	res.Width = out.Width
	res.Height = out.Height
	res.Success = true
	return res
}
