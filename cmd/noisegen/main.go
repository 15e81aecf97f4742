package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"autostereogram/internal/noise"
	"autostereogram/internal/texture"
)

func main() {
	dir := flag.String("dir", "Assets", "Directory to write the textures into")
	size := flag.Int("size", noise.DefaultSize, "Texture edge length in pixels")
	seed := flag.Uint64("seed", 5489, "Random seed")
	flag.Parse()

	if *size <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -size must be positive")
		os.Exit(2)
	}

	rgb, grey := noise.WhiteNoise(*size, *seed)

	failed := false
	for _, out := range []struct {
		name string
		save func(string) error
	}{
		{"color_whiteNoise.png", func(p string) error { return texture.Save(p, rgb, texture.FormatPNG) }},
		{"grey_whiteNoise.png", func(p string) error { return texture.Save(p, grey, texture.FormatPNG) }},
	} {
		path := filepath.Join(*dir, out.name)
		if err := out.save(path); err != nil {
			fmt.Fprintf(os.Stderr, "Could not create %s: %v\n", path, err)
			failed = true
			continue
		}
		fmt.Printf("%s saved\n", path)
	}

	if failed {
		os.Exit(1)
	}
}
