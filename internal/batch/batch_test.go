package batch

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"autostereogram/internal/assetlist"
	"autostereogram/internal/stereogram"
	"autostereogram/internal/texture"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func setupAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	tile := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for i := 0; i < len(tile.Pix); i += 4 {
		tile.Pix[i] = uint8(i)
		tile.Pix[i+1] = uint8(i * 3)
		tile.Pix[i+2] = uint8(i * 7)
		tile.Pix[i+3] = 255
	}
	writePNG(t, filepath.Join(dir, "color_test.png"), tile)

	depth := image.NewGray(image.Rect(0, 0, 40, 30))
	for y := 10; y < 20; y++ {
		for x := 10; x < 30; x++ {
			depth.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	writePNG(t, filepath.Join(dir, "grey_square.png"), depth)
	return dir
}

func testConfig(t *testing.T, assetDir, outDir string, variant stereogram.Variant) Config {
	t.Helper()
	idx, err := texture.BuildIndex(assetDir)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	return Config{
		OutputDir:      outDir,
		Resolver:       texture.NewCache(idx),
		Variant:        variant,
		MaxDepthOffset: 4,
		HelperDots:     variant == stereogram.Calibrated,
		Format:         texture.FormatPNG,
		Workers:        2,
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	assetDir := setupAssets(t)
	outDir := filepath.Join(t.TempDir(), "out")
	cfg := testConfig(t, assetDir, outDir, stereogram.Calibrated)

	list := assetlist.List{
		Colors: []assetlist.ColorDef{
			{File: "Assets/color_test.png", ShortName: "test"},
			{File: "Assets/color_missing.png", ShortName: "missing"},
		},
		Depths: []assetlist.DepthDef{
			{File: "Assets/grey_square.png", ShortName: "square", Normalize: true, PadX: 2, PadY: 2},
		},
	}
	pairs := list.Pairs()
	results := Run(cfg, pairs)

	if len(results) != 2 {
		t.Fatalf("len(results) = %d; want 2", len(results))
	}

	ok := results[0]
	if !ok.Success {
		t.Fatalf("square_test failed: %s", ok.Error)
	}
	// calibrated pads the depth map by one tile width on the left
	if ok.Width != 48 || ok.Height != 30 {
		t.Errorf("output size = %dx%d; want 48x30", ok.Width, ok.Height)
	}
	out, err := texture.Load(ok.Output, texture.ColorChannels)
	if err != nil {
		t.Fatalf("Load output: %v", err)
	}
	if out.Width != 48 || out.Height != 30 {
		t.Errorf("decoded size = %dx%d; want 48x30", out.Width, out.Height)
	}

	bad := results[1]
	if bad.Success || bad.Error == "" {
		t.Errorf("missing color should fail, got %+v", bad)
	}
	if _, err := os.Stat(bad.Output); !os.IsNotExist(err) {
		t.Errorf("failed pair left an output file: %v", err)
	}

	manifestPath := filepath.Join(outDir, "manifest.json")
	if err := WriteManifest(manifestPath, cfg, pairs, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatal(err)
	}
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("manifest: %v", err)
	}
	if m.RunID == "" || m.Mode != "calibrated" || len(m.Entries) != 2 {
		t.Errorf("manifest = %+v", m)
	}
	if m.Entries[0].Image != "square_test.png" || m.Entries[1].Error == "" {
		t.Errorf("manifest entries = %+v", m.Entries)
	}
}

func TestProcessPairClassicWebP(t *testing.T) {
	assetDir := setupAssets(t)
	cfg := testConfig(t, assetDir, t.TempDir(), stereogram.Classic)
	cfg.Format = texture.FormatWebP
	cfg.TileWidth = 16
	cfg.DepthWidth = 20

	res := ProcessPair(cfg, assetlist.Pair{
		Color: assetlist.ColorDef{File: "color_test.png", ShortName: "test"},
		Depth: assetlist.DepthDef{File: "grey_square.png", ShortName: "square", Invert: true, PadX: 4, PadY: 2},
	})
	if !res.Success {
		t.Fatalf("ProcessPair: %s", res.Error)
	}
	// depth scaled to 20x15, then padded 4x2
	if res.Width != 80 || res.Height != 30 {
		t.Errorf("output size = %dx%d; want 80x30", res.Width, res.Height)
	}
	if filepath.Ext(res.Output) != ".webp" {
		t.Errorf("Output = %s; want .webp", res.Output)
	}
	if _, err := texture.Load(res.Output, texture.ColorChannels); err != nil {
		t.Errorf("Load output: %v", err)
	}
}

func TestRunIsolatesEncodeFailures(t *testing.T) {
	assetDir := setupAssets(t)
	outDir := t.TempDir()
	cfg := testConfig(t, assetDir, outDir, stereogram.Classic)

	// a directory squatting on the output path makes the save step fail
	if err := os.Mkdir(filepath.Join(outDir, "blocked_test.png"), 0755); err != nil {
		t.Fatal(err)
	}

	list := assetlist.List{
		Colors: []assetlist.ColorDef{{File: "color_test.png", ShortName: "test"}},
		Depths: []assetlist.DepthDef{
			{File: "grey_square.png", ShortName: "blocked", PadX: 1, PadY: 1},
			{File: "grey_square.png", ShortName: "open", PadX: 1, PadY: 1},
		},
	}
	results := Run(cfg, list.Pairs())

	if len(results) != 2 {
		t.Fatalf("len(results) = %d; want 2", len(results))
	}
	blocked, open := results[0], results[1]
	if blocked.Success {
		t.Fatal("blocked pair should fail")
	}
	if !strings.HasPrefix(blocked.Error, "encode:") {
		t.Errorf("blocked.Error = %q; want prefix %q", blocked.Error, "encode:")
	}
	if !open.Success {
		t.Fatalf("open pair failed: %s", open.Error)
	}
	if _, err := os.Stat(open.Output); err != nil {
		t.Errorf("open pair output missing: %v", err)
	}
}

func TestProcessPairUnknownFormat(t *testing.T) {
	assetDir := setupAssets(t)
	outDir := t.TempDir()
	cfg := testConfig(t, assetDir, outDir, stereogram.Calibrated)
	cfg.Format = "gif"

	res := ProcessPair(cfg, assetlist.Pair{
		Color: assetlist.ColorDef{File: "color_test.png", ShortName: "test"},
		Depth: assetlist.DepthDef{File: "grey_square.png", ShortName: "square"},
	})
	if res.Success || !strings.HasPrefix(res.Error, "encode:") {
		t.Errorf("result = %+v; want an encode failure", res)
	}
	if _, err := os.Stat(res.Output); !os.IsNotExist(err) {
		t.Errorf("partial output left behind: %v", err)
	}
}
