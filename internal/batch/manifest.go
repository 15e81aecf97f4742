package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"autostereogram/internal/assetlist"
)

// Manifest describes one batch run.
type Manifest struct {
	RunID          string          `json:"run_id"`
	Created        time.Time       `json:"created"`
	Mode           string          `json:"mode"`
	MaxDepthOffset int             `json:"max_depth_offset"`
	HelperDots     bool            `json:"helper_dots"`
	Entries        []ManifestEntry `json:"entries"`
}

// ManifestEntry represents one pair in the output manifest.
type ManifestEntry struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Depth  string `json:"depth"`
	Image  string `json:"image,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing pairs and their results.
// results must be index-aligned with pairs.
func WriteManifest(path string, cfg Config, pairs []assetlist.Pair, results []Result) error {
	m := Manifest{
		RunID:          uuid.New().String(),
		Created:        time.Now().UTC(),
		Mode:           cfg.Variant.String(),
		MaxDepthOffset: cfg.MaxDepthOffset,
		HelperDots:     cfg.HelperDots,
		Entries:        make([]ManifestEntry, len(pairs)),
	}
	for i, p := range pairs {
		e := ManifestEntry{
			Name:  p.Name(),
			Color: p.Color.File,
			Depth: p.Depth.File,
		}
		if i < len(results) {
			r := results[i]
			if r.Success {
				e.Image = filepath.Base(r.Output)
				e.Width = r.Width
				e.Height = r.Height
			} else {
				e.Error = r.Error
			}
		}
		m.Entries[i] = e
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
