package texture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Index maps lowercase file stems to filesystem paths.
// Lossless files take priority over JPEG for the same stem.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

var extRank = map[string]int{
	".jpg":  1,
	".jpeg": 1,
	".gif":  2,
	".webp": 2,
	".bmp":  3,
	".tga":  3,
	".png":  4,
}

// BuildIndex scans assetDir and its subdirectories for decodable images.
// A missing or unreadable assetDir is an error; unreadable entries below
// it are skipped.
func BuildIndex(assetDir string) (*Index, error) {
	idx := &Index{entries: make(map[string]string)}

	err := filepath.WalkDir(assetDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == assetDir {
				return err
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		rank, ok := extRank[ext]
		if !ok {
			return nil
		}
		stem := stemOf(path)

		existing, exists := idx.entries[stem]
		if !exists || rank > extRank[strings.ToLower(filepath.Ext(existing))] {
			idx.entries[stem] = path
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("texture: index %s: %w", assetDir, err)
	}

	return idx, nil
}

// ResolvePath returns the filesystem path for an asset name, or ("", false).
// Directory prefixes and extensions in name are ignored.
func (idx *Index) ResolvePath(name string) (string, bool) {
	path, ok := idx.entries[stemOf(name)]
	return path, ok
}

// Len returns the number of indexed images.
func (idx *Index) Len() int {
	return len(idx.entries)
}

func stemOf(name string) string {
	// Strip path prefix (e.g., "Assets\\bw_witch.jpg" → "bw_witch")
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}
