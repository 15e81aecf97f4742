package texture

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"autostereogram/internal/raster"
)

// Output formats. Both are lossless.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// Encode writes buf to w in the given format.
func Encode(w io.Writer, buf *raster.Buffer, format string) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("texture: encode: %w", err)
	}
	img := buf.ToImage()

	switch strings.ToLower(format) {
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("texture: png encode: %w", err)
		}
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("texture: webp encode: %w", err)
		}
	default:
		return fmt.Errorf("texture: unknown output format %q", format)
	}
	return nil
}

// Save encodes buf into path, creating parent directories as needed.
func Save(path string, buf *raster.Buffer, format string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("texture: mkdir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("texture: create %s: %w", path, err)
	}
	if err := Encode(f, buf, format); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
