package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"

	"autostereogram/internal/raster"
)

// Channel counts used for the two kinds of input.
const (
	ColorChannels = 3
	DepthChannels = 1
)

// Load decodes an image file into a buffer with the given channel count.
func Load(path string, channels int) (*raster.Buffer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	buf, err := Decode(raw, filepath.Ext(path), channels)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", path, err)
	}
	return buf, nil
}

// Decode decodes encoded image bytes into a buffer. The decoder is picked
// by extension because TGA has no signature to sniff.
func Decode(raw []byte, ext string, channels int) (*raster.Buffer, error) {
	decode, err := decoderFor(ext)
	if err != nil {
		return nil, err
	}
	img, err := decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", ext, err)
	}
	return raster.FromImage(img, channels)
}

func decoderFor(ext string) (func(io.Reader) (image.Image, error), error) {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Decode, nil
	case ".jpg", ".jpeg":
		return jpeg.Decode, nil
	case ".gif":
		return gif.Decode, nil
	case ".bmp":
		return bmp.Decode, nil
	case ".webp":
		return webp.Decode, nil
	case ".tga":
		return tga.Decode, nil
	}
	return nil, fmt.Errorf("unknown extension: %q", ext)
}
