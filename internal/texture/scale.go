package texture

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"autostereogram/internal/raster"
)

// ScaleTile resizes a color tile to the given width, keeping its aspect
// ratio. The tile width sets the eye separation of the stereogram.
func ScaleTile(tile *raster.Buffer, width int) (*raster.Buffer, error) {
	if width <= 0 || width == tile.Width {
		return tile, nil
	}
	height := scaledHeight(tile, width)

	src := tile.ToImage()
	var dst draw.Image
	if tile.Channels == 1 {
		dst = image.NewGray(image.Rect(0, 0, width, height))
	} else {
		dst = image.NewNRGBA(image.Rect(0, 0, width, height))
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	out, err := raster.FromImage(dst, tile.Channels)
	if err != nil {
		return nil, fmt.Errorf("texture: scale tile: %w", err)
	}
	return out, nil
}

// ScaleDepth resizes a depth map to the given width with bilinear
// filtering, keeping its aspect ratio.
func ScaleDepth(depth *raster.Buffer, width int) (*raster.Buffer, error) {
	if width <= 0 || width == depth.Width {
		return depth, nil
	}
	height := scaledHeight(depth, width)

	img := resize.Resize(uint(width), uint(height), depth.ToImage(), resize.Bilinear)
	out, err := raster.FromImage(img, depth.Channels)
	if err != nil {
		return nil, fmt.Errorf("texture: scale depth: %w", err)
	}
	return out, nil
}

func scaledHeight(b *raster.Buffer, width int) int {
	h := (b.Height*width + b.Width/2) / b.Width
	if h < 1 {
		h = 1
	}
	return h
}
