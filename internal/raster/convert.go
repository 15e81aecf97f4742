package raster

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FromImage converts a decoded image into a buffer with the requested
// channel count: 1 = luminance, 2 = luminance+alpha, 3 = RGB, 4 = RGBA.
func FromImage(src image.Image, channels int) (*Buffer, error) {
	if channels < 1 || channels > MaxChannels {
		return nil, fmt.Errorf("raster: %d channels out of range [1,%d]", channels, MaxChannels)
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("raster: empty image")
	}
	out := New(w, h, channels)

	if channels == 1 {
		gray, ok := src.(*image.Gray)
		if !ok || gray.Rect.Min != (image.Point{}) {
			gray = image.NewGray(image.Rect(0, 0, w, h))
			draw.Draw(gray, gray.Bounds(), src, b.Min, draw.Src)
		}
		for y := 0; y < h; y++ {
			copy(out.Row(y), gray.Pix[y*gray.Stride:y*gray.Stride+w])
		}
		return out, nil
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := nrgba.PixOffset(x, y)
			di := out.Offset(x, y)
			r, g, bl, a := nrgba.Pix[si], nrgba.Pix[si+1], nrgba.Pix[si+2], nrgba.Pix[si+3]
			switch channels {
			case 2:
				out.Pix[di] = color.GrayModel.Convert(color.NRGBA{r, g, bl, 255}).(color.Gray).Y
				out.Pix[di+1] = a
			case 3:
				out.Pix[di] = r
				out.Pix[di+1] = g
				out.Pix[di+2] = bl
			case 4:
				out.Pix[di] = r
				out.Pix[di+1] = g
				out.Pix[di+2] = bl
				out.Pix[di+3] = a
			}
		}
	}
	return out, nil
}

// ToImage wraps the buffer in an image suitable for encoding.
// Single-channel buffers become *image.Gray, all others *image.NRGBA.
func (b *Buffer) ToImage() image.Image {
	rect := image.Rect(0, 0, b.Width, b.Height)
	if b.Channels == 1 {
		gray := image.NewGray(rect)
		copy(gray.Pix, b.Pix)
		return gray
	}

	img := image.NewNRGBA(rect)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			si := b.Offset(x, y)
			di := img.PixOffset(x, y)
			switch b.Channels {
			case 2:
				img.Pix[di] = b.Pix[si]
				img.Pix[di+1] = b.Pix[si]
				img.Pix[di+2] = b.Pix[si]
				img.Pix[di+3] = b.Pix[si+1]
			case 3:
				img.Pix[di] = b.Pix[si]
				img.Pix[di+1] = b.Pix[si+1]
				img.Pix[di+2] = b.Pix[si+2]
				img.Pix[di+3] = 255
			default:
				copy(img.Pix[di:di+4], b.Pix[si:si+4])
			}
		}
	}
	return img
}
