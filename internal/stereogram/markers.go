package stereogram

import "autostereogram/internal/raster"

// Helper dot geometry.
const (
	DotRadius = 10
	DotY      = 15

	LeftDotValue  = 192
	RightDotValue = 255
)

// DrawHelperDots stamps two filled disks near the top of out, tileWidth
// pixels apart and centered horizontally. Converging the eyes until the
// dots fuse gives the right viewing distance. Disks are clipped to the
// buffer.
func DrawHelperDots(out *raster.Buffer, tileWidth int) {
	if out.Empty() {
		return
	}
	left, right := DotCenters(out.Width, tileWidth)
	drawDisk(out, left, DotY, LeftDotValue)
	drawDisk(out, right, DotY, RightDotValue)
}

// DotCenters returns the x coordinates of the left and right dot centers.
func DotCenters(outWidth, tileWidth int) (left, right int) {
	left = outWidth/2 - tileWidth/2
	return left, left + tileWidth
}

func drawDisk(out *raster.Buffer, cx, cy int, value uint8) {
	c := out.Channels
	for dy := -DotRadius; dy <= DotRadius; dy++ {
		y := cy + dy
		if y < 0 || y >= out.Height {
			continue
		}
		for dx := -DotRadius; dx <= DotRadius; dx++ {
			x := cx + dx
			if x < 0 || x >= out.Width {
				continue
			}
			if dx*dx+dy*dy >= DotRadius*DotRadius {
				continue
			}
			i := out.Offset(x, y)
			for k := 0; k < c; k++ {
				out.Pix[i+k] = value
			}
		}
	}
}
