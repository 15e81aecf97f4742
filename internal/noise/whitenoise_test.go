package noise

import (
	"bytes"
	"testing"
)

func TestWhiteNoiseDeterministic(t *testing.T) {
	a, ga := WhiteNoise(16, 7)
	b, gb := WhiteNoise(16, 7)
	if !bytes.Equal(a.Pix, b.Pix) || !bytes.Equal(ga.Pix, gb.Pix) {
		t.Error("same seed produced different noise")
	}

	c, _ := WhiteNoise(16, 8)
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("different seeds produced identical noise")
	}
}

func TestWhiteNoiseShape(t *testing.T) {
	rgb, grey := WhiteNoise(DefaultSize, 1)
	if err := rgb.Validate(); err != nil {
		t.Fatalf("rgb: %v", err)
	}
	if err := grey.Validate(); err != nil {
		t.Fatalf("grey: %v", err)
	}
	if rgb.Channels != 3 || grey.Channels != 1 {
		t.Errorf("channels = %d/%d; want 3/1", rgb.Channels, grey.Channels)
	}
	if !bytes.Equal(grey.Pix, rgb.Pix[:len(grey.Pix)]) {
		t.Error("grey tile should reuse the leading RGB samples")
	}

	// a 128×128×3 uniform draw should hit every byte value
	var seen [256]bool
	for _, v := range rgb.Pix {
		seen[v] = true
	}
	for v, ok := range seen {
		if !ok {
			t.Errorf("value %d never generated", v)
			break
		}
	}
}
