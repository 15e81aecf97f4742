package assetlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPairs(t *testing.T) {
	pairs := Default().Pairs()
	if len(pairs) != 25 {
		t.Fatalf("len(Pairs()) = %d; want 25", len(pairs))
	}
	if got := pairs[0].Name(); got != "witch_color_whiteNoise" {
		t.Errorf("pairs[0].Name() = %q; want %q", got, "witch_color_whiteNoise")
	}
	if got := pairs[24].Name(); got != "squares_color_pumpkins" {
		t.Errorf("pairs[24].Name() = %q; want %q", got, "squares_color_pumpkins")
	}
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assets.xml")
	doc := `<?xml version="1.0"?>
<Assets>
  <Color File="Assets/color_candy.jpg" Name="candy"/>
  <Color File="tiles\grey_blueNoise.png"/>
  <Color Name="orphan"/>
  <Depth File="bw_house.jpg" Name="house" Invert="true" Binarize="1" PadX="4" PadY="2"/>
  <Depth File="grey_grave.jpg" Normalize="true"/>
</Assets>`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	list, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(list.Colors) != 2 {
		t.Fatalf("len(Colors) = %d; want 2", len(list.Colors))
	}
	if list.Colors[0].ShortName != "candy" {
		t.Errorf("Colors[0].ShortName = %q; want %q", list.Colors[0].ShortName, "candy")
	}
	if list.Colors[1].ShortName != "grey_blueNoise" {
		t.Errorf("Colors[1].ShortName = %q; want %q", list.Colors[1].ShortName, "grey_blueNoise")
	}

	if len(list.Depths) != 2 {
		t.Fatalf("len(Depths) = %d; want 2", len(list.Depths))
	}
	house := list.Depths[0]
	if !house.Invert || !house.Binarize || house.Normalize || house.PadX != 4 || house.PadY != 2 {
		t.Errorf("house = %+v", house)
	}
	grave := list.Depths[1]
	if grave.ShortName != "grey_grave" || !grave.Normalize || grave.PadX != 1 || grave.PadY != 1 {
		t.Errorf("grave = %+v", grave)
	}
}

func TestParseErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Parse(filepath.Join(dir, "missing.xml")); err == nil {
		t.Error("Parse(missing) should fail")
	}

	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "<Assets><Color"},
		{"bad bool", `<Assets><Depth File="a.png" Invert="maybe"/></Assets>`},
		{"bad pad", `<Assets><Depth File="a.png" PadX="two"/></Assets>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".xml")
			os.WriteFile(path, []byte(tt.doc), 0644)
			if _, err := Parse(path); err == nil {
				t.Error("Parse should fail")
			}
		})
	}
}
