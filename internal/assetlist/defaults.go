package assetlist

// Default returns the built-in texture and depth-map set.
func Default() List {
	return List{
		Colors: []ColorDef{
			{File: "Assets/color_whiteNoise.png", ShortName: "color_whiteNoise"},
			{File: "Assets/grey_whiteNoise.png", ShortName: "grey_whiteNoise"},
			{File: "Assets/grey_blueNoise.png", ShortName: "grey_blueNoise"},
			{File: "Assets/color_candy.jpg", ShortName: "color_candy"},
			{File: "Assets/color_pumpkins.jpg", ShortName: "color_pumpkins"},
		},
		Depths: []DepthDef{
			{File: "Assets/bw_witch.jpg", ShortName: "witch", Invert: true, Binarize: true, PadX: 2, PadY: 2},
			{File: "Assets/bw_house.jpg", ShortName: "house", Invert: true, Binarize: true, PadX: 4, PadY: 2},
			{File: "Assets/grey_grave.jpg", ShortName: "grave", Normalize: true, PadX: 2, PadY: 2},
			{File: "Assets/grey_portrait.jpg", ShortName: "portrait", Normalize: true, PadX: 4, PadY: 2},
			{File: "Assets/grey_squares.png", ShortName: "squares", PadX: 2, PadY: 2},
		},
	}
}
