package assetlist

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// xmlAssetList matches the asset list schema:
//
//	<Assets>
//	  <Color File="color_candy.jpg" Name="color_candy"/>
//	  <Depth File="bw_witch.jpg" Name="witch" Invert="true" Binarize="true" PadX="2" PadY="2"/>
//	</Assets>
type xmlAssetList struct {
	Colors []xmlColor `xml:"Color"`
	Depths []xmlDepth `xml:"Depth"`
}

type xmlColor struct {
	File string `xml:"File,attr"`
	Name string `xml:"Name,attr"`
}

type xmlDepth struct {
	File      string `xml:"File,attr"`
	Name      string `xml:"Name,attr"`
	Invert    string `xml:"Invert,attr"`
	Normalize string `xml:"Normalize,attr"`
	Binarize  string `xml:"Binarize,attr"`
	PadX      string `xml:"PadX,attr"`
	PadY      string `xml:"PadY,attr"`
}

// Parse reads an asset list XML file. Entries without a File are skipped;
// a missing Name defaults to the file stem.
func Parse(xmlPath string) (List, error) {
	raw, err := os.ReadFile(xmlPath)
	if err != nil {
		return List{}, fmt.Errorf("assetlist: read %s: %w", xmlPath, err)
	}

	var doc xmlAssetList
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return List{}, fmt.Errorf("assetlist: parse %s: %w", xmlPath, err)
	}

	var list List
	for _, c := range doc.Colors {
		if c.File == "" {
			continue
		}
		list.Colors = append(list.Colors, ColorDef{
			File:      c.File,
			ShortName: nameOr(c.Name, c.File),
		})
	}

	for _, d := range doc.Depths {
		if d.File == "" {
			continue
		}
		def := DepthDef{
			File:      d.File,
			ShortName: nameOr(d.Name, d.File),
			PadX:      1,
			PadY:      1,
		}
		if def.Invert, err = parseBool(d.Invert); err != nil {
			return List{}, fmt.Errorf("assetlist: %s Invert: %w", d.File, err)
		}
		if def.Normalize, err = parseBool(d.Normalize); err != nil {
			return List{}, fmt.Errorf("assetlist: %s Normalize: %w", d.File, err)
		}
		if def.Binarize, err = parseBool(d.Binarize); err != nil {
			return List{}, fmt.Errorf("assetlist: %s Binarize: %w", d.File, err)
		}
		if d.PadX != "" {
			if def.PadX, err = strconv.Atoi(d.PadX); err != nil {
				return List{}, fmt.Errorf("assetlist: %s PadX: %w", d.File, err)
			}
		}
		if d.PadY != "" {
			if def.PadY, err = strconv.Atoi(d.PadY); err != nil {
				return List{}, fmt.Errorf("assetlist: %s PadY: %w", d.File, err)
			}
		}
		list.Depths = append(list.Depths, def)
	}

	return list, nil
}

func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

func nameOr(name, file string) string {
	if name != "" {
		return name
	}
	base := filepath.Base(strings.ReplaceAll(file, "\\", "/"))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
