// Package palette holds the candidate colors ribbons are painted with.
package palette

import (
	"fmt"
	"image/color"
	"os"
	"strings"
)

// Entry is a named candidate color.
type Entry struct {
	Name  string
	Color color.RGBA
}

// Classic is the built-in set of ribbon colors.
var Classic = []Entry{
	{"blue", color.RGBA{36, 36, 101, 0xff}},
	{"dark blue", color.RGBA{0, 0, 78, 0xff}},
	{"white", color.RGBA{252, 252, 252, 0xff}},
	{"old red", color.RGBA{177, 0, 14, 0xff}},
	{"light blue", color.RGBA{131, 200, 255, 0xff}},
	{"yellow", color.RGBA{219, 219, 34, 0xff}},
	{"red", color.RGBA{212, 0, 0, 0xff}},
	{"green", color.RGBA{0, 177, 0, 0xff}},
	{"black", color.RGBA{40, 40, 40, 0xff}},
	{"gold", color.RGBA{252, 204, 52, 0xff}},
	{"orange", color.RGBA{239, 89, 35, 0xff}},
	{"purple", color.RGBA{120, 37, 136, 0xff}},
}

// MinColors is the smallest palette a ribbon can be painted with.
const MinColors = 2

// Colors returns the entries as a color.Palette.
func Colors(entries []Entry) color.Palette {
	pal := make(color.Palette, len(entries))
	for i, e := range entries {
		pal[i] = e.Color
	}
	return pal
}

// LoadPalette returns the built-in palette for "" or "classic", otherwise
// it reads the colors of the RIFF PAL file at name, keeping the first
// occurrence of each.
func LoadPalette(name string) (color.Palette, error) {
	if name == "" || strings.EqualFold(name, "classic") {
		return Colors(Classic), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open palette %q: %w", name, err)
	}
	defer f.Close()

	pals, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("could not read palette %q: %w", name, err)
	}

	var res color.Palette
	seen := map[color.RGBA]bool{}
	for _, pal := range pals {
		for _, c := range pal {
			rgba := opaque(c)
			if seen[rgba] {
				continue
			}
			seen[rgba] = true
			res = append(res, rgba)
		}
	}

	if len(res) < MinColors {
		return nil, fmt.Errorf("palette %q has %d distinct colors, need at least %d", name, len(res), MinColors)
	}
	return res, nil
}

// opaque drops the flags byte PAL files carry in place of alpha.
func opaque(c color.Color) color.RGBA {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	rgba.A = 0xff
	return rgba
}
