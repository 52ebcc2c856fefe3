// Package ribbon synthesizes decorative ribbon images: a mirror-symmetric
// pattern of vertical stripes with a banded shadow texture blended on top.
package ribbon

import (
	"image"
	"image/color"
	"math/rand/v2"

	"ribbons/palette"

	"golang.org/x/image/draw"
)

const (
	// ShadowWidth is the height in pixels of one shadow band.
	ShadowWidth = 3
	// Width of a ribbon in pixels.
	Width = 118 * ShadowWidth
	// Height of a ribbon in pixels.
	Height = 32 * ShadowWidth
)

// Stripe is one band of the left half of a ribbon. The right half holds
// its mirror image [Width-To, Width-From).
type Stripe struct {
	From, To int
	Color    color.RGBA
}

// Ribbon is a generated image together with the layout it was painted from.
type Ribbon struct {
	Image *image.RGBA

	// Colors is the subset of the candidate palette picked for this ribbon.
	Colors []color.RGBA

	// Density scales the stripe widths; higher means narrower stripes.
	Density float64

	// Stripes lists the painted stripes from the left edge to the center.
	Stripes []Stripe
}

// Generator paints ribbons from a single random stream. It is not safe for
// concurrent use.
type Generator struct {
	rng        *rand.Rand
	candidates []color.RGBA
}

// New returns a generator drawing from rng. Repeated candidates are dropped;
// a nil or empty candidates palette selects palette.Classic.
func New(rng *rand.Rand, candidates color.Palette) *Generator {
	if len(candidates) == 0 {
		candidates = palette.Colors(palette.Classic)
	}

	g := &Generator{rng: rng}
	seen := map[color.RGBA]bool{}
	for _, c := range candidates {
		rgba := color.RGBAModel.Convert(c).(color.RGBA)
		if !seen[rgba] {
			seen[rgba] = true
			g.candidates = append(g.candidates, rgba)
		}
	}
	return g
}

// Generate paints the stripe pattern and blends the shadow over it.
func (g *Generator) Generate() *Ribbon {
	r := g.Pattern()
	g.Shadow(r.Image)
	return r
}

// Shadow blends the banded shadow texture over dst, which must already hold
// the stripe pattern.
func (g *Generator) Shadow(dst draw.Image) {
	b := dst.Bounds()
	shade(dst, g.shadowMap(b.Dx(), b.Dy()))
}

// shade draws black over dst, row by row, as two-pixel segments starting at
// every column of intensity. Rows within the first ShadowWidth of each
// 2*ShadowWidth band are lightened by shadowBanding.
func shade(dst draw.Image, intensity [][]int) {
	if len(intensity) == 0 {
		return
	}

	b := dst.Bounds()
	for i := range len(intensity[0]) {
		for j := range intensity {
			alpha := intensity[j][i]
			if i%(ShadowWidth*2) < ShadowWidth {
				alpha -= shadowBanding
			}
			segment := image.Rect(j, i, j+2, i+1).Add(b.Min)
			draw.DrawMask(dst, segment, image.Black, image.Point{}, &image.Uniform{color.Alpha{A: uint8(alpha)}}, image.Point{}, draw.Over)
		}
	}
}
