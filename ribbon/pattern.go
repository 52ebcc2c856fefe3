package ribbon

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

const (
	minColors  = 2
	maxColors  = 4
	minDensity = 1.0
	maxDensity = 3.0

	// newWidthChance is the probability of drawing a fresh stripe width
	// instead of reusing one.
	newWidthChance = 0.2
	// scaledWidthChance is the probability a fresh width follows the
	// density curve rather than falling back to fallbackWidth.
	scaledWidthChance = 0.8
	minStripeWidth    = 3
	fallbackWidth     = 10 + minStripeWidth
)

// Pattern paints the stripe layer of a new ribbon without any shadow.
func (g *Generator) Pattern() *Ribbon {
	nrColors := minColors + g.rng.IntN(maxColors-minColors+1)
	density := minDensity + g.rng.Float64()*(maxDensity-minDensity)
	colors := g.pickRandomColors(nrColors)

	r := &Ribbon{
		Image:   image.NewRGBA(image.Rect(0, 0, Width, Height)),
		Colors:  colors,
		Density: density,
	}

	current := colors[0]
	fill(r.Image, r.Image.Bounds(), current)

	// pickNextColor reorders its input, Colors keeps the picked order.
	choices := append([]color.RGBA(nil), colors...)

	var widths []int
	half := Width / 2
	for from, full := 0, false; !full; {
		to := from + g.stripeWidth(Width, &widths, density)
		if to >= half {
			to = half
			full = true
		}

		current = g.pickNextColor(choices, current)
		fill(r.Image, image.Rect(from, 0, to, Height), current)
		fill(r.Image, image.Rect(Width-to, 0, Width-from, Height), current)
		r.Stripes = append(r.Stripes, Stripe{From: from, To: to, Color: current})
		from = to
	}

	return r
}

// stripeWidth returns the width of the next stripe. Mostly it repeats one of
// the widths recorded so far, which gives ribbons their rhythm; otherwise it
// draws a new width from the density curve and records it.
func (g *Generator) stripeWidth(total int, widths *[]int, density float64) int {
	if g.rng.Float64() >= newWidthChance && len(*widths) > 0 {
		return (*widths)[g.rng.IntN(len(*widths))]
	}

	var w int
	if g.rng.Float64() < scaledWidthChance {
		w = int((math.Pow(2, g.rng.Float64()) - 1) * float64(total) / density / 2)
	}
	if w < minStripeWidth {
		w = fallbackWidth
	}

	*widths = append(*widths, w)
	return w
}

func fill(dst draw.Image, r image.Rectangle, c color.RGBA) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}
