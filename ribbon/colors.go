package ribbon

import "image/color"

// pickRandomColors returns n distinct candidates in random order. n is
// capped at the number of candidates.
func (g *Generator) pickRandomColors(n int) []color.RGBA {
	colors := make([]color.RGBA, len(g.candidates))
	copy(colors, g.candidates)
	g.shuffle(colors)
	return colors[:min(n, len(colors))]
}

// pickNextColor shuffles colors in place and returns the first one, or the
// second one when the first equals excluded. A single color is returned even
// if it repeats excluded.
func (g *Generator) pickNextColor(colors []color.RGBA, excluded color.RGBA) color.RGBA {
	g.shuffle(colors)
	if len(colors) <= 1 || colors[0] != excluded {
		return colors[0]
	}
	return colors[1]
}

func (g *Generator) shuffle(colors []color.RGBA) {
	g.rng.Shuffle(len(colors), func(i, j int) {
		colors[i], colors[j] = colors[j], colors[i]
	})
}
