package ribbon

import "math"

const (
	minShadow = 10
	maxShadow = 50
	// shadowJitter bounds the random drift between neighboring cells.
	shadowJitter = 2
	// shadowBanding is subtracted from the intensity of the first
	// ShadowWidth rows of every 2*ShadowWidth rows.
	shadowBanding = 10
)

// shadowMap computes shadow intensities indexed [column][row] for every
// column but the last, in row-major order so each cell sees its up and left
// neighbors.
func (g *Generator) shadowMap(w, h int) [][]int {
	grid := make([][]int, max(w-1, 0))
	for j := range grid {
		grid[j] = make([]int, h)
	}

	for i := range h {
		for j := range grid {
			var up, left int
			hasUp, hasLeft := i > 0, j > 0
			if hasUp {
				up = grid[j][i-1]
			}
			if hasLeft {
				left = grid[j-1][i]
			}
			grid[j][i] = g.shadowIntensity(up, hasUp, left, hasLeft)
		}
	}

	return grid
}

// shadowIntensity derives a cell's intensity from its neighbors, drifting by
// up to shadowJitter. A cell without neighbors starts at a random intensity.
func (g *Generator) shadowIntensity(up int, hasUp bool, left int, hasLeft bool) int {
	f := float64(g.rng.IntN(shadowJitter*2+1) - shadowJitter)

	var n float64
	switch {
	case hasUp && hasLeft:
		n = float64(up+left)/2 + f
	case hasUp:
		n = float64(up) + f
	case hasLeft:
		n = float64(left) + f
	default:
		n = float64(minShadow + g.rng.IntN(maxShadow-minShadow))
	}

	if math.Floor(n) != math.Ceil(n) {
		if g.rng.Float64() <= 0.5 {
			n = math.Ceil(n)
		} else {
			n = math.Floor(n)
		}
	}

	return min(max(int(n), minShadow), maxShadow)
}
