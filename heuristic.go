package gridpath

import "math"

// Manhattan is |dx| + |dy|: admissible and consistent on a 4-connected unit-cost grid.
func Manhattan(from, to Cell) float64 {
	return math.Abs(float64(from.X-to.X)) + math.Abs(float64(from.Y-to.Y))
}

// Euclidean is the straight-line distance. Admissible on a 4-connected grid
// but looser than Manhattan.
func Euclidean(from, to Cell) float64 {
	return math.Hypot(float64(from.X-to.X), float64(from.Y-to.Y))
}
