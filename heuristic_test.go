package gridpath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicValues(t *testing.T) {
	assert.Equal(t, 7.0, Manhattan(Cell{1, 1}, Cell{4, 5}))
	assert.Equal(t, 5.0, Euclidean(Cell{1, 1}, Cell{4, 5}))
	assert.Zero(t, Manhattan(Cell{2, 3}, Cell{2, 3}))
	assert.Zero(t, Euclidean(Cell{2, 3}, Cell{2, 3}))
	assert.Equal(t, Manhattan(Cell{0, 9}, Cell{3, 2}), Manhattan(Cell{3, 2}, Cell{0, 9}))
}

func TestHeuristicsConsistentOnUnitGrid(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		a := Cell{r.Intn(20) - 10, r.Intn(20) - 10}
		goal := Cell{r.Intn(20) - 10, r.Intn(20) - 10}
		for _, d := range Directions {
			b := d.Apply(a)
			// h(a) <= cost(a,b) + h(b)
			assert.LessOrEqual(t, Manhattan(a, goal), 1+Manhattan(b, goal))
			assert.LessOrEqual(t, Euclidean(a, goal), 1+Euclidean(b, goal)+1e-9)
		}
		assert.LessOrEqual(t, Euclidean(a, goal), Manhattan(a, goal)+1e-9)
	}
}
