package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManhattanDistance(t *testing.T) {
	a := Coordinate{I: 0, J: 0}
	b := Coordinate{I: 2, J: 3}
	assert.Equal(t, 5, a.ManhattanDistance(b))
	assert.Equal(t, 5, b.ManhattanDistance(a), "should be symmetric")
	assert.Zero(t, a.ManhattanDistance(a))
}

func TestDirectionOpposite(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, North, South.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, East, West.Opposite())
	assert.Equal(t, PE, PE.Opposite())
}
