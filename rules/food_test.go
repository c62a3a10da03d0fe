package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceFoodAvoidsOccupied(t *testing.T) {
	occupied := []Point{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}}
	// the first draw lands on the snake and must be retried
	p, ok := PlaceFood(newSeqRand(1, 2, 7, 9), occupied)
	require.True(t, ok)
	require.Equal(t, Point{X: 7, Y: 9}, p)
}

func TestPlaceFoodRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	occupied := []Point{{X: 10, Y: 10}, {X: 10, Y: 11}}
	for i := 0; i < 500; i++ {
		p, ok := PlaceFood(r, occupied)
		require.True(t, ok)
		require.True(t, InBounds(p))
		require.False(t, containsPoint(occupied, p))
	}
}

func TestPlaceFoodFallsBackToScan(t *testing.T) {
	free := Point{X: 13, Y: 4}
	occupied := fullBoardExcept(free)

	// every random draw hits (0,0) which is occupied
	values := make([]int, 2*maxFoodAttempts)
	p, ok := PlaceFood(newSeqRand(append(values, 0)...), occupied)
	require.True(t, ok)
	require.Equal(t, free, p)
}

func TestPlaceFoodBoardFull(t *testing.T) {
	_, ok := PlaceFood(rand.New(rand.NewSource(1)), fullBoardExcept())
	require.False(t, ok)
}

func TestGetUnoccupiedPoints(t *testing.T) {
	points := getUnoccupiedPoints([]Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 19, Y: 19}})
	require.Len(t, points, GridCount*GridCount-2)
	require.False(t, containsPoint(points, Point{X: 0, Y: 0}))
	require.False(t, containsPoint(points, Point{X: 19, Y: 19}))
}
