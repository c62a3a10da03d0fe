package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInBounds(t *testing.T) {
	require.True(t, InBounds(Point{X: 0, Y: 0}))
	require.True(t, InBounds(Point{X: 19, Y: 19}))
	require.True(t, InBounds(Point{X: 10, Y: 0}))

	for _, p := range []Point{
		{X: -1, Y: 1},
		{X: 20, Y: 1},
		{X: 1, Y: -1},
		{X: 1, Y: 20},
	} {
		require.False(t, InBounds(p), "%v should be out of bounds", p)
	}
}

func TestDeathCauseWallCollision(t *testing.T) {
	points := []Point{
		{X: -1, Y: 1},
		{X: 20, Y: 1},
		{X: 1, Y: -1},
		{X: 1, Y: 20},
	}
	for _, p := range points {
		require.True(t, IsColliding(p, []Point{{X: 1, Y: 1}}))
		require.Equal(t, DeathCauseWallCollision, collisionCause(p, []Point{{X: 1, Y: 1}}))
	}
}

func TestDeathCauseSnakeSelfCollision(t *testing.T) {
	body := []Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
	}
	require.True(t, IsColliding(Point{X: 6, Y: 5}, body))
	require.Equal(t, DeathCauseSnakeSelfCollision, collisionCause(Point{X: 6, Y: 5}, body))
}

func TestNoCollisionWithCurrentHead(t *testing.T) {
	body := []Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
	}
	require.False(t, IsColliding(Point{X: 5, Y: 5}, body))
	require.False(t, IsColliding(Point{X: 4, Y: 5}, body))
	require.Equal(t, "", collisionCause(Point{X: 4, Y: 5}, body))
}
