package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	s := NewGame()
	require.Equal(t, []Point{{X: 10, Y: 10}}, s.Snake)
	require.Equal(t, Point{X: 5, Y: 5}, s.Food)
	require.Equal(t, DirectionRight, s.Direction)
	require.Equal(t, 0, s.Score)
	require.False(t, s.GameOver)
	require.Nil(t, s.Death)
	require.Equal(t, DifficultyMedium, s.Difficulty)
	require.Equal(t, GameStatusRunning, s.Status())
}

func TestResetKeepsDifficulty(t *testing.T) {
	for _, d := range Difficulties {
		s := gameWith([]Point{{X: 3, Y: 3}, {X: 3, Y: 4}}, Point{X: 8, Y: 8}, DirectionUp)
		s.Score = 120
		s.Turn = 42
		s.GameOver = true
		s.Death = &Death{Turn: 42, Cause: DeathCauseWallCollision}
		s.Difficulty = d

		r := Reset(s)
		require.Equal(t, []Point{{X: 10, Y: 10}}, r.Snake)
		require.Equal(t, Point{X: 5, Y: 5}, r.Food)
		require.Equal(t, DirectionRight, r.Direction)
		require.Equal(t, 0, r.Score)
		require.Equal(t, int64(0), r.Turn)
		require.False(t, r.GameOver)
		require.Nil(t, r.Death)
		require.Equal(t, d, r.Difficulty)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	s := NewGame()
	s.Death = &Death{Turn: 1, Cause: DeathCauseWallCollision}
	c := s.Clone()
	c.Snake[0] = Point{X: 0, Y: 0}
	c.Death.Cause = DeathCauseSnakeSelfCollision

	require.Equal(t, Point{X: 10, Y: 10}, s.Snake[0])
	require.Equal(t, DeathCauseWallCollision, s.Death.Cause)
}

func TestStatus(t *testing.T) {
	s := NewGame()
	s.GameOver = true
	require.Equal(t, GameStatusComplete, s.Status())
}
