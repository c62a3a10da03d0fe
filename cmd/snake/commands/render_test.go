package commands

import (
	"strings"
	"testing"

	"github.com/battlesnakeio/snake/rules"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

type recordedCell struct {
	ch     rune
	fg, bg termbox.Attribute
}

type recordingCanvas map[[2]int]recordedCell

func (rc recordingCanvas) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	rc[[2]int{x, y}] = recordedCell{ch: ch, fg: fg, bg: bg}
}

func (rc recordingCanvas) at(p rules.Point) recordedCell {
	return rc[[2]int{cellX(boardLeft, p), cellY(boardTop, p)}]
}

// line returns the text written on row y starting at column x.
func (rc recordingCanvas) line(x, y int) string {
	b := strings.Builder{}
	for {
		c, ok := rc[[2]int{x, y}]
		if !ok {
			return b.String()
		}
		b.WriteRune(c.ch)
		x++
	}
}

func (rc recordingCanvas) contains(text string) bool {
	for pos := range rc {
		if strings.HasPrefix(rc.line(pos[0], pos[1]), text) {
			return true
		}
	}
	return false
}

func TestRenderBoard(t *testing.T) {
	rc := recordingCanvas{}
	s := rules.NewGame()
	s.Snake = []rules.Point{{X: 10, Y: 10}, {X: 9, Y: 10}}
	render(rc, s)

	require.Equal(t, headColor, rc.at(rules.Point{X: 10, Y: 10}).bg)
	require.Equal(t, snakeColor, rc.at(rules.Point{X: 9, Y: 10}).bg)
	require.Equal(t, foodColor, rc.at(rules.Point{X: 5, Y: 5}).bg)
	require.Equal(t, '·', rc.at(rules.Point{X: 0, Y: 0}).ch)
	require.Equal(t, '·', rc.at(rules.Point{X: 19, Y: 19}).ch)

	// cells are two columns wide
	head := rules.Point{X: 10, Y: 10}
	second := rc[[2]int{cellX(boardLeft, head) + 1, cellY(boardTop, head)}]
	require.Equal(t, headColor, second.bg)

	require.Equal(t, '┌', rc[[2]int{boardLeft - 1, boardTop}].ch)
	require.Equal(t, '┘', rc[[2]int{boardLeft + rules.GridCount*cellWidth, boardTop + rules.GridCount + 1}].ch)
}

func TestRenderControls(t *testing.T) {
	rc := recordingCanvas{}
	s := rules.NewGame()
	s.Score = 30
	render(rc, s)

	require.True(t, rc.contains("Score: 30"))
	require.True(t, rc.contains("Use the arrow keys to steer"))
	require.False(t, rc.contains("Game over!"))

	rc = recordingCanvas{}
	s.GameOver = true
	s.Death = &rules.Death{Turn: 4, Cause: rules.DeathCauseWallCollision}
	s.Difficulty = rules.DifficultyHard
	render(rc, s)

	require.True(t, rc.contains("Game over! (wall-collision)"))
	require.True(t, rc.contains("r restarts"))

	for pos, c := range rc {
		if strings.HasPrefix(rc.line(pos[0], pos[1]), " 3 hard ") {
			require.Equal(t, selectedColor, c.bg)
		}
		if strings.HasPrefix(rc.line(pos[0], pos[1]), " 2 medium ") {
			require.Equal(t, bgColor, c.bg)
		}
	}
}
