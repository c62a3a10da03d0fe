package commands

import (
	"fmt"

	"github.com/battlesnakeio/snake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor  = termbox.ColorDefault
	bgColor       = termbox.ColorDefault
	gridColor     = termbox.ColorBlack | termbox.AttrBold
	snakeColor    = termbox.ColorGreen
	headColor     = termbox.ColorCyan
	foodColor     = termbox.ColorRed
	selectedColor = termbox.ColorBlue

	// cellWidth is the number of terminal columns per board cell, cells are
	// roughly square this way.
	cellWidth = 2

	boardLeft = 2
	boardTop  = 2
)

// canvas is the drawing surface render writes to.
type canvas interface {
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
}

type termboxCanvas struct{}

func (termboxCanvas) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

// draw renders a frame to the terminal.
func draw(s rules.GameState) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}
	render(termboxCanvas{}, s)
	return termbox.Flush()
}

func render(c canvas, s rules.GameState) {
	renderTitle(c, boardLeft, boardTop, s)
	renderBoard(c, boardLeft, boardTop)
	renderFood(c, boardLeft, boardTop, s.Food)
	renderSnake(c, boardLeft, boardTop, s.Snake)
	renderControls(c, boardLeft+rules.GridCount*cellWidth+3, boardTop+1, s)
}

// cellX and cellY convert a board point to the terminal cell of its top left
// corner.
func cellX(left int, p rules.Point) int { return left + p.X*cellWidth }
func cellY(top int, p rules.Point) int  { return top + 1 + p.Y }

func fillCell(c canvas, left, top int, p rules.Point, color termbox.Attribute) {
	for i := 0; i < cellWidth; i++ {
		c.SetCell(cellX(left, p)+i, cellY(top, p), ' ', color, color)
	}
}

func renderSnake(c canvas, left, top int, snake []rules.Point) {
	for i := len(snake) - 1; i >= 0; i-- {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		fillCell(c, left, top, snake[i], color)
	}
}

func renderFood(c canvas, left, top int, food rules.Point) {
	fillCell(c, left, top, food, foodColor)
}

func renderBoard(c canvas, left, top int) {
	width := rules.GridCount * cellWidth
	bottom := top + rules.GridCount + 1

	for i := top + 1; i < bottom; i++ {
		c.SetCell(left-1, i, '│', defaultColor, bgColor)
		c.SetCell(left+width, i, '│', defaultColor, bgColor)
	}

	c.SetCell(left-1, top, '┌', defaultColor, bgColor)
	c.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	c.SetCell(left+width, top, '┐', defaultColor, bgColor)
	c.SetCell(left+width, bottom, '┘', defaultColor, bgColor)

	fill(c, left, top, width, 1, termbox.Cell{Ch: '─'})
	fill(c, left, bottom, width, 1, termbox.Cell{Ch: '─'})

	for y := 0; y < rules.GridCount; y++ {
		for x := 0; x < rules.GridCount; x++ {
			p := rules.Point{X: x, Y: y}
			c.SetCell(cellX(left, p), cellY(top, p), '·', gridColor, bgColor)
		}
	}
}

func renderTitle(c canvas, left, top int, s rules.GameState) {
	tbprint(c, left, top-1, defaultColor, defaultColor, fmt.Sprintf("Snake - Turn %d", s.Turn))
}

func renderControls(c canvas, left, top int, s rules.GameState) {
	tbprint(c, left, top, defaultColor, defaultColor, fmt.Sprintf("Score: %d", s.Score))

	x := left
	for i, d := range rules.Difficulties {
		label := fmt.Sprintf(" %d %s ", i+1, d)
		fg, bg := defaultColor, bgColor
		if d == s.Difficulty {
			fg, bg = termbox.ColorWhite, selectedColor
		}
		x = tbprint(c, x, top+2, fg, bg, label) + 1
	}

	if !s.GameOver {
		tbprint(c, left, top+4, defaultColor, defaultColor, "Use the arrow keys to steer")
		tbprint(c, left, top+5, defaultColor, defaultColor, "Esc or q quits")
		return
	}

	banner := "Game over!"
	if s.Death != nil {
		banner = fmt.Sprintf("Game over! (%s)", s.Death.Cause)
	}
	tbprint(c, left, top+4, foodColor|termbox.AttrBold, defaultColor, banner)
	tbprint(c, left, top+5, defaultColor, defaultColor, "r restarts, 1-3 picks a difficulty")
	tbprint(c, left, top+6, defaultColor, defaultColor, "Esc or q quits")
}

func fill(c canvas, x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			c.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

// tbprint writes msg starting at x and returns the column after it.
func tbprint(c canvas, x, y int, fg, bg termbox.Attribute, msg string) int {
	for _, r := range msg {
		c.SetCell(x, y, r, fg, bg)
		x += runewidth.RuneWidth(r)
	}
	return x
}
