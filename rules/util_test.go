package rules

import "math/rand"

// seqRand returns the queued values in order and falls back to a seeded
// source once they run out.
type seqRand struct {
	values []int
	rnd    *rand.Rand
}

func newSeqRand(values ...int) *seqRand {
	return &seqRand{values: values, rnd: rand.New(rand.NewSource(1))}
}

func (s *seqRand) Intn(n int) int {
	if len(s.values) == 0 {
		return s.rnd.Intn(n)
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func gameWith(snake []Point, food Point, d Direction) GameState {
	s := NewGame()
	s.Snake = snake
	s.Food = food
	s.Direction = d
	s.Heading = d
	return s
}

// fullBoardExcept returns every cell of the board except the ones given.
func fullBoardExcept(free ...Point) []Point {
	points := []Point{}
	for x := 0; x < GridCount; x++ {
		for y := 0; y < GridCount; y++ {
			p := Point{X: x, Y: y}
			if !containsPoint(free, p) {
				points = append(points, p)
			}
		}
	}
	return points
}
