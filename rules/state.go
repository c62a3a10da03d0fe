package rules

// FoodScore is added to the score for every food eaten.
const FoodScore = 10

var (
	startHead = Point{X: 10, Y: 10}
	startFood = Point{X: 5, Y: 5}
)

// Death records why and when a game ended.
type Death struct {
	Turn  int64  `json:"turn"`
	Cause string `json:"cause"`
}

// GameState is the complete state of one game. Transitions in this package
// treat it as a value: they return a new GameState and never modify the one
// passed in.
type GameState struct {
	ID         string     `json:"id"`
	Turn       int64      `json:"turn"`
	Snake      []Point    `json:"snake"`
	Food       Point      `json:"food"`
	Direction  Direction  `json:"direction"`
	Heading    Direction  `json:"heading"`
	Score      int        `json:"score"`
	GameOver   bool       `json:"gameOver"`
	Death      *Death     `json:"death,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
}

// NewGame returns the state a fresh process starts in.
func NewGame() GameState {
	return GameState{
		Snake:      []Point{startHead},
		Food:       startFood,
		Direction:  DirectionRight,
		Heading:    DirectionRight,
		Difficulty: DifficultyMedium,
	}
}

// Reset returns a new game that keeps the difficulty of s.
func Reset(s GameState) GameState {
	next := NewGame()
	if s.Difficulty != "" {
		next.Difficulty = s.Difficulty
	}
	return next
}

// Head returns the first point in the body
func (s GameState) Head() Point {
	return s.Snake[0]
}

// Tail returns the last point in the body
func (s GameState) Tail() Point {
	return s.Snake[len(s.Snake)-1]
}

// Clone returns a deep copy of s.
func (s GameState) Clone() GameState {
	c := s
	c.Snake = append([]Point(nil), s.Snake...)
	if s.Death != nil {
		d := *s.Death
		c.Death = &d
	}
	return c
}
