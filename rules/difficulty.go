package rules

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Difficulty controls how fast the game ticks.
type Difficulty string

const (
	// DifficultyEasy ticks every 200ms
	DifficultyEasy Difficulty = "easy"
	// DifficultyMedium ticks every 150ms, it is the default
	DifficultyMedium Difficulty = "medium"
	// DifficultyHard ticks every 100ms
	DifficultyHard Difficulty = "hard"
)

// ErrUnknownDifficulty is returned when parsing a difficulty name fails.
var ErrUnknownDifficulty = errors.New("rules: unknown difficulty")

var tickIntervals = map[Difficulty]time.Duration{
	DifficultyEasy:   200 * time.Millisecond,
	DifficultyMedium: 150 * time.Millisecond,
	DifficultyHard:   100 * time.Millisecond,
}

// Difficulties lists the levels from slowest to fastest.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// TickInterval returns the time between ticks. Unknown levels tick at the
// medium rate.
func (d Difficulty) TickInterval() time.Duration {
	if i, ok := tickIntervals[d]; ok {
		return i
	}
	return tickIntervals[DifficultyMedium]
}

// ParseDifficulty converts a level name, case insensitive, to a Difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := tickIntervals[d]; !ok {
		return "", errors.Wrapf(ErrUnknownDifficulty, "%q", name)
	}
	return d, nil
}

// SetDifficulty returns s with only the difficulty changed. Whether a change
// is allowed mid game is up to the caller.
func SetDifficulty(s GameState, d Difficulty) GameState {
	next := s.Clone()
	next.Difficulty = d
	return next
}
