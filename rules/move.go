package rules

var keyDirections = map[string]Direction{
	"ArrowUp":    DirectionUp,
	"ArrowDown":  DirectionDown,
	"ArrowLeft":  DirectionLeft,
	"ArrowRight": DirectionRight,
}

// KeyDirection maps an arrow key name to the direction it steers.
func KeyDirection(key string) (Direction, bool) {
	d, ok := keyDirections[key]
	return d, ok
}

// ApplyKey steers the snake with an arrow key. The returned bool is false when
// the key was ignored, in which case s is returned as is.
func ApplyKey(s GameState, key string) (GameState, bool) {
	d, ok := KeyDirection(key)
	if !ok {
		return s, false
	}
	return ApplyDirection(s, d)
}

// ApplyDirection changes the direction the next tick moves in. Changes are
// ignored once the game is over, and a change may not reverse either the
// heading of the last tick or the direction already chosen for the next one.
// Only the latest accepted change before a tick is used.
func ApplyDirection(s GameState, d Direction) (GameState, bool) {
	if s.GameOver || !d.Valid() {
		return s, false
	}
	if d == s.Heading.Opposite() || d == s.Direction.Opposite() {
		return s, false
	}
	if d == s.Direction {
		return s, false
	}
	next := s.Clone()
	next.Direction = d
	return next, true
}
