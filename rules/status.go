package rules

// GameStatus describes whether a game is still being played.
type GameStatus string

const (
	// GameStatusRunning represents a game that is being played
	GameStatusRunning GameStatus = "running"
	// GameStatusComplete represents a game that is done
	GameStatusComplete GameStatus = "complete"
)

// Status returns the status of s.
func (s GameState) Status() GameStatus {
	if s.GameOver {
		return GameStatusComplete
	}
	return GameStatusRunning
}
