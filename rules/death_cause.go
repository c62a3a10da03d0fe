package rules

const (
	// DeathCauseWallCollision is when a snake runs off the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the head runs into the snake's own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseBoardFull is when the snake fills the board and no food can be placed
	DeathCauseBoardFull = "board-full"
)
