package rules

// IsColliding reports whether moving the head to candidate ends the game. The
// current head is skipped since it moves out of the way.
func IsColliding(candidate Point, body []Point) bool {
	return collisionCause(candidate, body) != ""
}

// collisionCause returns the death cause for a head moving to candidate, or
// an empty string when the move is safe.
func collisionCause(candidate Point, body []Point) string {
	if deathByOutOfBounds(candidate) {
		return DeathCauseWallCollision
	}
	for i, b := range body {
		if i == 0 {
			continue
		}
		if deathByBodyCollision(candidate, b) {
			return DeathCauseSnakeSelfCollision
		}
	}
	return ""
}

func deathByBodyCollision(head, body Point) bool {
	return head.Equal(body)
}

func deathByOutOfBounds(head Point) bool {
	return !InBounds(head)
}
