package rules

import (
	log "github.com/sirupsen/logrus"
)

// GameTick advances the game one step and returns the next state. Finished
// games are returned unchanged.
func GameTick(s GameState, r Rand) GameState {
	if s.GameOver || len(s.Snake) == 0 {
		return s
	}

	turn := s.Turn + 1
	head := s.Head().Add(s.Direction.Delta())

	if cause := collisionCause(head, s.Snake); cause != "" {
		return endGame(s, turn, cause)
	}

	next := s.Clone()
	next.Turn = turn
	next.Heading = s.Direction
	next.Snake = append([]Point{head}, s.Snake...)

	if head.Equal(s.Food) {
		food, ok := PlaceFood(r, next.Snake)
		if !ok {
			return endGame(s, turn, DeathCauseBoardFull)
		}
		next.Score += FoodScore
		next.Food = food
		log.WithFields(log.Fields{
			"GameID": s.ID,
			"Turn":   turn,
			"Score":  next.Score,
			"Food":   food,
		}).Debug("snake ate")
		return next
	}

	next.Snake = next.Snake[:len(next.Snake)-1]
	log.WithFields(log.Fields{
		"GameID": s.ID,
		"Turn":   turn,
		"Head":   head,
	}).Debug("move")
	return next
}

func endGame(s GameState, turn int64, cause string) GameState {
	next := s.Clone()
	next.GameOver = true
	next.Death = &Death{
		Turn:  turn,
		Cause: cause,
	}
	log.WithFields(log.Fields{
		"GameID": s.ID,
		"Turn":   turn,
		"Cause":  cause,
		"Score":  s.Score,
	}).Info("game over")
	return next
}
