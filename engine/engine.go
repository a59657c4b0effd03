package engine

import (
	"errors"

	"quoridor/game"
)

var ErrGameOver = errors.New("game is over")

type Status int

const (
	InProgress Status = iota
	Player1Wins
	Player2Wins
)

func (s Status) String() string {
	switch s {
	case Player1Wins:
		return "Player1Wins"
	case Player2Wins:
		return "Player2Wins"
	default:
		return "InProgress"
	}
}

// StatusOf reads the status of a state.
func StatusOf(s *game.State) Status {
	switch s.Winner() {
	case game.Player1:
		return Player1Wins
	case game.Player2:
		return Player2Wins
	default:
		return InProgress
	}
}

type Runner interface {
	// Run plays until there's a winner or the turn limit is reached
	Run() (GameMetric, []MoveMetric, error)
}
