package agent

import (
	"errors"
	"fmt"
	"io"

	"quoridor/game"
)

var ErrNoActions = errors.New("no legal actions")

// Agent decides the action of one player. It receives the legal actions for
// the current state, sorted ascending, and a copy of the state it may inspect
// freely.
type Agent interface {
	ChooseAction(legal []game.Action, view game.State) (game.Action, error)
}

// Func adapts a plain function to the Agent interface.
type Func func(legal []game.Action, view game.State) (game.Action, error)

func (f Func) ChooseAction(legal []game.Action, view game.State) (game.Action, error) {
	return f(legal, view)
}

const (
	KindRandom = "random" // Uniform over every legal action
	KindPawn   = "pawn"   // Uniform over pawn moves
	KindManual = "manual" // Reads actions from in
)

// New builds an agent by kind. Random kinds use seed; the manual kind
// talks over in and out.
func New(kind string, seed uint64, in io.Reader, out io.Writer) (Agent, error) {
	switch kind {
	case KindRandom:
		return NewRandom(seed), nil
	case KindPawn:
		return NewRandom(seed, PawnOnly()), nil
	case KindManual:
		return NewManual(in, out), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", kind)
	}
}
