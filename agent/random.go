package agent

import (
	"quoridor/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal actions.
type Random struct {
	rng      *rand.Rand
	pawnOnly bool
}

type RandomOption func(*Random)

// PawnOnly restricts the choice to pawn moves whenever one is legal.
func PawnOnly() RandomOption {
	return func(r *Random) {
		r.pawnOnly = true
	}
}

func NewRandom(seed uint64, opts ...RandomOption) *Random {
	r := &Random{
		rng: rand.New(rand.NewSource(seed)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Random) ChooseAction(legal []game.Action, _ game.State) (game.Action, error) {
	if len(legal) == 0 {
		return 0, ErrNoActions
	}
	candidates := legal
	if r.pawnOnly {
		// Legal actions are sorted, so pawn moves come first
		n := 0
		for n < len(legal) && legal[n].IsPawn() {
			n++
		}
		if n > 0 {
			candidates = legal[:n]
		}
	}
	return candidates[r.rng.Intn(len(candidates))], nil
}
