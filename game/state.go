package game

import (
	"fmt"
	"slices"
)

// State is the full board: pawns, walls, wall stock and side to move. It is
// made of fixed-size arrays, so a State value is an independent copy.
type State struct {
	Positions      [2]Tile `json:"positions"`      // Pawn tile per player, indexed by Player-1
	Walls          Walls   `json:"walls"`          // Intersection grid
	WallsRemaining [2]int  `json:"wallsRemaining"` // Walls left per player, indexed by Player-1
	CurrentPlayer  Player  `json:"currentPlayer"`  // Player to act next
	Won            Player  `json:"winner"`         // NoPlayer while the game is in progress
}

// New returns the starting position: player 1 in the middle of row 0,
// player 2 in the middle of row 8, no walls, player 1 to move.
func New() *State {
	return &State{
		Positions:      [2]Tile{TileAt(0, 4), TileAt(NumRows-1, 4)},
		WallsRemaining: [2]int{WallsPerPlayer, WallsPerPlayer},
		CurrentPlayer:  Player1,
	}
}

func (s State) Copy() *State {
	return &s
}

func (s *State) Position(p Player) Tile {
	return s.Positions[p.index()]
}

func (s *State) Remaining(p Player) int {
	return s.WallsRemaining[p.index()]
}

func (s *State) NextPlayer() Player {
	return s.CurrentPlayer.Opponent()
}

// Winner returns the player that reached its goal row, or NoPlayer.
func (s *State) Winner() Player {
	return s.Won
}

// IsTerminal reports whether the game is over.
func (s *State) IsTerminal() bool {
	return s.Won != NoPlayer
}

// CheckWinner evaluates the goal rows. Player 2 is checked first.
func (s *State) CheckWinner() Player {
	if s.Position(Player2) < NumRows {
		return Player2
	}
	if s.Position(Player1) >= NumTiles-NumRows {
		return Player1
	}
	return NoPlayer
}

// LegalActions returns the sorted legal actions for the current player, or
// nil once the game is over.
func (s *State) LegalActions() []Action {
	if s.IsTerminal() {
		return nil
	}
	p := s.CurrentPlayer
	actions := PawnActions(&s.Walls, s.Position(p), s.Position(p.Opponent()), p)
	actions = append(actions, s.WallActions()...)
	slices.Sort(actions)
	return actions
}

// IsLegal reports whether a is in LegalActions.
func (s *State) IsLegal(a Action) bool {
	if !a.Valid() {
		return false
	}
	if a.IsPawn() {
		p := s.CurrentPlayer
		return !s.IsTerminal() && slices.Contains(PawnActions(&s.Walls, s.Position(p), s.Position(p.Opponent()), p), a)
	}
	orientation, ix := a.Wall()
	return !s.IsTerminal() &&
		s.Remaining(s.CurrentPlayer) > 1 &&
		s.Walls.CanPlace(orientation, ix) &&
		!s.BlocksPath(orientation, ix)
}

// Play returns the state after the current player takes action a. Full
// legality is the caller's concern; Play only refuses actions that would
// break a board invariant: codes out of range, walls on a taken
// intersection or without stock, pawn moves onto the opponent, and pawn
// moves that leave the board or wrap into another row. A pawn may only leave
// the board past its own goal edge, which wins the game. The receiver is
// never modified.
func (s State) Play(a Action) (*State, error) {
	if s.IsTerminal() {
		return nil, fmt.Errorf("%w: game already won by %s", ErrInvalidAction, s.Won)
	}
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d out of range 0-%d", ErrInvalidAction, int(a), NumActions-1)
	}

	p := s.CurrentPlayer
	if a.IsPawn() {
		from := s.Position(p)
		d := a.Direction()
		to := d.From(from)
		if to == s.Position(p.Opponent()) {
			return nil, fmt.Errorf("%w: %s moves onto the opponent", ErrInvalidAction, a)
		}
		if !to.OnBoard() && !pastGoal(p, d, to) {
			return nil, fmt.Errorf("%w: %s leaves the board from tile %d", ErrInvalidAction, a, from)
		}
		if to.OnBoard() && colDistance(from, to) > 2 {
			return nil, fmt.Errorf("%w: %s wraps from tile %d to tile %d", ErrInvalidAction, a, from, to)
		}
		s.Positions[p.index()] = to
	} else {
		orientation, ix := a.Wall()
		if s.Walls[ix] != NoWall {
			return nil, fmt.Errorf("%w: intersection %d already holds a %s wall", ErrInvalidAction, ix, s.Walls[ix])
		}
		if s.Remaining(p) <= 0 {
			return nil, fmt.Errorf("%w: %s has no walls left", ErrInvalidAction, p)
		}
		s.Walls[ix] = orientation
		s.WallsRemaining[p.index()]--
	}

	s.Won = s.CheckWinner()
	if s.Won == NoPlayer {
		s.CurrentPlayer = s.NextPlayer()
	}
	return &s, nil
}

// pastGoal reports whether a move in direction d ends beyond the goal edge of p.
func pastGoal(p Player, d Direction, to Tile) bool {
	switch p {
	case Player1:
		return (d == North || d == NorthNorth) && to >= NumTiles
	case Player2:
		return (d == South || d == SouthSouth) && to < 0
	}
	return false
}

func colDistance(a, b Tile) int {
	if a.Col() > b.Col() {
		return a.Col() - b.Col()
	}
	return b.Col() - a.Col()
}

// Validate checks the invariants of a state built outside of Play, such as
// one read back from a snapshot.
func (s *State) Validate() error {
	if s.CurrentPlayer != Player1 && s.CurrentPlayer != Player2 {
		return fmt.Errorf("%w: current player %d", ErrInvalidState, int(s.CurrentPlayer))
	}
	if s.Won != NoPlayer && s.Won != Player1 && s.Won != Player2 {
		return fmt.Errorf("%w: winner %d", ErrInvalidState, int(s.Won))
	}
	if s.Position(Player1) == s.Position(Player2) {
		return fmt.Errorf("%w: both pawns on tile %d", ErrInvalidState, s.Position(Player1))
	}
	if s.Won == NoPlayer {
		for _, p := range [...]Player{Player1, Player2} {
			if !s.Position(p).OnBoard() {
				return fmt.Errorf("%w: %s off the board at %d", ErrInvalidState, p, s.Position(p))
			}
		}
		if w := s.CheckWinner(); w != NoPlayer {
			return fmt.Errorf("%w: %s already on its goal row", ErrInvalidState, w)
		}
	}
	placed := 0
	for ix, w := range s.Walls {
		switch w {
		case NoWall:
		case Horizontal, Vertical:
			placed++
		default:
			return fmt.Errorf("%w: intersection %d holds %d", ErrInvalidState, ix, int(w))
		}
	}
	for _, p := range [...]Player{Player1, Player2} {
		if r := s.Remaining(p); r < 0 || r > WallsPerPlayer {
			return fmt.Errorf("%w: %s has %d walls remaining", ErrInvalidState, p, r)
		}
	}
	if used := 2*WallsPerPlayer - s.Remaining(Player1) - s.Remaining(Player2); used != placed {
		return fmt.Errorf("%w: %d walls placed but %d taken from stock", ErrInvalidState, placed, used)
	}
	return nil
}
