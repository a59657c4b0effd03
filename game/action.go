package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is the flat move encoding shared with every caller:
//
//	0-11    pawn moves, see Direction
//	12-75   horizontal wall at intersection a-12
//	76-139  vertical wall at intersection a-76
type Action int

const (
	firstHorizontal Action = Action(NumDirections)
	firstVertical   Action = firstHorizontal + NumIntersections
	NumActions             = int(firstVertical) + NumIntersections
)

// PawnAction returns the action that moves the pawn in direction d.
func PawnAction(d Direction) Action {
	return Action(d)
}

// WallAction returns the action that places a wall of the given orientation
// at intersection ix.
func WallAction(orientation Wall, ix int) Action {
	if orientation == Vertical {
		return firstVertical + Action(ix)
	}
	return firstHorizontal + Action(ix)
}

func (a Action) Valid() bool {
	return a >= 0 && int(a) < NumActions
}

func (a Action) IsPawn() bool {
	return a >= 0 && a < firstHorizontal
}

func (a Action) IsWall() bool {
	return a >= firstHorizontal && int(a) < NumActions
}

// Direction returns the pawn direction of a pawn action.
func (a Action) Direction() Direction {
	return Direction(a)
}

// Wall returns the orientation and intersection of a wall action.
func (a Action) Wall() (Wall, int) {
	if a >= firstVertical {
		return Vertical, int(a - firstVertical)
	}
	return Horizontal, int(a - firstHorizontal)
}

func (a Action) String() string {
	switch {
	case a.IsPawn():
		return a.Direction().String()
	case a.IsWall():
		orientation, ix := a.Wall()
		if orientation == Vertical {
			return fmt.Sprintf("V%d", ix)
		}
		return fmt.Sprintf("H%d", ix)
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseAction reads an action from its integer code, a direction name
// ("N", "sw") or a wall name ("H12", "v3").
func ParseAction(s string) (Action, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidAction)
	}

	if n, err := strconv.Atoi(s); err == nil {
		a := Action(n)
		if !a.Valid() {
			return 0, fmt.Errorf("%w: %d out of range 0-%d", ErrInvalidAction, n, NumActions-1)
		}
		return a, nil
	}

	for d, name := range directionNames {
		if s == name {
			return PawnAction(Direction(d)), nil
		}
	}

	if s[0] == 'H' || s[0] == 'V' {
		ix, err := strconv.Atoi(s[1:])
		if err != nil || ix < 0 || ix >= NumIntersections {
			return 0, fmt.Errorf("%w: bad intersection in %q", ErrInvalidAction, s)
		}
		if s[0] == 'V' {
			return WallAction(Vertical, ix), nil
		}
		return WallAction(Horizontal, ix), nil
	}

	return 0, fmt.Errorf("%w: cannot parse %q", ErrInvalidAction, s)
}
