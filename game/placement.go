package game

// CanPlace reports whether a wall of the given orientation fits at ix:
// the intersection is empty and the wall does not merge with a wall of the
// same orientation next to it. Crossing walls of the other orientation on
// neighbouring intersections are allowed.
func (w *Walls) CanPlace(orientation Wall, ix int) bool {
	if ix < 0 || ix >= NumIntersections || w[ix] != NoWall {
		return false
	}

	row := ix / IntersectionRows
	col := ix % IntersectionRows

	switch orientation {
	case Horizontal:
		if col != 0 && w[ix-1] == Horizontal {
			return false
		}
		if col != IntersectionRows-1 && w[ix+1] == Horizontal {
			return false
		}
	case Vertical:
		if row != 0 && w[ix-IntersectionRows] == Vertical {
			return false
		}
		if row != IntersectionRows-1 && w[ix+IntersectionRows] == Vertical {
			return false
		}
	default:
		return false
	}
	return true
}

// BlocksPath reports whether placing the wall would leave either player
// without a route to its goal row. The state is not modified.
func (s *State) BlocksPath(orientation Wall, ix int) bool {
	walls := s.Walls
	walls[ix] = orientation

	return !walls.HasPath(s.Position(Player1), Player1.GoalRow()) ||
		!walls.HasPath(s.Position(Player2), Player2.GoalRow())
}

// WallActions returns every wall placement the current player may make.
// Walls are only offered while the player holds more than one.
func (s *State) WallActions() []Action {
	if s.Remaining(s.CurrentPlayer) <= 1 {
		return nil
	}

	var actions []Action
	for _, orientation := range [...]Wall{Horizontal, Vertical} {
		for ix := 0; ix < NumIntersections; ix++ {
			if s.Walls.CanPlace(orientation, ix) && !s.BlocksPath(orientation, ix) {
				actions = append(actions, WallAction(orientation, ix))
			}
		}
	}
	return actions
}
