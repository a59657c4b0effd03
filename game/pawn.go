package game

// PawnActions returns the legal pawn actions for player standing on location
// while the opponent stands on opponent.
//
// An opponent directly east or west is jumped with EE or WW. When a wall or
// the board edge stops that jump, the diagonals past the opponent (NE and SE,
// or NW and SW) are offered instead. Rule variants that only allow diagonal
// jumps over a northern or southern opponent produce smaller action sets here.
func PawnActions(walls *Walls, location, opponent Tile, player Player) []Action {
	actions := make([]Action, 0, 6)

	row := location.Row()
	col := location.Col()
	here := walls.Around(location)

	opponentNorth := opponent == location+NumRows
	opponentSouth := opponent == location-NumRows
	opponentEast := opponent == location+1 && col < NumRows-1
	opponentWest := opponent == location-1 && col > 0

	// A player standing on its own starting edge may always step forward.
	if (here.OpenNorth() && !opponentNorth) || (player == Player1 && row == NumRows-1) {
		actions = append(actions, PawnAction(North))
	}
	if (here.OpenSouth() && !opponentSouth) || (player == Player2 && row == 0) {
		actions = append(actions, PawnAction(South))
	}
	if here.OpenEast() && !opponentEast {
		actions = append(actions, PawnAction(East))
	}
	if here.OpenWest() && !opponentWest {
		actions = append(actions, PawnAction(West))
	}

	switch {
	case opponentNorth && here.OpenNorth():
		there := walls.Around(opponent)
		// Jumping straight off the far edge from row 7 ends the game for player 1.
		if there.OpenNorth() || (player == Player1 && row == NumRows-2) {
			actions = append(actions, PawnAction(NorthNorth))
		}
		if there.NE != Vertical && here.NE != Vertical {
			actions = append(actions, PawnAction(NorthEast))
		}
		if there.NW != Vertical && here.NW != Vertical {
			actions = append(actions, PawnAction(NorthWest))
		}

	case opponentSouth && here.OpenSouth():
		there := walls.Around(opponent)
		if there.OpenSouth() || (player == Player2 && row == 1) {
			actions = append(actions, PawnAction(SouthSouth))
		}
		if there.SE != Vertical && here.SE != Vertical {
			actions = append(actions, PawnAction(SouthEast))
		}
		if there.SW != Vertical && here.SW != Vertical {
			actions = append(actions, PawnAction(SouthWest))
		}

	case opponentEast && here.OpenEast():
		there := walls.Around(opponent)
		if there.OpenEast() {
			actions = append(actions, PawnAction(EastEast))
			break
		}
		if there.OpenNorth() {
			actions = append(actions, PawnAction(NorthEast))
		}
		if there.OpenSouth() {
			actions = append(actions, PawnAction(SouthEast))
		}

	case opponentWest && here.OpenWest():
		there := walls.Around(opponent)
		if there.OpenWest() {
			actions = append(actions, PawnAction(WestWest))
			break
		}
		if there.OpenNorth() {
			actions = append(actions, PawnAction(NorthWest))
		}
		if there.OpenSouth() {
			actions = append(actions, PawnAction(SouthWest))
		}
	}

	return actions
}
