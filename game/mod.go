package game

import "fmt"

const (
	NumRows          = 9  // Tiles per row and column
	NumTiles         = 81 // NumRows * NumRows
	IntersectionRows = 8  // Intersections per row and column
	NumIntersections = 64 // IntersectionRows * IntersectionRows
	WallsPerPlayer   = 10
)

// Player identifies one of the two pawns. The zero value means no player.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// GoalRow is the row the player must reach to win.
func (p Player) GoalRow() int {
	if p == Player1 {
		return NumRows - 1
	}
	return 0
}

func (p Player) index() int {
	return int(p) - 1
}

func (p Player) String() string {
	if p == NoPlayer {
		return "None"
	}
	return fmt.Sprintf("Player%d", int(p))
}

// Tile is a row-major index into the 9x9 grid. Row 0 is player 1's starting edge.
type Tile int

func (t Tile) Row() int { return int(t) / NumRows }
func (t Tile) Col() int { return int(t) % NumRows }

// OnBoard reports whether t is one of the 81 tiles.
func (t Tile) OnBoard() bool {
	return t >= 0 && t < NumTiles
}

// TileAt returns the tile at row, col.
func TileAt(row, col int) Tile {
	return Tile(row*NumRows + col)
}
