package game

import "fmt"

// Direction is one of the twelve pawn actions. Its value is also its action code.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	NorthNorth
	SouthSouth
	EastEast
	WestWest
	NorthEast
	NorthWest
	SouthEast
	SouthWest
	NumDirections
)

// Tile index deltas, shared by move application, move generation and path search.
var displacements = [NumDirections]int{
	North:      +9,
	South:      -9,
	East:       +1,
	West:       -1,
	NorthNorth: +18,
	SouthSouth: -18,
	EastEast:   +2,
	WestWest:   -2,
	NorthEast:  +10,
	NorthWest:  +8,
	SouthEast:  -8,
	SouthWest:  -10,
}

var directionNames = [NumDirections]string{
	"N", "S", "E", "W", "NN", "SS", "EE", "WW", "NE", "NW", "SE", "SW",
}

// Delta returns the tile index displacement of d. It panics on a direction
// outside the table: that can only come from an engine defect.
func (d Direction) Delta() int {
	if d < 0 || d >= NumDirections {
		panic(fmt.Sprintf("invalid direction %d", int(d)))
	}
	return displacements[d]
}

// From returns the tile reached by moving from t in direction d.
func (d Direction) From(t Tile) Tile {
	return t + Tile(d.Delta())
}

func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}
