package game

// Wall is the tri-state content of an intersection.
type Wall int8

const (
	Vertical   Wall = -1
	NoWall     Wall = 0
	Horizontal Wall = 1
)

func (w Wall) String() string {
	switch w {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "none"
	}
}

// Walls is the 8x8 intersection grid. Intersection i sits between tiles
// (r, c), (r, c+1), (r+1, c) and (r+1, c+1) where r = i/8 and c = i%8.
type Walls [NumIntersections]Wall

// Surroundings holds the four intersections at the corners of a tile.
type Surroundings struct {
	NW, NE, SW, SE Wall
}

// Around resolves the intersections at the corners of tile t. Corners that
// fall outside the grid get sentinel values that block any move across the
// board edge: Horizontal on the north and south edges, Vertical on the west
// and east edges. A corner shared by two edges takes the value that keeps
// both directions blocked together with its neighbouring sentinels.
func (w *Walls) Around(t Tile) Surroundings {
	row, col := t.Row(), t.Col()

	north := row == NumRows-1
	south := row == 0
	west := col == 0
	east := col == NumRows-1

	// Real grid indices; only valid on the sides that face inward.
	ne := int(t) - row
	nw := ne - 1
	se := int(t) - NumRows - (row - 1)
	sw := se - 1

	var s Surroundings
	switch {
	case north && west:
		s = Surroundings{NW: Vertical, NE: Horizontal, SW: Vertical, SE: w[se]}
	case north && east:
		s = Surroundings{NW: Horizontal, NE: Horizontal, SW: w[sw], SE: Vertical}
	case south && west:
		s = Surroundings{NW: Vertical, NE: w[ne], SW: Horizontal, SE: Horizontal}
	case south && east:
		s = Surroundings{NW: w[nw], NE: Vertical, SW: Horizontal, SE: Vertical}
	case north:
		s = Surroundings{NW: Horizontal, NE: Horizontal, SW: w[sw], SE: w[se]}
	case south:
		s = Surroundings{NW: w[nw], NE: w[ne], SW: Horizontal, SE: Horizontal}
	case west:
		s = Surroundings{NW: Vertical, NE: w[ne], SW: Vertical, SE: w[se]}
	case east:
		s = Surroundings{NW: w[nw], NE: Vertical, SW: w[sw], SE: Vertical}
	default:
		s = Surroundings{NW: w[nw], NE: w[ne], SW: w[sw], SE: w[se]}
	}
	return s
}

// Side helpers: whether the wall layout lets a pawn leave a tile in a given
// direction. They only look at walls, never at pawns.
func (s Surroundings) OpenNorth() bool { return s.NW != Horizontal && s.NE != Horizontal }
func (s Surroundings) OpenSouth() bool { return s.SW != Horizontal && s.SE != Horizontal }
func (s Surroundings) OpenEast() bool  { return s.NE != Vertical && s.SE != Vertical }
func (s Surroundings) OpenWest() bool  { return s.NW != Vertical && s.SW != Vertical }

// Count returns how many intersections hold the given orientation.
func (w *Walls) Count(orientation Wall) int {
	n := 0
	for _, v := range w {
		if v == orientation {
			n++
		}
	}
	return n
}
