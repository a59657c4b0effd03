package tensor

import "quoridor/game"

const (
	GridSize  = game.NumRows
	PlaneSize = GridSize * GridSize
	NumPlanes = 25
	Len       = NumPlanes * PlaneSize
)

// Plane offsets. Wall stock planes are one-hot: plane base+k-1 is set for k
// walls remaining, and zero walls wraps to the last plane of the block.
const (
	NoWallPlane        = 0
	VerticalPlane      = 1
	HorizontalPlane    = 2
	OwnPawnPlane       = 3
	OpponentPawnPlane  = 4
	OwnWallsPlane      = 5
	OpponentWallsPlane = OwnWallsPlane + game.WallsPerPlayer
)

// Planes is a [NumPlanes][9][9] tensor laid out flat, plane-major.
type Planes [Len]float32

// At returns the value of plane at row, col.
func (p *Planes) At(plane, row, col int) float32 {
	return p[plane*PlaneSize+row*GridSize+col]
}

func (p *Planes) set(plane, row, col int) {
	p[plane*PlaneSize+row*GridSize+col] = 1
}

func (p *Planes) fill(plane int) {
	for i := plane * PlaneSize; i < (plane+1)*PlaneSize; i++ {
		p[i] = 1
	}
}

// Encode formats s as seen by perspective. The 8x8 wall planes sit in the
// top-left corner of their 9x9 plane; the last row and column stay zero.
func Encode(s *game.State, perspective game.Player) *Planes {
	var p Planes

	for ix, w := range s.Walls {
		row, col := ix/game.IntersectionRows, ix%game.IntersectionRows
		switch w {
		case game.NoWall:
			p.set(NoWallPlane, row, col)
		case game.Vertical:
			p.set(VerticalPlane, row, col)
		case game.Horizontal:
			p.set(HorizontalPlane, row, col)
		}
	}

	opponent := perspective.Opponent()
	if t := s.Position(perspective); t.OnBoard() {
		p.set(OwnPawnPlane, t.Row(), t.Col())
	}
	if t := s.Position(opponent); t.OnBoard() {
		p.set(OpponentPawnPlane, t.Row(), t.Col())
	}

	p.fill(OwnWallsPlane + stockPlane(s.Remaining(perspective)))
	p.fill(OpponentWallsPlane + stockPlane(s.Remaining(opponent)))
	return &p
}

func stockPlane(remaining int) int {
	return (remaining - 1 + game.WallsPerPlayer) % game.WallsPerPlayer
}
