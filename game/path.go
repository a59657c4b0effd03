package game

var steps = [...]Direction{North, South, East, West}

// neighbors appends the tiles reachable from t by one basic step, looking at
// walls and board edges only. Pawns do not block connectivity.
func (w *Walls) neighbors(t Tile, out []Tile) []Tile {
	s := w.Around(t)
	row, col := t.Row(), t.Col()
	for _, d := range steps {
		var open bool
		switch d {
		case North:
			open = row < NumRows-1 && s.OpenNorth()
		case South:
			open = row > 0 && s.OpenSouth()
		case East:
			open = col < NumRows-1 && s.OpenEast()
		case West:
			open = col > 0 && s.OpenWest()
		}
		if open {
			out = append(out, d.From(t))
		}
	}
	return out
}

// HasPath reports whether a pawn on from can reach any tile of goalRow.
func (w *Walls) HasPath(from Tile, goalRow int) bool {
	return w.Distance(from, goalRow) >= 0
}

// Distance returns the number of basic steps on the shortest route from
// from to goalRow, or -1 when the row cannot be reached.
func (w *Walls) Distance(from Tile, goalRow int) int {
	if !from.OnBoard() {
		return -1
	}
	if from.Row() == goalRow {
		return 0
	}

	var visited [NumTiles]bool
	var depth [NumTiles]int
	visited[from] = true
	queue := []Tile{from}
	next := make([]Tile, 0, len(steps))

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		next = w.neighbors(current, next[:0])
		for _, tile := range next {
			if visited[tile] {
				continue
			}
			if tile.Row() == goalRow {
				return depth[current] + 1
			}
			visited[tile] = true
			depth[tile] = depth[current] + 1
			queue = append(queue, tile)
		}
	}
	return -1
}
