package render

import (
	"fmt"
	"io"
	"strings"

	"quoridor/game"
)

const cellWidth = 4

var marks = map[game.Player]string{
	game.Player1: "X",
	game.Player2: "O",
}

// Text writes the board with row 8 on top. Tiles show X for player 1, O for
// player 2 and - when empty; the line under each tile row shows the walls on
// the intersections below it as h or v. A short status follows the board.
func Text(w io.Writer, s *game.State) error {
	_, err := io.WriteString(w, String(s))
	return err
}

func String(s *game.State) string {
	var b strings.Builder
	for row := game.NumRows - 1; row >= 0; row-- {
		var line strings.Builder
		for col := 0; col < game.NumRows; col++ {
			fmt.Fprintf(&line, "%-*s", cellWidth, tileMark(s, game.TileAt(row, col)))
		}
		writeLine(&b, line.String())

		if row == 0 {
			break
		}
		line.Reset()
		line.WriteString("  ")
		for col := 0; col < game.IntersectionRows; col++ {
			fmt.Fprintf(&line, "%-*s", cellWidth, wallMark(s.Walls[(row-1)*game.IntersectionRows+col]))
		}
		writeLine(&b, line.String())
	}

	for _, p := range [...]game.Player{game.Player1, game.Player2} {
		path := "-"
		if s.Position(p).OnBoard() {
			path = fmt.Sprint(s.Walls.Distance(s.Position(p), p.GoalRow()))
		}
		fmt.Fprintf(&b, "%s (%s) walls %d path %s\n", p, marks[p], s.Remaining(p), path)
	}
	if s.IsTerminal() {
		fmt.Fprintf(&b, "%s wins\n", s.Winner())
	} else {
		fmt.Fprintf(&b, "%s to move\n", s.CurrentPlayer)
	}
	return b.String()
}

func tileMark(s *game.State, t game.Tile) string {
	for p, mark := range marks {
		if s.Position(p) == t {
			return mark
		}
	}
	return "-"
}

func wallMark(w game.Wall) string {
	switch w {
	case game.Horizontal:
		return "h"
	case game.Vertical:
		return "v"
	default:
		return ""
	}
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteByte('\n')
}
