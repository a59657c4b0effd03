package agent

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"quoridor/game"
	"quoridor/render"
	"quoridor/utils"
)

// Manual asks a person for each action. It prints the board and the legal
// actions, then reads one action per line until a legal one is entered.
type Manual struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewManual(in io.Reader, out io.Writer) *Manual {
	return &Manual{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (m *Manual) ChooseAction(legal []game.Action, view game.State) (game.Action, error) {
	if len(legal) == 0 {
		return 0, ErrNoActions
	}

	fmt.Fprintln(m.out, "Current board")
	if err := render.Text(m.out, &view); err != nil {
		return 0, err
	}
	fmt.Fprintf(m.out, "Available actions: %s\n", formatActions(legal))

	for {
		fmt.Fprint(m.out, "Choose action: ")
		if !m.in.Scan() {
			if err := m.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read action: %w", err)
			}
			return 0, fmt.Errorf("failed to read action: %w", io.ErrUnexpectedEOF)
		}

		a, err := game.ParseAction(m.in.Text())
		if err != nil {
			fmt.Fprintf(m.out, "%v - please select a valid action\n", err)
			continue
		}
		if utils.FindIndex(legal, a) < 0 {
			fmt.Fprintf(m.out, "Invalid action: %s - please select a valid action\n", a)
			fmt.Fprintf(m.out, "Available actions: %s\n", formatActions(legal))
			continue
		}
		return a, nil
	}
}

func formatActions(actions []game.Action) string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = fmt.Sprintf("%s(%d)", a, int(a))
	}
	return strings.Join(names, " ")
}
