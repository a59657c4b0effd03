package record

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"quoridor/engine"
	"quoridor/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root)
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, root, filepath.Dir(w.Dir()))

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			Game:   1,
			Agent1: "random",
			Agent2: "manual",
			GameMetric: engine.GameMetric{
				ID:             "abc",
				StartingPlayer: game.Player1,
				Winner:         game.Player2,
				StartTime:      start,
				EndTime:        start.Add(3 * time.Second),
				Duration:       3 * time.Second,
				TotalMoves:     42,
				WallsPlaced:    7,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "winner", rows[0][5])
		require.Equal(t, []string{
			"1", "abc", "random", "manual", "1", "2",
			"2024-05-01T12:00:00Z", "2024-05-01T12:00:03Z", "3s", "42", "7",
		}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{
			{Game: 1, MoveMetric: engine.MoveMetric{Step: 1, Player: game.Player1, Action: game.PawnAction(game.North)}},
			{Game: 1, MoveMetric: engine.MoveMetric{
				Step:   2,
				Player: game.Player2,
				Action: game.WallAction(game.Vertical, 5),
				DecisionMetric: engine.DecisionMetric{
					Duration:     time.Millisecond,
					LegalActions: 131,
					Evaluation:   -0.125,
				},
			}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "1", "1", "0s", "0", "0.0000", "false"}, rows[1])
		require.Equal(t, []string{"1", "2", "2", "1ms", "131", "-0.1250", "true"}, rows[2])
	})
}

func TestSnapshot(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		s := game.New()
		s, err = s.Play(game.WallAction(game.Horizontal, 20))
		require.NoError(t, err)
		s, err = s.Play(game.PawnAction(game.South))
		require.NoError(t, err)

		path, err := w.WriteSnapshot("game-1", s)
		require.NoError(t, err)
		require.Equal(t, "game-1.json", filepath.Base(path))

		snapshot, err := ReadSnapshot(path)
		require.NoError(t, err)
		require.Equal(t, "game-1", snapshot.ID)
		require.Equal(t, *s, snapshot.State)
		require.Equal(t, s.LegalActions(), snapshot.State.LegalActions())
	})

	t.Run("rejects an inconsistent state", func(t *testing.T) {
		s := game.New()
		s.Walls[10] = game.Vertical
		path, err := w.WriteSnapshot("broken", s)
		require.NoError(t, err)

		_, err = ReadSnapshot(path)
		require.ErrorIs(t, err, game.ErrInvalidState)
	})

	t.Run("rejects malformed files", func(t *testing.T) {
		path := filepath.Join(w.Dir(), "garbage.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
		_, err := ReadSnapshot(path)
		require.Error(t, err)

		_, err = ReadSnapshot(filepath.Join(w.Dir(), "missing.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
