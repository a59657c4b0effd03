package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should return defaults without a file", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), c)
		require.True(t, c.Strict)
		require.NoError(t, c.Validate())
	})

	t.Run("Should override defaults from the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quoridor.yaml")
		data := []byte(`
players: [manual, pawn]
games: 3
strict: false
max_turns: 80
seed: 9
log_level: debug
output_dir: out
`)
		require.NoError(t, os.WriteFile(path, data, 0644))

		c, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, []string{"manual", "pawn"}, c.Players)
		require.Equal(t, 3, c.Games)
		require.False(t, c.Strict)
		require.Equal(t, 80, c.MaxTurns)
		require.Equal(t, uint64(9), c.Seed)
		require.Equal(t, zerolog.DebugLevel, c.Level())
		require.Equal(t, "out", c.OutputDir)
		require.Empty(t, c.Resume, "Unset fields keep their default")
	})

	t.Run("Should fail on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "players: [random"},
		{"one player", "players: [random]"},
		{"no games", "games: 0"},
		{"negative turn limit", "max_turns: -4"},
		{"unknown log level", "log_level: loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	t.Run("empty document keeps the defaults", func(t *testing.T) {
		c, err := Parse(nil)
		require.NoError(t, err)
		require.Equal(t, Default(), c)
	})
}

func TestLevel(t *testing.T) {
	require.Equal(t, zerolog.InfoLevel, Config{}.Level())
	require.Equal(t, zerolog.WarnLevel, Config{LogLevel: "warn"}.Level())
}
