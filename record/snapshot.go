package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"quoridor/game"

	"github.com/rs/zerolog/log"
)

// Snapshot is everything needed to resume a game.
type Snapshot struct {
	ID      string     `json:"id"`
	SavedAt time.Time  `json:"savedAt"`
	State   game.State `json:"state"`
}

// WriteSnapshot stores state as <id>.json in the writer's directory and
// returns the file path.
func (w *Writer) WriteSnapshot(id string, state *game.State) (string, error) {
	data, err := json.MarshalIndent(Snapshot{
		ID:      id,
		SavedAt: time.Now().UTC(),
		State:   *state,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	path := filepath.Join(w.baseDir, id+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	log.Info().Msgf("stored snapshot of game %s in %s", id, path)
	return path, nil
}

// ReadSnapshot loads a snapshot and checks that its state is consistent.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	if err := snapshot.State.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return &snapshot, nil
}
