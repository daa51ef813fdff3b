package game

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// RunStats records one run. Score accumulates every point ever earned;
// Points is the spendable balance left when the run ended.
type RunStats struct {
	Level       int     `json:"level"`
	Score       int     `json:"score"`
	Points      int     `json:"points"`
	Kills       int     `json:"kills"`
	DamageTaken float64 `json:"damage_taken"`
	TimeSec     float64 `json:"time_sec"`
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl.
// Errors are silently discarded so a disk problem never crashes the game.
func saveRunLog(stats RunStats) {
	dir, err := dataDir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	f.Write(data)         //nolint:errcheck // best-effort write
	f.Write([]byte("\n")) //nolint:errcheck
}

// dataDir returns the directory where run records are stored.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/lastlight,
// defaulting to ~/.local/share/lastlight.
func dataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "lastlight"), nil
}
