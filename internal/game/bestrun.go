package game

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const bestRunFile = "bestrun.json"

// BestRun is the durable personal record shown on the title screen.
// TotalKills accumulates across all runs; the other fields are per-run maxima.
type BestRun struct {
	BestLevel  int     `json:"best_level"`
	BestScore  int     `json:"best_score"`
	TotalKills int     `json:"total_kills"`
	BestTime   float64 `json:"best_time_sec"`
}

// Merge folds a finished run into the record, never lowering anything.
func (b *BestRun) Merge(stats RunStats) {
	if stats.Level > b.BestLevel {
		b.BestLevel = stats.Level
	}
	if stats.Score > b.BestScore {
		b.BestScore = stats.Score
	}
	if stats.TimeSec > b.BestTime {
		b.BestTime = stats.TimeSec
	}
	b.TotalKills += stats.Kills
}

// loadBestRun reads the stored record; a missing or corrupt file yields the
// zero record.
func loadBestRun() BestRun {
	var b BestRun
	dir, err := dataDir()
	if err != nil {
		return b
	}
	data, err := os.ReadFile(filepath.Join(dir, bestRunFile))
	if err != nil {
		return b
	}
	if err := json.Unmarshal(data, &b); err != nil {
		return BestRun{}
	}
	return b
}

// saveBestRun writes the record; errors are discarded like the run log's.
func saveBestRun(b BestRun) {
	dir, err := dataDir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	data, err := json.Marshal(b)
	if err != nil {
		return
	}
	os.WriteFile(filepath.Join(dir, bestRunFile), data, 0o644) //nolint:errcheck
}
