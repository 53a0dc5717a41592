package benchmark

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"
)

// GameResult is the record of one completed game.
type GameResult struct {
	ID             string    `json:"id"`
	Target         string    `json:"target"`
	Success        bool      `json:"success"`
	Tries          int       `json:"tries"`
	LatencySeconds float64   `json:"latency_seconds"`
	OracleCalls    int       `json:"oracle_calls"`
	GoodGuesses    int       `json:"good_guesses"`
	BadGuesses     int       `json:"bad_guesses"`
	Completion     float64   `json:"completion"`
	FinishedAt     time.Time `json:"finished_at"`
}

// Summary aggregates a whole run.
type Summary struct {
	RunID       string       `json:"run_id"`
	Platform    string       `json:"platform"`
	Model       string       `json:"model"`
	Lies        int          `json:"lies"`
	NumGames    int          `json:"num_games"`
	Wins        int          `json:"wins"`
	WinRate     float64      `json:"win_rate"`
	AvgTries    float64      `json:"avg_tries"`
	AvgLatency  float64      `json:"avg_latency"`
	OracleCalls int          `json:"oracle_calls"`
	GoodGuesses int          `json:"good_guesses"`
	BadGuesses  int          `json:"bad_guesses"`
	StartedAt   time.Time    `json:"started_at"`
	FinishedAt  time.Time    `json:"finished_at"`
	Games       []GameResult `json:"games"`
}

// GoodBadRatio returns accepted guesses per wasted oracle call.
// +Inf when nothing was wasted.
func (s *Summary) GoodBadRatio() float64 {
	if s.BadGuesses == 0 {
		if s.GoodGuesses == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return float64(s.GoodGuesses) / float64(s.BadGuesses)
}

// WriteJSON persists the summary under dir as {run_id}.json,
// creating the directory if needed.
func (s *Summary) WriteJSON(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create results dir: %w", err)
	}
	path := filepath.Join(dir, s.RunID+".json")

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0640); err != nil {
		return "", fmt.Errorf("failed to write results file: %w", err)
	}
	return path, nil
}
