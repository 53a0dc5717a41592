package benchmark

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_GoodBadRatio(t *testing.T) {
	tests := []struct {
		name string
		good int
		bad  int
		want float64
	}{
		{"typical", 10, 4, 2.5},
		{"no bad guesses", 6, 0, math.Inf(1)},
		{"nothing played", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Summary{GoodGuesses: tt.good, BadGuesses: tt.bad}
			assert.Equal(t, tt.want, s.GoodBadRatio())
		})
	}
}

func TestSummary_WriteJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	s := &Summary{
		RunID:    "smoke_v1_20260101_000000",
		Platform: "ollama",
		NumGames: 1,
		Wins:     1,
		WinRate:  1,
		Games: []GameResult{
			{ID: "g1", Target: "slate", Success: true, Tries: 3},
		},
	}

	path, err := s.WriteJSON(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "smoke_v1_20260101_000000.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Summary
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, s.RunID, got.RunID)
	require.Len(t, got.Games, 1)
	assert.Equal(t, "slate", got.Games[0].Target)
}
