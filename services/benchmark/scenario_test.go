package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinterlante1206/WordleBench/services/words"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
metadata:
  id: "fibble-smoke"
  version: "1.0"
game:
  games: 10
  lies: 1
  max_guesses: 6
oracle:
  platform: "ollama"
  model: "llama3.2:3b"
  call_budget: 5
  timeout_seconds: 60
words:
  starters: ["crane", "slate"]
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "fibble-smoke", s.Metadata.ID)
	assert.Equal(t, 10, s.Game.Games)
	assert.Equal(t, 1, s.Game.Lies)
	assert.Equal(t, "ollama", s.Oracle.Platform)
	assert.Equal(t, []string{"crane", "slate"}, s.Starters())
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing id",
			content: `
game:
  games: 10
`,
		},
		{
			name: "zero games",
			content: `
metadata:
  id: "x"
game:
  games: 0
`,
		},
		{
			name: "too many lies",
			content: `
metadata:
  id: "x"
game:
  games: 1
  lies: 6
`,
		},
		{
			name: "unknown platform",
			content: `
metadata:
  id: "x"
game:
  games: 1
oracle:
  platform: "bedrock"
`,
		},
		{
			name: "malformed starter",
			content: `
metadata:
  id: "x"
game:
  games: 1
words:
  starters: ["toolong"]
`,
		},
		{
			name:    "not yaml at all",
			content: "{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestScenario_VocabularyDefaults(t *testing.T) {
	var s Scenario
	vocab, err := s.Vocabulary()
	require.NoError(t, err)
	assert.Equal(t, words.Default(), vocab)
}

func TestScenario_VocabularyOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\nslate\n"), 0o600))

	var s Scenario
	s.Words.ListFile = path
	vocab, err := s.Vocabulary()
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, vocab)
}

func TestScenario_StartersDefault(t *testing.T) {
	var s Scenario
	assert.Equal(t, words.DefaultStarters, s.Starters())
}

func TestShippedScenarios_AreValid(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("..", "..", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "repository must ship example scenarios")

	for _, path := range matches {
		t.Run(filepath.Base(path), func(t *testing.T) {
			_, err := LoadScenario(path)
			assert.NoError(t, err)
		})
	}
}
