// Package benchmark runs scripted multi-game solver evaluations and
// records their results: a JSON log per run, and optionally a point per
// game in InfluxDB for dashboarding across runs.
package benchmark

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jinterlante1206/WordleBench/services/words"
)

// scenarioValidate is the validator instance for scenario files.
var scenarioValidate *validator.Validate

func init() {
	scenarioValidate = validator.New()
}

// Scenario is a benchmark run description, loaded from YAML.
type Scenario struct {
	Metadata struct {
		ID      string `yaml:"id" validate:"required"`
		Version string `yaml:"version"`
	} `yaml:"metadata"`

	Game struct {
		Games      int `yaml:"games" validate:"min=1"`
		Lies       int `yaml:"lies" validate:"min=0,max=5"`
		MaxGuesses int `yaml:"max_guesses" validate:"min=0"`
	} `yaml:"game"`

	Oracle struct {
		Platform          string  `yaml:"platform" validate:"omitempty,oneof=ollama openai groq openrouter"`
		Model             string  `yaml:"model"`
		BaseURL           string  `yaml:"base_url"`
		CallBudget        int     `yaml:"call_budget" validate:"min=0"`
		TimeoutSeconds    int     `yaml:"timeout_seconds" validate:"min=0"`
		RequestsPerSecond float64 `yaml:"requests_per_second" validate:"min=0"`
	} `yaml:"oracle"`

	Words struct {
		// ListFile overrides the embedded vocabulary.
		ListFile string `yaml:"list_file"`
		// Starters overrides the default opener rotation.
		Starters []string `yaml:"starters" validate:"omitempty,dive,len=5,alpha"`
	} `yaml:"words"`
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scenario against its validation tags.
func (s *Scenario) Validate() error {
	if err := scenarioValidate.Struct(s); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}
	return nil
}

// Vocabulary resolves the word list: a scenario file override when set,
// the embedded default otherwise.
func (s *Scenario) Vocabulary() ([]string, error) {
	if s.Words.ListFile != "" {
		return words.Load(s.Words.ListFile)
	}
	return words.Default(), nil
}

// Starters resolves the opener list, falling back to the defaults.
func (s *Scenario) Starters() []string {
	if len(s.Words.Starters) > 0 {
		return s.Words.Starters
	}
	return words.DefaultStarters
}
