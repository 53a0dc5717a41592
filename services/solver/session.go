package solver

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jinterlante1206/WordleBench/pkg/logging"
	"github.com/jinterlante1206/WordleBench/services/words"
)

// Status is the session lifecycle state.
type Status int

const (
	StatusPlaying Status = iota
	StatusEnded
)

// DefaultMaxGuesses is the standard Wordle guess limit.
const DefaultMaxGuesses = 6

// Config describes one game setup. Vocabulary and Starters are supplied by
// the caller, not hard-coded here; words.Default and words.DefaultStarters
// are the usual sources.
type Config struct {
	Vocabulary []string
	Starters   []string
	MaxGuesses int    // 0 means DefaultMaxGuesses
	Lies       int    // 0 = plain Wordle, >0 = Fibble
	CallBudget int    // oracle calls per turn, 0 means DefaultCallBudget
	Target     string // optional fixed target; empty draws randomly
}

// TurnResult is what one PlayTurn produced.
type TurnResult struct {
	Guess       string
	Feedback    []Feedback
	OracleCalls int
}

// Session owns one game: the hidden target, the guess history, the Fibble
// lie state, and a solver scoped to exactly this game. Reset reinitializes
// everything, including the solver, so no constraint state survives into a
// game with a different target.
type Session struct {
	cfg    Config
	oracle Oracle
	logger *logging.Logger
	rng    *rand.Rand

	target        string
	history       []HistoryEntry
	lieColumn     int
	liesRemaining int
	status        Status
	success       bool
	solver        *Solver
}

// NewSession validates cfg and starts the first game. The only fatal
// preconditions are an empty vocabulary or starter list.
func NewSession(cfg Config, oracle Oracle, logger *logging.Logger) (*Session, error) {
	if cfg.MaxGuesses <= 0 {
		cfg.MaxGuesses = DefaultMaxGuesses
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Target != "" && !words.Valid(strings.ToLower(cfg.Target)) {
		return nil, fmt.Errorf("target %q is not a %d-letter word", cfg.Target, words.Length)
	}

	s := &Session{
		cfg:    cfg,
		oracle: oracle,
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset starts a new game: fresh target, fresh lie column, fresh solver.
func (s *Session) Reset() error {
	solver, err := NewSolver(s.cfg.Vocabulary, s.cfg.Starters, s.cfg.Lies,
		s.cfg.CallBudget, s.oracle, s.logger)
	if err != nil {
		return err
	}
	s.solver = solver

	if s.cfg.Target != "" {
		s.target = strings.ToLower(s.cfg.Target)
	} else {
		s.target = s.cfg.Vocabulary[s.rng.Intn(len(s.cfg.Vocabulary))]
	}

	s.history = nil
	s.status = StatusPlaying
	s.success = false
	s.lieColumn = -1
	s.liesRemaining = 0
	if s.cfg.Lies > 0 {
		s.lieColumn = s.rng.Intn(words.Length)
		s.liesRemaining = s.cfg.Lies
	}

	s.logger.Debug("new game", "lies", s.cfg.Lies, "max_guesses", s.cfg.MaxGuesses)
	return nil
}

// EnterGuess scores a guess against the target, injects the Fibble lie
// while budget remains, records the turn, and updates the game status.
func (s *Session) EnterGuess(guess string) []Feedback {
	guess = strings.ToLower(guess)
	fb := Score(guess, s.target)

	// The lie column is fixed for the whole game; once the lie budget is
	// spent, feedback turns truthful for the remaining turns.
	if s.liesRemaining > 0 && s.lieColumn >= 0 {
		fb[s.lieColumn] = flipForLie(fb[s.lieColumn])
		s.liesRemaining--
	}

	s.history = append(s.history, HistoryEntry{Word: guess, Feedback: fb})

	if guess == s.target {
		s.success = true
		s.status = StatusEnded
	} else if len(s.history) >= s.cfg.MaxGuesses {
		s.status = StatusEnded
	}
	return fb
}

// PlayTurn runs one solver turn: pick a guess, submit it, return the result.
// Calling it on an ended session is a no-op result.
func (s *Session) PlayTurn(ctx context.Context) TurnResult {
	if s.status == StatusEnded {
		return TurnResult{}
	}

	var prev *HistoryEntry
	if len(s.history) > 0 {
		prev = &s.history[len(s.history)-1]
	}
	triesLeft := s.cfg.MaxGuesses - len(s.history)

	guess, calls := s.solver.NextGuess(ctx, prev, triesLeft)
	fb := s.EnterGuess(guess)
	return TurnResult{Guess: guess, Feedback: fb, OracleCalls: calls}
}

// Target returns the hidden word. Benchmarks report it after each game.
func (s *Session) Target() string { return s.target }

// History returns the completed turns so far.
func (s *Session) History() []HistoryEntry { return s.history }

// Tries returns the number of guesses made this game.
func (s *Session) Tries() int { return len(s.history) }

// Status returns whether the game is still playing.
func (s *Session) Status() Status { return s.status }

// Success reports whether the target was found.
func (s *Session) Success() bool { return s.success }

// LieColumn returns the lying column for this game, or -1 in plain Wordle.
func (s *Session) LieColumn() int { return s.lieColumn }
