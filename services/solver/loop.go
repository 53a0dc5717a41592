package solver

import (
	"context"
	"fmt"

	"github.com/jinterlante1206/WordleBench/pkg/logging"
	"github.com/jinterlante1206/WordleBench/services/words"
)

// Oracle is the external guess-proposal service. Implementations block
// until a reply, a timeout, or ctx cancellation; any error is treated by
// the solver as "no reply" and simply consumes one call from the budget.
type Oracle interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// DefaultCallBudget bounds oracle calls per turn.
const DefaultCallBudget = 5

// Solver holds the per-game solving state: the constraint model, the live
// candidate pool, and the ingested history. One Solver serves one game; a
// Session creates a fresh one on every reset so no state ever leaks between
// games with different targets.
type Solver struct {
	vocab      []string
	vocabSet   map[string]bool
	starters   []string
	lies       int
	callBudget int
	oracle     Oracle
	logger     *logging.Logger

	constraints *Constraints
	candidates  []string
	history     []HistoryEntry
	guessed     map[string]bool
	turn        int
}

// NewSolver validates its inputs and returns a solver with a full candidate
// pool. An empty vocabulary and a missing or malformed starter list are the
// configuration errors this package refuses to work around: every starter
// must be a playable 5-letter word, because fallback paths play them
// unchecked.
func NewSolver(vocab, starters []string, lies, callBudget int, oracle Oracle, logger *logging.Logger) (*Solver, error) {
	if len(vocab) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}
	if len(starters) == 0 {
		return nil, fmt.Errorf("starter list is empty")
	}
	for _, starter := range starters {
		if !words.Valid(starter) {
			return nil, fmt.Errorf("starter %q is not a %d-letter word", starter, words.Length)
		}
	}
	if callBudget <= 0 {
		callBudget = DefaultCallBudget
	}
	if logger == nil {
		logger = logging.Default()
	}

	vocabSet := make(map[string]bool, len(vocab))
	for _, w := range vocab {
		vocabSet[w] = true
	}
	pool := make([]string, len(vocab))
	copy(pool, vocab)

	return &Solver{
		vocab:       vocab,
		vocabSet:    vocabSet,
		starters:    starters,
		lies:        lies,
		callBudget:  callBudget,
		oracle:      oracle,
		logger:      logger,
		constraints: NewConstraints(),
		candidates:  pool,
		guessed:     make(map[string]bool),
	}, nil
}

// Candidates returns the live candidate pool (read-only view).
func (s *Solver) Candidates() []string {
	return s.candidates
}

// ingest folds a completed turn into the constraint model. Idempotent:
// feeding the same entry twice is a no-op, detected by comparing against
// the last ingested history entry.
func (s *Solver) ingest(entry HistoryEntry) {
	if len(entry.Feedback) != words.Length {
		return
	}
	if len(s.history) > 0 && sameEntry(s.history[len(s.history)-1], entry) {
		return
	}
	s.constraints.Update(entry.Word, entry.Feedback, NoIgnoredColumn)
	s.history = append(s.history, entry)
}

func sameEntry(a, b HistoryEntry) bool {
	if a.Word != b.Word || len(a.Feedback) != len(b.Feedback) {
		return false
	}
	for i := range a.Feedback {
		if a.Feedback[i] != b.Feedback[i] {
			return false
		}
	}
	return true
}

// NextGuess produces the guess for the next turn. prev is the previous
// turn's result (nil on the first call). triesLeft is how many guesses the
// game still allows, passed through to the oracle prompt.
//
// The returned call count is the number of oracle invocations spent this
// turn. NextGuess never fails: every path ends in a concrete 5-letter
// guess, even under total oracle failure.
func (s *Solver) NextGuess(ctx context.Context, prev *HistoryEntry, triesLeft int) (string, int) {
	s.turn++

	// Turn 1 always plays the top opener; the oracle adds nothing when
	// no feedback exists yet.
	if s.turn == 1 {
		return s.note(s.starters[0]), 0
	}

	if prev != nil {
		s.ingest(*prev)
	}
	s.candidates = Filter(s.candidates, s.constraints, s.guessed)

	if len(s.candidates) == 0 && s.lies > 0 {
		if c, pool, col, ok := RecoverFromLie(s.history, s.vocab, s.guessed); ok {
			s.logger.Info("suspecting lie column", "column", col, "candidates", len(pool))
			s.constraints = c
			s.candidates = pool
		}
	}

	if len(s.candidates) == 1 {
		return s.note(s.candidates[0]), 0
	}

	if len(s.candidates) == 0 {
		// Relaxed fallback: rescan the whole vocabulary under the
		// current model, repeats allowed.
		s.candidates = Filter(s.vocab, s.constraints, nil)
	}
	if len(s.candidates) == 0 {
		guess := s.starters[s.turn%len(s.starters)]
		s.logger.Warn("no candidates survive constraints, rotating starters", "guess", guess)
		return s.note(guess), 0
	}

	ranked := rankCandidates(s.candidates)
	prompt := BuildPrompt(s.history, ranked, s.lies, triesLeft)

	calls := 0
	for calls < s.callBudget {
		reply, err := s.oracle.Ask(ctx, prompt)
		calls++
		if err != nil {
			s.logger.Warn("oracle call failed", "attempt", calls, "error", err)
			continue
		}

		word := ExtractWord(reply, s.vocabSet)
		if word == "" {
			s.logger.Debug("no 5-letter word in oracle reply", "reply", reply)
			continue
		}
		if s.constraints.Matches(word) {
			return s.note(word), calls
		}
		// Self-correction: tell the oracle exactly which rule it broke,
		// then retry with the amended prompt.
		prompt += RejectionClause(word, s.constraints, ranked)
		s.logger.Debug("oracle guess rejected", "word", word, "attempt", calls)
	}

	s.logger.Info("oracle budget exhausted, using top-ranked candidate", "guess", ranked[0], "calls", calls)
	return s.note(ranked[0]), calls
}

func (s *Solver) note(guess string) string {
	s.guessed[guess] = true
	return guess
}
