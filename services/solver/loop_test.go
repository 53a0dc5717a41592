package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedOracle replays canned replies (or errors) in order, then repeats
// the last one.
type scriptedOracle struct {
	replies []string
	err     error
	calls   int
	prompts []string
}

func (o *scriptedOracle) Ask(_ context.Context, prompt string) (string, error) {
	o.calls++
	o.prompts = append(o.prompts, prompt)
	if o.err != nil {
		return "", o.err
	}
	idx := o.calls - 1
	if idx >= len(o.replies) {
		idx = len(o.replies) - 1
	}
	return o.replies[idx], nil
}

func newTestSolver(t *testing.T, vocab, starters []string, lies int, oracle Oracle) *Solver {
	t.Helper()
	s, err := NewSolver(vocab, starters, lies, 0, oracle, nil)
	require.NoError(t, err)
	return s
}

func TestNewSolver_RejectsEmptyInputs(t *testing.T) {
	_, err := NewSolver(nil, []string{"crane"}, 0, 0, nil, nil)
	assert.Error(t, err)

	_, err = NewSolver([]string{"crane"}, nil, 0, 0, nil, nil)
	assert.Error(t, err)
}

func TestNewSolver_RejectsMalformedStarter(t *testing.T) {
	tests := []struct {
		name     string
		starters []string
	}{
		{"too short", []string{"cat"}},
		{"too long", []string{"crates"}},
		{"uppercase", []string{"CRANE"}},
		{"bad entry mid-list", []string{"crane", "slant", "ox"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSolver([]string{"slate"}, tt.starters, 0, 0, nil, nil)
			assert.Error(t, err)
		})
	}
}

func TestNextGuess_FirstTurnPlaysOpener(t *testing.T) {
	oracle := &scriptedOracle{replies: []string{"slate"}}
	s := newTestSolver(t, []string{"slate", "crane"}, []string{"crane"}, 0, oracle)

	guess, calls := s.NextGuess(context.Background(), nil, 6)
	assert.Equal(t, "crane", guess)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, oracle.calls, "opener must not consult the oracle")
}

func TestNextGuess_SingleCandidateSkipsOracle(t *testing.T) {
	oracle := &scriptedOracle{replies: []string{"never"}}
	s := newTestSolver(t, []string{"slate", "crane"}, []string{"crane"}, 0, oracle)

	guess, _ := s.NextGuess(context.Background(), nil, 6)
	require.Equal(t, "crane", guess)

	prev := &HistoryEntry{Word: "crane", Feedback: Score("crane", "slate")}
	guess, calls := s.NextGuess(context.Background(), prev, 5)
	assert.Equal(t, "slate", guess)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, oracle.calls)
}

func TestNextGuess_AcceptsValidOracleGuess(t *testing.T) {
	oracle := &scriptedOracle{replies: []string{"I'll try PLATE"}}
	s := newTestSolver(t, []string{"slate", "plate", "crane"}, []string{"crane"}, 0, oracle)

	s.NextGuess(context.Background(), nil, 6)
	prev := &HistoryEntry{Word: "crane", Feedback: Score("crane", "slate")}
	guess, calls := s.NextGuess(context.Background(), prev, 5)

	assert.Equal(t, "plate", guess)
	assert.Equal(t, 1, calls)
}

func TestNextGuess_SelfCorrectionAppendsRejection(t *testing.T) {
	// First reply violates the constraints (crane's letters are all ruled
	// out or pinned elsewhere); the retry gets a rejection clause and the
	// second reply is accepted.
	oracle := &scriptedOracle{replies: []string{"caste", "plate"}}
	s := newTestSolver(t, []string{"slate", "plate", "crane", "caste"}, []string{"crane"}, 0, oracle)

	s.NextGuess(context.Background(), nil, 6)
	prev := &HistoryEntry{Word: "crane", Feedback: Score("crane", "slate")}
	guess, calls := s.NextGuess(context.Background(), prev, 5)

	assert.Equal(t, "plate", guess)
	assert.Equal(t, 2, calls)
	require.Len(t, oracle.prompts, 2)
	assert.NotContains(t, oracle.prompts[0], "invalid")
	assert.Contains(t, oracle.prompts[1], "'CASTE' is invalid")
}

func TestNextGuess_BudgetExhaustionFallsBackToTopCandidate(t *testing.T) {
	oracle := &scriptedOracle{err: errors.New("connection refused")}
	s := newTestSolver(t, []string{"slate", "plate", "crane"}, []string{"crane"}, 0, oracle)

	s.NextGuess(context.Background(), nil, 6)
	prev := &HistoryEntry{Word: "crane", Feedback: Score("crane", "slate")}
	guess, calls := s.NextGuess(context.Background(), prev, 5)

	assert.Equal(t, DefaultCallBudget, calls)
	assert.Contains(t, []string{"slate", "plate"}, guess, "fallback must be a live candidate")
}

func TestNextGuess_UselessRepliesConsumeBudget(t *testing.T) {
	oracle := &scriptedOracle{replies: []string{"hmm, not sure"}}
	s := newTestSolver(t, []string{"slate", "plate", "crane"}, []string{"crane"}, 0, oracle)

	s.NextGuess(context.Background(), nil, 6)
	prev := &HistoryEntry{Word: "crane", Feedback: Score("crane", "slate")}
	_, calls := s.NextGuess(context.Background(), prev, 5)

	assert.Equal(t, DefaultCallBudget, calls)
}

func TestNextGuess_RecoversFromLie(t *testing.T) {
	// Lie in column 0: face value empties the pool, recovery blames the
	// column and the single survivor is played without an oracle call.
	oracle := &scriptedOracle{replies: []string{"never"}}
	s := newTestSolver(t, []string{"slate", "crane", "grape"}, []string{"crane"}, 1, oracle)

	s.NextGuess(context.Background(), nil, 6)
	fb := Score("crane", "slate")
	fb[0] = flipForLie(fb[0])
	prev := &HistoryEntry{Word: "crane", Feedback: fb}

	guess, calls := s.NextGuess(context.Background(), prev, 5)
	assert.Equal(t, "slate", guess)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, oracle.calls)
}

func TestNextGuess_ContradictoryFeedbackRotatesStarters(t *testing.T) {
	// Truthless feedback in a no-lie game: a green C pins position 0 while
	// the vocabulary has no C-initial word, so the pool empties, the full
	// vocabulary rescan under the same model finds nothing either, and the
	// solver falls through to starter rotation without spending oracle calls.
	oracle := &scriptedOracle{replies: []string{"never"}}
	s := newTestSolver(t, []string{"slate", "plate", "grape"},
		[]string{"crane", "pesto"}, 0, oracle)

	guess, calls := s.NextGuess(context.Background(), nil, 6)
	require.Equal(t, "crane", guess)
	require.Equal(t, 0, calls)

	prev := &HistoryEntry{Word: "crane", Feedback: []Feedback{
		FeedbackCorrect, FeedbackIncorrect, FeedbackIncorrect,
		FeedbackIncorrect, FeedbackIncorrect,
	}}

	guess, calls = s.NextGuess(context.Background(), prev, 5)
	assert.Len(t, guess, 5)
	assert.Equal(t, "crane", guess, "turn 2 rotates back to the first starter")
	assert.Equal(t, 0, calls)

	// The dead end persists, so the next turn advances the rotation.
	guess, calls = s.NextGuess(context.Background(), prev, 4)
	assert.Len(t, guess, 5)
	assert.Equal(t, "pesto", guess, "turn 3 advances to the second starter")
	assert.Equal(t, 0, calls)

	assert.Equal(t, 0, oracle.calls, "fallback guesses must not consult the oracle")
}

func TestNextGuess_IngestIsIdempotent(t *testing.T) {
	// The session hands back the same previous entry on every call; feeding
	// it twice must not double-apply evidence or duplicate history.
	oracle := &scriptedOracle{err: errors.New("down")}
	s := newTestSolver(t, []string{"slate", "plate", "crane"}, []string{"crane"}, 0, oracle)

	s.NextGuess(context.Background(), nil, 6)
	prev := &HistoryEntry{Word: "crane", Feedback: Score("crane", "slate")}
	s.NextGuess(context.Background(), prev, 5)
	s.NextGuess(context.Background(), prev, 4)

	assert.Len(t, s.history, 1)
}

func TestNextGuess_NeverReturnsEmpty(t *testing.T) {
	// Total oracle failure across a full game: every turn still produces a
	// concrete word.
	oracle := &scriptedOracle{err: errors.New("down")}
	vocab := []string{"slate", "plate", "crane", "grape", "pesto", "caste"}
	s := newTestSolver(t, vocab, []string{"crane", "pesto"}, 0, oracle)

	var prev *HistoryEntry
	for turn := 0; turn < DefaultMaxGuesses; turn++ {
		guess, _ := s.NextGuess(context.Background(), prev, DefaultMaxGuesses-turn)
		require.Len(t, guess, 5, "turn %d produced %q", turn+1, guess)
		fb := Score(guess, "grape")
		prev = &HistoryEntry{Word: guess, Feedback: fb}
		if guess == "grape" {
			return
		}
	}
}
