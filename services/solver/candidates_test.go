package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	vocab := []string{"slate", "plate", "crane", "caste"}
	c := NewConstraints()
	c.Update("crane", Score("crane", "slate"), NoIgnoredColumn)

	got := Filter(vocab, c, nil)
	assert.Equal(t, []string{"slate", "plate"}, got)
}

func TestFilter_ExcludesGuessedWords(t *testing.T) {
	vocab := []string{"slate", "plate"}
	c := NewConstraints()

	got := Filter(vocab, c, map[string]bool{"plate": true})
	assert.Equal(t, []string{"slate"}, got)
}

func TestFilter_DoesNotMutateInputs(t *testing.T) {
	vocab := []string{"slate", "plate", "crane"}
	c := NewConstraints()
	c.Update("crane", Score("crane", "slate"), NoIgnoredColumn)

	_ = Filter(vocab, c, nil)
	assert.Equal(t, []string{"slate", "plate", "crane"}, vocab)

	// The model is unchanged: a second pass sees the same pool.
	first := Filter(vocab, c, nil)
	second := Filter(vocab, c, nil)
	assert.Equal(t, first, second)
}

// Each additional truthful update can only shrink the pool.
func TestFilter_MonotoneUnderUpdates(t *testing.T) {
	vocab := []string{"slate", "plate", "crane", "caste", "grape", "pesto"}
	target := "slate"
	c := NewConstraints()

	prev := len(vocab)
	for _, guess := range []string{"crane", "pesto", "plate"} {
		c.Update(guess, Score(guess, target), NoIgnoredColumn)
		pool := Filter(vocab, c, nil)
		assert.LessOrEqual(t, len(pool), prev, "pool grew after %q", guess)
		assert.Contains(t, pool, target)
		prev = len(pool)
	}
}

func TestRecoverFromLie(t *testing.T) {
	// One game of Fibble with the lie in column 0. The face-value feedback
	// for crane demands a C off position 0, which nothing in this vocabulary
	// has, so the pool collapses and recovery must blame column 0.
	vocab := []string{"slate", "crane", "grape"}
	target := "slate"

	fb := Score("crane", target)
	fb[0] = flipForLie(fb[0])
	history := []HistoryEntry{{Word: "crane", Feedback: fb}}
	guessed := map[string]bool{"crane": true}

	c := NewConstraints()
	c.Update("crane", fb, NoIgnoredColumn)
	require.Empty(t, Filter(vocab, c, guessed), "premise: face value empties the pool")

	recovered, pool, col, ok := RecoverFromLie(history, vocab, guessed)
	require.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, []string{"slate"}, pool)
	assert.True(t, recovered.Matches(target))
}

func TestRecoverFromLie_NoHypothesisFits(t *testing.T) {
	// Five grays against a vocabulary made of exactly that word: no single
	// ignored column can bring anything back.
	vocab := []string{"crane"}
	history := []HistoryEntry{{Word: "crane", Feedback: []Feedback{
		FeedbackIncorrect, FeedbackIncorrect, FeedbackIncorrect,
		FeedbackIncorrect, FeedbackIncorrect,
	}}}

	_, _, _, ok := RecoverFromLie(history, vocab, map[string]bool{"crane": true})
	assert.False(t, ok)
}

func TestScoreWord(t *testing.T) {
	// Distinct frequent letters beat repeats of the same letters.
	assert.Greater(t, scoreWord("arose"), scoreWord("eerie"))
	// A word of rare letters scores below a word of common ones.
	assert.Greater(t, scoreWord("slate"), scoreWord("jumpy"))
}

func TestRankCandidates(t *testing.T) {
	candidates := []string{"jumpy", "slate", "eerie"}
	ranked := rankCandidates(candidates)

	assert.Equal(t, "slate", ranked[0])
	assert.ElementsMatch(t, candidates, ranked)
	// Input order untouched.
	assert.Equal(t, []string{"jumpy", "slate", "eerie"}, candidates)
}
