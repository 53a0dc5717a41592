package solver

import (
	"sort"

	"github.com/jinterlante1206/WordleBench/services/words"
)

// Filter returns the vocabulary words consistent with the constraint model,
// minus anything already guessed this game. Pure function: inputs are not
// mutated and the result is freshly allocated.
func Filter(vocab []string, c *Constraints, guessed map[string]bool) []string {
	var out []string
	for _, w := range vocab {
		if guessed[w] {
			continue
		}
		if c.Matches(w) {
			out = append(out, w)
		}
	}
	return out
}

// HistoryEntry is one completed turn: the word played and the feedback the
// game reported for it (post lie injection, in Fibble).
type HistoryEntry struct {
	Word     string
	Feedback []Feedback
}

// RecoverFromLie re-derives the constraint model when the candidate pool
// collapsed to empty under a lie-tolerant game. Each column in turn is
// hypothesized to be the liar: a fresh model is rebuilt from the entire
// history with that column's evidence dropped, and the first column
// (left to right) whose rebuilt model leaves a non-empty pool wins.
//
// Returns the recovered model, pool, and suspected column, or ok=false when
// no single-column hypothesis explains the history. Recovery runs from
// scratch every time it triggers; the history is short enough that caching
// would buy nothing and risk staleness.
func RecoverFromLie(history []HistoryEntry, vocab []string, guessed map[string]bool) (*Constraints, []string, int, bool) {
	for col := 0; col < words.Length; col++ {
		c := NewConstraints()
		for _, entry := range history {
			c.Update(entry.Word, entry.Feedback, col)
		}
		pool := Filter(vocab, c, guessed)
		if len(pool) > 0 {
			return c, pool, col, true
		}
	}
	return nil, nil, 0, false
}

// letterFrequency is English letter frequency (percent) for the letters
// worth distinguishing; everything else scores a nominal 0.1.
var letterFrequency = map[byte]float64{
	'e': 12.7, 't': 9.1, 'a': 8.2, 'o': 7.5, 'i': 7.0, 'n': 6.7,
	's': 6.3, 'h': 6.1, 'r': 6.0, 'd': 4.3, 'l': 4.0, 'c': 2.8,
}

// scoreWord ranks a candidate for display and fallback selection: frequent
// letters are good, and distinct letters are good because they probe more
// of the alphabet per guess. Heuristic only; correctness never depends on it.
func scoreWord(word string) float64 {
	var seen [26]bool
	score := 0.0
	distinct := 0
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' || seen[ch-'a'] {
			continue
		}
		seen[ch-'a'] = true
		distinct++
		if f, ok := letterFrequency[ch]; ok {
			score += f
		} else {
			score += 0.1
		}
	}
	return score + float64(distinct)*2
}

// rankCandidates returns candidates sorted best-first by scoreWord.
// The input slice is left untouched.
func rankCandidates(candidates []string) []string {
	ranked := make([]string, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scoreWord(ranked[i]) > scoreWord(ranked[j])
	})
	return ranked
}
