package solver

import (
	"strings"

	"github.com/jinterlante1206/WordleBench/services/words"
)

// NoIgnoredColumn disables the lie-hypothesis column skip in Update.
const NoIgnoredColumn = -1

// Constraints accumulates everything a sequence of (guess, feedback) pairs
// reveals about the target:
//
//   - correctAt pins a position to a letter (green evidence)
//   - excludedAt lists letters known absent from a position (yellow
//     evidence, plus spread-out gray evidence)
//   - minCount / maxCount bound how many times a letter occurs
//
// One Constraints instance belongs to exactly one game. It is rebuilt from
// scratch on reset and during lie recovery; never share it across sessions.
type Constraints struct {
	correctAt  map[int]byte
	excludedAt [words.Length]map[byte]bool
	minCount   map[byte]int
	maxCount   map[byte]int
}

// NewConstraints returns an empty model that matches every word.
func NewConstraints() *Constraints {
	c := &Constraints{
		correctAt: make(map[int]byte),
		minCount:  make(map[byte]int),
		maxCount:  make(map[byte]int),
	}
	for i := range c.excludedAt {
		c.excludedAt[i] = make(map[byte]bool)
	}
	return c
}

// Update folds one guess and its feedback into the model. ignoreColumn
// (when not NoIgnoredColumn) drops that column's evidence entirely; lie
// recovery uses this to test "column k is the liar" hypotheses.
//
// The confirmed-count staging matters for duplicate letters: a letter
// marked gray in a guess where the same letter is also green or yellow
// does NOT mean zero occurrences, it caps the count at however many were
// confirmed in this same guess. Folding the gray pass in before the
// confirmed tally is complete would over-exclude.
func (c *Constraints) Update(guess string, fb []Feedback, ignoreColumn int) {
	guess = strings.ToLower(guess)
	confirmed := make(map[byte]int)

	for i := 0; i < words.Length && i < len(guess) && i < len(fb); i++ {
		if i == ignoreColumn {
			continue
		}
		letter := guess[i]
		switch fb[i] {
		case FeedbackCorrect:
			c.correctAt[i] = letter
			confirmed[letter]++
		case FeedbackPresent:
			c.excludedAt[i][letter] = true
			confirmed[letter]++
		}
	}

	for letter, count := range confirmed {
		if count > c.minCount[letter] {
			c.minCount[letter] = count
		}
	}

	for i := 0; i < words.Length && i < len(guess) && i < len(fb); i++ {
		if i == ignoreColumn || fb[i] != FeedbackIncorrect {
			continue
		}
		letter := guess[i]
		c.maxCount[letter] = confirmed[letter]
		if confirmed[letter] == 0 {
			for j := 0; j < words.Length; j++ {
				if j != ignoreColumn {
					c.excludedAt[j][letter] = true
				}
			}
		}
	}
}

// Matches reports whether word satisfies every accumulated constraint.
// Pure: no mutation, safe to call repeatedly.
func (c *Constraints) Matches(word string) bool {
	word = strings.ToLower(word)
	if len(word) != words.Length {
		return false
	}

	for pos, letter := range c.correctAt {
		if word[pos] != letter {
			return false
		}
	}
	for pos := range c.excludedAt {
		if c.excludedAt[pos][word[pos]] {
			return false
		}
	}

	var counts [26]int
	for i := 0; i < len(word); i++ {
		if word[i] >= 'a' && word[i] <= 'z' {
			counts[word[i]-'a']++
		}
	}
	for letter, n := range c.minCount {
		if counts[letter-'a'] < n {
			return false
		}
	}
	for letter, n := range c.maxCount {
		if counts[letter-'a'] > n {
			return false
		}
	}
	return true
}

// CorrectAt returns the pinned letter for a position, if any.
// The prompt builder uses this to explain rejections to the oracle.
func (c *Constraints) CorrectAt(pos int) (byte, bool) {
	letter, ok := c.correctAt[pos]
	return letter, ok
}

// ExcludedAt reports whether letter is known absent from pos.
func (c *Constraints) ExcludedAt(pos int, letter byte) bool {
	return c.excludedAt[pos][letter]
}
