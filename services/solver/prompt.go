package solver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jinterlante1206/WordleBench/services/words"
)

const (
	// Show the full candidate list when it is short enough for the oracle
	// to pick from directly; otherwise show only a ranked excerpt.
	fullListLimit = 15
	excerptSize   = 10
	// Rejection feedback stays short: at most this many violated rules,
	// or this many suggested words when the reply was out of vocabulary.
	maxRejectReasons  = 3
	rejectExcerptSize = 5
)

var wordPattern = regexp.MustCompile(`\b[a-zA-Z]{5}\b`)

// BuildPrompt composes the oracle prompt: the game framing, the Fibble lie
// warning when applicable, the full guess history with color labels, the
// candidate list (full or excerpt), and the remaining try count.
func BuildPrompt(history []HistoryEntry, ranked []string, lies, triesLeft int) string {
	var b strings.Builder
	b.WriteString("You are playing Wordle. Guess a 5-letter word.\n")

	if lies > 0 {
		fmt.Fprintf(&b, "\nIMPORTANT: There are %d lies in feedback. ", lies)
		b.WriteString("Lies are ALWAYS in the SAME column for all guesses.\n")
	}

	if len(history) > 0 {
		b.WriteString("\nPrevious guesses:\n")
		for _, entry := range history {
			labels := make([]string, 0, words.Length)
			upper := strings.ToUpper(entry.Word)
			for i, fb := range entry.Feedback {
				labels = append(labels, fmt.Sprintf("%c:%s", upper[i], fb))
			}
			fmt.Fprintf(&b, "  %s -> %s\n", upper, strings.Join(labels, ", "))
		}
	}

	if len(ranked) <= fullListLimit {
		fmt.Fprintf(&b, "\nValid words: %s\n", strings.Join(ranked, ","))
	} else {
		fmt.Fprintf(&b, "\nTop candidates: %s\n", strings.Join(ranked[:excerptSize], ","))
	}

	fmt.Fprintf(&b, "Tries left: %d\n", triesLeft)
	b.WriteString("Reply with ONLY a 5-letter word:")
	return b.String()
}

// ExtractWord pulls a 5-letter alphabetic token out of an oracle reply.
// A reply that is exactly one word is taken as-is; otherwise every embedded
// 5-letter token is considered and the first one found in the vocabulary
// wins, falling back to the first token of any kind. Returns "" when the
// reply contains nothing usable.
func ExtractWord(reply string, vocab map[string]bool) string {
	reply = strings.ToLower(strings.TrimSpace(reply))
	if reply == "" {
		return ""
	}
	if words.Valid(reply) {
		return reply
	}
	tokens := wordPattern.FindAllString(reply, -1)
	for _, tok := range tokens {
		if vocab[strings.ToLower(tok)] {
			return strings.ToLower(tok)
		}
	}
	if len(tokens) > 0 {
		return strings.ToLower(tokens[0])
	}
	return ""
}

// RejectionClause explains why a proposed word violates the constraint
// model, phrased for the oracle's self-correction retry. When the word
// breaks no stated rule (it is merely unrecognized), the clause instead
// offers a short excerpt of valid candidates.
func RejectionClause(word string, c *Constraints, ranked []string) string {
	var reasons []string
	for i := 0; i < len(word) && i < words.Length; i++ {
		letter := word[i]
		if pinned, ok := c.CorrectAt(i); ok && letter != pinned {
			reasons = append(reasons, fmt.Sprintf("Position %d must be '%c'", i+1, toUpper(pinned)))
		}
		if c.ExcludedAt(i, letter) {
			reasons = append(reasons, fmt.Sprintf("'%c' cannot be in position %d", toUpper(letter), i+1))
		}
	}

	if len(reasons) > 0 {
		if len(reasons) > maxRejectReasons {
			reasons = reasons[:maxRejectReasons]
		}
		return fmt.Sprintf("\n'%s' is invalid: %s\nTry again:",
			strings.ToUpper(word), strings.Join(reasons, "; "))
	}

	excerpt := ranked
	if len(excerpt) > rejectExcerptSize {
		excerpt = excerpt[:rejectExcerptSize]
	}
	return fmt.Sprintf("\n'%s' not in word list. Pick from: %s\nTry again:",
		strings.ToUpper(word), strings.Join(excerpt, ","))
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
