// Package solver implements the Wordle/Fibble solving engine: feedback
// scoring, constraint tracking, candidate filtering, lie recovery, and the
// per-turn decision loop that consults an external oracle.
package solver

import "github.com/jinterlante1206/WordleBench/services/words"

// Feedback is the per-letter result of comparing a guess to the target.
type Feedback int

const (
	FeedbackIncorrect Feedback = iota
	FeedbackPresent
	FeedbackCorrect
)

// String returns the color name used in oracle prompts and logs.
func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "GREEN"
	case FeedbackPresent:
		return "YELLOW"
	case FeedbackIncorrect:
		return "GRAY"
	default:
		return "UNKNOWN"
	}
}

// Score computes standard Wordle feedback for guess against target.
//
// Two passes: exact-position matches first, consuming the matched target
// letters, then present matches against whatever target letters remain.
// The consumption step is what keeps duplicate guess letters from being
// credited more times than the target physically contains them.
//
// Both words must be words.Length letters; callers normalize case first.
func Score(guess, target string) []Feedback {
	fb := make([]Feedback, words.Length)
	var remaining [words.Length]byte
	copy(remaining[:], target)

	for i := 0; i < words.Length; i++ {
		if guess[i] == target[i] {
			fb[i] = FeedbackCorrect
			remaining[i] = 0
		}
	}

	for i := 0; i < words.Length; i++ {
		if fb[i] == FeedbackCorrect {
			continue
		}
		for j := 0; j < words.Length; j++ {
			if remaining[j] == guess[i] {
				fb[i] = FeedbackPresent
				remaining[j] = 0
				break
			}
		}
	}
	return fb
}

// flipForLie corrupts a single feedback value the way Fibble lies:
// a truthful correct or present becomes incorrect, and a truthful
// incorrect becomes present.
func flipForLie(f Feedback) Feedback {
	if f == FeedbackIncorrect {
		return FeedbackPresent
	}
	return FeedbackIncorrect
}
