// Package words supplies the solver's vocabulary and opener list.
//
// The default vocabulary is embedded at build time so the binary works
// offline with no data files. A scenario can point at its own list file
// instead; the loader applies the same normalization either way.
package words

import (
	"bufio"
	"embed"
	"fmt"
	"os"
	"strings"
)

//go:embed wordlist.txt
var embedded embed.FS

// Length is the fixed word length for the whole system.
const Length = 5

// DefaultStarters is the ranked opener list, strongest first.
// These are information-theoretic openers; the solver plays the first
// on turn 1 and rotates through the rest as a last-resort fallback.
var DefaultStarters = []string{"salet", "reast", "crate", "trace", "slate", "crane", "slant"}

// Default returns the embedded vocabulary.
func Default() []string {
	f, err := embedded.Open("wordlist.txt")
	if err != nil {
		// The embed is part of the binary; a missing entry is a build defect.
		panic(fmt.Sprintf("embedded wordlist missing: %v", err))
	}
	defer f.Close()

	list, err := parse(bufio.NewScanner(f))
	if err != nil {
		panic(fmt.Sprintf("embedded wordlist malformed: %v", err))
	}
	return list
}

// Load reads a vocabulary from path, one word per line.
// Blank lines and lines starting with '#' are skipped. Words are
// lowercased; anything that is not exactly five ASCII letters is an error.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	list, err := parse(bufio.NewScanner(f))
	if err != nil {
		return nil, fmt.Errorf("failed to parse word list %s: %w", path, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("word list %s contains no words", path)
	}
	return list, nil
}

func parse(scanner *bufio.Scanner) ([]string, error) {
	var list []string
	seen := make(map[string]bool)
	line := 0
	for scanner.Scan() {
		line++
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if !Valid(word) {
			return nil, fmt.Errorf("line %d: %q is not a %d-letter word", line, word, Length)
		}
		if seen[word] {
			continue
		}
		seen[word] = true
		list = append(list, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Valid reports whether word is exactly Length lowercase ASCII letters.
func Valid(word string) bool {
	if len(word) != Length {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}
