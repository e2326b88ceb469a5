// Package scoring computes the usefulness score of each candidate word.
//
// A word's score is the arithmetic mean of two components, each in [0, 1]:
// the sum of its letters' relative frequencies across the whole corpus,
// normalized by the best raw sum observed, and the fraction of its letters
// that are distinct. High scores therefore favor guesses built from common
// letters with little repetition, a greedy stand-in for full
// outcome-entropy computation.
package scoring

import (
	apperrors "github.com/kesterallen/wordle-engine/internal/errors"
	"github.com/kesterallen/wordle-engine/model"
)

// FrequencyTable holds the relative frequency of each letter 'a' through
// 'z' across all letter occurrences in the current candidate set. It is
// recomputed whenever the candidate set changes and never persisted.
type FrequencyTable [26]float64

// LetterFrequencies builds the frequency table for a candidate set,
// pooling letter occurrences across the whole corpus rather than per word.
func LetterFrequencies(words []string) FrequencyTable {
	var counts [26]int
	total := 0
	for _, word := range words {
		for i := 0; i < len(word); i++ {
			counts[word[i]-'a']++
			total++
		}
	}

	var table FrequencyTable
	if total == 0 {
		return table
	}
	for i, count := range counts {
		table[i] = float64(count) / float64(total)
	}
	return table
}

// Score produces a fresh scored set for the given candidates. Duplicates
// are removed before scoring; validation failures and an empty corpus
// abort with no partial result.
func Score(words []string) (model.ScoredSet, error) {
	deduped := dedupe(words)
	if len(deduped) == 0 {
		return nil, apperrors.NewEmptyCorpusError()
	}
	for _, word := range deduped {
		if err := model.ValidateWord(word); err != nil {
			return nil, err
		}
	}

	frequencies := LetterFrequencies(deduped)

	// Raw frequency sums, counting repeated letters once per occurrence.
	rawScores := make(map[string]float64, len(deduped))
	maxRaw := 0.0
	for _, word := range deduped {
		raw := 0.0
		for i := 0; i < len(word); i++ {
			raw += frequencies[word[i]-'a']
		}
		rawScores[word] = raw
		if raw > maxRaw {
			maxRaw = raw
		}
	}

	scored := make(model.ScoredSet, len(deduped))
	for _, word := range deduped {
		frequencyScore := rawScores[word] / maxRaw
		diversityScore := float64(distinctLetters(word)) / float64(model.WordLength)
		scored[word] = (frequencyScore + diversityScore) / 2
	}
	return scored, nil
}

// dedupe removes duplicate words while preserving first-occurrence order.
func dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, word := range words {
		if seen[word] {
			continue
		}
		seen[word] = true
		out = append(out, word)
	}
	return out
}

func distinctLetters(word string) int {
	var seen [26]bool
	count := 0
	for i := 0; i < len(word); i++ {
		letter := word[i] - 'a'
		if !seen[letter] {
			seen[letter] = true
			count++
		}
	}
	return count
}
