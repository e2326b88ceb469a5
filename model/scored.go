package model

import (
	"sort"
)

// ScoredSet maps candidate words to their usefulness score in [0, 1].
// Sets are treated as immutable values: filtering produces a new, smaller
// set instead of mutating the input, so earlier snapshots stay valid and
// a solver run can always restart from the full set.
type ScoredSet map[string]float64

// ScoredEntry is one (word, score) pair for ordered presentation.
type ScoredEntry struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Clone returns an independent copy of the set.
func (s ScoredSet) Clone() ScoredSet {
	out := make(ScoredSet, len(s))
	for w, score := range s {
		out[w] = score
	}
	return out
}

// Words returns the words of the set in lexicographic order.
func (s ScoredSet) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Best returns the highest-scoring word. Map iteration order is not
// semantically meaningful, so ties are broken deterministically in favor
// of the lexicographically smallest word. The boolean is false for an
// empty set.
func (s ScoredSet) Best() (string, float64, bool) {
	var (
		bestWord  string
		bestScore float64
		found     bool
	)
	for w, score := range s {
		if !found || score > bestScore || (score == bestScore && w < bestWord) {
			bestWord, bestScore = w, score
			found = true
		}
	}
	return bestWord, bestScore, found
}

// SortedByScore returns the entries sorted ascending by score, with
// lexicographic word order as the tie-break so output is stable.
func (s ScoredSet) SortedByScore() []ScoredEntry {
	entries := make([]ScoredEntry, 0, len(s))
	for w, score := range s {
		entries = append(entries, ScoredEntry{Word: w, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score < entries[j].Score
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}
