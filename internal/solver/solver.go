// Package solver plays the puzzle against a known target by greedy
// elimination: guess the best-scoring remaining candidate, derive
// constraints from the comparison, and narrow again.
package solver

import (
	"strings"

	"github.com/kesterallen/wordle-engine/internal/filter"
	"github.com/kesterallen/wordle-engine/model"
	"github.com/kesterallen/wordle-engine/services"
)

// Solve runs the elimination loop for one target, starting from the full
// scored collection. Each round re-filters the original collection by the
// full accumulated constraint list rather than filtering incrementally.
// The loop always terminates: every failed guess is eliminated by its own
// derived constraints, so the remaining set shrinks every round. The
// guess count includes the final matching guess.
func Solve(target string, full model.ScoredSet) services.SolveResult {
	result := services.SolveResult{Target: target}
	var accumulated []model.Constraint
	remaining := full

	for len(remaining) > 0 {
		guess, _, _ := remaining.Best()
		result.Guesses = append(result.Guesses, guess)
		result.GuessCount++

		if guess == target {
			result.Found = true
			return result
		}

		accumulated = append(accumulated, FiltersFromGuess(guess, target)...)
		remaining = filter.ApplyAll(full, accumulated)
	}

	// Exhausted: no candidates remain before a match. Reported, not fatal.
	return result
}

// FiltersFromGuess derives the constraints implied by comparing a guess
// against the target character by character: letters missing from the
// target become absent-letter constraints, letters present become
// positional constraints whose rightness reflects whether the guess had
// them in the target's spot.
func FiltersFromGuess(guess, target string) []model.Constraint {
	constraints := make([]model.Constraint, 0, len(guess))
	for i := 0; i < len(guess); i++ {
		letter := guess[i]
		if strings.IndexByte(target, letter) < 0 {
			constraints = append(constraints, model.NewLetterAbsent(letter))
			continue
		}
		constraints = append(constraints, model.NewLetterAtPosition(letter, i+1, target[i] == letter))
	}
	return constraints
}
