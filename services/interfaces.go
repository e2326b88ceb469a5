package services

import (
	"context"

	"github.com/kesterallen/wordle-engine/model"
)

// FilterResult is the outcome of a one-shot constraint-filtering run:
// the surviving candidates sorted ascending by score.
type FilterResult struct {
	Entries []model.ScoredEntry `json:"entries"`
	Total   int                 `json:"total"`
	Took    int64               `json:"took"`     // milliseconds
	QueryID string              `json:"query_id"` // unique UUID for this filtering run
}

// SolveResult is the per-target outcome of a solver run. Found is false
// when the candidate set was exhausted before the target was reached;
// that is a reported outcome, not an error.
type SolveResult struct {
	Target     string   `json:"target"`
	Guesses    []string `json:"guesses,omitempty"`
	GuessCount int      `json:"guess_count"`
	Found      bool     `json:"found"`
}

// BatchSolveResult aggregates solver runs over a batch of targets. Each
// target is solved independently from the same full scored collection.
type BatchSolveResult struct {
	Results      []SolveResult `json:"results"`
	Solved       int           `json:"solved"`
	Exhausted    int           `json:"exhausted"`
	TotalGuesses int           `json:"total_guesses"`
	Took         int64         `json:"took"` // milliseconds
}

// AverageGuesses returns the mean guess count across solved targets,
// or 0 when nothing was solved.
func (b BatchSolveResult) AverageGuesses() float64 {
	if b.Solved == 0 {
		return 0
	}
	solvedGuesses := 0
	for _, result := range b.Results {
		if result.Found {
			solvedGuesses += result.GuessCount
		}
	}
	return float64(solvedGuesses) / float64(b.Solved)
}

// WordProvider exposes a sequence of candidate words. Words are assumed
// lowercase, alphabetic, ASCII, of the fixed word length; deduplication
// is the core's responsibility, not the provider's.
type WordProvider interface {
	Words() []string
}

// Narrower filters the scored candidate collection by raw constraint
// tokens.
type Narrower interface {
	Filter(tokens []string) (FilterResult, error)
}

// GameSolver plays the puzzle against known targets.
type GameSolver interface {
	Solve(target string) (SolveResult, error)
	SolveAll(ctx context.Context) (BatchSolveResult, error)
}

// CandidateEngine is the full surface consumed by the CLI and the API.
type CandidateEngine interface {
	Narrower
	GameSolver
	WordCount() int
}
