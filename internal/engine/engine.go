// Package engine wires the scoring, parsing, filtering, and solving
// stages into the pipeline consumed by the CLI and the API.
package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kesterallen/wordle-engine/config"
	"github.com/kesterallen/wordle-engine/internal/filter"
	"github.com/kesterallen/wordle-engine/internal/parser"
	"github.com/kesterallen/wordle-engine/internal/scoring"
	"github.com/kesterallen/wordle-engine/internal/solver"
	"github.com/kesterallen/wordle-engine/model"
	"github.com/kesterallen/wordle-engine/services"
)

// Engine holds the full scored candidate collection for one run. The
// collection is scored once at construction and treated as immutable
// afterwards: filters and solver rounds always work on fresh copies, so
// concurrent solver runs need no locking.
// It implements the services.CandidateEngine interface.
type Engine struct {
	settings config.GameSettings
	full     model.ScoredSet
}

// NewEngine scores the provider's candidates and returns a ready engine.
func NewEngine(provider services.WordProvider, settings config.GameSettings) (*Engine, error) {
	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return nil, fmt.Errorf("invalid settings: %v", conflicts)
	}

	scored, err := scoring.Score(provider.Words())
	if err != nil {
		return nil, fmt.Errorf("failed to score candidates: %w", err)
	}
	log.Printf("Scored %d candidate words", len(scored))

	return &Engine{settings: settings, full: scored}, nil
}

// Settings returns a copy of the engine's settings.
func (e *Engine) Settings() config.GameSettings {
	return e.settings
}

// WordCount returns the size of the full scored collection.
func (e *Engine) WordCount() int {
	return len(e.full)
}

// Filter parses the raw constraint tokens, applies them to the full
// collection, and returns the survivors sorted ascending by score. A
// parse error aborts the run with no partial result.
func (e *Engine) Filter(tokens []string) (services.FilterResult, error) {
	start := time.Now()

	constraints, err := parser.ParseAll(tokens)
	if err != nil {
		return services.FilterResult{}, err
	}

	filtered := filter.ApplyAll(e.full, constraints)
	return services.FilterResult{
		Entries: filtered.SortedByScore(),
		Total:   len(filtered),
		Took:    time.Since(start).Milliseconds(),
		QueryID: uuid.New().String(),
	}, nil
}

// Solve plays the elimination loop against one known target, starting
// from the full collection.
func (e *Engine) Solve(target string) (services.SolveResult, error) {
	if err := model.ValidateWord(target); err != nil {
		return services.SolveResult{}, err
	}
	result := solver.Solve(target, e.full)
	if e.settings.Verbose {
		for i, guess := range result.Guesses {
			log.Printf("Target %s guess %d: %s", target, i+1, guess)
		}
	}
	return result, nil
}

// SolveAll solves every candidate in the collection as a target. Each
// run starts from the full collection and is independent of the others,
// so runs are spread over a bounded pool of workers. Exhaustion of one
// target never aborts the batch.
func (e *Engine) SolveAll(ctx context.Context) (services.BatchSolveResult, error) {
	start := time.Now()
	targets := e.full.Words()
	results := make([]services.SolveResult, len(targets))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(e.settings.SolverWorkers)
	for i, target := range targets {
		i, target := i, target
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = solver.Solve(target, e.full)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return services.BatchSolveResult{}, err
	}

	batch := services.BatchSolveResult{Results: results}
	for _, result := range results {
		if result.Found {
			batch.Solved++
			batch.TotalGuesses += result.GuessCount
		} else {
			batch.Exhausted++
		}
	}
	batch.Took = time.Since(start).Milliseconds()
	return batch, nil
}
