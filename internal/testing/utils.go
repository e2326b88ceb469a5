// Package testing provides utilities and helpers for testing the engine.
package testing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesterallen/wordle-engine/config"
	"github.com/kesterallen/wordle-engine/internal/engine"
	"github.com/kesterallen/wordle-engine/services"
	"github.com/kesterallen/wordle-engine/store"
)

// TestWords is a small corpus with known scoring behavior, used across
// engine and API tests.
func TestWords() []string {
	return []string{"crane", "slate", "trace", "place", "brick", "mound"}
}

// CreateTestStore builds a word store over the given corpus.
func CreateTestStore(t *testing.T, words []string) *store.WordStore {
	t.Helper()
	wordStore, err := store.NewWordStoreFromReader(strings.NewReader(strings.Join(words, "\n")))
	require.NoError(t, err, "Failed to build test word store")
	return wordStore
}

// CreateTestEngine builds an engine over the standard test corpus with a
// single solver worker for deterministic timing.
func CreateTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.NewEngine(CreateTestStore(t, TestWords()), config.GameSettings{SolverWorkers: 1})
	require.NoError(t, err, "Failed to create test engine")
	return eng
}

// FilterTestCase represents a test case for constraint filtering
type FilterTestCase struct {
	Name          string
	Tokens        []string
	ExpectedCount int
	ExpectedFirst string // Expected first (lowest-scored) surviving word
	ValidateFunc  func(t *testing.T, result services.FilterResult)
}

// RunFilterTests runs a suite of filtering tests against an engine
func RunFilterTests(t *testing.T, narrower services.Narrower, tests []FilterTestCase) {
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			result, err := narrower.Filter(tt.Tokens)
			require.NoError(t, err, "Filter should not fail")

			assert.Equal(t, tt.ExpectedCount, result.Total, "Survivor count should match")
			assert.Len(t, result.Entries, result.Total, "Entries should match total")
			assert.NotEmpty(t, result.QueryID, "Result should carry a query ID")

			if tt.ExpectedFirst != "" && len(result.Entries) > 0 {
				assert.Equal(t, tt.ExpectedFirst, result.Entries[0].Word, "First entry should match expected")
			}

			if tt.ValidateFunc != nil {
				tt.ValidateFunc(t, result)
			}
		})
	}
}

// AssertSolved verifies that a solve result found its target with a
// plausible guess trace.
func AssertSolved(t *testing.T, result services.SolveResult, target string) {
	assert.True(t, result.Found, "Target should be found")
	assert.Equal(t, target, result.Target, "Result target should match")
	require.NotEmpty(t, result.Guesses, "Result should carry a guess trace")
	assert.Equal(t, result.GuessCount, len(result.Guesses), "Guess count should match trace length")
	assert.Equal(t, target, result.Guesses[len(result.Guesses)-1], "Final guess should be the target")
}
