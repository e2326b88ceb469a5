// Package config provides configuration structures for the narrowing engine.
// It defines game settings, solver concurrency, and wordlist options.
package config

import (
	"runtime"
	"strconv"
	"strings"
)

// GameSettings contains all configuration options for an engine instance.
// The word length itself is fixed by the game (see model.WordLength); these
// settings cover the knobs around it.
type GameSettings struct {
	SolverWorkers int    `json:"solver_workers"` // Number of concurrent workers for batch solving (e.g., 4)
	WordlistPath  string `json:"wordlist_path"`  // Path to a candidate wordlist file; empty means the embedded list
	Verbose       bool   `json:"verbose"`        // Emit per-guess traces during solver runs
}

// Validate checks the settings for basic requirements and returns a list of
// human-readable conflicts. An empty list means the settings are usable.
func (settings *GameSettings) Validate() []string {
	var conflicts []string

	if settings.SolverWorkers < 0 {
		conflicts = append(conflicts, "solver_workers cannot be negative, got "+strconv.Itoa(settings.SolverWorkers))
	}

	if settings.WordlistPath != "" && strings.TrimSpace(settings.WordlistPath) == "" {
		conflicts = append(conflicts, "wordlist_path cannot be whitespace-only")
	}

	return conflicts
}

// ApplyDefaults applies default values to the settings
func (settings *GameSettings) ApplyDefaults() {
	if settings.SolverWorkers == 0 {
		settings.SolverWorkers = runtime.GOMAXPROCS(0)
	}
}
