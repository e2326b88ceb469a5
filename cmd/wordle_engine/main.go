package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/kesterallen/wordle-engine/api"
	"github.com/kesterallen/wordle-engine/config"
	"github.com/kesterallen/wordle-engine/internal/engine"
	"github.com/kesterallen/wordle-engine/services"
	"github.com/kesterallen/wordle-engine/store"
)

func main() {
	// Define command-line flags
	var (
		help     = flag.Bool("help", false, "Show help message")
		version  = flag.Bool("version", false, "Show version information")
		target   = flag.String("target", "", "Solve for this target word")
		all      = flag.Bool("all", false, "Solve every candidate word as a target")
		verbose  = flag.Bool("verbose", false, "Emit per-guess traces during solver runs")
		wordlist = flag.String("words", "", "Path to a candidate wordlist file (default: embedded list)")
		serve    = flag.Bool("serve", false, "Serve the HTTP API instead of running a one-shot command")
		port     = flag.String("port", "8080", "Port to serve the HTTP API on")
		workers  = flag.Int("workers", 0, "Concurrent solver workers for -all (default: GOMAXPROCS)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Wordle Engine - a word-candidate narrowing engine for five-letter puzzles\n\n")
		fmt.Printf("Usage: %s [options] [constraint tokens...]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nConstraint tokens:\n")
		fmt.Printf("  abc        letters a, b, c are absent from the word\n")
		fmt.Printf("  a12-3      letter a is at positions 1 and 2, and present but not at 3\n")
		fmt.Printf("  d+34-1     letter d is at positions 3 and 4, and present but not at 1\n")
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s abc e5             # Filter candidates by constraints\n", os.Args[0])
		fmt.Printf("  %s -target crane      # Solve for a known target\n", os.Args[0])
		fmt.Printf("  %s -all               # Solve every candidate as a target\n", os.Args[0])
		fmt.Printf("  %s -serve -port 9000  # Serve the HTTP API\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Wordle Engine v1.0.0\n")
		return
	}

	provider, err := loadWords(*wordlist)
	if err != nil {
		log.Fatalf("Failed to load wordlist: %v", err)
	}

	settings := config.GameSettings{
		SolverWorkers: *workers,
		WordlistPath:  *wordlist,
		Verbose:       *verbose,
	}
	eng, err := engine.NewEngine(provider, settings)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	switch {
	case *serve:
		runServer(eng, *port)
	case *target != "":
		runSolve(eng, *target)
	case *all:
		runSolveAll(eng, *verbose)
	default:
		runFilter(eng, flag.Args())
	}
}

func loadWords(path string) (services.WordProvider, error) {
	if path == "" {
		return store.NewWordStore(), nil
	}
	return store.NewWordStoreFromFile(path)
}

// runFilter applies the constraint tokens and prints the survivors,
// ascending by score.
func runFilter(eng *engine.Engine, tokens []string) {
	result, err := eng.Filter(tokens)
	if err != nil {
		log.Fatalf("Failed to filter candidates: %v", err)
	}
	for _, entry := range result.Entries {
		fmt.Printf("%s %.2f\n", entry.Word, entry.Score)
	}
}

func runSolve(eng *engine.Engine, target string) {
	result, err := eng.Solve(target)
	if err != nil {
		log.Fatalf("Failed to solve for %s: %v", target, err)
	}
	printOutcome(result)
}

func runSolveAll(eng *engine.Engine, verbose bool) {
	batch, err := eng.SolveAll(context.Background())
	if err != nil {
		log.Fatalf("Failed to solve batch: %v", err)
	}

	for _, result := range batch.Results {
		if verbose || !result.Found {
			printOutcome(result)
		}
	}
	fmt.Printf("solved %d/%d targets, %d total guesses, %.2f average\n",
		batch.Solved, len(batch.Results), batch.TotalGuesses, batch.AverageGuesses())
}

func printOutcome(result services.SolveResult) {
	if !result.Found {
		fmt.Printf("no solution found for %s\n", result.Target)
		return
	}
	fmt.Printf("solved %s in %d guesses: %v\n", result.Target, result.GuessCount, result.Guesses)
}

func runServer(eng *engine.Engine, port string) {
	router := gin.Default()
	api.SetupRoutes(router, eng)

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
