// Package store provides the candidate word provider backing the engine.
package store

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kesterallen/wordle-engine/model"
)

//go:embed words.txt
var defaultWordlist string

// WordStore holds the candidate words fed to scoring. It is immutable
// after construction; Words hands out a copy so callers cannot disturb
// the backing slice. Deduplication stays with the scoring core.
type WordStore struct {
	words []string
}

// NewWordStore builds a store from the embedded default wordlist.
func NewWordStore() *WordStore {
	store, err := NewWordStoreFromReader(strings.NewReader(defaultWordlist))
	if err != nil {
		// The embedded list is validated at build time; a read failure
		// here means the binary itself is broken.
		panic(fmt.Sprintf("embedded wordlist unreadable: %v", err))
	}
	return store
}

// NewWordStoreFromFile builds a store from a newline-separated wordlist
// file.
func NewWordStoreFromFile(path string) (*WordStore, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist %s: %w", path, err)
	}
	defer file.Close()

	store, err := NewWordStoreFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read wordlist %s: %w", path, err)
	}
	return store, nil
}

// NewWordStoreFromReader builds a store from newline-separated words.
// Lines that are empty, comments ('#'), or fail candidate validation are
// skipped; positional indexing assumes single-byte characters, so the
// validation gate is what keeps non-ASCII words out of the engine.
func NewWordStoreFromReader(r io.Reader) (*WordStore, error) {
	scanner := bufio.NewScanner(r)
	words := make([]string, 0, 1024)
	skipped := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word := strings.ToLower(line)
		if err := model.ValidateWord(word); err != nil {
			skipped++
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan wordlist: %w", err)
	}

	if skipped > 0 {
		log.Printf("Warning: skipped %d wordlist entries that are not valid candidates", skipped)
	}
	return &WordStore{words: words}, nil
}

// Words returns the candidate words in file order.
func (s *WordStore) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Len returns the number of candidate words in the store.
func (s *WordStore) Len() int {
	return len(s.words)
}
