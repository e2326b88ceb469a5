package store

import (
	"strings"
	"testing"

	"github.com/kesterallen/wordle-engine/model"
)

func TestNewWordStoreEmbeddedList(t *testing.T) {
	store := NewWordStore()

	if store.Len() == 0 {
		t.Fatal("Expected the embedded wordlist to contain words")
	}
	for _, word := range store.Words() {
		if err := model.ValidateWord(word); err != nil {
			t.Errorf("Embedded wordlist contains invalid word %q: %v", word, err)
		}
	}
}

func TestNewWordStoreFromReader(t *testing.T) {
	t.Run("valid lines are kept in order", func(t *testing.T) {
		store, err := NewWordStoreFromReader(strings.NewReader("crane\nslate\ntrace\n"))
		if err != nil {
			t.Fatalf("NewWordStoreFromReader failed: %v", err)
		}
		words := store.Words()
		expected := []string{"crane", "slate", "trace"}
		if len(words) != len(expected) {
			t.Fatalf("Expected %d words, got %d", len(expected), len(words))
		}
		for i, word := range expected {
			if words[i] != word {
				t.Errorf("Word %d: expected %q, got %q", i, word, words[i])
			}
		}
	})

	t.Run("invalid entries and comments are skipped", func(t *testing.T) {
		input := "crane\n\n# a comment\ntoolong\nab\nSLATE\ncafés\n"
		store, err := NewWordStoreFromReader(strings.NewReader(input))
		if err != nil {
			t.Fatalf("NewWordStoreFromReader failed: %v", err)
		}
		words := store.Words()
		if len(words) != 2 {
			t.Fatalf("Expected 2 words, got %d: %v", len(words), words)
		}
		if words[0] != "crane" || words[1] != "slate" {
			t.Errorf("Expected [crane slate], got %v", words)
		}
	})
}

func TestWordsReturnsACopy(t *testing.T) {
	store, err := NewWordStoreFromReader(strings.NewReader("crane\nslate\n"))
	if err != nil {
		t.Fatalf("NewWordStoreFromReader failed: %v", err)
	}

	words := store.Words()
	words[0] = "mutated"

	if store.Words()[0] != "crane" {
		t.Error("Mutating the returned slice changed the store contents")
	}
}
