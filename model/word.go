// Package model defines the core data types shared across the engine:
// candidate words, constraints, and scored candidate sets.
package model

import (
	apperrors "github.com/kesterallen/wordle-engine/internal/errors"
)

// WordLength is the fixed length of every candidate word. Positional
// constraints are validated against it, and positional indexing assumes
// one byte per character, so words are restricted to ASCII at ingestion.
const WordLength = 5

// ValidateWord checks that a word is usable as a candidate: exactly
// WordLength characters, all lowercase ASCII letters.
func ValidateWord(word string) error {
	if len(word) != WordLength {
		return apperrors.NewInvalidWordError(word, "must be exactly 5 characters")
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return apperrors.NewInvalidWordError(word, "must contain only lowercase ASCII letters")
		}
	}
	return nil
}
