package model

import (
	"fmt"
	"strings"
)

// ConstraintKind discriminates the two constraint variants.
type ConstraintKind int

const (
	// LetterAbsent asserts the letter does not occur anywhere in the word.
	LetterAbsent ConstraintKind = iota
	// LetterAtPosition asserts the letter occurs in the word, and either
	// exactly at Position (MustMatch true) or anywhere but Position
	// (MustMatch false, the "present, wrong spot" signal).
	LetterAtPosition
)

// Constraint is a validated, structured restriction on candidate words.
// It is a tagged union: Position and MustMatch are only meaningful when
// Kind is LetterAtPosition. Position is 1-based within [1, WordLength];
// out-of-range values are rejected before a Constraint is constructed.
type Constraint struct {
	Kind      ConstraintKind `json:"kind"`
	Letter    byte           `json:"letter"`
	Position  int            `json:"position,omitempty"`
	MustMatch bool           `json:"must_match,omitempty"`
}

// NewLetterAbsent builds an absent-letter constraint.
func NewLetterAbsent(letter byte) Constraint {
	return Constraint{Kind: LetterAbsent, Letter: letter}
}

// NewLetterAtPosition builds a positional constraint. The position must
// already be validated against WordLength.
func NewLetterAtPosition(letter byte, position int, mustMatch bool) Constraint {
	return Constraint{Kind: LetterAtPosition, Letter: letter, Position: position, MustMatch: mustMatch}
}

// Matches reports whether a word satisfies the constraint.
func (c Constraint) Matches(word string) bool {
	switch c.Kind {
	case LetterAbsent:
		return strings.IndexByte(word, c.Letter) < 0
	case LetterAtPosition:
		if strings.IndexByte(word, c.Letter) < 0 {
			return false
		}
		at := c.Position >= 1 && c.Position <= len(word) && word[c.Position-1] == c.Letter
		if c.MustMatch {
			return at
		}
		return !at
	}
	return false
}

func (c Constraint) String() string {
	switch c.Kind {
	case LetterAbsent:
		return fmt.Sprintf("absent(%c)", c.Letter)
	case LetterAtPosition:
		if c.MustMatch {
			return fmt.Sprintf("at(%c,%d)", c.Letter, c.Position)
		}
		return fmt.Sprintf("notAt(%c,%d)", c.Letter, c.Position)
	}
	return "unknown"
}
