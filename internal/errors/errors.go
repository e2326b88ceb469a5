package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrPositionOutOfRange is returned when a parsed constraint position
	// lies outside [1, word length]
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrEmptyCorpus is returned when scoring is asked to run against an
	// empty candidate set
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrInvalidWord is returned when a word fails candidate validation
	ErrInvalidWord = errors.New("invalid word")
)

// PositionOutOfRangeError represents an out-of-range constraint position with context
type PositionOutOfRangeError struct {
	Letter     byte
	Position   int
	WordLength int
}

func (e *PositionOutOfRangeError) Error() string {
	return fmt.Sprintf("position %d for letter '%c' is out of range [1, %d]", e.Position, e.Letter, e.WordLength)
}

func (e *PositionOutOfRangeError) Is(target error) bool {
	return target == ErrPositionOutOfRange
}

// NewPositionOutOfRangeError creates a new PositionOutOfRangeError
func NewPositionOutOfRangeError(letter byte, position, wordLength int) *PositionOutOfRangeError {
	return &PositionOutOfRangeError{Letter: letter, Position: position, WordLength: wordLength}
}

// EmptyCorpusError represents a scoring attempt over zero candidates
type EmptyCorpusError struct{}

func (e *EmptyCorpusError) Error() string {
	return "cannot score an empty candidate set"
}

func (e *EmptyCorpusError) Is(target error) bool {
	return target == ErrEmptyCorpus
}

// NewEmptyCorpusError creates a new EmptyCorpusError
func NewEmptyCorpusError() *EmptyCorpusError {
	return &EmptyCorpusError{}
}

// InvalidWordError represents a word that failed candidate validation
type InvalidWordError struct {
	Word   string
	Reason string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("invalid word '%s': %s", e.Word, e.Reason)
}

func (e *InvalidWordError) Is(target error) bool {
	return target == ErrInvalidWord
}

// NewInvalidWordError creates a new InvalidWordError
func NewInvalidWordError(word, reason string) *InvalidWordError {
	return &InvalidWordError{Word: word, Reason: reason}
}
