package parser

import (
	"errors"
	"testing"

	apperrors "github.com/kesterallen/wordle-engine/internal/errors"
	"github.com/kesterallen/wordle-engine/model"
)

func TestParseAbsentRun(t *testing.T) {
	constraints, err := Parse("abc")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := []model.Constraint{
		model.NewLetterAbsent('a'),
		model.NewLetterAbsent('b'),
		model.NewLetterAbsent('c'),
	}
	assertConstraints(t, constraints, expected)
}

func TestParseAbsentRunDeduplicatesLetters(t *testing.T) {
	constraints, err := Parse("aab")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := []model.Constraint{
		model.NewLetterAbsent('a'),
		model.NewLetterAbsent('b'),
	}
	assertConstraints(t, constraints, expected)
}

func TestParsePositionGroups(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected []model.Constraint
	}{
		{
			name:  "default mode is right-spot",
			token: "a12-3",
			expected: []model.Constraint{
				model.NewLetterAtPosition('a', 1, true),
				model.NewLetterAtPosition('a', 2, true),
				model.NewLetterAtPosition('a', 3, false),
			},
		},
		{
			name:  "explicit leading plus",
			token: "d+34-1",
			expected: []model.Constraint{
				model.NewLetterAtPosition('d', 3, true),
				model.NewLetterAtPosition('d', 4, true),
				model.NewLetterAtPosition('d', 1, false),
			},
		},
		{
			name:  "leading minus starts in wrong-spot mode",
			token: "e-25",
			expected: []model.Constraint{
				model.NewLetterAtPosition('e', 2, false),
				model.NewLetterAtPosition('e', 5, false),
			},
		},
		{
			name:  "mode toggles back to right-spot",
			token: "t-1+3",
			expected: []model.Constraint{
				model.NewLetterAtPosition('t', 1, false),
				model.NewLetterAtPosition('t', 3, true),
			},
		},
		{
			name:  "multiple groups in one token",
			token: "a1b-2",
			expected: []model.Constraint{
				model.NewLetterAtPosition('a', 1, true),
				model.NewLetterAtPosition('b', 2, false),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constraints, err := Parse(tt.token)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.token, err)
			}
			assertConstraints(t, constraints, tt.expected)
		})
	}
}

func TestParseRejectsOutOfRangePositions(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "position above word length", token: "a6"},
		{name: "position zero", token: "a0"},
		{name: "out of range after valid positions", token: "a129"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.token)
			if err == nil {
				t.Fatalf("Expected Parse(%q) to fail", tt.token)
			}
			if !errors.Is(err, apperrors.ErrPositionOutOfRange) {
				t.Errorf("Expected ErrPositionOutOfRange, got %v", err)
			}
		})
	}
}

func TestParseLenientFragments(t *testing.T) {
	t.Run("sign with no trailing digits yields nothing for that fragment", func(t *testing.T) {
		constraints, err := Parse("a3-")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		assertConstraints(t, constraints, []model.Constraint{
			model.NewLetterAtPosition('a', 3, true),
		})
	})

	t.Run("consecutive signs skip the empty fragment", func(t *testing.T) {
		constraints, err := Parse("a+-3")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		assertConstraints(t, constraints, []model.Constraint{
			model.NewLetterAtPosition('a', 3, false),
		})
	})

	t.Run("unrecognized token yields no constraints and no error", func(t *testing.T) {
		constraints, err := Parse("123")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(constraints) != 0 {
			t.Errorf("Expected no constraints, got %v", constraints)
		}
	})
}

func TestParseAll(t *testing.T) {
	t.Run("tokens are parsed independently and concatenated", func(t *testing.T) {
		constraints, err := ParseAll([]string{"xyz", "a1"})
		if err != nil {
			t.Fatalf("ParseAll failed: %v", err)
		}
		expected := []model.Constraint{
			model.NewLetterAbsent('x'),
			model.NewLetterAbsent('y'),
			model.NewLetterAbsent('z'),
			model.NewLetterAtPosition('a', 1, true),
		}
		assertConstraints(t, constraints, expected)
	})

	t.Run("an invalid token aborts the whole argument list", func(t *testing.T) {
		_, err := ParseAll([]string{"abc", "a9"})
		if !errors.Is(err, apperrors.ErrPositionOutOfRange) {
			t.Errorf("Expected ErrPositionOutOfRange, got %v", err)
		}
	})
}

func assertConstraints(t *testing.T, got, expected []model.Constraint) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d constraints, got %d: %v", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Constraint %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
}
