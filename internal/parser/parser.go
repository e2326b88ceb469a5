// Package parser implements the constraint mini-language.
//
// A token is interpreted by two independent passes:
//
//  1. A token that is a pure run of letters ("abc") yields one absent-letter
//     constraint per distinct letter.
//  2. Each group of the form <letter><signed-position-run> ("a12-3",
//     "d+34-1") yields one positional constraint per digit. A '+' or '-'
//     marker sets the rightness mode ("right spot" vs "present, wrong
//     spot") for the digits that follow it; the mode starts as right-spot
//     unless the run leads with '-'.
//
// Fragments that cannot yield a constraint (a sign marker with no trailing
// digits, or a token matching neither pattern) are skipped leniently with a
// logged warning rather than failing; only out-of-range positions are hard
// errors.
package parser

import (
	"log"
	"regexp"

	apperrors "github.com/kesterallen/wordle-engine/internal/errors"
	"github.com/kesterallen/wordle-engine/model"
)

// absentPattern matches tokens that are a pure run of letters with no
// digits or sign markers.
var absentPattern = regexp.MustCompile(`^[a-z]+$`)

// positionPattern matches one <letter><signed-position-run> group.
var positionPattern = regexp.MustCompile(`[a-z][+\-0-9]+`)

// Parse turns one raw token into its structured constraints. It is pure
// apart from warning logs, and fails only when a parsed position lies
// outside [1, model.WordLength].
func Parse(token string) ([]model.Constraint, error) {
	var constraints []model.Constraint

	if absentPattern.MatchString(token) {
		constraints = append(constraints, parseAbsentRun(token)...)
	}

	for _, group := range positionPattern.FindAllString(token, -1) {
		groupConstraints, err := parsePositionGroup(group[0], group[1:])
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, groupConstraints...)
	}

	if len(constraints) == 0 {
		log.Printf("Warning: token %q matched no constraint pattern; ignoring it", token)
	}
	return constraints, nil
}

// ParseAll parses each token independently and concatenates the resulting
// constraints in input order. Ordering has no semantic effect on filtering;
// it is preserved for traceability only.
func ParseAll(tokens []string) ([]model.Constraint, error) {
	var constraints []model.Constraint
	for _, token := range tokens {
		parsed, err := Parse(token)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, parsed...)
	}
	return constraints, nil
}

// parseAbsentRun yields one LetterAbsent constraint per distinct letter,
// in first-occurrence order.
func parseAbsentRun(run string) []model.Constraint {
	seen := make(map[byte]bool, len(run))
	constraints := make([]model.Constraint, 0, len(run))
	for i := 0; i < len(run); i++ {
		letter := run[i]
		if seen[letter] {
			continue
		}
		seen[letter] = true
		constraints = append(constraints, model.NewLetterAbsent(letter))
	}
	return constraints
}

// parsePositionGroup scans a signed position run for a single letter.
// Each digit becomes one positional constraint under the rightness mode
// active at that point in the scan.
func parsePositionGroup(letter byte, run string) ([]model.Constraint, error) {
	constraints := make([]model.Constraint, 0, len(run))
	mustMatch := true
	sawMarker := false
	digitsSinceMarker := 0

	for i := 0; i < len(run); i++ {
		switch c := run[i]; c {
		case '+', '-':
			if sawMarker && digitsSinceMarker == 0 {
				// Lenient skip: the previous marker carried no positions.
				log.Printf("Warning: fragment %q for letter '%c' has a sign with no positions; skipping it", run, letter)
			}
			mustMatch = c == '+'
			sawMarker = true
			digitsSinceMarker = 0
		default:
			position := int(c - '0')
			if position < 1 || position > model.WordLength {
				return nil, apperrors.NewPositionOutOfRangeError(letter, position, model.WordLength)
			}
			constraints = append(constraints, model.NewLetterAtPosition(letter, position, mustMatch))
			digitsSinceMarker++
		}
	}

	if sawMarker && digitsSinceMarker == 0 {
		log.Printf("Warning: fragment %q for letter '%c' ends with a sign and no positions; skipping it", run, letter)
	}
	return constraints, nil
}
