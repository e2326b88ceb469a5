// Package filter applies structured constraints to scored candidate sets.
package filter

import (
	"github.com/kesterallen/wordle-engine/model"
)

// Apply returns the subset of the scored set whose words satisfy the
// constraint. The input set is never mutated; surviving entries keep
// their scores.
func Apply(set model.ScoredSet, constraint model.Constraint) model.ScoredSet {
	out := make(model.ScoredSet, len(set))
	for word, score := range set {
		if constraint.Matches(word) {
			out[word] = score
		}
	}
	return out
}

// ApplyAll applies the constraints left to right. Each step only shrinks
// the set, so the result equals the intersection of every
// single-constraint result and is independent of constraint order.
func ApplyAll(set model.ScoredSet, constraints []model.Constraint) model.ScoredSet {
	if len(constraints) == 0 {
		return set.Clone()
	}
	for _, constraint := range constraints {
		set = Apply(set, constraint)
	}
	return set
}
