package filter

import (
	"testing"

	"github.com/kesterallen/wordle-engine/model"
)

func testSet() model.ScoredSet {
	return model.ScoredSet{
		"crane": 0.9,
		"slate": 0.8,
		"trace": 0.7,
		"place": 0.6,
	}
}

func TestApplyLetterAbsent(t *testing.T) {
	filtered := Apply(testSet(), model.NewLetterAbsent('r'))

	expectWords(t, filtered, "slate", "place")
}

func TestApplyLetterAtPosition(t *testing.T) {
	t.Run("right spot keeps words with the letter exactly there", func(t *testing.T) {
		filtered := Apply(testSet(), model.NewLetterAtPosition('c', 1, true))
		expectWords(t, filtered, "crane")
	})

	t.Run("wrong spot keeps words containing the letter elsewhere", func(t *testing.T) {
		filtered := Apply(testSet(), model.NewLetterAtPosition('c', 1, false))
		expectWords(t, filtered, "trace", "place")
	})

	t.Run("wrong spot still requires the letter to be present", func(t *testing.T) {
		filtered := Apply(testSet(), model.NewLetterAtPosition('z', 1, false))
		expectWords(t, filtered)
	})
}

func TestApplyPreservesScoresAndInput(t *testing.T) {
	original := testSet()
	filtered := Apply(original, model.NewLetterAbsent('p'))

	if len(original) != 4 {
		t.Errorf("Apply mutated its input: %v", original)
	}
	if filtered["crane"] != 0.9 {
		t.Errorf("Expected surviving score 0.9, got %f", filtered["crane"])
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	constraint := model.NewLetterAtPosition('a', 3, true)
	once := Apply(testSet(), constraint)
	twice := Apply(once, constraint)

	if len(once) != len(twice) {
		t.Fatalf("Expected identical sets, got %d vs %d entries", len(once), len(twice))
	}
	for word := range once {
		if _, ok := twice[word]; !ok {
			t.Errorf("Word %q lost on second application", word)
		}
	}
}

func TestApplyAllIsOrderIndependent(t *testing.T) {
	constraints := []model.Constraint{
		model.NewLetterAbsent('s'),
		model.NewLetterAtPosition('a', 3, true),
		model.NewLetterAtPosition('e', 5, true),
	}
	permuted := []model.Constraint{constraints[2], constraints[0], constraints[1]}

	forward := ApplyAll(testSet(), constraints)
	backward := ApplyAll(testSet(), permuted)

	if len(forward) != len(backward) {
		t.Fatalf("Permuted constraints changed result size: %d vs %d", len(forward), len(backward))
	}
	for word := range forward {
		if _, ok := backward[word]; !ok {
			t.Errorf("Word %q present in one ordering but not the other", word)
		}
	}
}

func TestApplyAllEmptyConstraintListClones(t *testing.T) {
	original := testSet()
	cloned := ApplyAll(original, nil)

	if len(cloned) != len(original) {
		t.Fatalf("Expected a full copy, got %d entries", len(cloned))
	}
	cloned["extra"] = 1.0
	if _, ok := original["extra"]; ok {
		t.Error("ApplyAll returned the original set instead of a copy")
	}
}

func expectWords(t *testing.T, set model.ScoredSet, words ...string) {
	t.Helper()
	if len(set) != len(words) {
		t.Fatalf("Expected %d words, got %d: %v", len(words), len(set), set)
	}
	for _, word := range words {
		if _, ok := set[word]; !ok {
			t.Errorf("Expected %q to survive filtering, set: %v", word, set)
		}
	}
}
