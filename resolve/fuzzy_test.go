package resolve

import (
	"testing"

	"toolcompat/compat"
)

func TestFuzzyBest(t *testing.T) {
	best, score := fuzzyBest("basj", compat.NewSet("bash", "glob", "read"))
	if best != "bash" {
		t.Errorf("best = %q, want bash", best)
	}
	if score != 0.75 {
		t.Errorf("score = %v, want 0.75", score)
	}
}

// Equal similarity scores must resolve deterministically to the
// lexicographically smallest candidate.
func TestFuzzyBestTieIsDeterministic(t *testing.T) {
	// "red" is distance 1 from both "read" and "reed".
	for range 50 {
		best, score := fuzzyBest("red", compat.NewSet("reed", "read"))
		if best != "read" {
			t.Fatalf("tie broke to %q, want read", best)
		}
		if score != 0.75 {
			t.Fatalf("score = %v, want 0.75", score)
		}
	}
}

func TestFuzzyBestEmptySet(t *testing.T) {
	best, score := fuzzyBest("anything", compat.NewSet())
	if best != "" || score != 0 {
		t.Errorf("fuzzyBest on empty set = %q, %v", best, score)
	}
}
