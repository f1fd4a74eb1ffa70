package resolve

import (
	"toolcompat/compat"
	"toolcompat/internal/textdist"
)

// fuzzyBest returns the available tool most similar to the requested
// name and its normalized similarity. Candidates are scanned in sorted
// order with a strict improvement test, so equal scores resolve to the
// lexicographically smallest name deterministically.
func fuzzyBest(requested string, avail compat.Set) (string, float64) {
	var (
		best  string
		score float64
	)
	for _, name := range avail.Names() {
		if s := textdist.Similarity(requested, name); s > score {
			best, score = name, s
		}
	}
	return best, score
}
