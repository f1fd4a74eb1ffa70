// Package resolve turns a requested-but-possibly-absent tool name into
// a concrete substitute or an explanatory failure. Resolution is a
// fixed pipeline of matching stages over literal names, the curated
// compatibility matrix and edit distance; it performs no I/O and is
// safe for concurrent use.
package resolve

import "toolcompat/compat"

// Resolution method names, recorded in analytics and carried on
// Resolved outcomes.
const (
	MethodDirectMatch        = "direct-match"
	MethodMatrixExact        = "matrix-exact"
	MethodMatrixFunctional   = "matrix-functional"
	MethodLegacyExact        = "legacy-exact"
	MethodPatternMatch       = "pattern-match"
	MethodMatrixAlternatives = "matrix-alternatives"
	MethodLegacyFunctional   = "legacy-functional"
	MethodFuzzyMatch         = "fuzzy-match"
	MethodNoResolution       = "no-resolution"
)

// Pipeline thresholds. Fixed design constants; hosts tune behavior by
// disabling stages, not by re-deriving these.
const (
	// FunctionalConfidenceMin is the confidence a matrix functional
	// alternative must exceed to short-circuit the pipeline into a
	// Deferred outcome.
	FunctionalConfidenceMin = 0.7

	// BroadConfidenceMin is the floor for collecting broad matrix and
	// legacy alternatives.
	BroadConfidenceMin = 0.3

	// FuzzySimilarityMin is the normalized similarity a candidate must
	// exceed for the fuzzy stage to resolve to it.
	FuzzySimilarityMin = 0.6
)

// GenericFallback is the suggestion of last resort when nothing in the
// knowledge base applies.
const GenericFallback = "No alternative found. Try accomplishing the task " +
	"manually with the core tools: bash, read, write, grep."

// Outcome is the sealed result union of a resolution. Consumers
// type-switch over Resolved, Deferred and Unresolved.
type Outcome interface {
	isOutcome()
}

// Resolved means the requested capability maps to a single concrete
// tool that can be called right away.
type Resolved struct {
	// Tool is the name to call instead of the requested one.
	Tool string

	// Method names the pipeline stage that produced the match.
	Method string
}

// Deferred means one or more alternatives exist but none is trustworthy
// enough to substitute automatically; the caller must confirm before
// any of them is used.
type Deferred struct {
	Alternatives []compat.Alternative
	Suggestion   string
}

// Unresolved means no substitute is known. Suggestion is always
// non-empty and actionable.
type Unresolved struct {
	Suggestion string
}

func (Resolved) isOutcome()   {}
func (Deferred) isOutcome()   {}
func (Unresolved) isOutcome() {}
