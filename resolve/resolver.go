package resolve

import (
	"fmt"

	"go.uber.org/zap"

	"toolcompat/compat"
)

// Recorder receives the outcome of every terminal pipeline stage.
// analytics.State satisfies it; a nil recorder disables recording.
type Recorder interface {
	RecordResolution(tool string, success bool, method string, resolvedTo string)
}

// Resolver runs the matching pipeline. Construct with New; the zero
// value is not usable. A Resolver is immutable after construction and
// safe for concurrent use.
type Resolver struct {
	matrix           compat.Matrix
	legacyExact      map[string][]string
	legacyFunctional map[string][]LegacyAlternative
	recorder         Recorder
	logger           *zap.Logger
	fuzzy            bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMatrix replaces the builtin compatibility matrix.
func WithMatrix(m compat.Matrix) Option {
	return func(r *Resolver) { r.matrix = m }
}

// WithRecorder wires an analytics recorder into the pipeline.
func WithRecorder(rec Recorder) Option {
	return func(r *Resolver) { r.recorder = rec }
}

// WithLogger sets the structured logger. Defaults to a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithFuzzyMatching toggles the last-resort fuzzy stage. It is on by
// default for fidelity with the original behavior, but resolving on
// string similarity alone can pick the wrong tool; hosts that cannot
// tolerate that disable it here without touching the rest of the
// pipeline.
func WithFuzzyMatching(enabled bool) Option {
	return func(r *Resolver) { r.fuzzy = enabled }
}

// WithLegacyTables replaces the builtin legacy name tables. Intended
// for hosts that carried their own renames across versions.
func WithLegacyTables(exact map[string][]string, functional map[string][]LegacyAlternative) Option {
	return func(r *Resolver) {
		r.legacyExact = exact
		r.legacyFunctional = functional
	}
}

// New builds a Resolver with the builtin matrix and legacy tables.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		matrix:           compat.Builtin(),
		legacyExact:      defaultLegacyExact,
		legacyFunctional: defaultLegacyFunctional,
		logger:           zap.NewNop(),
		fuzzy:            true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps (requested, available) to an Outcome. Stages run in
// fixed order and the first definitive answer wins. Pure given its
// inputs apart from recorder/logger side channels.
func (r *Resolver) Resolve(requested string, avail compat.Set) Outcome {
	// Stage 1: the tool is simply there.
	if avail.Has(requested) {
		return r.resolved(requested, requested, MethodDirectMatch)
	}

	// Stages 2 and 3: matrix exact, then high-confidence functional.
	// Composite and partial candidates never short-circuit here; they
	// surface through the broad stage below.
	best := r.matrix.Best(requested, avail)
	if best.Found() {
		switch best.Kind {
		case compat.KindExact:
			return r.resolved(requested, best.Alternative.(compat.Exact).Tool, MethodMatrixExact)
		case compat.KindFunctional:
			if best.Confidence > FunctionalConfidenceMin {
				r.logger.Debug("deferring to high-confidence functional alternative",
					zap.String("tool", requested),
					zap.Float64("confidence", best.Confidence))
				return r.deferred(requested, MethodMatrixFunctional,
					[]compat.Alternative{best.Alternative},
					r.suggestion(requested, avail))
			}
		}
	}

	// Stage 4: legacy exact renames.
	for _, mapped := range r.legacyExact[requested] {
		if avail.Has(mapped) {
			return r.resolved(requested, mapped, MethodLegacyExact)
		}
	}

	// Stage 5: vendor naming-convention patterns.
	if candidate, ok := patternMatch(requested, avail); ok {
		return r.resolved(requested, candidate, MethodPatternMatch)
	}

	// Stage 6: every satisfiable matrix alternative above the floor.
	if alts := r.broadAlternatives(requested, avail); len(alts) > 0 {
		return r.deferred(requested, MethodMatrixAlternatives, alts,
			r.matrix.Explain(requested, avail))
	}

	// Stage 7: legacy functional table, same collection rule.
	if alts := r.legacyBroad(requested, avail); len(alts) > 0 {
		return r.deferred(requested, MethodLegacyFunctional, alts,
			legacySuggestion(requested, alts))
	}

	// Stage 8: fuzzy name similarity, a deliberate heuristic of last
	// resort. Can mis-resolve on coincidentally similar names.
	if r.fuzzy {
		if candidate, score := fuzzyBest(requested, avail); score > FuzzySimilarityMin {
			r.logger.Debug("fuzzy-matched tool name",
				zap.String("requested", requested),
				zap.String("candidate", candidate),
				zap.Float64("similarity", score))
			return r.resolved(requested, candidate, MethodFuzzyMatch)
		}
	}

	// Stage 9: nothing matched; always leave the caller a way forward.
	r.record(requested, false, MethodNoResolution, "")
	r.logger.Debug("no resolution", zap.String("tool", requested))
	return Unresolved{Suggestion: r.suggestion(requested, avail)}
}

// broadAlternatives collects every functional and composite matrix
// entry whose full dependency set is satisfiable and whose confidence
// clears the floor, in declaration order.
func (r *Resolver) broadAlternatives(requested string, avail compat.Set) []compat.Alternative {
	entry := r.matrix.Alternatives(requested)

	var alts []compat.Alternative
	for _, f := range entry.Functional {
		if f.Confidence > BroadConfidenceMin && avail.HasAll(f.Tools) {
			alts = append(alts, f)
		}
	}
	for _, c := range entry.Composite {
		if c.Confidence > BroadConfidenceMin && avail.HasAll(compat.ToolsOf(c)) {
			alts = append(alts, c)
		}
	}
	return alts
}

// legacyBroad collects satisfiable legacy functional alternatives as
// compat descriptors.
func (r *Resolver) legacyBroad(requested string, avail compat.Set) []compat.Alternative {
	var alts []compat.Alternative
	for _, la := range r.legacyFunctional[requested] {
		if la.Confidence > BroadConfidenceMin && avail.HasAll(la.Tools) {
			alts = append(alts, compat.Functional{
				Tools:       la.Tools,
				Strategy:    compat.StrategyChoice,
				Confidence:  la.Confidence,
				Description: la.Description,
			})
		}
	}
	return alts
}

// suggestion prefers the matrix explanation and falls back to the
// generic message so an Unresolved outcome is never bare.
func (r *Resolver) suggestion(requested string, avail compat.Set) string {
	if s := r.matrix.Explain(requested, avail); s != compat.NoAlternativesMessage {
		return s
	}
	return GenericFallback
}

func legacySuggestion(requested string, alts []compat.Alternative) string {
	s := fmt.Sprintf("%q is a retired tool name. Known replacements:", requested)
	for _, a := range alts {
		s += fmt.Sprintf("\n  - %s", compat.DescriptionOf(a))
	}
	return s
}

func (r *Resolver) resolved(requested, tool, method string) Outcome {
	r.record(requested, true, method, tool)
	r.logger.Debug("resolved tool",
		zap.String("requested", requested),
		zap.String("resolved_to", tool),
		zap.String("method", method))
	return Resolved{Tool: tool, Method: method}
}

// deferred records the attempt as a non-resolution: the caller has not
// received a usable substitute until it confirms one.
func (r *Resolver) deferred(requested, method string, alts []compat.Alternative, suggestion string) Outcome {
	r.record(requested, false, method, "")
	return Deferred{Alternatives: alts, Suggestion: suggestion}
}

func (r *Resolver) record(tool string, success bool, method, resolvedTo string) {
	if r.recorder != nil {
		r.recorder.RecordResolution(tool, success, method, resolvedTo)
	}
}
