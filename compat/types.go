// Package compat holds the static compatibility knowledge base: for a
// requested tool name it knows which other tools, alone or combined, can
// stand in for it, and how much trust to place in each substitution.
//
// The knowledge base is data, not inference. Entries are curated by hand
// (a builtin matrix ships with the package, hosts may merge their own)
// and every query is a pure read over immutable inputs, safe for any
// number of concurrent callers.
package compat

import "sort"

// Strategy determines how a multi-tool alternative invokes its tools.
type Strategy string

const (
	// StrategySequential chains the tools, feeding each result forward.
	StrategySequential Strategy = "sequential"

	// StrategyParallel fans out to all tools with the same input.
	StrategyParallel Strategy = "parallel"

	// StrategyChoice uses only the first tool in the list.
	StrategyChoice Strategy = "choice"
)

// Valid reports whether s is one of the three known strategies.
func (s Strategy) Valid() bool {
	switch s {
	case StrategySequential, StrategyParallel, StrategyChoice:
		return true
	}
	return false
}

// Kind classifies an alternative by how faithful a substitute it is.
type Kind string

const (
	KindExact      Kind = "exact"
	KindFunctional Kind = "functional"
	KindComposite  Kind = "composite"
	KindPartial    Kind = "partial"
)

// Alternative is a sealed union of the four substitute descriptors.
// Consumers type-switch over Exact, Functional, Composite and Partial.
type Alternative interface {
	isAlternative()
}

// Exact is a direct 1:1 substitute for the requested tool.
type Exact struct {
	// Tool is the substitute's name.
	Tool string
}

// Functional is a different capability (or ordered set of capabilities)
// that achieves the same effect as the requested tool.
type Functional struct {
	// Tools lists every tool the alternative needs. Must be non-empty;
	// all of them must be available for the alternative to apply.
	Tools []string

	// Strategy says how the tools are invoked when executed.
	Strategy Strategy

	// Confidence estimates how well the substitution preserves the
	// original effect, in [0,1].
	Confidence float64

	// Description explains the substitution to the user.
	Description string

	// ParamMap optionally names a registered parameter adapter.
	ParamMap string
}

// Step is one stage of a Composite procedure.
type Step struct {
	Tool        string
	Description string

	// ParamMap optionally names a registered parameter adapter.
	ParamMap string
}

// Composite is an ordered multi-tool procedure replicating the
// requested capability. Steps must be non-empty.
type Composite struct {
	Steps       []Step
	Confidence  float64
	Description string
}

// Partial is a substitute with known capability gaps.
type Partial struct {
	Tool        string
	Limitations []string
	Confidence  float64
	Description string
	ParamMap    string
}

func (Exact) isAlternative()      {}
func (Functional) isAlternative() {}
func (Composite) isAlternative()  {}
func (Partial) isAlternative()    {}

// ConfidenceOf returns the confidence carried by an alternative.
// Exact substitutes are always 1.0.
func ConfidenceOf(a Alternative) float64 {
	switch v := a.(type) {
	case Exact:
		return 1.0
	case Functional:
		return v.Confidence
	case Composite:
		return v.Confidence
	case Partial:
		return v.Confidence
	}
	return 0
}

// ToolsOf returns the full dependency tool list of an alternative, in
// declaration order.
func ToolsOf(a Alternative) []string {
	switch v := a.(type) {
	case Exact:
		return []string{v.Tool}
	case Functional:
		return append([]string(nil), v.Tools...)
	case Composite:
		tools := make([]string, 0, len(v.Steps))
		for _, s := range v.Steps {
			tools = append(tools, s.Tool)
		}
		return tools
	case Partial:
		return []string{v.Tool}
	}
	return nil
}

// DescriptionOf returns the human-readable description of an
// alternative; Exact entries carry none and return "".
func DescriptionOf(a Alternative) string {
	switch v := a.(type) {
	case Functional:
		return v.Description
	case Composite:
		return v.Description
	case Partial:
		return v.Description
	}
	return ""
}

// Entry collects every known alternative for one requested tool.
// The zero value means "no known alternatives".
type Entry struct {
	Exact      []Exact
	Functional []Functional
	Composite  []Composite
	Partial    []Partial
}

// Empty reports whether the entry declares no alternatives at all.
func (e Entry) Empty() bool {
	return len(e.Exact) == 0 && len(e.Functional) == 0 &&
		len(e.Composite) == 0 && len(e.Partial) == 0
}

// Set is an immutable membership view over the tools present in the
// current environment. The resolution core only ever reads it.
type Set struct {
	m map[string]struct{}
}

// NewSet builds a Set from tool names. Duplicates collapse.
func NewSet(names ...string) Set {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return Set{m: m}
}

// Has reports whether the tool is present.
func (s Set) Has(name string) bool {
	_, ok := s.m[name]
	return ok
}

// HasAll reports whether every named tool is present. An empty list is
// trivially satisfied.
func (s Set) HasAll(names []string) bool {
	for _, n := range names {
		if !s.Has(n) {
			return false
		}
	}
	return true
}

// Len returns the number of tools in the set.
func (s Set) Len() int { return len(s.m) }

// Names returns the members as a sorted slice.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.m))
	for n := range s.m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
