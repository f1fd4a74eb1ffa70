package compat

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Matrix maps a requested tool name to its known alternatives. Absence
// of a key means no known alternatives. A Matrix is built once (parsed
// or merged) and then only read.
type Matrix map[string]Entry

// Alternatives returns the entry for a tool. Unknown tools yield the
// zero Entry; this never errors.
func (m Matrix) Alternatives(tool string) Entry {
	return m[tool]
}

// Merge overlays other onto m and returns a new Matrix. Entries for the
// same tool are concatenated, m's declarations first, so builtin
// alternatives keep their declaration-order priority and host additions
// extend them.
func (m Matrix) Merge(other Matrix) Matrix {
	out := make(Matrix, len(m)+len(other))
	for tool, e := range m {
		out[tool] = e
	}
	for tool, e := range other {
		// Concatenate into fresh arrays: appending into base's slices
		// would write through any spare capacity they carry, and a
		// second merge from the same receiver would then corrupt the
		// first merged matrix.
		base := out[tool]
		base.Exact = append(append([]Exact(nil), base.Exact...), e.Exact...)
		base.Functional = append(append([]Functional(nil), base.Functional...), e.Functional...)
		base.Composite = append(append([]Composite(nil), base.Composite...), e.Composite...)
		base.Partial = append(append([]Partial(nil), base.Partial...), e.Partial...)
		out[tool] = base
	}
	return out
}

// yamlEntry is the on-the-wire shape of one matrix entry.
type yamlEntry struct {
	Exact      []string         `yaml:"exact"`
	Functional []yamlFunctional `yaml:"functional"`
	Composite  []yamlComposite  `yaml:"composite"`
	Partial    []yamlPartial    `yaml:"partial"`
}

type yamlFunctional struct {
	Tools       []string `yaml:"tools"`
	Strategy    string   `yaml:"strategy"`
	Confidence  float64  `yaml:"confidence"`
	Description string   `yaml:"description"`
	ParamMap    string   `yaml:"param_map"`
}

type yamlComposite struct {
	Steps       []yamlStep `yaml:"steps"`
	Confidence  float64    `yaml:"confidence"`
	Description string     `yaml:"description"`
}

type yamlStep struct {
	Tool        string `yaml:"tool"`
	Description string `yaml:"description"`
	ParamMap    string `yaml:"param_map"`
}

type yamlPartial struct {
	Tool        string   `yaml:"tool"`
	Limitations []string `yaml:"limitations"`
	Confidence  float64  `yaml:"confidence"`
	Description string   `yaml:"description"`
	ParamMap    string   `yaml:"param_map"`
}

// ParseMatrix decodes a YAML compatibility matrix and validates every
// entry. Hosts use this to curate their own matrices and Merge them
// over the builtin one.
func ParseMatrix(data []byte) (Matrix, error) {
	var raw map[string]yamlEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse matrix: %w", err)
	}

	m := make(Matrix, len(raw))
	for tool, ye := range raw {
		entry, err := ye.toEntry()
		if err != nil {
			return nil, fmt.Errorf("matrix entry %q: %w", tool, err)
		}
		m[tool] = entry
	}
	return m, nil
}

func (ye yamlEntry) toEntry() (Entry, error) {
	var e Entry

	for _, tool := range ye.Exact {
		if tool == "" {
			return Entry{}, fmt.Errorf("exact: %w", ErrEmptyToolName)
		}
		e.Exact = append(e.Exact, Exact{Tool: tool})
	}

	for i, f := range ye.Functional {
		alt := Functional{
			Tools:       f.Tools,
			Strategy:    Strategy(f.Strategy),
			Confidence:  f.Confidence,
			Description: f.Description,
			ParamMap:    f.ParamMap,
		}
		// An omitted strategy defaults to choice, the least surprising
		// semantics for a single-tool alternative.
		if f.Strategy == "" {
			alt.Strategy = StrategyChoice
		}
		if err := validateFunctional(alt); err != nil {
			return Entry{}, fmt.Errorf("functional[%d]: %w", i, err)
		}
		e.Functional = append(e.Functional, alt)
	}

	for i, c := range ye.Composite {
		alt := Composite{Confidence: c.Confidence, Description: c.Description}
		for _, s := range c.Steps {
			alt.Steps = append(alt.Steps, Step{
				Tool:        s.Tool,
				Description: s.Description,
				ParamMap:    s.ParamMap,
			})
		}
		if err := validateComposite(alt); err != nil {
			return Entry{}, fmt.Errorf("composite[%d]: %w", i, err)
		}
		e.Composite = append(e.Composite, alt)
	}

	for i, p := range ye.Partial {
		alt := Partial{
			Tool:        p.Tool,
			Limitations: p.Limitations,
			Confidence:  p.Confidence,
			Description: p.Description,
			ParamMap:    p.ParamMap,
		}
		if err := validatePartial(alt); err != nil {
			return Entry{}, fmt.Errorf("partial[%d]: %w", i, err)
		}
		e.Partial = append(e.Partial, alt)
	}

	return e, nil
}

func validateFunctional(f Functional) error {
	if len(f.Tools) == 0 {
		return ErrNoTools
	}
	for _, t := range f.Tools {
		if t == "" {
			return ErrEmptyToolName
		}
	}
	if !f.Strategy.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, f.Strategy)
	}
	return validateConfidence(f.Confidence)
}

func validateComposite(c Composite) error {
	if len(c.Steps) == 0 {
		return ErrNoSteps
	}
	for _, s := range c.Steps {
		if s.Tool == "" {
			return ErrEmptyToolName
		}
	}
	return validateConfidence(c.Confidence)
}

func validatePartial(p Partial) error {
	if p.Tool == "" {
		return ErrEmptyToolName
	}
	return validateConfidence(p.Confidence)
}

func validateConfidence(c float64) error {
	if c < 0 || c > 1 {
		return fmt.Errorf("%w: %v", ErrConfidenceRange, c)
	}
	return nil
}
