package compat

// Best is the outcome of tiered alternative selection. A nil
// Alternative with Confidence 0 means no tier produced a candidate.
type Best struct {
	Kind        Kind
	Alternative Alternative
	Confidence  float64
}

// Found reports whether selection produced a candidate.
func (b Best) Found() bool { return b.Alternative != nil }

// Best selects the single most suitable alternative for a tool given
// what is currently available. Tiers are tried in strict priority
// order: exact, functional, composite, partial. The first tier with an
// applicable candidate wins; within a tier the highest confidence wins
// and ties keep the earliest declared entry. Functional and composite
// candidates only apply when their entire dependency tool set is
// available.
func (m Matrix) Best(tool string, avail Set) Best {
	entry := m[tool]

	for _, e := range entry.Exact {
		if avail.Has(e.Tool) {
			return Best{Kind: KindExact, Alternative: e, Confidence: 1.0}
		}
	}

	var bestF *Functional
	for i := range entry.Functional {
		f := &entry.Functional[i]
		if !avail.HasAll(f.Tools) {
			continue
		}
		if bestF == nil || f.Confidence > bestF.Confidence {
			bestF = f
		}
	}
	if bestF != nil {
		return Best{Kind: KindFunctional, Alternative: *bestF, Confidence: bestF.Confidence}
	}

	var bestC *Composite
	for i := range entry.Composite {
		c := &entry.Composite[i]
		if !avail.HasAll(ToolsOf(*c)) {
			continue
		}
		if bestC == nil || c.Confidence > bestC.Confidence {
			bestC = c
		}
	}
	if bestC != nil {
		return Best{Kind: KindComposite, Alternative: *bestC, Confidence: bestC.Confidence}
	}

	var bestP *Partial
	for i := range entry.Partial {
		p := &entry.Partial[i]
		if !avail.Has(p.Tool) {
			continue
		}
		if bestP == nil || p.Confidence > bestP.Confidence {
			bestP = p
		}
	}
	if bestP != nil {
		return Best{Kind: KindPartial, Alternative: *bestP, Confidence: bestP.Confidence}
	}

	return Best{}
}
