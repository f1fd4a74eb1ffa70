package compat

import "testing"

// testMatrix exercises every selection tier.
var testMatrix = Matrix{
	"target": {
		Exact: []Exact{{Tool: "sub_a"}, {Tool: "sub_b"}},
		Functional: []Functional{
			{Tools: []string{"f1"}, Strategy: StrategyChoice, Confidence: 0.6, Description: "low"},
			{Tools: []string{"f2", "f3"}, Strategy: StrategySequential, Confidence: 0.9, Description: "high"},
		},
		Composite: []Composite{
			{Steps: []Step{{Tool: "c1"}, {Tool: "c2"}}, Confidence: 0.5, Description: "steps"},
		},
		Partial: []Partial{
			{Tool: "p1", Confidence: 0.4, Description: "gaps"},
			{Tool: "p2", Confidence: 0.7, Description: "fewer gaps"},
		},
	},
}

func TestBestTierPriority(t *testing.T) {
	tests := []struct {
		name     string
		avail    []string
		wantKind Kind
		wantConf float64
	}{
		{"exact wins over everything", []string{"sub_b", "f2", "f3", "c1", "c2", "p2"}, KindExact, 1.0},
		{"functional when no exact", []string{"f2", "f3", "c1", "c2", "p2"}, KindFunctional, 0.9},
		{"composite when no functional", []string{"c1", "c2", "p2"}, KindComposite, 0.5},
		{"partial last", []string{"p1", "p2"}, KindPartial, 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testMatrix.Best("target", NewSet(tt.avail...))
			if !b.Found() {
				t.Fatal("no candidate found")
			}
			if b.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", b.Kind, tt.wantKind)
			}
			if b.Confidence != tt.wantConf {
				t.Errorf("confidence = %v, want %v", b.Confidence, tt.wantConf)
			}
		})
	}
}

func TestBestExactUsesFirstAvailable(t *testing.T) {
	b := testMatrix.Best("target", NewSet("sub_b"))
	if !b.Found() || b.Alternative.(Exact).Tool != "sub_b" {
		t.Errorf("Best = %+v, want exact sub_b", b)
	}

	// Both present: first declared wins.
	b = testMatrix.Best("target", NewSet("sub_a", "sub_b"))
	if b.Alternative.(Exact).Tool != "sub_a" {
		t.Errorf("Best picked %q, want first-declared sub_a", b.Alternative.(Exact).Tool)
	}
}

func TestBestNeverReturnsUnsatisfiedDependencies(t *testing.T) {
	// f2 present but f3 missing: the 0.9 functional must not apply;
	// the 0.6 one (f1 present) must.
	b := testMatrix.Best("target", NewSet("f1", "f2"))
	if !b.Found() {
		t.Fatal("no candidate found")
	}
	f, ok := b.Alternative.(Functional)
	if !ok {
		t.Fatalf("kind = %q, want functional", b.Kind)
	}
	if f.Confidence != 0.6 {
		t.Errorf("selected confidence %v; a candidate with missing deps leaked through", f.Confidence)
	}

	// Composite with one absent step must not apply either.
	b = testMatrix.Best("target", NewSet("c1", "p1"))
	if b.Kind != KindPartial {
		t.Errorf("kind = %q, want partial (composite step c2 is missing)", b.Kind)
	}
}

func TestBestConfidenceTieKeepsDeclarationOrder(t *testing.T) {
	m := Matrix{
		"t": {
			Functional: []Functional{
				{Tools: []string{"a"}, Strategy: StrategyChoice, Confidence: 0.8, Description: "first"},
				{Tools: []string{"b"}, Strategy: StrategyChoice, Confidence: 0.8, Description: "second"},
			},
		},
	}
	b := m.Best("t", NewSet("a", "b"))
	if got := b.Alternative.(Functional).Description; got != "first" {
		t.Errorf("tie resolved to %q, want first-declared", got)
	}
}

func TestBestNothingApplicable(t *testing.T) {
	b := testMatrix.Best("target", NewSet("unrelated"))
	if b.Found() {
		t.Fatalf("Best = %+v, want none", b)
	}
	if b.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", b.Confidence)
	}

	if testMatrix.Best("unknown_tool", NewSet("sub_a")).Found() {
		t.Error("unknown tool should have no candidates")
	}
}

func TestBestConfidenceBounds(t *testing.T) {
	avails := [][]string{
		{"sub_a"}, {"f1"}, {"f2", "f3"}, {"c1", "c2"}, {"p1"}, {"p2"}, {},
	}
	for _, avail := range avails {
		b := testMatrix.Best("target", NewSet(avail...))
		if b.Confidence < 0 || b.Confidence > 1 {
			t.Errorf("confidence %v out of [0,1] for avail %v", b.Confidence, avail)
		}
	}
}
