package compat

import (
	"strings"
	"testing"
)

func TestExplainGroupsByKind(t *testing.T) {
	avail := NewSet("sub_a", "f1", "c1", "c2", "p2")
	s := testMatrix.Explain("target", avail)

	if !strings.Contains(s, `"target"`) {
		t.Errorf("explanation does not name the tool:\n%s", s)
	}
	for _, want := range []string{
		"Direct substitutes: sub_a",
		"Functional alternatives:",
		"low",
		"Multi-step procedures:",
		"c1 -> c2",
		"Partial substitutes:",
		"fewer gaps",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("explanation missing %q:\n%s", want, s)
		}
	}

	// f2+f3 are not available; the high-confidence entry must not show.
	if strings.Contains(s, "high") {
		t.Errorf("explanation lists an unsatisfiable alternative:\n%s", s)
	}
}

func TestExplainNoAlternatives(t *testing.T) {
	if s := testMatrix.Explain("target", NewSet("unrelated")); s != NoAlternativesMessage {
		t.Errorf("Explain = %q, want the fixed no-alternatives message", s)
	}
	if s := testMatrix.Explain("unknown", NewSet("sub_a")); s != NoAlternativesMessage {
		t.Errorf("Explain for unknown tool = %q", s)
	}
}
