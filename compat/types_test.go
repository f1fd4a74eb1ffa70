package compat

import (
	"reflect"
	"testing"
)

func TestSetMembership(t *testing.T) {
	s := NewSet("bash", "read", "grep", "read")

	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3 (duplicates collapse)", s.Len())
	}
	if !s.Has("bash") {
		t.Error("Has(bash) = false")
	}
	if s.Has("write") {
		t.Error("Has(write) = true for absent tool")
	}
	if !s.HasAll([]string{"read", "grep"}) {
		t.Error("HasAll(read, grep) = false")
	}
	if s.HasAll([]string{"read", "write"}) {
		t.Error("HasAll with absent member = true")
	}
	if !s.HasAll(nil) {
		t.Error("HasAll(nil) should be trivially true")
	}

	want := []string{"bash", "grep", "read"}
	if got := s.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}

func TestStrategyValid(t *testing.T) {
	for _, s := range []Strategy{StrategySequential, StrategyParallel, StrategyChoice} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Strategy("round-robin").Valid() {
		t.Error("unknown strategy reported valid")
	}
}

func TestConfidenceOf(t *testing.T) {
	tests := []struct {
		name string
		alt  Alternative
		want float64
	}{
		{"exact is always 1", Exact{Tool: "read"}, 1.0},
		{"functional", Functional{Tools: []string{"grep"}, Confidence: 0.85}, 0.85},
		{"composite", Composite{Steps: []Step{{Tool: "read"}}, Confidence: 0.7}, 0.7},
		{"partial", Partial{Tool: "bash", Confidence: 0.5}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfidenceOf(tt.alt); got != tt.want {
				t.Errorf("ConfidenceOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToolsOf(t *testing.T) {
	comp := Composite{Steps: []Step{{Tool: "read"}, {Tool: "bash"}, {Tool: "write"}}}
	want := []string{"read", "bash", "write"}
	if got := ToolsOf(comp); !reflect.DeepEqual(got, want) {
		t.Errorf("ToolsOf(composite) = %v, want %v", got, want)
	}

	fn := Functional{Tools: []string{"glob", "grep"}}
	got := ToolsOf(fn)
	got[0] = "mutated"
	if fn.Tools[0] != "glob" {
		t.Error("ToolsOf must return a copy, not the backing slice")
	}
}

func TestEntryEmpty(t *testing.T) {
	if !(Entry{}).Empty() {
		t.Error("zero Entry should be empty")
	}
	e := Entry{Partial: []Partial{{Tool: "bash", Confidence: 0.5}}}
	if e.Empty() {
		t.Error("entry with a partial alternative should not be empty")
	}
}
