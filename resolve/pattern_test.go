package resolve

import (
	"reflect"
	"testing"

	"toolcompat/compat"
)

func TestPatternCandidates(t *testing.T) {
	tests := []struct {
		requested string
		want      []string
	}{
		{
			requested: "search",
			want:      []string{"kb_search", "mcp__kb__search", "mcp_search"},
		},
		{
			requested: "kb_search",
			want: []string{
				"kb_kb_search", "mcp__kb__kb_search", "mcp_kb_search",
				"search",
			},
		},
		{
			requested: "mcp__github__create_issue",
			want: []string{
				"kb_mcp__github__create_issue",
				"mcp__kb__mcp__github__create_issue",
				"mcp_mcp__github__create_issue",
				"_github__create_issue",
				"create_issue",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.requested, func(t *testing.T) {
			if got := patternCandidates(tt.requested); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("candidates = %v,\nwant %v", got, tt.want)
			}
		})
	}
}

func TestPatternMatchFirstCandidateWins(t *testing.T) {
	// Both the kb_ and mcp_ forms exist; template order prefers kb_.
	got, ok := patternMatch("search", compat.NewSet("mcp_search", "kb_search"))
	if !ok || got != "kb_search" {
		t.Errorf("patternMatch = %q, %v; want kb_search", got, ok)
	}

	if _, ok := patternMatch("search", compat.NewSet("bash")); ok {
		t.Error("patternMatch reported a hit with no conventional name present")
	}
}
