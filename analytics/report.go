package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// topMissingLimit caps the missing-tool list in reports.
const topMissingLimit = 10

// Report is a point-in-time view of the session's counters.
type Report struct {
	SessionID          string
	SessionDuration    time.Duration
	TotalInterceptions int
	SuccessCount       int
	FailCount          int

	// SuccessRate and FailureRate are percentages; both are 0 when
	// nothing has been recorded yet.
	SuccessRate float64
	FailureRate float64

	TopMissing      []MissingTool
	Methods         []MethodCount
	Tools           []ToolReport
	Recommendations []string
}

// MissingTool counts failed requests for an absent tool.
type MissingTool struct {
	Tool  string
	Count int
}

// MethodCount is one bucket of the resolution-method histogram.
type MethodCount struct {
	Method  string
	Count   int
	Percent float64
}

// ToolReport pairs a tool with its counters.
type ToolReport struct {
	Tool  string
	Stats ToolStats
}

// vendorPrefixes mark tool names that look like externally provided
// capabilities; missing tools carrying them usually mean a server is
// not set up rather than a naming problem.
var vendorPrefixes = []string{"mcp__", "mcp_", "kb_"}

// Report computes rates, histograms and recommendations from the
// current counters.
func (s *State) Report() Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := Report{
		SessionID:          s.sessionID,
		SessionDuration:    time.Since(s.sessionStart),
		TotalInterceptions: s.total,
		SuccessCount:       s.success,
		FailCount:          s.fail,
	}

	if s.total > 0 {
		r.SuccessRate = float64(s.success) / float64(s.total) * 100
		r.FailureRate = 100 - r.SuccessRate
	}

	for tool, count := range s.missing {
		r.TopMissing = append(r.TopMissing, MissingTool{Tool: tool, Count: count})
	}
	sort.Slice(r.TopMissing, func(i, j int) bool {
		if r.TopMissing[i].Count != r.TopMissing[j].Count {
			return r.TopMissing[i].Count > r.TopMissing[j].Count
		}
		return r.TopMissing[i].Tool < r.TopMissing[j].Tool
	})
	if len(r.TopMissing) > topMissingLimit {
		r.TopMissing = r.TopMissing[:topMissingLimit]
	}

	for method, count := range s.methods {
		mc := MethodCount{Method: method, Count: count}
		if s.total > 0 {
			mc.Percent = float64(count) / float64(s.total) * 100
		}
		r.Methods = append(r.Methods, mc)
	}
	sort.Slice(r.Methods, func(i, j int) bool {
		if r.Methods[i].Count != r.Methods[j].Count {
			return r.Methods[i].Count > r.Methods[j].Count
		}
		return r.Methods[i].Method < r.Methods[j].Method
	})

	for tool, ts := range s.tools {
		r.Tools = append(r.Tools, ToolReport{Tool: tool, Stats: *ts})
	}
	sort.Slice(r.Tools, func(i, j int) bool {
		if r.Tools[i].Stats.Requested != r.Tools[j].Stats.Requested {
			return r.Tools[i].Stats.Requested > r.Tools[j].Stats.Requested
		}
		return r.Tools[i].Tool < r.Tools[j].Tool
	})

	r.Recommendations = s.recommendationsLocked(r)
	return r
}

// recommendationsLocked applies independent heuristic rules over the
// computed report. Each rule contributes at most a few lines; none
// depends on another.
func (s *State) recommendationsLocked(r Report) []string {
	var recs []string

	for i, m := range r.TopMissing {
		if i >= 3 {
			break
		}
		recs = append(recs, fmt.Sprintf(
			"Consider installing or enabling %q (requested %d times without a substitute).",
			m.Tool, m.Count))
	}

	for _, tr := range r.Tools {
		if tr.Stats.Requested > 2 && tr.Stats.Resolved*2 < tr.Stats.Requested {
			recs = append(recs, fmt.Sprintf(
				"%q resolves successfully less than half the time; curate better alternatives for it.",
				tr.Tool))
		}
	}

	if s.total > 0 {
		patternShare := float64(s.methods["pattern-match"]) / float64(s.total) * 100
		if patternShare > 30 {
			recs = append(recs,
				"Over 30% of resolutions rely on naming-convention patterns; update documentation to use canonical tool names.")
		}
	}

	var vendorMissing []string
	for _, m := range r.TopMissing {
		for _, prefix := range vendorPrefixes {
			if strings.HasPrefix(m.Tool, prefix) {
				vendorMissing = append(vendorMissing, m.Tool)
				break
			}
		}
	}
	if len(vendorMissing) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Missing tools %s look like vendor capabilities; set up the external server that provides them.",
			strings.Join(vendorMissing, ", ")))
	}

	return recs
}
