package resolve

import (
	"fmt"
	"strings"

	"toolcompat/compat"
)

// Vendor naming conventions. Hosts expose the same capability under
// different prefixes depending on how the providing server was mounted,
// so the pattern stage tries both adding and stripping the known forms.
var (
	// prefixTemplates generate vendor-prefixed candidates from a bare
	// capability name, in priority order.
	prefixTemplates = []string{
		"kb_%s",
		"mcp__kb__%s",
		"mcp_%s",
	}

	// strippablePrefixes are removed from a vendor-prefixed request to
	// recover the bare capability name, in priority order.
	strippablePrefixes = []string{
		"kb_",
		"mcp__kb__",
		"mcp_",
	}
)

// patternCandidates builds the candidate names for a request by
// applying the naming-convention templates, in priority order.
func patternCandidates(requested string) []string {
	candidates := make([]string, 0, len(prefixTemplates)+len(strippablePrefixes)+1)

	for _, tmpl := range prefixTemplates {
		candidates = append(candidates, fmt.Sprintf(tmpl, requested))
	}

	for _, prefix := range strippablePrefixes {
		if strings.HasPrefix(requested, prefix) && len(requested) > len(prefix) {
			candidates = append(candidates, requested[len(prefix):])
		}
	}

	// mcp__<server>__<tool> collapses to the bare tool regardless of
	// which server exported it.
	if rest, ok := strings.CutPrefix(requested, "mcp__"); ok {
		if _, tool, found := strings.Cut(rest, "__"); found && tool != "" {
			candidates = append(candidates, tool)
		}
	}

	return candidates
}

// patternMatch returns the first pattern candidate present in the
// available set.
func patternMatch(requested string, avail compat.Set) (string, bool) {
	for _, candidate := range patternCandidates(requested) {
		if avail.Has(candidate) {
			return candidate, true
		}
	}
	return "", false
}
