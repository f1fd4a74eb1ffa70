package compat

import (
	"fmt"
	"strings"
)

// NoAlternativesMessage is returned by Explain when no declared
// alternative is usable with the current available set.
const NoAlternativesMessage = "No known alternatives are available for this tool."

// Explain renders a human-readable summary of the alternatives for a
// tool that are usable with the current available set, grouped by kind.
// Returns NoAlternativesMessage when every group comes up empty.
func (m Matrix) Explain(tool string, avail Set) string {
	entry := m[tool]

	var b strings.Builder

	var exact []string
	for _, e := range entry.Exact {
		if avail.Has(e.Tool) {
			exact = append(exact, e.Tool)
		}
	}
	if len(exact) > 0 {
		fmt.Fprintf(&b, "Direct substitutes: %s\n", strings.Join(exact, ", "))
	}

	var funcLines []string
	for _, f := range entry.Functional {
		if avail.HasAll(f.Tools) {
			funcLines = append(funcLines, fmt.Sprintf("  - %s (via %s, confidence %.0f%%)",
				f.Description, strings.Join(f.Tools, " + "), f.Confidence*100))
		}
	}
	if len(funcLines) > 0 {
		b.WriteString("Functional alternatives:\n")
		b.WriteString(strings.Join(funcLines, "\n"))
		b.WriteString("\n")
	}

	var compLines []string
	for _, c := range entry.Composite {
		if avail.HasAll(ToolsOf(c)) {
			compLines = append(compLines, fmt.Sprintf("  - %s (%d steps: %s, confidence %.0f%%)",
				c.Description, len(c.Steps), strings.Join(ToolsOf(c), " -> "), c.Confidence*100))
		}
	}
	if len(compLines) > 0 {
		b.WriteString("Multi-step procedures:\n")
		b.WriteString(strings.Join(compLines, "\n"))
		b.WriteString("\n")
	}

	var partLines []string
	for _, p := range entry.Partial {
		if avail.Has(p.Tool) {
			partLines = append(partLines, fmt.Sprintf("  - %s via %s (limitations: %s, confidence %.0f%%)",
				p.Description, p.Tool, strings.Join(p.Limitations, "; "), p.Confidence*100))
		}
	}
	if len(partLines) > 0 {
		b.WriteString("Partial substitutes:\n")
		b.WriteString(strings.Join(partLines, "\n"))
		b.WriteString("\n")
	}

	if b.Len() == 0 {
		return NoAlternativesMessage
	}
	return fmt.Sprintf("Alternatives for %q:\n%s", tool, strings.TrimRight(b.String(), "\n"))
}
