package resolve

// LegacyAlternative is an entry in the legacy functional table: an
// older capability name mapped to the tools that replaced it. Kept
// separate from the compat matrix because the two tables are maintained
// on different schedules (the legacy tables only ever shrink).
type LegacyAlternative struct {
	Tools       []string
	Confidence  float64
	Description string
}

// defaultLegacyExact maps retired capability names to their current
// equivalents. The first mapped name present in the available set wins.
var defaultLegacyExact = map[string][]string{
	"readFile":   {"read"},
	"read_file":  {"read"},
	"writeFile":  {"write"},
	"write_file": {"write"},
	"editFile":   {"edit"},
	"edit_file":  {"edit"},
	"searchCode": {"grep"},
	"codeSearch": {"grep"},
	"listFiles":  {"ls", "glob"},
	"findFiles":  {"glob"},
	"runCommand": {"bash"},
	"shell":      {"bash"},
	"fetchUrl":   {"webfetch"},
	"fetch_url":  {"webfetch"},
}

// defaultLegacyFunctional maps retired capability names to functional
// replacements that need caller confirmation.
var defaultLegacyFunctional = map[string][]LegacyAlternative{
	"str_replace_editor": {
		{
			Tools:       []string{"edit"},
			Confidence:  0.75,
			Description: "edit performs exact string replacement in a single file",
		},
	},
	"file_search": {
		{
			Tools:       []string{"glob"},
			Confidence:  0.7,
			Description: "glob matches file paths by pattern",
		},
		{
			Tools:       []string{"grep"},
			Confidence:  0.5,
			Description: "grep finds files by their contents instead of their names",
		},
	},
	"execute_command": {
		{
			Tools:       []string{"bash"},
			Confidence:  0.8,
			Description: "bash runs the command in a shell",
		},
	},
}
