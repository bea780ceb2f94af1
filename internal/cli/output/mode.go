// Package output renders CLI results as styled text, markdown, JSON or YAML.
package output

// Mode selects how command output is rendered.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"     // text on a terminal, markdown otherwise
	ModeText     Mode = "text"     // styled tables for humans
	ModeMarkdown Mode = "markdown" // agent- and docs-friendly
	ModeJSON     Mode = "json"
	ModeYAML     Mode = "yaml"
)

var allModes = []Mode{ModeAuto, ModeText, ModeMarkdown, ModeJSON, ModeYAML}

// Valid reports whether m is a known mode. The empty mode is treated as auto.
func (m Mode) Valid() bool {
	if m == "" {
		return true
	}
	for _, known := range allModes {
		if m == known {
			return true
		}
	}
	return false
}

// ModeNames returns the names of all modes, for help text and completion.
func ModeNames() []string {
	names := make([]string, len(allModes))
	for i, m := range allModes {
		names[i] = string(m)
	}
	return names
}
