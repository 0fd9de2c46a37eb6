package output

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/NxPKG/BWPlugins/internal/config"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatText is the default human-readable text format
	FormatText OutputFormat = "text"
	// FormatJSON outputs in JSON format
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs in YAML format
	FormatYAML OutputFormat = "yaml"
)

// ParseFormat converts a --format flag value into an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, FormatJSON, FormatYAML:
		return OutputFormat(s), nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text, json, or yaml)", s)
	}
}

// FormatTests renders a list of derived tests in the requested format. Text
// rendering goes through the Formatter; JSON and YAML marshal the tests
// directly for machine consumption.
func FormatTests(tests []config.Test, format OutputFormat, noColor bool) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(tests, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode tests as JSON: %w", err)
		}
		return string(data) + "\n", nil
	case FormatYAML:
		data, err := yaml.Marshal(tests)
		if err != nil {
			return "", fmt.Errorf("failed to encode tests as YAML: %w", err)
		}
		return string(data), nil
	default:
		return NewFormatter(noColor).FormatTests(tests), nil
	}
}

// FormatProject renders a full project in the requested format.
func FormatProject(project *config.Project, format OutputFormat, noColor bool) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(project, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode project as JSON: %w", err)
		}
		return string(data) + "\n", nil
	case FormatYAML:
		data, err := yaml.Marshal(project)
		if err != nil {
			return "", fmt.Errorf("failed to encode project as YAML: %w", err)
		}
		return string(data), nil
	default:
		return NewFormatter(noColor).FormatProject(project), nil
	}
}
