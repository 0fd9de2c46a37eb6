package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NxPKG/BWPlugins/internal/config"
)

// Formatter is responsible for rendering frameworks, tests, and projects in
// human-readable text format
type Formatter struct {
	NoColor bool
	scheme  *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{NoColor: noColor, scheme: scheme}
}

// FormatFramework formats a framework's metadata block for display
func (f *Formatter) FormatFramework(fw config.Framework) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("Framework: %s\n", f.scheme.Framework.Sprint(fw.Name)))
	if len(fw.Authors) > 0 {
		buf.WriteString(fmt.Sprintf("  Authors: %s\n", strings.Join(fw.Authors, ", ")))
	}
	if fw.GitHub != "" {
		buf.WriteString(fmt.Sprintf("  GitHub:  %s\n", fw.GitHub))
	}

	return buf.String()
}

// FormatTest formats a single test variant for display
func (f *Formatter) FormatTest(test config.Test) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("%s %s\n", f.scheme.TestName.Sprint(test.Name), f.scheme.Label.Sprintf("[%s]", test.Tag())))
	buf.WriteString(fmt.Sprintf("  approach: %s, classification: %s, platform: %s\n",
		test.Approach, test.Classification, test.Platform))
	buf.WriteString(fmt.Sprintf("  webserver: %s, os: %s, versus: %s\n",
		test.Webserver, test.OS, test.Versus))
	if test.Database != "" {
		buf.WriteString(fmt.Sprintf("  database: %s\n", test.Database))
	}

	// Stable route ordering for readable diffs
	keys := make([]string, 0, len(test.URLs))
	for key := range test.URLs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		buf.WriteString(fmt.Sprintf("  %s: %s\n", f.scheme.RouteKey.Sprint(key), f.scheme.RoutePath.Sprint(test.URLs[key])))
	}

	return buf.String()
}

// FormatTests formats a list of tests for display
func (f *Formatter) FormatTests(tests []config.Test) string {
	var buf strings.Builder
	for i, test := range tests {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(f.FormatTest(test))
	}
	return buf.String()
}

// FormatProject formats a full project for display
func (f *Formatter) FormatProject(project *config.Project) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("Project:  %s\n", f.scheme.Highlight.Sprint(project.Name)))
	buf.WriteString(fmt.Sprintf("Language: %s\n", f.scheme.Language.Sprint(project.Language)))
	buf.WriteString(f.FormatFramework(project.Framework))
	buf.WriteString(fmt.Sprintf("Tests (%d):\n", len(project.Tests)))
	for _, test := range project.Tests {
		for _, line := range strings.Split(strings.TrimRight(f.FormatTest(test), "\n"), "\n") {
			buf.WriteString("  " + line + "\n")
		}
	}

	return buf.String()
}
