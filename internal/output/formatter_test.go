package output

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/NxPKG/BWPlugins/internal/config"
)

func sampleTests() []config.Test {
	return []config.Test{
		{
			Name:           "gemini",
			URLs:           map[string]string{"json": "/json", "plaintext": "/plaintext"},
			Approach:       "Realistic",
			Classification: "Fullstack",
			Platform:       "Servlet",
			Webserver:      "Resin",
			OS:             "Linux",
			Database:       "MySQL",
			Versus:         "servlet",
		},
		{
			Name:           "gemini-postgres",
			URLs:           map[string]string{"db": "/db"},
			Approach:       "Realistic",
			Classification: "Fullstack",
			Platform:       "Servlet",
			Webserver:      "Resin",
			OS:             "Linux",
			Database:       "Postgres",
			Versus:         "servlet",
		},
	}
}

func TestFormatTests_Text(t *testing.T) {
	out, err := FormatTests(sampleTests(), FormatText, true)
	if err != nil {
		t.Fatalf("Error formatting tests: %v", err)
	}

	if !strings.Contains(out, "gemini") {
		t.Errorf("Expected output to contain test name, got:\n%s", out)
	}
	if !strings.Contains(out, "bw.test.gemini-postgres") {
		t.Errorf("Expected output to contain the variant tag, got:\n%s", out)
	}
	if !strings.Contains(out, "json: /json") {
		t.Errorf("Expected output to contain the json route, got:\n%s", out)
	}
}

func TestFormatTests_JSON(t *testing.T) {
	out, err := FormatTests(sampleTests(), FormatJSON, true)
	if err != nil {
		t.Fatalf("Error formatting tests: %v", err)
	}

	var decoded []config.Test
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Expected valid JSON output, got error: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Name != "gemini" {
		t.Errorf("Unexpected decoded tests: %+v", decoded)
	}
}

func TestFormatProject_YAML(t *testing.T) {
	project := &config.Project{
		Name:      "gemini",
		Language:  "Java",
		Framework: config.Framework{Name: "Gemini"},
		Tests:     sampleTests(),
	}

	out, err := FormatProject(project, FormatYAML, true)
	if err != nil {
		t.Fatalf("Error formatting project: %v", err)
	}

	var decoded config.Project
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Expected valid YAML output, got error: %v", err)
	}
	if decoded.Language != "Java" {
		t.Errorf("Expected language Java, got %s", decoded.Language)
	}
	if decoded.Framework.Name != "Gemini" {
		t.Errorf("Expected framework Gemini, got %s", decoded.Framework.Name)
	}
}

func TestParseFormat(t *testing.T) {
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("Expected error for unknown format, got nil")
	}

	format, err := ParseFormat("")
	if err != nil {
		t.Fatalf("Error parsing empty format: %v", err)
	}
	if format != FormatText {
		t.Errorf("Expected empty format to default to text, got %s", format)
	}
}

func TestFormatProject_Text(t *testing.T) {
	project := &config.Project{
		Name:      "gemini",
		Language:  "Java",
		Framework: config.Framework{Name: "Gemini", Authors: []string{"mike@techempower.com"}},
		Tests:     sampleTests(),
	}

	out := NewFormatter(true).FormatProject(project)

	for _, want := range []string{"Project:  gemini", "Language: Java", "Framework: Gemini", "Tests (2):"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}
