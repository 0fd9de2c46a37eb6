package config

import (
	"path/filepath"
	"testing"

	"github.com/NxPKG/BWPlugins/internal/bwdir"
)

func TestTestTag(t *testing.T) {
	test := Test{Name: "gemini"}
	if got := test.Tag(); got != "bw.test.gemini" {
		t.Errorf("Expected tag bw.test.gemini, got %s", got)
	}
}

func TestFilterURLs(t *testing.T) {
	test := Test{URLs: map[string]string{"json": "/json", "plaintext": "/plaintext"}}

	test.FilterURLs("json")

	if len(test.URLs) != 1 {
		t.Fatalf("Expected 1 url after filtering, got %d", len(test.URLs))
	}
	if test.URLs["json"] != "/json" {
		t.Errorf("Expected json url to survive filtering, got %v", test.URLs)
	}
}

func TestFilterURLs_NoSelector(t *testing.T) {
	test := Test{URLs: map[string]string{"json": "/json", "plaintext": "/plaintext"}}

	test.FilterURLs("")

	if len(test.URLs) != 2 {
		t.Errorf("Expected both urls to survive with no selector, got %v", test.URLs)
	}
}

func TestFrameworkSlug(t *testing.T) {
	fw := Framework{Name: "ASP.NET"}
	if got := fw.Slug(); got != "asp.net" {
		t.Errorf("Expected slug asp.net, got %s", got)
	}
}

func TestProjectPath(t *testing.T) {
	root := t.TempDir()
	t.Setenv(bwdir.EnvRoot, root)

	project := &Project{
		Name:      "gemini",
		Language:  "Java",
		Framework: Framework{Name: "Gemini"},
	}

	path, err := project.Path()
	if err != nil {
		t.Fatalf("Error building project path: %v", err)
	}

	want := filepath.Join(root, "frameworks", "Java", "gemini")
	if path != want {
		t.Errorf("Expected path %s, got %s", want, path)
	}
}
