package config

import (
	"path/filepath"
	"strings"

	"github.com/NxPKG/BWPlugins/internal/bwdir"
)

// Framework is the metadata block shared by every test implementation in a
// config file. Identity is the lowercased name.
type Framework struct {
	Name    string   `toml:"name" json:"name" yaml:"name" validate:"required"`
	Authors []string `toml:"authors" json:"authors,omitempty" yaml:"authors,omitempty"`
	GitHub  string   `toml:"github" json:"github,omitempty" yaml:"github,omitempty"`
}

// Slug returns the framework's canonical lowercase identity, used for
// directory names and derived test names.
func (f Framework) Slug() string {
	return strings.ToLower(f.Name)
}

// Test is one named variant of a framework's benchmark setup.
//
// Name is always derived by the loader (framework slug for the main block,
// slug-key for every other block); a name field in the document is ignored.
type Test struct {
	Name           string            `toml:"-" json:"name" yaml:"name"`
	URLs           map[string]string `toml:"urls" json:"urls" yaml:"urls" validate:"required,min=1"`
	Approach       string            `toml:"approach" json:"approach" yaml:"approach" validate:"required"`
	Classification string            `toml:"classification" json:"classification" yaml:"classification" validate:"required"`
	ORM            string            `toml:"orm" json:"orm,omitempty" yaml:"orm,omitempty"`
	Platform       string            `toml:"platform" json:"platform" yaml:"platform" validate:"required"`
	Webserver      string            `toml:"webserver" json:"webserver" yaml:"webserver" validate:"required"`
	OS             string            `toml:"os" json:"os" yaml:"os" validate:"required"`
	Database       string            `toml:"database" json:"database,omitempty" yaml:"database,omitempty"`
	DatabaseOS     string            `toml:"database_os" json:"databaseOs,omitempty" yaml:"databaseOs,omitempty"`
	Versus         string            `toml:"versus" json:"versus" yaml:"versus" validate:"required"`
	Tags           []string          `toml:"tags" json:"tags,omitempty" yaml:"tags,omitempty"`
	Dockerfile     string            `toml:"dockerfile" json:"dockerfile,omitempty" yaml:"dockerfile,omitempty"`
}

// Tag returns the external labeling key for the test, used by the
// orchestrator to tag containers and processes.
func (t Test) Tag() string {
	return "bw.test." + t.Name
}

// FilterURLs narrows the test's URL mapping to the single entry matching
// selector. An empty selector leaves the mapping untouched.
func (t *Test) FilterURLs(selector string) {
	if selector == "" {
		return
	}
	for key := range t.URLs {
		if key != selector {
			delete(t.URLs, key)
		}
	}
}

// Project is the unit of data the toolset operates on: a language, a
// framework, and the framework's test variants, corresponding to one
// directory on disk.
type Project struct {
	Name      string    `json:"name" yaml:"name"`
	Language  string    `json:"language" yaml:"language"`
	Framework Framework `json:"framework" yaml:"framework"`
	Tests     []Test    `json:"tests" yaml:"tests"`
}

// Path reconstructs the on-disk directory of the project under the suite
// root: <root>/frameworks/<language>/<framework slug>.
func (p *Project) Path() (string, error) {
	root, err := bwdir.Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "frameworks", p.Language, p.Framework.Slug()), nil
}
