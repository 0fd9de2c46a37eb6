package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// document is the fixed shape every config file must satisfy: one framework
// block and one main test variant. Missing blocks surface through the
// required tags on the nested fields.
type document struct {
	Framework Framework `toml:"framework"`
	Main      Test      `toml:"main"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseFramework reads and deserializes the config file at path and returns
// its framework block. Returns *MalformedConfigError if the document does
// not fit the expected shape.
func ParseFramework(path string) (Framework, error) {
	doc, err := parseDocument(path)
	if err != nil {
		return Framework{}, err
	}
	return doc.Framework, nil
}

// ParseTests reads the config file at path and returns one Test per
// top-level block other than "framework", each validated independently.
//
// Names are always derived: the "main" block is named after the framework
// slug, every other block is named "<slug>-<key>". Any block that fails to
// deserialize or validate as a Test aborts the whole call with
// *MalformedConfigError.
//
// TOML tables carry no document order once decoded, so the returned list
// has a canonical order instead: "main" first, remaining keys sorted.
func ParseTests(path string) ([]Test, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	doc, err := parseDocument(path)
	if err != nil {
		return nil, err
	}

	var table map[string]interface{}
	if err := toml.Unmarshal(data, &table); err != nil {
		return nil, &MalformedConfigError{Path: path, Err: err}
	}

	keys := make([]string, 0, len(table))
	for key := range table {
		if key != "framework" && key != "main" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if _, ok := table["main"]; ok {
		keys = append([]string{"main"}, keys...)
	}

	tests := make([]Test, 0, len(keys))
	for _, key := range keys {
		raw, err := toml.Marshal(table[key])
		if err != nil {
			return nil, &MalformedConfigError{Path: path, Err: err}
		}

		var test Test
		if err := toml.Unmarshal(raw, &test); err != nil {
			return nil, &MalformedConfigError{Path: path, Err: fmt.Errorf("block %q: %w", key, err)}
		}
		if err := validate.Struct(test); err != nil {
			return nil, &MalformedConfigError{Path: path, Err: fmt.Errorf("block %q: %w", key, err)}
		}

		name := doc.Framework.Slug()
		if key != "main" {
			name += "-" + key
		}
		test.Name = name
		tests = append(tests, test)
	}

	return tests, nil
}

// ProjectName returns the name of the directory containing the config file.
func ProjectName(path string) (string, error) {
	name := filepath.Base(filepath.Dir(path))
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("config path %s has no parent directory name", path)
	}
	return name, nil
}

// ResolveLanguage walks the config file's ancestor directories from leaf to
// root; when a directory matches the framework name case-insensitively, the
// name of the directory immediately above it is the language. The canonical
// layout is frameworks/<language>/<framework>/config.toml.
func ResolveLanguage(fw Framework, path string) (string, error) {
	want := fw.Slug()
	for cur := path; ; {
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		if strings.ToLower(filepath.Base(cur)) == want {
			language := filepath.Base(parent)
			if language == "." || language == string(filepath.Separator) {
				break
			}
			return language, nil
		}
		cur = parent
	}
	return "", &LanguageNotFoundError{Framework: want, Path: path}
}

// LoadProject assembles the full Project for a config file: framework block,
// derived tests, project name, and resolved language.
func LoadProject(path string) (*Project, error) {
	fw, err := ParseFramework(path)
	if err != nil {
		return nil, err
	}
	tests, err := ParseTests(path)
	if err != nil {
		return nil, err
	}
	name, err := ProjectName(path)
	if err != nil {
		return nil, err
	}
	language, err := ResolveLanguage(fw, path)
	if err != nil {
		return nil, err
	}

	return &Project{
		Name:      name,
		Language:  language,
		Framework: fw,
		Tests:     tests,
	}, nil
}

func parseDocument(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedConfigError{Path: path, Err: err}
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, &MalformedConfigError{Path: path, Err: err}
	}

	return &doc, nil
}
