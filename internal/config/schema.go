package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/NxPKG/BWPlugins/pkg/schema"
)

// documentSchema describes the shape of a config file: one framework block
// plus any number of test variant blocks. Used by VerifyFile to report every
// problem in one pass, where the typed decode stops at the first.
const documentSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["framework", "main"],
	"properties": {
		"framework": {
			"type": "object",
			"required": ["name"],
			"properties": {
				"name": {"type": "string", "minLength": 1},
				"authors": {"type": "array", "items": {"type": "string"}},
				"github": {"type": "string"}
			},
			"additionalProperties": false
		}
	},
	"additionalProperties": {"$ref": "#/$defs/test"},
	"$defs": {
		"test": {
			"type": "object",
			"required": ["urls", "approach", "classification", "platform", "webserver", "os", "versus"],
			"properties": {
				"urls": {
					"type": "object",
					"minProperties": 1,
					"additionalProperties": {"type": "string"}
				},
				"approach": {"type": "string"},
				"classification": {"type": "string"},
				"orm": {"type": "string"},
				"platform": {"type": "string"},
				"webserver": {"type": "string"},
				"os": {"type": "string"},
				"database": {"type": "string"},
				"database_os": {"type": "string"},
				"versus": {"type": "string"},
				"tags": {"type": "array", "items": {"type": "string"}},
				"dockerfile": {"type": "string"}
			},
			"additionalProperties": false
		}
	}
}`

// VerifyFile lints the config file at path against the document schema,
// collecting every violation instead of stopping at the first. A schema
// failure is reported as *MalformedConfigError wrapping all diagnostics.
func VerifyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var doc map[string]interface{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return &MalformedConfigError{Path: path, Err: err}
	}

	if ok, errs := schema.ValidateDocument(doc, documentSchema); !ok {
		return &MalformedConfigError{Path: path, Err: errs}
	}
	return nil
}
