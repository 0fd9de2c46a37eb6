// Package schema validates decoded configuration documents against a JSON
// Schema, independent of the format the document was authored in.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationErrors represents a collection of validation errors
type ValidationErrors []error

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, err := range ve {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// ValidateDocument validates an already-decoded document (maps, slices, and
// scalars, whatever the source format) against a JSON Schema. Returns true
// when the document conforms, otherwise false plus every violation found.
func ValidateDocument(doc interface{}, schemaStr string) (bool, ValidationErrors) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schemaStr)); err != nil {
		return false, ValidationErrors{fmt.Errorf("invalid schema: %w", err)}
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return false, ValidationErrors{fmt.Errorf("invalid schema: %w", err)}
	}

	// Round-trip through JSON so the validator sees the value kinds it
	// expects, regardless of what the source decoder produced.
	normalized, err := normalize(doc)
	if err != nil {
		return false, ValidationErrors{err}
	}

	if err := schema.Validate(normalized); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return false, extractValidationErrors(validationErr)
		}
		return false, ValidationErrors{err}
	}

	return true, nil
}

func normalize(doc interface{}) (interface{}, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("document not representable as JSON: %w", err)
	}
	var normalized interface{}
	if err := json.Unmarshal(data, &normalized); err != nil {
		return nil, fmt.Errorf("document not representable as JSON: %w", err)
	}
	return normalized, nil
}

// extractValidationErrors extracts all validation errors from a jsonschema.ValidationError
func extractValidationErrors(err *jsonschema.ValidationError) ValidationErrors {
	var errors ValidationErrors

	if err.Message != "" {
		errors = append(errors, fmt.Errorf("validation error at %s: %s", err.InstanceLocation, err.Message))
	}

	for _, childErr := range err.Causes {
		errors = append(errors, extractValidationErrors(childErr)...)
	}

	return errors
}
