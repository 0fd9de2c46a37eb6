package config

import "fmt"

// MalformedConfigError reports a config file that could not be deserialized
// into the expected shape: invalid TOML, a wrong-typed field, or a missing
// required field. The underlying diagnostic is preserved for the operator.
type MalformedConfigError struct {
	Path string
	Err  error
}

func (e *MalformedConfigError) Error() string {
	return fmt.Sprintf("malformed config file %s: %v", e.Path, e.Err)
}

func (e *MalformedConfigError) Unwrap() error {
	return e.Err
}

// LanguageNotFoundError reports that no ancestor directory of a config file
// matched the framework name during language resolution.
type LanguageNotFoundError struct {
	Framework string
	Path      string
}

func (e *LanguageNotFoundError) Error() string {
	return fmt.Sprintf("no language directory found for framework %q above %s", e.Framework, e.Path)
}
