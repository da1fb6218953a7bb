package entities

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPlatform is wrapped by MissingCapabilityError when a
// capability only exists on another operating system.
var ErrUnsupportedPlatform = errors.New("not supported on this platform")

// ClassificationError means no extractor matches a path. Err is set when
// the path could not be stat-ed.
type ClassificationError struct {
	Path string
	Err  error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("unable to process file: `%s`", e.Path)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// ParseError means the content of a source is malformed or could not be
// decoded by its collaborator (plist decoder, SQL driver, JSON decoder).
type ParseError struct {
	Path   string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s `%s`: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError means a file or directory could not be read, copied or walked.
type IOError struct {
	Path string
	Op   string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s `%s`: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// MissingCapabilityError means an optional collaborator is unavailable.
type MissingCapabilityError struct {
	Capability Capability
	Path       string
	Err        error
}

func (e *MissingCapabilityError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("missing capability %q: %v", e.Capability, e.Err)
	}
	return fmt.Sprintf("cannot process `%s`: missing capability %q: %v", e.Path, e.Capability, e.Err)
}

func (e *MissingCapabilityError) Unwrap() error {
	return e.Err
}

// ConfigError means a configuration value is not recognized.
type ConfigError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Key, e.Value, e.Reason)
}
