// Package model defines the domain types for the acronymcreator CLI.
//
// These types are used throughout the application for passing
// configuration between the CLI layer and the acronym engine. All
// fields are treated as immutable for the duration of one invocation.
package model

import (
	"fmt"
	"strings"
)

// Mode represents the letter-extraction strategy used when building
// an acronym from a phrase.
type Mode string

const (
	// ModeFirstLetter takes the first alphabetic character of each
	// retained word. This is the default strategy.
	ModeFirstLetter Mode = "first-letter"

	// ModeSyllable takes the leading syllable fragment of each retained
	// word (up to three characters), producing pronounceable acronyms
	// like "PYPRLAN" for "Python Programming Language".
	ModeSyllable Mode = "syllable"
)

// String returns the string representation of Mode.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI help text and JSON serialization.
func (m Mode) String() string {
	return string(m)
}

// IsValid checks whether the Mode value is one of the predefined
// extraction strategies.
func (m Mode) IsValid() bool {
	switch m {
	case ModeFirstLetter, ModeSyllable:
		return true
	default:
		return false
	}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string does not match any valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(s))
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid mode: %q (valid: first-letter, syllable)", s)
	}
	return mode, nil
}

// Options holds the configuration for a single acronym generation.
// Fields are immutable per invocation — the engine never modifies them.
type Options struct {
	// IncludeArticles controls stop-word filtering. When false (the
	// default), common short words ("the", "a", "of", ...) are excluded
	// from acronym formation.
	IncludeArticles bool `json:"includeArticles"`

	// Lowercase controls output casing. When true the acronym is
	// lowercased; otherwise it is uppercased.
	Lowercase bool `json:"lowercase"`

	// Mode selects the extraction strategy. Defaults to ModeFirstLetter.
	Mode Mode `json:"mode"`

	// MinWordLength drops words shorter than this many characters after
	// stop-word filtering. 1 keeps every word.
	MinWordLength int `json:"minWordLength"`

	// MaxWords caps how many words contribute to the acronym, applied
	// after all filters while preserving word order. 0 means unlimited.
	MaxWords int `json:"maxWords"`
}

// DefaultOptions returns the default configuration: exclude articles,
// uppercase output, first-letter extraction, no length or count limits.
func DefaultOptions() Options {
	return Options{
		IncludeArticles: false,
		Lowercase:       false,
		Mode:            ModeFirstLetter,
		MinWordLength:   1,
		MaxWords:        0,
	}
}

// Validate checks whether the Options field values are well-formed.
// An unrecognized Mode is a configuration error — the engine fails
// fast on it before any phrase processing.
func (o Options) Validate() error {
	if !o.Mode.IsValid() {
		return fmt.Errorf("invalid mode: %q (valid: first-letter, syllable)", string(o.Mode))
	}
	if o.MinWordLength < 1 {
		return fmt.Errorf("min word length must be at least 1, got %d", o.MinWordLength)
	}
	if o.MaxWords < 0 {
		return fmt.Errorf("max words must not be negative, got %d", o.MaxWords)
	}
	return nil
}

// ExitCode defines standard CLI exit codes. These codes allow scripts
// and CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidOptions indicates a flag carried an unrecognized or
	// out-of-range value (e.g., an unknown --mode).
	ExitInvalidOptions ExitCode = 2

	// ExitConfigError indicates the configuration file could not be
	// read or parsed.
	ExitConfigError ExitCode = 3

	// ExitNoAcronym indicates the phrase produced an empty acronym
	// (empty input, or every word was filtered out).
	ExitNoAcronym ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError wrapping an underlying error.
// The underlying error is preserved for errors.Is/errors.As inspection.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
