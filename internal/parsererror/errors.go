// Package parsererror defines the typed error values used across the
// pipeline. Per-record errors are absorbed into aggregate counts by their
// stage; only input-file errors abort a run.
package parsererror

import "fmt"

// ParseError represents a line that could not be turned into a transaction.
// It is counted and skipped, never fatal.
type ParseError struct {
	Line   int // Zero-based index within the data lines (header excluded)
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("line %d: failed to parse %s='%s': %s", e.Line, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a transaction rejected by a validation rule.
type ValidationError struct {
	TransactionID string
	Rule          string
	Reason        string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("validation failed for %s (%s): %s", e.TransactionID, e.Rule, e.Reason)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.TransactionID, e.Rule)
}

// FetchError represents a failed catalog fetch. The caller degrades to an
// empty catalog rather than propagating it.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("catalog fetch from %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("catalog fetch from %s failed: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// InputFileError is the single fatal error class: the transaction file
// cannot be located or decoded under any supported encoding. No partial
// output is written when it occurs.
type InputFileError struct {
	Path string
	Err  error
}

func (e *InputFileError) Error() string {
	return fmt.Sprintf("cannot read sales data file '%s': %v (verify the file exists at the expected location)", e.Path, e.Err)
}

func (e *InputFileError) Unwrap() error {
	return e.Err
}
