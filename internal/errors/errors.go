// Package errors provides domain-specific error types for caesar.
//
// These types carry structured context (offending flag, file path,
// exhausted resource) so the CLI can report every fatal condition with a
// useful diagnostic and pick the right exit status.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrEmptyReference = errors.New("reference table has no non-zero entries")
	ErrInputTooLarge  = errors.New("input too large")
	ErrNoCommand      = errors.New("no command specified")
	ErrUnknownCommand = errors.New("unknown command")
	ErrSameFile       = errors.New("output is the same file as input")
)

// ── Exit codes ───────────────────────────────────────────────────────

const (
	ExitOK     = 0
	ExitFailed = 1 // I/O or resource failure
	ExitUsage  = 2 // configuration error; the operation was not attempted
)

// ── Structured error types ───────────────────────────────────────────

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // flag or setting name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
	Err     error       // underlying cause (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// IOError represents a failure opening, reading, writing or closing one
// of the input/output streams.
type IOError struct {
	Op   string // "open", "read", "write", "close"
	Path string // file path, or <stdin>/<stdout>
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ResourceError reports that a run needed more of some resource than it
// was allowed.  It is never retried.
type ResourceError struct {
	Resource string // e.g. "input"
	Limit    int64  // configured limit, 0 if none
	Err      error
}

func (e *ResourceError) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("%s: %v (limit %d bytes)", e.Resource, e.Err, e.Limit)
	}
	return fmt.Sprintf("%s: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// WrapIO creates an IOError.  A nil err yields nil.
func WrapIO(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// IsConfig reports whether err is, or wraps, a ConfigError.
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsConfig(err):
		return ExitUsage
	default:
		return ExitFailed
	}
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use caesar/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
