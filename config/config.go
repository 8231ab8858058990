// Package config defines the runtime configuration for a single caesar
// invocation and the rules that make it valid.
package config

import (
	"fmt"
	"strings"

	"caesar/internal/cipher"
	cerrors "caesar/internal/errors"
)

// Command is the operation a run performs.  Exactly one is chosen per
// invocation and it never changes afterwards.
type Command string

const (
	CommandEncode    Command = "encode"
	CommandDecode    Command = "decode"
	CommandFrequency Command = "frequency"
)

// Commands lists every supported command in help order.
var Commands = []Command{CommandEncode, CommandDecode, CommandFrequency} //nolint:gochecknoglobals

// ParseCommand maps a positional argument to a Command.
func ParseCommand(s string) (Command, error) {
	for _, c := range Commands {
		if s == string(c) {
			return c, nil
		}
	}
	return "", &cerrors.ConfigError{
		Field:   "command",
		Value:   s,
		Message: fmt.Sprintf("'%s' is not a caesar command", s),
		Hint:    "use one of: " + commandList() + " (see 'caesar --help')",
		Err:     cerrors.ErrUnknownCommand,
	}
}

func commandList() string {
	names := make([]string, len(Commands))
	for i, c := range Commands {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// Config holds every tuneable for a single run.  It is built once by the
// CLI and passed down by pointer; nothing else holds run state.
type Config struct {
	// ── Operation ────────────────────────────────────────────────────
	Command       Command
	Shift         int    // 0 = unspecified: random for encode, searched otherwise
	ReferencePath string // custom reference table; built-in English if empty
	Seed          uint64 // random-shift seed; 0 = seed from crypto/rand

	// ── Streams ──────────────────────────────────────────────────────
	InputPath     string   // empty = stdin
	OutputPath    string   // empty = stdout
	ExtraArgs     []string // positional arguments past the output path
	MaxInputBytes int64    // 0 = unlimited

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
	Quiet   bool
}

// Default returns a Config populated from defaults.go.
func Default() *Config {
	return &Config{
		MaxInputBytes: DefaultMaxInputBytes,
		Verbose:       DefaultVerbosity,
	}
}

// Verbosity is the effective log level after --quiet.
func (c *Config) Verbosity() int {
	if c.Quiet {
		return 0
	}
	return c.Verbose
}

// ShiftSpecified reports whether the user gave a usable shift.  An
// explicit 0 counts as unspecified.
func (c *Config) ShiftSpecified() bool { return c.Shift != 0 }

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Command == "" {
		return &cerrors.ConfigError{
			Field:   "command",
			Message: "no command specified",
			Hint:    "use one of: " + commandList(),
			Err:     cerrors.ErrNoCommand,
		}
	}
	if _, err := ParseCommand(string(c.Command)); err != nil {
		return err
	}

	if c.ShiftSpecified() && !cipher.ValidShift(c.Shift) {
		return &cerrors.ConfigError{
			Field:   "shift",
			Value:   c.Shift,
			Message: fmt.Sprintf("must be in range %d .. %d", MinShift, MaxShift),
			Hint:    "omit --shift to let encode pick a random shift",
		}
	}

	if c.MaxInputBytes < 0 {
		return &cerrors.ConfigError{
			Field:   "max-input",
			Value:   c.MaxInputBytes,
			Message: "must not be negative",
			Hint:    "use 0 to disable the limit",
		}
	}

	return nil
}
