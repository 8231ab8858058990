package config

import "caesar/internal/cipher"

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// MinShift and MaxShift bound an explicit --shift.
	MinShift = cipher.MinShift
	MaxShift = cipher.MaxShift

	// DefaultMaxInputBytes caps how much input is buffered (64 MiB).
	DefaultMaxInputBytes int64 = 64 << 20

	// DefaultVerbosity shows warnings and progress messages.
	DefaultVerbosity = 1

	// EnvPrefix is the prefix of every supported environment variable.
	EnvPrefix = "CAESAR_"
)
