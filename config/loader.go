package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"

	cerrors "caesar/internal/errors"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the CAESAR_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  Call it BEFORE registering CLI
// flags so the flags' defaults carry the env values and flags still win.
// A malformed number is a configuration error, not silently ignored.
func LoadFromEnv(cfg *Config) error {
	if v, ok, err := envInt("SHIFT", "shift"); err != nil {
		return err
	} else if ok {
		cfg.Shift = int(v)
	}
	if v := os.Getenv(EnvPrefix + "REFERENCE"); v != "" {
		cfg.ReferencePath = v
	}
	if v := os.Getenv(EnvPrefix + "SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return envError("SEED", "seed", v)
		}
		cfg.Seed = seed
	}
	if v, ok, err := envInt("MAX_INPUT", "max-input"); err != nil {
		return err
	} else if ok {
		cfg.MaxInputBytes = v
	}

	// Output
	if v, ok, err := envInt("VERBOSE", "verbose"); err != nil {
		return err
	} else if ok {
		cfg.Verbose = int(v)
	}
	if envBool("QUIET") {
		cfg.Quiet = true
	}
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key, field string) (int64, bool, error) {
	v := os.Getenv(EnvPrefix + key)
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, false, envError(key, field, v)
	}
	return n, true, nil
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(EnvPrefix + key))
	return v == "1" || v == "true" || v == "yes"
}

func envError(key, field, value string) error {
	return &cerrors.ConfigError{
		Field:   field,
		Value:   value,
		Message: "invalid " + EnvPrefix + key + ": not a decimal number",
		Hint:    "unset " + EnvPrefix + key + " or give it a number",
	}
}
