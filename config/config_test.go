package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "caesar/internal/errors"
)

// ── ParseCommand ─────────────────────────────────────────────────────

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input   string
		want    Command
		wantErr bool
	}{
		{"encode", CommandEncode, false},
		{"decode", CommandDecode, false},
		{"frequency", CommandFrequency, false},
		{"Encode", "", true},
		{"encrypt", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_UnknownHasHint(t *testing.T) {
	_, err := ParseCommand("rot13")
	require.ErrorIs(t, err, cerrors.ErrUnknownCommand)
	assert.Contains(t, err.Error(), "caesar --help")
}

// ── Config.Validate ──────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"encode random shift", Config{Command: CommandEncode}, false},
		{"encode min shift", Config{Command: CommandEncode, Shift: 1}, false},
		{"encode max shift", Config{Command: CommandEncode, Shift: 25}, false},
		{"decode", Config{Command: CommandDecode, ReferencePath: "ref.json"}, false},
		{"frequency", Config{Command: CommandFrequency}, false},
		{"no command", Config{}, true},
		{"unknown command", Config{Command: "rotate"}, true},
		{"shift too large", Config{Command: CommandEncode, Shift: 26}, true},
		{"negative shift", Config{Command: CommandEncode, Shift: -1}, true},
		{"negative max input", Config{Command: CommandEncode, MaxInputBytes: -1}, true},
		{"unlimited input", Config{Command: CommandEncode, MaxInputBytes: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, cerrors.IsConfig(err), "expected ConfigError, got %T", err)
		})
	}
}

// TestValidate_ErrorMessages verifies that Validate returns actionable
// error messages with hints.
func TestValidate_ErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantSub string
	}{
		{"no command", Config{}, "no command specified"},
		{"no command hint", Config{}, "hint: use one of: encode, decode, frequency"},
		{"shift range", Config{Command: CommandEncode, Shift: 30}, "--shift=30: must be in range 1 .. 25"},
		{"shift hint", Config{Command: CommandEncode, Shift: 30}, "hint:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantSub)
		})
	}
}

func TestShiftSpecified(t *testing.T) {
	assert.False(t, (&Config{}).ShiftSpecified(), "zero shift is unspecified")
	assert.True(t, (&Config{Shift: 3}).ShiftSpecified())
}

func TestVerbosity(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultVerbosity, cfg.Verbosity())

	cfg.Verbose = 3
	cfg.Quiet = true
	assert.Equal(t, 0, cfg.Verbosity(), "quiet wins over -v")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, int64(DefaultMaxInputBytes), cfg.MaxInputBytes)
	assert.Zero(t, cfg.Shift)
	assert.Empty(t, cfg.Command)
}
