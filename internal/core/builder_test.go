package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caesar/config"
	cerrors "caesar/internal/errors"
	"caesar/util"
)

// TestBuild_Encode verifies that Build produces an EncodeMode with a
// random source when no shift is given.
func TestBuild_Encode(t *testing.T) {
	cfg := &config.Config{Command: config.CommandEncode, Seed: 1}
	mode, err := Build(cfg, util.NewLogger(0))
	require.NoError(t, err)

	m, ok := mode.(*EncodeMode)
	require.True(t, ok, "expected *EncodeMode, got %T", mode)
	assert.NotNil(t, m.Rand, "random source should be set when shift is unspecified")
}

func TestBuild_EncodeExplicitShift(t *testing.T) {
	cfg := &config.Config{Command: config.CommandEncode, Shift: 3}
	mode, err := Build(cfg, util.NewLogger(0))
	require.NoError(t, err)

	m := mode.(*EncodeMode)
	assert.Equal(t, 3, m.Shift)
	assert.Nil(t, m.Rand)
}

func TestBuild_Decode(t *testing.T) {
	mode, err := Build(&config.Config{Command: config.CommandDecode}, util.NewLogger(0))
	require.NoError(t, err)
	assert.IsType(t, &DecodeMode{}, mode)
}

func TestBuild_Frequency(t *testing.T) {
	mode, err := Build(&config.Config{Command: config.CommandFrequency}, util.NewLogger(0))
	require.NoError(t, err)
	assert.IsType(t, &FrequencyMode{}, mode)
}

// TestBuild_StreamsPropagated verifies stream settings reach the mode.
func TestBuild_StreamsPropagated(t *testing.T) {
	cfg := &config.Config{
		Command:       config.CommandDecode,
		InputPath:     "in.txt",
		OutputPath:    "out.txt",
		MaxInputBytes: 512,
	}
	mode, err := Build(cfg, util.NewLogger(0))
	require.NoError(t, err)

	m := mode.(*DecodeMode)
	assert.Equal(t, "in.txt", m.InputPath)
	assert.Equal(t, "out.txt", m.OutputPath)
	assert.Equal(t, int64(512), m.MaxInputBytes)
}

func TestBuild_CustomReference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.toml")
	require.NoError(t, os.WriteFile(path, []byte("A = 1\nB = 3\n"), 0o644))

	cfg := &config.Config{Command: config.CommandFrequency, ReferencePath: path}
	mode, err := Build(cfg, util.NewLogger(0))
	require.NoError(t, err)

	ref := mode.(*FrequencyMode).Reference
	assert.Equal(t, 0.75, ref[1], "B")
}

// TestBuild_BadReference verifies reference problems are reported
// before any stream is opened.
func TestBuild_BadReference(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty table", `{"A": 0}`},
		{"not json", `A=1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ref.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Build(&config.Config{Command: config.CommandDecode, ReferencePath: path}, util.NewLogger(0))
			require.Error(t, err)
			assert.True(t, cerrors.IsConfig(err), "expected ConfigError, got %v", err)
		})
	}

	_, err := Build(&config.Config{
		Command:       config.CommandDecode,
		ReferencePath: filepath.Join(t.TempDir(), "missing.json"),
	}, util.NewLogger(0))
	var ioErr *cerrors.IOError
	assert.ErrorAs(t, err, &ioErr, "missing reference should be an IOError")
}

func TestBuild_UnknownCommand(t *testing.T) {
	_, err := Build(&config.Config{Command: "rot13"}, util.NewLogger(0))
	assert.ErrorIs(t, err, cerrors.ErrUnknownCommand)
}

// TestBuild_IgnoredSettingsWarn verifies settings that do not apply to
// the command are reported, and only at normal verbosity or above.
func TestBuild_IgnoredSettingsWarn(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			"shift on decode",
			config.Config{Command: config.CommandDecode, Shift: 4},
			"[WRN] shift value ignored for decode, trying all possible shift values\n",
		},
		{
			"shift on frequency",
			config.Config{Command: config.CommandFrequency, Shift: 4},
			"[WRN] shift value ignored for frequency, trying all possible shift values\n",
		},
		{
			"reference on encode",
			config.Config{Command: config.CommandEncode, Shift: 4, ReferencePath: "english.json"},
			"[WRN] reference table ignored for encoding\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log bytes.Buffer
			_, err := Build(&tt.cfg, quietLogger(&log, 1))
			require.NoError(t, err)
			assert.Equal(t, tt.want, log.String())

			log.Reset()
			_, err = Build(&tt.cfg, quietLogger(&log, 0))
			require.NoError(t, err)
			assert.Empty(t, log.String(), "-q must silence warnings")
		})
	}
}

func TestBuild_NoWarningsWhenSettingsApply(t *testing.T) {
	var log bytes.Buffer
	_, err := Build(&config.Config{Command: config.CommandEncode, Shift: 4}, quietLogger(&log, 1))
	require.NoError(t, err)
	_, err = Build(&config.Config{Command: config.CommandDecode}, quietLogger(&log, 1))
	require.NoError(t, err)
	assert.Empty(t, log.String())
}
