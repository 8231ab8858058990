package frequency

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "caesar/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatForPath("ref.toml"))
	assert.Equal(t, FormatTOML, FormatForPath("REF.TOML"))
	assert.Equal(t, FormatKDL, FormatForPath("/etc/ref.kdl"))
	assert.Equal(t, FormatJSON, FormatForPath("ref.json"))
	assert.Equal(t, FormatJSON, FormatForPath("ref"))
}

func TestLoadReference_JSONRoundTrip(t *testing.T) {
	path := writeFile(t, "english.json", English().String())
	got, err := LoadReference(path)
	require.NoError(t, err)
	en := English()
	for i := range en {
		assert.InDelta(t, en[i], got[i], 1e-5, "letter %c", Letter(i))
	}
}

func TestLoadReference_TOML(t *testing.T) {
	path := writeFile(t, "ref.toml", "E = 3\nt = 1.0\n")
	got, err := LoadReference(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, at(got, 'E'), 1e-12)
	assert.InDelta(t, 0.25, at(got, 'T'), 1e-12)
	assert.Zero(t, at(got, 'A'))
}

func TestLoadReference_KDL(t *testing.T) {
	path := writeFile(t, "ref.kdl", "reference {\n    E 12.5\n    T 37.5\n}\nA 50.0\n")
	got, err := LoadReference(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.125, at(got, 'E'), 1e-12)
	assert.InDelta(t, 0.375, at(got, 'T'), 1e-12)
	assert.InDelta(t, 0.5, at(got, 'A'), 1e-12)
}

func TestLoadReference_Missing(t *testing.T) {
	_, err := LoadReference(filepath.Join(t.TempDir(), "nope.json"))
	var ioErr *cerrors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseReference_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		f    Format
		is   error
	}{
		{"not json", "{", FormatJSON, nil},
		{"multi-letter key", `{"AB": 1}`, FormatJSON, nil},
		{"non-letter key", `{"1": 1}`, FormatJSON, nil},
		{"string value", `{"A": "x"}`, FormatJSON, nil},
		{"negative", `{"A": -1, "B": 2}`, FormatJSON, nil},
		{"duplicate across case", `{"A": 1, "a": 2}`, FormatJSON, nil},
		{"all zero", `{"A": 0}`, FormatJSON, cerrors.ErrEmptyReference},
		{"empty object", `{}`, FormatJSON, cerrors.ErrEmptyReference},
		{"bad toml", "E = = 3", FormatTOML, nil},
		{"kdl without value", "E\n", FormatKDL, nil},
		{"toml nan", "E = nan\nT = 1\n", FormatTOML, nil},
		{"toml inf", "E = inf\nT = 1\n", FormatTOML, nil},
		{"toml negative inf", "E = -inf\nT = 1\n", FormatTOML, nil},
		{"json overflowing sum", `{"A": 1e308, "B": 1e308}`, FormatJSON, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReference([]byte(tt.data), tt.f)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestLoadReference_InvalidIsConfigError(t *testing.T) {
	path := writeFile(t, "bad.json", `{"A": 0}`)
	_, err := LoadReference(path)
	assert.True(t, cerrors.IsConfig(err))
	assert.ErrorIs(t, err, cerrors.ErrEmptyReference)
}
