package frequency

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"caesar/internal/cipher"
	cerrors "caesar/internal/errors"
)

// Format is the encoding of a reference table file.
type Format int

const (
	FormatJSON Format = iota
	FormatTOML
	FormatKDL
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatKDL:
		return "kdl"
	default:
		return "json"
	}
}

// FormatForPath picks a Format from the file extension.  Anything that is
// not .toml or .kdl is read as JSON, which is also what the frequency
// command prints.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".kdl":
		return FormatKDL
	default:
		return FormatJSON
	}
}

// LoadReference reads a reference table from path and normalises it.
func LoadReference(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, &cerrors.IOError{Op: "read", Path: path, Err: err}
	}
	t, err := ParseReference(data, FormatForPath(path))
	if err != nil {
		return Table{}, &cerrors.ConfigError{
			Field:   "reference",
			Value:   path,
			Message: err.Error(),
			Hint:    "expected one entry per letter A-Z, e.g. \"E\": 0.127",
			Err:     err,
		}
	}
	return t, nil
}

// ParseReference decodes data as f.  Letter keys are case-insensitive,
// missing letters count as zero and the result is normalised to sum 1,
// so raw counts and percentages are both accepted.
func ParseReference(data []byte, f Format) (Table, error) {
	var (
		entries map[string]any
		err     error
	)
	switch f {
	case FormatTOML:
		err = toml.Unmarshal(data, &entries)
	case FormatKDL:
		entries, err = parseKDL(data)
	default:
		err = json.Unmarshal(data, &entries)
	}
	if err != nil {
		return Table{}, fmt.Errorf("parse %s: %w", f, err)
	}
	return tableFromEntries(entries)
}

func tableFromEntries(entries map[string]any) (Table, error) {
	var (
		t    Table
		seen [cipher.AlphabetLen]bool
	)
	for key, raw := range entries {
		k := strings.TrimSpace(key)
		if len(k) != 1 {
			return Table{}, fmt.Errorf("key %q is not a single letter", key)
		}
		pos, _, ok := cipher.IndexOf(k[0])
		if !ok {
			return Table{}, fmt.Errorf("key %q is not a letter", key)
		}
		if seen[pos] {
			return Table{}, fmt.Errorf("letter %c given more than once", Letter(pos))
		}
		seen[pos] = true

		v, ok := toFloat(raw)
		if !ok {
			return Table{}, fmt.Errorf("letter %c: value %v is not a number", Letter(pos), raw)
		}
		t[pos] = v
	}
	return Normalize(t)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// parseKDL accepts one node per letter, either at the top level or
// nested inside a block:
//
//	reference {
//	    E 12.702
//	    T 9.056
//	}
func parseKDL(data []byte) (map[string]any, error) {
	doc, err := kdl.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	out := make(map[string]any)
	if err := collectKDL(doc.Nodes, out); err != nil {
		return nil, err
	}
	return out, nil
}

func collectKDL(nodes []*document.Node, out map[string]any) error {
	for _, n := range nodes {
		if n == nil || n.Name == nil {
			continue
		}
		if len(n.Children) > 0 {
			if err := collectKDL(n.Children, out); err != nil {
				return err
			}
			continue
		}
		name := n.Name.NodeNameString()
		if len(n.Arguments) == 0 {
			return fmt.Errorf("node %q has no value", name)
		}
		if _, dup := out[name]; dup {
			return fmt.Errorf("letter %s given more than once", name)
		}
		out[name] = n.Arguments[0].Value
	}
	return nil
}
