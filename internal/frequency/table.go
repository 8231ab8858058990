package frequency

import (
	"fmt"
	"io"
	"math"
	"strings"

	"caesar/internal/cipher"
	cerrors "caesar/internal/errors"
)

// Table maps each canonical letter (index 0 = 'A') to a fraction.
type Table [cipher.AlphabetLen]float64

// Letter returns the canonical upper-case letter for index i.
func Letter(i int) byte { return cipher.CharAt(i, cipher.Upper) }

// Sum returns the total of all fractions.
func (t Table) Sum() float64 {
	var s float64
	for _, v := range t {
		s += v
	}
	return s
}

// Normalize scales t so its entries sum to 1.  Entries must be finite and
// non-negative; an all-zero table yields ErrEmptyReference.
func Normalize(t Table) (Table, error) {
	for i, v := range t {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Table{}, fmt.Errorf("letter %c: frequency %g is not a finite number", Letter(i), v)
		}
		if v < 0 {
			return Table{}, fmt.Errorf("letter %c: negative frequency %g", Letter(i), v)
		}
	}
	sum := t.Sum()
	if sum == 0 {
		return Table{}, cerrors.ErrEmptyReference
	}
	if math.IsInf(sum, 0) {
		return Table{}, fmt.Errorf("frequencies overflow when summed")
	}
	var out Table
	for i, v := range t {
		out[i] = v / sum
	}
	return out, nil
}

// String renders t as a JSON object with one letter per line, keys in
// A..Z order and six fractional digits.
func (t Table) String() string {
	var b strings.Builder
	b.Grow(cipher.AlphabetLen * 16)
	b.WriteString("{\n")
	for i, v := range t {
		fmt.Fprintf(&b, "  \"%c\": %.6f", Letter(i), v)
		if i < len(t)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.String()
}

// WriteTo writes the String form of t to w.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}
