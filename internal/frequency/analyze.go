package frequency

import "caesar/internal/cipher"

// Counts is the raw letter histogram behind a Table.
type Counts struct {
	Letters [cipher.AlphabetLen]int
	Total   int // letters seen; non-letters never count
}

// Count tallies the letters of text as they would read after decoding
// with shift.  Case is folded onto the canonical slots.
func Count(text []byte, shift int) Counts {
	var c Counts
	back := cipher.Complement(shift)
	for _, ch := range text {
		pos, _, ok := cipher.IndexOf(ch)
		if !ok {
			continue
		}
		c.Letters[cipher.Shift(pos, back)]++
		c.Total++
	}
	return c
}

// Shifted returns the counts that Count would produce for the same text
// with shift added to the hypothesis already applied to c.
func (c Counts) Shifted(shift int) Counts {
	out := Counts{Total: c.Total}
	for pos, n := range c.Letters {
		out.Letters[cipher.Shift(pos, -shift)] = n
	}
	return out
}

// Table converts c to fractions.  With no letters the result is the
// all-zero table.
func (c Counts) Table() Table {
	var t Table
	if c.Total == 0 {
		return t
	}
	total := float64(c.Total)
	for i, n := range c.Letters {
		t[i] = float64(n) / total
	}
	return t
}

// Analyze returns the letter distribution of text decoded with shift.
func Analyze(text []byte, shift int) Table {
	return Count(text, shift).Table()
}
