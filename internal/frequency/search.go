package frequency

import "caesar/internal/cipher"

// minExpected keeps the chi-squared denominator positive when a reference
// table assigns zero to some letter.
const minExpected = 1e-6

// ChiSquared returns sum((o-e)^2 / e) over the letters A..Z.  Larger values
// mean a worse fit.
func ChiSquared(observed, expected Table) float64 {
	var d float64
	for i := range observed {
		e := expected[i]
		if e < minExpected {
			e = minExpected
		}
		diff := observed[i] - e
		d += diff * diff / e
	}
	return d
}

// Result is the outcome of a shift search.
type Result struct {
	Shift    int                         // best shift in [0, 26)
	Distance float64                     // chi-squared of the best shift
	Scores   [cipher.AlphabetLen]float64 // chi-squared per candidate shift
	Letters  int                         // letters that contributed
}

// Search scores every shift in [0, 26) against reference and returns the
// best.  Ties resolve to the smallest shift.
func Search(text []byte, reference Table) Result {
	return SearchCounts(Count(text, 0), reference)
}

// SearchCounts is Search over counts already gathered with shift 0.
func SearchCounts(c Counts, reference Table) Result {
	r := Result{Letters: c.Total}
	for s := 0; s < cipher.AlphabetLen; s++ {
		d := ChiSquared(c.Shifted(s).Table(), reference)
		r.Scores[s] = d
		if s == 0 || d < r.Distance {
			r.Shift = s
			r.Distance = d
		}
	}
	return r
}

// FindBestShift returns the shift that most likely produced text.
func FindBestShift(text []byte, reference Table) int {
	return Search(text, reference).Shift
}
