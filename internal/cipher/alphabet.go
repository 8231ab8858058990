// Package cipher implements the shift (Caesar) substitution over the
// 26-letter Latin alphabet.
//
// Upper- and lower-case letters rotate within their own alphabet, so case
// is always preserved.  Every byte outside A-Z and a-z passes through
// unchanged, which keeps the transform length-preserving and positional.
package cipher

// AlphabetLen is the number of letters in each case-specific alphabet.
const AlphabetLen = 26

// Valid range for a user-supplied shift.  Zero means "unspecified".
const (
	MinShift = 1
	MaxShift = AlphabetLen - 1
)

// Case identifies which of the two alphabets a letter belongs to.
type Case uint8

const (
	Upper Case = iota
	Lower
)

func (c Case) String() string {
	if c == Lower {
		return "lower"
	}
	return "upper"
}

const (
	upperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerAlphabet = "abcdefghijklmnopqrstuvwxyz"
)

// IndexOf returns the zero-based alphabet position of c and its case.
// ok is false for any byte that is not an ASCII letter.
func IndexOf(c byte) (pos int, cs Case, ok bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), Upper, true
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), Lower, true
	default:
		return 0, Upper, false
	}
}

// CharAt returns the letter at pos in the alphabet for cs.  pos is
// normalised into [0, AlphabetLen) first, so it never indexes out of range.
func CharAt(pos int, cs Case) byte {
	pos = Normalize(pos)
	if cs == Lower {
		return lowerAlphabet[pos]
	}
	return upperAlphabet[pos]
}
