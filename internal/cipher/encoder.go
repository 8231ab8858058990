package cipher

// Encode rotates every letter in text by amount and returns a new buffer
// of the same length.  Non-letters are copied through untouched.
func Encode(text []byte, amount int) []byte {
	amount = Normalize(amount)
	out := make([]byte, len(text))
	for i, c := range text {
		pos, cs, ok := IndexOf(c)
		if !ok {
			out[i] = c
			continue
		}
		out[i] = CharAt(Shift(pos, amount), cs)
	}
	return out
}

// Decode reverses Encode(text, amount).  It is Encode with the
// complementary shift; there is no separate inverse transform.
func Decode(text []byte, amount int) []byte {
	return Encode(text, Complement(amount))
}

// EncodeString is Encode for strings.
func EncodeString(s string, amount int) string {
	return string(Encode([]byte(s), amount))
}

// DecodeString is Decode for strings.
func DecodeString(s string, amount int) string {
	return string(Decode([]byte(s), amount))
}
