package cipher

// Normalize reduces n modulo AlphabetLen into [0, AlphabetLen).  Negative
// inputs are folded back into range rather than leaking a negative index.
func Normalize(n int) int {
	return (n%AlphabetLen + AlphabetLen) % AlphabetLen
}

// Shift rotates an alphabet position by amount.  amount may be negative.
func Shift(pos, amount int) int {
	return Normalize(Normalize(pos) + Normalize(amount))
}

// Complement returns the shift that undoes s.
func Complement(s int) int {
	return Normalize(-s)
}

// ValidShift reports whether s is an explicit shift the CLI accepts.
func ValidShift(s int) bool {
	return s >= MinShift && s <= MaxShift
}
