package frequency

// englishPercent is the relative frequency of letters in English text,
// in percent.
var englishPercent = Table{
	8.167, 1.492, 2.782, 4.253, 12.702, 2.228, 2.015, // A-G
	6.094, 6.966, 0.153, 0.772, 4.025, 2.406, 6.749, // H-N
	7.507, 1.929, 0.095, 5.987, 6.327, 9.056, 2.758, // O-U
	0.978, 2.360, 0.150, 1.974, 0.074, // V-Z
}

var english = mustNormalize(englishPercent)

// English returns the built-in English reference distribution.
func English() Table { return english }

func mustNormalize(t Table) Table {
	out, err := Normalize(t)
	if err != nil {
		panic("frequency: " + err.Error())
	}
	return out
}
