package twist

// genAddition appends one ASCII lowercase letter to label, yielding 26
// candidates.
func genAddition(label string, add func(string)) {
	for c := byte('a'); c <= 'z'; c++ {
		add(label + string(c))
	}
}
