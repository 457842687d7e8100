package twist

// genTransposition swaps each pair of adjacent differing characters.
func genTransposition(label string, add func(string)) {
	for i := 0; i+1 < len(label); i++ {
		if label[i] == label[i+1] {
			continue
		}
		b := []byte(label)
		b[i], b[i+1] = b[i+1], b[i]
		add(string(b))
	}
}
