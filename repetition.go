package twist

// genRepetition duplicates each character of label in turn.
func genRepetition(label string, add func(string)) {
	for i := 0; i < len(label); i++ {
		add(label[:i+1] + label[i:])
	}
}
