package twist

// genOmission deletes each character of label in turn.
func genOmission(label string, add func(string)) {
	for i := 0; i < len(label); i++ {
		add(label[:i] + label[i+1:])
	}
}
