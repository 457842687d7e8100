package twist

// genSubdomain splits label into two labels at every internal position,
// discarding splits where either side is empty. Splits where a side begins
// or ends with '-' are passed on as-is and dropped by the caller's
// validateLabel pass.
func genSubdomain(label string, add func(sub, lbl string)) {
	for i := 1; i < len(label); i++ {
		sub, lbl := label[:i], label[i:]
		if sub == "" || lbl == "" {
			continue
		}
		add(sub, lbl)
	}
}
