package twist

import "strings"

// genHyphenation inserts '-' at every internal position of label, discarding
// results that start or end with '-' or contain a double hyphen.
func genHyphenation(label string, add func(string)) {
	for i := 1; i < len(label); i++ {
		candidate := label[:i] + "-" + label[i:]
		if candidate[0] == '-' || candidate[len(candidate)-1] == '-' {
			continue
		}
		if strings.Contains(candidate, "--") {
			continue
		}
		add(candidate)
	}
}

// genHyphenationTldBoundary inserts a '-' at the boundary between label and
// the leftmost label of suffix (the Open Question resolution in SPEC_FULL
// §13: the boundary is the '.' between the registrable label and the
// leftmost suffix label). If suffix has only one label, the remaining
// suffix is empty and the candidate is rejected downstream for having no
// valid public suffix - the same silent-skip path every other generator
// uses for an invalid candidate.
func genHyphenationTldBoundary(label, suffix string, add func(lbl, sfx string)) {
	parts := strings.SplitN(suffix, ".", 2)
	firstSuffixLabel := parts[0]
	rest := ""
	if len(parts) == 2 {
		rest = parts[1]
	}
	add(label+"-"+firstSuffixLabel, rest)
}
