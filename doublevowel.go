package twist

import "github.com/domainperm/twist/internal/dict"

// genDoubleVowelInsertion inserts every ASCII letter between each adjacent
// vowel-vowel bigram in label.
func genDoubleVowelInsertion(label string, add func(string)) {
	for i := 0; i+1 < len(label); i++ {
		if !dict.IsVowel(label[i]) || !dict.IsVowel(label[i+1]) {
			continue
		}
		for c := byte('a'); c <= 'z'; c++ {
			add(label[:i+1] + string(c) + label[i+1:])
		}
	}
}
