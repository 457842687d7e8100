package twist

import "github.com/domainperm/twist/internal/dict"

// genVowelSwap replaces each vowel position with every other vowel.
func genVowelSwap(label string, add func(string)) {
	for i := 0; i < len(label); i++ {
		if !dict.IsVowel(label[i]) {
			continue
		}
		for _, v := range dict.Vowels {
			if v == label[i] {
				continue
			}
			add(label[:i] + string(v) + label[i+1:])
		}
	}
}
