package twist

import "github.com/domainperm/twist/internal/dict"

// genHomoglyph substitutes each character, and each adjacent bigram, with
// the visually similar forms baked into internal/dict.
func genHomoglyph(label string, add func(string)) {
	for i := 0; i < len(label); i++ {
		for _, glyph := range dict.Homoglyphs[label[i]] {
			add(label[:i] + glyph + label[i+1:])
		}
	}
	for i := 0; i+1 < len(label); i++ {
		bigram := label[i : i+2]
		for _, glyph := range dict.HomoglyphBigrams[bigram] {
			add(label[:i] + glyph + label[i+2:])
		}
	}
}
