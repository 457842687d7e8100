package twist

import (
	"sort"

	"github.com/domainperm/twist/internal/dict"
)

// genMapped applies the character-mapping table one rule, one site, per
// emission: if a fragment matches at more than one position in label, each
// position gets its own candidate rather than all of them being replaced
// at once. This is the fix for the historical "compounding" bug where
// "duck" with rule d->cl produced "clucl" instead of "cluck" (spec §4.5.14,
// S4).
func genMapped(label string, add func(string)) {
	fragments := make([]string, 0, len(dict.MappedFragments))
	for fragment := range dict.MappedFragments {
		fragments = append(fragments, fragment)
	}
	sort.Strings(fragments)

	for _, fragment := range fragments {
		variants := dict.MappedFragments[fragment]
		if len(fragment) == 0 || len(fragment) > len(label) {
			continue
		}
		for i := 0; i+len(fragment) <= len(label); i++ {
			if label[i:i+len(fragment)] != fragment {
				continue
			}
			for _, variant := range variants {
				add(label[:i] + variant + label[i+len(fragment):])
			}
		}
	}
}
