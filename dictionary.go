package twist

import "github.com/domainperm/twist/internal/dict"

// genDictionary emits label+k, label+"-"+k, and k+label for every keyword
// in the baked keyword list.
func genDictionary(label string, add func(string)) {
	for _, k := range dict.Keywords {
		add(label + k)
		add(label + "-" + k)
		add(k + label)
	}
}
