package twist

import "github.com/domainperm/twist/internal/dict"

// genReplacement substitutes each character with every QWERTY neighbor of
// that character's key.
func genReplacement(label string, add func(string)) {
	for i := 0; i < len(label); i++ {
		neighbors := dict.QWERTYNeighbors[label[i]]
		for _, n := range neighbors {
			add(label[:i] + string(n) + label[i+1:])
		}
	}
}
