package twist

import "github.com/domainperm/twist/internal/dict"

// genInsertion inserts, immediately before or after each internal
// character, every QWERTY neighbor of that character.
func genInsertion(label string, add func(string)) {
	if len(label) < 3 {
		return
	}
	for i := 1; i < len(label)-1; i++ {
		neighbors := dict.QWERTYNeighbors[label[i]]
		for _, n := range neighbors {
			add(label[:i] + string(n) + label[i:])
			add(label[:i+1] + string(n) + label[i+1:])
		}
	}
}
