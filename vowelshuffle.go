package twist

import (
	"github.com/domainperm/twist/internal/combine"
	"github.com/domainperm/twist/internal/dict"
)

// vowelShuffleCeiling bounds the cartesian product below so a vowel-heavy
// label cannot blow up emission count or work (spec §4.5.12, §8 S8).
const vowelShuffleCeiling = 1024

// genVowelShuffle is the cartesian product over every vowel position's
// full vowel choice set, a superset of VowelSwap, bounded by
// vowelShuffleCeiling.
func genVowelShuffle(label string, add func(string)) {
	var positions []int
	for i := 0; i < len(label); i++ {
		if dict.IsVowel(label[i]) {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return
	}
	choices := make([][]byte, len(positions))
	for i := range positions {
		choices[i] = dict.Vowels
	}
	combine.ClusterBomb(choices, vowelShuffleCeiling, func(combo []byte) {
		b := []byte(label)
		for i, pos := range positions {
			b[pos] = combo[i]
		}
		add(string(b))
	})
}
