// Package combine implements a small nth-order cartesian-product
// expansion, adapted from a recursive "cluster bomb" combinator: given a
// vector of per-position choice sets it calls back once per combination,
// in positional order, and stops as soon as a caller-supplied ceiling of
// combinations has been produced.
package combine

// ClusterBomb enumerates the cartesian product of choices (one
// byte-choice-set per position), calling emit with a fresh combo slice for
// each combination. It stops recursing as soon as ceiling combinations
// have been emitted, rather than generating the full product and
// truncating afterwards - this bounds the work done on a
// high-cardinality input, not just the output count.
func ClusterBomb(choices [][]byte, ceiling int, emit func(combo []byte)) {
	if len(choices) == 0 || ceiling <= 0 {
		return
	}
	combo := make([]byte, len(choices))
	count := 0

	var build func(pos int) bool
	build = func(pos int) bool {
		if pos == len(choices) {
			out := make([]byte, len(combo))
			copy(out, combo)
			emit(out)
			count++
			return count < ceiling
		}
		for _, c := range choices[pos] {
			combo[pos] = c
			if !build(pos + 1) {
				return false
			}
		}
		return true
	}
	build(0)
}
