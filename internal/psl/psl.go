// Package psl provides a read-only, longest-match lookup over a baked
// snapshot of the ICANN section of the Public Suffix List.
package psl

import "strings"

var set map[string]struct{}

func init() {
	set = make(map[string]struct{}, len(suffixes))
	for _, s := range suffixes {
		set[s] = struct{}{}
	}
}

// LongestMatch returns the longest entry of the table that is a
// label-aligned suffix of host, and true if one was found.
func LongestMatch(host string) (string, bool) {
	labels := strings.Split(host, ".")
	for i := 0; i < len(labels); i++ {
		candidate := strings.Join(labels[i:], ".")
		if _, ok := set[candidate]; ok {
			return candidate, true
		}
	}
	return "", false
}

// Has reports whether suffix is present in the table verbatim.
func Has(suffix string) bool {
	_, ok := set[suffix]
	return ok
}

// All returns every suffix in the table. The slice is owned by the caller;
// mutating it has no effect on subsequent calls.
func All() []string {
	out := make([]string, len(suffixes))
	copy(out, suffixes)
	return out
}
