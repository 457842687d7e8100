package twist

import "strings"

// Filter is the single capability the dispatcher consults before yielding a
// candidate. Implementations must be pure and cheap: Accept runs on the hot
// path, once per generated candidate.
type Filter interface {
	Accept(ref *PermutationRef) bool
}

// permissiveFilter accepts every candidate.
type permissiveFilter struct{}

func (permissiveFilter) Accept(*PermutationRef) bool { return true }

// Permissive is the default Filter: the identity predicate.
var Permissive Filter = permissiveFilter{}

// SubstringFilter only accepts candidates whose FQDN contains Needle.
// Matching is case-insensitive, mirroring the case-insensitive identity
// check the dispatcher itself performs against the base domain.
type SubstringFilter struct {
	Needle string
}

func (s SubstringFilter) Accept(ref *PermutationRef) bool {
	if s.Needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(ref.FQDN), strings.ToLower(s.Needle))
}
