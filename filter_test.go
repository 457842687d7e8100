package twist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermissiveAcceptsEverything(t *testing.T) {
	ref := &PermutationRef{FQDN: "whatever-nonsense.example", Kind: Addition}
	require.True(t, Permissive.Accept(ref))
}

func TestSubstringFilterCaseInsensitive(t *testing.T) {
	f := SubstringFilter{Needle: "EXAMP"}
	require.True(t, f.Accept(&PermutationRef{FQDN: "example.com"}))
	require.False(t, f.Accept(&PermutationRef{FQDN: "nomatch.com"}))
}

func TestSubstringFilterEmptyNeedleAcceptsAll(t *testing.T) {
	f := SubstringFilter{}
	require.True(t, f.Accept(&PermutationRef{FQDN: "anything.com"}))
}
