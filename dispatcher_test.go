package twist

import (
	"strings"
	"testing"

	"golang.org/x/net/idna"

	"github.com/stretchr/testify/require"
)

func TestAllNeverEmitsBase(t *testing.T) {
	d, err := New("example.com")
	require.NoError(t, err)
	for _, p := range All(d, Permissive) {
		require.NotEqual(t, strings.ToLower(d.FQDN), strings.ToLower(p.Domain.FQDN))
	}
}

func TestAllEmissionsParseSuccessfully(t *testing.T) {
	d, err := New("example.com")
	require.NoError(t, err)
	for _, p := range All(d, Permissive) {
		_, err := New(p.Domain.FQDN)
		require.NoError(t, err, "candidate %s failed to parse", p.Domain.FQDN)
	}
}

func TestAllIsDeterministic(t *testing.T) {
	d, err := New("example.com")
	require.NoError(t, err)
	first := All(d, Permissive)
	second := All(d, Permissive)
	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i].Domain.FQDN, second[i].Domain.FQDN)
		require.Equal(t, first[i].Kind, second[i].Kind)
	}
}

func TestVisitAllMatchesAll(t *testing.T) {
	d, err := New("example.com")
	require.NoError(t, err)

	all := All(d, Permissive)

	type seen struct {
		fqdn string
		kind PermutationKind
	}
	var visited []seen
	VisitAll(d, Permissive, func(ref *PermutationRef) {
		// ref.FQDN is only valid during the callback; copy it before keeping it.
		visited = append(visited, seen{fqdn: strings.Clone(ref.FQDN), kind: ref.Kind})
	})

	require.Equal(t, len(all), len(visited))
	for i := range all {
		require.Equal(t, all[i].Domain.FQDN, visited[i].fqdn)
		require.Equal(t, all[i].Kind, visited[i].kind)
	}
}

func TestPermissiveSupersetOfFilter(t *testing.T) {
	d, err := New("example.com")
	require.NoError(t, err)

	permissive := All(d, Permissive)
	filtered := All(d, SubstringFilter{Needle: "exam"})

	set := make(map[string]struct{}, len(permissive))
	for _, p := range permissive {
		set[p.Domain.FQDN] = struct{}{}
	}
	for _, p := range filtered {
		_, ok := set[p.Domain.FQDN]
		require.True(t, ok, "filtered candidate %s missing from permissive set", p.Domain.FQDN)
	}
}

func TestTldPreservesLabel(t *testing.T) {
	d, err := New("example.com")
	require.NoError(t, err)
	found := 0
	for _, p := range All(d, Permissive) {
		if p.Kind != Tld {
			continue
		}
		found++
		require.Equal(t, "example", p.Domain.Label)
		require.NotEqual(t, "com", p.Domain.Suffix)
	}
	require.Greater(t, found, 0)
}

func TestMappedSingleApplication(t *testing.T) {
	d, err := New("duck.com")
	require.NoError(t, err)

	hasCluck, hasClucl := false, false
	for _, p := range All(d, Permissive) {
		if p.Kind != Mapped {
			continue
		}
		switch p.Domain.FQDN {
		case "cluck.com":
			hasCluck = true
		case "clucl.com":
			hasClucl = true
		}
	}
	require.True(t, hasCluck, "expected cluck.com among Mapped emissions")
	require.False(t, hasClucl, "clucl.com must never be emitted (compounding bug regression)")
}

func TestHyphenationShortLabel(t *testing.T) {
	d, err := New("ab.com")
	require.NoError(t, err)

	var got []string
	for _, p := range All(d, Permissive) {
		if p.Kind == Hyphenation {
			got = append(got, p.Domain.FQDN)
		}
	}
	require.Equal(t, []string{"a-b.com"}, got)
}

func TestHomoglyphUnicodeSurvivesAsPunycode(t *testing.T) {
	d, err := New("apple.com")
	require.NoError(t, err)

	var xnLabels []string
	for _, p := range All(d, Permissive) {
		if p.Kind != Homoglyph {
			continue
		}
		if strings.HasPrefix(p.Domain.Label, "xn--") {
			xnLabels = append(xnLabels, p.Domain.Label)
		}
	}
	require.NotEmpty(t, xnLabels, "expected at least one Unicode homoglyph substitution to survive punycode-encoded")

	foundCyrillicA := false
	for _, lbl := range xnLabels {
		decoded, err := idna.Punycode.ToUnicode(lbl)
		require.NoError(t, err)
		if decoded == "аpple" {
			foundCyrillicA = true
		}
	}
	require.True(t, foundCyrillicA, "expected the Cyrillic 'а' substitution for the leading 'a' in apple to survive as xn--")
}

func TestHomoglyphAllASCIIRejectedEntriesStillDropped(t *testing.T) {
	d, err := New("apple.com")
	require.NoError(t, err)

	for _, p := range All(d, Permissive) {
		if p.Kind != Homoglyph {
			continue
		}
		require.NotContains(t, p.Domain.Label, "@")
	}
}

func TestVowelShuffleBounded(t *testing.T) {
	d, err := New("aeiouaeiou.com")
	require.NoError(t, err)
	count := 0
	for _, p := range All(d, Permissive) {
		if p.Kind == VowelShuffle {
			count++
		}
	}
	require.LessOrEqual(t, count, vowelShuffleCeiling)
	require.Greater(t, count, 0)
}

func TestGeneratorOrder(t *testing.T) {
	d, err := New("example.com")
	require.NoError(t, err)

	perms := All(d, Permissive)
	lastIndex := -1
	for _, p := range perms {
		idx := kindOrderIndex(p.Kind)
		require.GreaterOrEqual(t, idx, lastIndex)
		lastIndex = idx
	}
}

func kindOrderIndex(k PermutationKind) int {
	for i, oc := range orderedKinds {
		if oc == k {
			return i
		}
	}
	return -1
}
