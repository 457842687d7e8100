package psl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLongestMatch(t *testing.T) {
	cases := []struct {
		host   string
		suffix string
		ok     bool
	}{
		{"ox.ac.uk", "ac.uk", true},
		{"example.com", "com", true},
		{"example.co.uk", "co.uk", true},
		{"example.gov.co", "gov.co", true},
		{"example.edu.au", "edu.au", true},
		{"nosuchtld.zzzzz", "", false},
	}
	for _, c := range cases {
		got, ok := LongestMatch(c.host)
		require.Equal(t, c.ok, ok, c.host)
		if c.ok {
			require.Equal(t, c.suffix, got, c.host)
		}
	}
}

func TestAllIsImmutable(t *testing.T) {
	all := All()
	original := all[0]
	all[0] = "mutated"
	require.Equal(t, original, All()[0])
}

func TestHas(t *testing.T) {
	require.True(t, Has("co.uk"))
	require.False(t, Has("not-a-real-suffix"))
}
