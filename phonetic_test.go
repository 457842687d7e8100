package twist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhoneticDistancePhoneFone(t *testing.T) {
	base, err := New("phone.com")
	require.NoError(t, err)
	perm := Permutation{Domain: Raw("fone", "com"), Kind: Mapped}

	result := ComputePhoneticDistance(base, perm)
	require.Equal(t, "Metaphone3", result.Op)
	require.InDelta(t, 0.0, result.Data.Distance, 1e-9)
	require.Equal(t, "FN", result.Data.Encodings.Domain)
	require.Equal(t, "FN", result.Data.Encodings.Permutation)
}

func TestPhoneticDistanceExampleEsample(t *testing.T) {
	base, err := New("example.com")
	require.NoError(t, err)
	perm := Permutation{Domain: Raw("esample", "com"), Kind: Omission}

	result := ComputePhoneticDistance(base, perm)
	require.InDelta(t, 1.0/6.0, result.Data.Distance, 1e-4)
}

func TestPhoneticDistanceZeroForIdenticalLabels(t *testing.T) {
	base, err := New("example.com")
	require.NoError(t, err)
	perm := Permutation{Domain: Raw("example", "net"), Kind: Tld}

	result := ComputePhoneticDistance(base, perm)
	require.Equal(t, 0.0, result.Data.Distance)
}

func TestPhoneticDistanceSymmetric(t *testing.T) {
	a, err := New("phone.com")
	require.NoError(t, err)
	b, err := New("fone.com")
	require.NoError(t, err)

	forward := ComputePhoneticDistance(a, Permutation{Domain: b, Kind: Mapped})
	backward := ComputePhoneticDistance(b, Permutation{Domain: a, Kind: Mapped})

	require.InDelta(t, forward.Data.Distance, backward.Data.Distance, 1e-9)
}
