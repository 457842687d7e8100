package combine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClusterBombFullProduct(t *testing.T) {
	var got []string
	ClusterBomb([][]byte{[]byte("ab"), []byte("xy")}, 100, func(combo []byte) {
		got = append(got, string(combo))
	})
	require.Equal(t, []string{"ax", "ay", "bx", "by"}, got)
}

func TestClusterBombRespectsCeiling(t *testing.T) {
	var count int
	ClusterBomb([][]byte{[]byte("abc"), []byte("abc"), []byte("abc")}, 5, func(combo []byte) {
		count++
	})
	require.Equal(t, 5, count)
}

func TestClusterBombEmptyChoices(t *testing.T) {
	called := false
	ClusterBomb(nil, 10, func(combo []byte) { called = true })
	require.False(t, called)
}

func TestClusterBombZeroCeiling(t *testing.T) {
	called := false
	ClusterBomb([][]byte{[]byte("ab")}, 0, func(combo []byte) { called = true })
	require.False(t, called)
}
