package metaphone3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodePhoneFone(t *testing.T) {
	p1, _ := Encode("phone")
	p2, _ := Encode("fone")
	require.Equal(t, "FN", p1)
	require.Equal(t, "FN", p2)
}

func TestEncodeExampleEsample(t *testing.T) {
	p1, _ := Encode("example")
	p2, _ := Encode("esample")
	require.Equal(t, "AKSMPL", p1)
	require.Equal(t, "ASMPL", p2)
}

func TestEncodeEmpty(t *testing.T) {
	p, s := Encode("")
	require.Empty(t, p)
	require.Empty(t, s)
}

func TestEncodeDeterministic(t *testing.T) {
	p1, s1 := Encode("microsoft")
	p2, s2 := Encode("microsoft")
	require.Equal(t, p1, p2)
	require.Equal(t, s1, s2)
}
