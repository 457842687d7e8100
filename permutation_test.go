package twist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermutationKindStringRoundTrip(t *testing.T) {
	for _, k := range append(append([]PermutationKind{}, orderedKinds...), CertificateTransparency) {
		bin, err := k.MarshalJSON()
		require.NoError(t, err)

		var back PermutationKind
		require.NoError(t, back.UnmarshalJSON(bin))
		require.Equal(t, k, back)
	}
}

func TestCertificateTransparencyNeverEmittedButSerializable(t *testing.T) {
	for _, k := range orderedKinds {
		require.NotEqual(t, CertificateTransparency, k)
	}
	bin, err := CertificateTransparency.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `"CertificateTransparency"`, string(bin))
}

func TestPermutationKindUnmarshalUnknown(t *testing.T) {
	var k PermutationKind
	err := k.UnmarshalJSON([]byte(`"NotAKind"`))
	require.Error(t, err)
}

func TestPermutationJSONShape(t *testing.T) {
	d, err := New("example.com")
	require.NoError(t, err)

	perms := All(d, Permissive)
	require.NotEmpty(t, perms)

	bin, err := json.Marshal(perms[0])
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(bin, &decoded))
	require.Contains(t, decoded, "domain")
	require.Contains(t, decoded, "kind")

	domainFields, ok := decoded["domain"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, domainFields, "fqdn")
	require.Contains(t, domainFields, "tld")
	require.Contains(t, domainFields, "domain")
}
