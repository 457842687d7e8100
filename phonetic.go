package twist

import (
	"github.com/agnivade/levenshtein"

	"github.com/domainperm/twist/internal/metaphone3"
)

// PhoneticEncodings is the chosen pair of phonetic keys for a
// (base, permutation) comparison.
type PhoneticEncodings struct {
	Domain      string `json:"domain"`
	Permutation string `json:"permutation"`
}

// PhoneticData is the payload of a PhoneticResult.
type PhoneticData struct {
	Encodings PhoneticEncodings `json:"encodings"`
	Distance  float64           `json:"distance"`
}

// PhoneticResult is the output of ComputePhoneticDistance, matching the
// exact JSON shape of spec.md §6.
type PhoneticResult struct {
	Permutation Permutation  `json:"permutation"`
	Op          string       `json:"op"`
	Data        PhoneticData `json:"data"`
}

type phoneticPairing struct {
	a, b string
}

// ComputePhoneticDistance compares base.Label against perm.Domain.Label
// under a Metaphone-3-style encoding, ignoring subdomain and suffix. See
// §4.7 for the fixed tie-break order over the four (primary, secondary)
// pairings.
func ComputePhoneticDistance(base Domain, perm Permutation) PhoneticResult {
	ap, as := metaphone3.Encode(base.Label)
	bp, bs := metaphone3.Encode(perm.Domain.Label)

	pairings := []phoneticPairing{
		{ap, bp},
		{ap, bs},
		{as, bp},
		{as, bs},
	}

	best := -1
	bestDistance := 1.0
	for i, pr := range pairings {
		if pr.a == "" || pr.b == "" {
			continue
		}
		d := normalizedLevenshtein(pr.a, pr.b)
		if best == -1 || d < bestDistance {
			best = i
			bestDistance = d
		}
	}

	result := PhoneticResult{
		Permutation: perm,
		Op:          "Metaphone3",
		Data: PhoneticData{
			Distance: 1.0,
		},
	}
	if best >= 0 {
		result.Data.Encodings = PhoneticEncodings{
			Domain:      pairings[best].a,
			Permutation: pairings[best].b,
		}
		result.Data.Distance = bestDistance
	}
	return result
}

func normalizedLevenshtein(a, b string) float64 {
	if a == "" && b == "" {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return float64(dist) / float64(maxLen)
}
