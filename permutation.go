package twist

import (
	"encoding/json"
	"fmt"
)

// PermutationKind is a closed tag identifying which generator produced a
// Permutation. It is not user-extensible, so its JSON round-trip is stable.
type PermutationKind int

const (
	Addition PermutationKind = iota
	BitSquatting
	Homoglyph
	Hyphenation
	HyphenationTldBoundary
	Insertion
	Omission
	Repetition
	Replacement
	Subdomain
	Transposition
	VowelSwap
	VowelShuffle
	DoubleVowelInsertion
	Mapped
	Dictionary
	Tld
	// CertificateTransparency is reserved for an external producer that
	// tags candidates sourced from certificate-transparency logs. This
	// engine never emits it; the tag exists only so that a consumer's
	// mixed stream still round-trips through this package's JSON shape.
	CertificateTransparency
)

var kindNames = [...]string{
	"Addition",
	"BitSquatting",
	"Homoglyph",
	"Hyphenation",
	"HyphenationTldBoundary",
	"Insertion",
	"Omission",
	"Repetition",
	"Replacement",
	"Subdomain",
	"Transposition",
	"VowelSwap",
	"VowelShuffle",
	"DoubleVowelInsertion",
	"Mapped",
	"Dictionary",
	"Tld",
	"CertificateTransparency",
}

func (k PermutationKind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

func (k PermutationKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

func (k *PermutationKind) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	for i, name := range kindNames {
		if name == s {
			*k = PermutationKind(i)
			return nil
		}
	}
	return fmt.Errorf("twist: unknown PermutationKind %q", s)
}

// orderedKinds is the fixed dispatch order of §4.5/§4.6. CertificateTransparency
// is intentionally absent: no generator in this package produces it.
var orderedKinds = []PermutationKind{
	Addition,
	BitSquatting,
	Homoglyph,
	Hyphenation,
	HyphenationTldBoundary,
	Insertion,
	Omission,
	Repetition,
	Replacement,
	Subdomain,
	Transposition,
	VowelSwap,
	VowelShuffle,
	DoubleVowelInsertion,
	Mapped,
	Dictionary,
	Tld,
}

// Permutation is an owned, emitted candidate.
type Permutation struct {
	Domain Domain          `json:"domain"`
	Kind   PermutationKind `json:"kind"`
}

// PermutationRef is the allocation-free visitor view: FQDN is a borrowed
// string backed by the dispatcher's reusable buffer and is only valid for
// the duration of the callback that received it.
type PermutationRef struct {
	FQDN string
	Kind PermutationKind
}

// domainJSON mirrors the exact field names in spec.md §6's JSON shape.
type domainJSON struct {
	FQDN   string `json:"fqdn"`
	TLD    string `json:"tld"`
	Domain string `json:"domain"`
}

func (d Domain) MarshalJSON() ([]byte, error) {
	return json.Marshal(domainJSON{FQDN: d.FQDN, TLD: d.Suffix, Domain: d.Label})
}

func (d *Domain) UnmarshalJSON(data []byte) error {
	var dj domainJSON
	if err := json.Unmarshal(data, &dj); err != nil {
		return err
	}
	d.FQDN = dj.FQDN
	d.Suffix = dj.TLD
	d.Label = dj.Domain
	d.Subdomain = ""
	return nil
}
