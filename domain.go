package twist

import (
	"errors"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"

	"github.com/domainperm/twist/internal/psl"
)

// Domain is a parsed fully-qualified domain name. It is immutable after
// construction: the permutation generators in this package always build a
// fresh Domain for each candidate rather than mutating one in place.
type Domain struct {
	// FQDN is the canonical lower-cased form of the original input, with a
	// single leading "www." stripped if present.
	FQDN string
	// Subdomain holds any labels to the left of Label, re-joined with dots.
	// It participates in FQDN re-assembly but is never itself permuted.
	Subdomain string
	// Label is the registrable second-level label.
	Label string
	// Suffix is the public suffix, possibly multi-label (e.g. "co.uk").
	Suffix string
}

const maxLabelLength = 63

// New parses fqdn into a Domain, validating the public suffix and the
// registrable label per the rules in §4.3.
func New(fqdn string) (Domain, error) {
	trimmed := strings.TrimSpace(fqdn)
	if trimmed == "" {
		return Domain{}, newParseError(EmptyInput, fqdn, "input is empty")
	}

	lowered := strings.ToLower(trimmed)
	for _, r := range lowered {
		if r > 127 {
			return Domain{}, newParseError(InvalidLabel, fqdn, "non-ASCII input must be pre-encoded as punycode")
		}
	}

	rest := strings.TrimPrefix(lowered, "www.")

	suffix, ok := psl.LongestMatch(rest)
	if !ok {
		// The baked table only carries a representative subset of the PSL
		// (internal/psl/data.go). Fall back to the full ICANN suffix list
		// bundled with x/net for inputs it doesn't cover.
		if icann, hasICANN := publicsuffix.PublicSuffix(rest); hasICANN && icann != rest {
			suffix, ok = icann, true
		}
	}
	if !ok {
		return Domain{}, newParseError(InvalidSuffix, fqdn, "no public suffix matches the trailing labels")
	}

	prefix := strings.TrimSuffix(rest, "."+suffix)
	if prefix == rest {
		// suffix consumed the whole string; there is no label left.
		return Domain{}, newParseError(InvalidLabel, fqdn, "input has no registrable label")
	}
	prefixLabels := strings.Split(prefix, ".")
	label := prefixLabels[len(prefixLabels)-1]
	subdomain := strings.Join(prefixLabels[:len(prefixLabels)-1], ".")

	if err := validateLabel(label); err != nil {
		return Domain{}, newParseError(InvalidLabel, fqdn, err.Error())
	}

	d := Domain{
		Subdomain: subdomain,
		Label:     label,
		Suffix:    suffix,
	}
	d.FQDN = d.assemble()
	return d, nil
}

// Raw builds a Domain from an already-split label and suffix without
// validating either against the PSL or the LDH rules. It is meant for
// downstream code that already trusts its input (spec §4.3, "raw"
// constructor).
func Raw(label, suffix string) Domain {
	d := Domain{Label: label, Suffix: suffix}
	d.FQDN = d.assemble()
	return d
}

func (d Domain) assemble() string {
	if d.Subdomain == "" {
		return d.Label + "." + d.Suffix
	}
	return d.Subdomain + "." + d.Label + "." + d.Suffix
}

// validateLabel checks the LDH/length rules of §4.3 step 5. A label that
// starts with "xn--" is additionally required to round-trip through
// punycode decoding.
func validateLabel(label string) error {
	if label == "" {
		return errors.New("label is empty")
	}
	if len(label) > maxLabelLength {
		return errors.New("label exceeds 63 characters")
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return errors.New("label starts or ends with a hyphen")
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		isLDH := (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-'
		if !isLDH {
			return errors.New("label contains a character outside the LDH set")
		}
	}
	if strings.HasPrefix(label, "xn--") {
		if _, err := idna.Punycode.ToUnicode(label); err != nil {
			return errors.New("label is not valid punycode")
		}
	}
	return nil
}

// toASCIILabel punycode-encodes label into its "xn--" form if it contains
// any non-ASCII rune, so a Unicode homoglyph substitution can round-trip
// through validateLabel's LDH check instead of being rejected outright
// (§4.2). ASCII labels pass through unchanged.
func toASCIILabel(label string) (string, error) {
	for _, r := range label {
		if r > 127 {
			return idna.Punycode.ToASCII(label)
		}
	}
	return label, nil
}
