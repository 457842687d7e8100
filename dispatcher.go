package twist

import (
	"strings"
	"unsafe"

	"github.com/domainperm/twist/internal/psl"
)

// emitter carries the per-kind context each generator needs to turn a raw
// mutated fragment into a validated candidate Domain. Validation failures
// are silently dropped here, per §4.5's cross-cutting rule and §7's "errors
// during permutation are not surfaced".
type emitter struct {
	base Domain
	kind PermutationKind
	out  func(cand Domain, kind PermutationKind)
}

func (e *emitter) label(newLabel string) {
	if newLabel == e.base.Label {
		return
	}
	encoded, err := toASCIILabel(newLabel)
	if err != nil {
		return
	}
	if err := validateLabel(encoded); err != nil {
		return
	}
	cand := Domain{Label: encoded, Suffix: e.base.Suffix}
	cand.FQDN = cand.assemble()
	e.out(cand, e.kind)
}

func (e *emitter) subdomain(sub, lbl string) {
	if err := validateLabel(lbl); err != nil {
		return
	}
	if err := validateLabel(sub); err != nil {
		return
	}
	cand := Domain{Subdomain: sub, Label: lbl, Suffix: e.base.Suffix}
	cand.FQDN = cand.assemble()
	e.out(cand, e.kind)
}

func (e *emitter) suffix(newSuffix string) {
	if newSuffix == "" || newSuffix == e.base.Suffix || !psl.Has(newSuffix) {
		return
	}
	cand := Domain{Label: e.base.Label, Suffix: newSuffix}
	cand.FQDN = cand.assemble()
	e.out(cand, e.kind)
}

// iterate drives every generator in the fixed §4.5 order, applying the
// base-identity check and the caller's filter before handing the candidate
// to out. Both All and VisitAll are built on top of this single path, which
// is what guarantees the two surfaces agree on both content and order
// (§8 invariant 4).
func iterate(base Domain, filter Filter, out func(cand Domain, kind PermutationKind)) {
	baseLower := strings.ToLower(base.FQDN)
	var ref PermutationRef

	guarded := func(cand Domain, kind PermutationKind) {
		if strings.ToLower(cand.FQDN) == baseLower {
			return
		}
		ref.FQDN = cand.FQDN
		ref.Kind = kind
		if !filter.Accept(&ref) {
			return
		}
		out(cand, kind)
	}

	for _, kind := range orderedKinds {
		e := &emitter{base: base, kind: kind, out: guarded}
		switch kind {
		case Addition:
			genAddition(base.Label, e.label)
		case BitSquatting:
			genBitSquatting(base.Label, e.label)
		case Homoglyph:
			genHomoglyph(base.Label, e.label)
		case Hyphenation:
			genHyphenation(base.Label, e.label)
		case HyphenationTldBoundary:
			genHyphenationTldBoundary(base.Label, base.Suffix, func(lbl, sfx string) {
				if sfx == "" || sfx == base.Suffix || !psl.Has(sfx) {
					return
				}
				if err := validateLabel(lbl); err != nil {
					return
				}
				cand := Domain{Label: lbl, Suffix: sfx}
				cand.FQDN = cand.assemble()
				guarded(cand, kind)
			})
		case Insertion:
			genInsertion(base.Label, e.label)
		case Omission:
			genOmission(base.Label, e.label)
		case Repetition:
			genRepetition(base.Label, e.label)
		case Replacement:
			genReplacement(base.Label, e.label)
		case Subdomain:
			genSubdomain(base.Label, e.subdomain)
		case Transposition:
			genTransposition(base.Label, e.label)
		case VowelSwap:
			genVowelSwap(base.Label, e.label)
		case VowelShuffle:
			genVowelShuffle(base.Label, e.label)
		case DoubleVowelInsertion:
			genDoubleVowelInsertion(base.Label, e.label)
		case Mapped:
			genMapped(base.Label, e.label)
		case Dictionary:
			genDictionary(base.Label, e.label)
		case Tld:
			genTld(base.Suffix, e.suffix)
		}
	}
}

// All returns every candidate the enabled generators produce, in the fixed
// kind order, as freshly owned Permutation values.
func All(base Domain, filter Filter) []Permutation {
	var out []Permutation
	iterate(base, filter, func(cand Domain, kind PermutationKind) {
		out = append(out, Permutation{Domain: cand, Kind: kind})
	})
	return out
}

// VisitAll is the allocation-free counterpart of All: it invokes callback
// once per candidate with a PermutationRef whose FQDN is a view into a
// buffer owned by this call. The view is only valid for the duration of
// the callback; VisitAll overwrites the buffer before the next invocation.
func VisitAll(base Domain, filter Filter, callback func(ref *PermutationRef)) {
	var buf []byte
	iterate(base, filter, func(cand Domain, kind PermutationKind) {
		buf = buf[:0]
		buf = append(buf, cand.FQDN...)
		ref := PermutationRef{FQDN: unsafeBytesToString(buf), Kind: kind}
		callback(&ref)
	})
}

// unsafeBytesToString is the zero-copy counterpart of the zero-copy
// string-to-bytes conversion used elsewhere in this package's ancestry;
// it lets VisitAll hand out a view into its reusable buffer instead of
// allocating a fresh string per candidate.
func unsafeBytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
