package twist

import "github.com/domainperm/twist/internal/dedupe"

// MaxInMemoryDedupeSize is the estimated byte size above which
// StreamDedupe switches from an in-memory map to the disk-backed hmap
// backend (default: 100 MB).
var MaxInMemoryDedupeSize = 100 * 1024 * 1024

// DedupeBackend is the storage strategy behind StreamDedupe.
type DedupeBackend interface {
	// Upsert add/update a key in the backend.
	Upsert(elem string)
	// IterCallback runs callback once per stored key.
	IterCallback(callback func(elem string))
	// Cleanup releases any resources held by the backend.
	Cleanup()
}

// StreamDedupe removes duplicate FQDNs from a channel of candidate
// FQDNs - the natural shape of a caller consuming Domain.All/VisitAll at
// a scale where keeping every Permutation in memory for its own dedup pass
// is wasteful. It is not part of the core streaming contract in §4.6; it
// is a downstream convenience the same way §1 describes enrichment as a
// downstream consumer of the permutation stream.
type StreamDedupe struct {
	receive <-chan string
	backend DedupeBackend
}

// Drain consumes the input channel until it closes, upserting every value
// into the backend.
func (d *StreamDedupe) Drain() {
	for {
		val, ok := <-d.receive
		if !ok {
			break
		}
		d.backend.Upsert(val)
	}
}

// Results iterates the backend and streams the deduplicated FQDNs back,
// cleaning up the backend once the iteration is exhausted.
func (d *StreamDedupe) Results() <-chan string {
	send := make(chan string, 100)
	go func() {
		defer close(send)
		d.backend.IterCallback(func(elem string) {
			send <- elem
		})
		d.backend.Cleanup()
	}()
	return send
}

// NewStreamDedupe returns a StreamDedupe reading from ch. estimatedBytes is
// used only to pick a backend: below MaxInMemoryDedupeSize it is an
// in-memory map, above it the hmap-backed disk store.
func NewStreamDedupe(ch <-chan string, estimatedBytes int) *StreamDedupe {
	d := &StreamDedupe{receive: ch}
	if estimatedBytes <= MaxInMemoryDedupeSize {
		d.backend = dedupe.NewMapBackend()
	} else {
		d.backend = dedupe.NewLevelDBBackend()
	}
	return d
}

// DedupePermutations wraps the output of All with StreamDedupe, keyed on
// FQDN, returning only the first Permutation seen for each distinct FQDN.
// estimatedCandidates sizes the backend selection. Output order is
// unspecified - All/VisitAll are already deduplicated against the base
// domain and internally order-deterministic (§8 invariant 3); this helper
// exists for callers merging multiple streams where cross-stream duplicates
// can appear, and does not participate in that guarantee.
func DedupePermutations(perms []Permutation, estimatedCandidates int) []Permutation {
	byFQDN := make(map[string]Permutation, len(perms))
	ch := make(chan string, len(perms))
	for _, p := range perms {
		if _, ok := byFQDN[p.Domain.FQDN]; !ok {
			byFQDN[p.Domain.FQDN] = p
		}
		ch <- p.Domain.FQDN
	}
	close(ch)

	sd := NewStreamDedupe(ch, estimatedCandidates*32)
	sd.Drain()

	out := make([]Permutation, 0, len(perms))
	for fqdn := range sd.Results() {
		out = append(out, byFQDN[fqdn])
	}
	return out
}
