package dedupe

import "runtime/debug"

// MapBackend is the in-memory DedupeBackend: a plain set of FQDNs, used by
// StreamDedupe below MaxInMemoryDedupeSize. It is the default for a single
// Domain.All() call, where the candidate count is bounded by the generator
// set and never approaches disk-backend territory.
type MapBackend struct {
	storage map[string]struct{}
}

func NewMapBackend() *MapBackend {
	return &MapBackend{storage: map[string]struct{}{}}
}

// Upsert records an FQDN as seen. Calling it twice with the same FQDN is a
// no-op, which is the whole point: duplicate candidates across generator
// kinds (or across merged streams from multiple base domains) collapse to
// one entry.
func (m *MapBackend) Upsert(elem string) {
	m.storage[elem] = struct{}{}
}

func (m *MapBackend) IterCallback(callback func(elem string)) {
	for k := range m.storage {
		callback(k)
	}
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
	// By default GC doesnot release buffered/allocated memory
	// since there always is possibilitly of needing it again/immediately
	// and releases memory in chunks
	// debug.FreeOSMemory forces GC to release allocated memory at once
	debug.FreeOSMemory()
}
