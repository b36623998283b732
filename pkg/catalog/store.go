// Package catalog keeps the in-memory copy of the plant catalog and
// filters it. It is a pure package: the store is filled by callers that
// fetch records from the backend.
package catalog

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/gnames/acervo/pkg/plant"
)

// Snapshot is an immutable view of the catalog as last fetched.
type Snapshot struct {
	// Plants are records in the order of the backend response.
	Plants []plant.Plant

	// FetchedAt is the time of the fetch that produced the snapshot.
	// It is zero before the first successful fetch.
	FetchedAt time.Time
}

// Len returns the number of records in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Plants)
}

// Store holds the latest catalog snapshot. Replace is the only mutator, it
// swaps the whole snapshot at once, so concurrent readers observe either
// the previous or the new catalog and never a mix of both.
type Store struct {
	snap atomic.Pointer[Snapshot]
}

// NewStore returns an empty store.
func NewStore() *Store {
	res := &Store{}
	res.snap.Store(&Snapshot{})
	return res
}

// Replace discards the current catalog and installs records as the new one.
// The order of records is preserved. If the same identifier occurs more than
// once only its first occurrence is kept.
func (s *Store) Replace(records []plant.Plant, fetchedAt time.Time) {
	seen := make(map[plant.ID]struct{}, len(records))
	plants := make([]plant.Plant, 0, len(records))
	for _, v := range records {
		if _, ok := seen[v.ID]; ok && !v.ID.IsZero() {
			continue
		}
		seen[v.ID] = struct{}{}
		plants = append(plants, v)
	}
	s.snap.Store(&Snapshot{Plants: plants, FetchedAt: fetchedAt})
}

// Snapshot returns the current catalog. Callers must not modify Plants.
func (s *Store) Snapshot() Snapshot {
	return *s.snap.Load()
}

// All returns a copy of the current records.
func (s *Store) All() []plant.Plant {
	return slices.Clone(s.snap.Load().Plants)
}

// Find returns the record with the given identifier.
func (s *Store) Find(id plant.ID) (plant.Plant, bool) {
	for _, v := range s.snap.Load().Plants {
		if v.ID == id {
			return v, true
		}
	}
	return plant.Plant{}, false
}

// Filter searches the current snapshot, see Filter.
func (s *Store) Filter(term string) []plant.Plant {
	return Filter(s.snap.Load().Plants, term)
}
