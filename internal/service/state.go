package service

import (
	"sync"

	"github.com/arjun-sureshh/beestore-client/models"
)

// wishlistState is the single shared state container behind the services:
// the resolved identity, the wishlist collection, the loading flag, the
// fetch generation, and the delete lock. Each transition method corresponds
// to one lifecycle event, so the reachable states are enumerable in tests.
//
// The UI runs single-threaded, but the background refresher pokes the same
// state from its own goroutine, hence the mutex.
type wishlistState struct {
	mu sync.Mutex

	identity *models.Identity
	entries  []models.WishlistEntry
	loading  bool

	// generation counts fetches. A fetch result is applied only while its
	// generation is still current; anything else is a stale response from a
	// superseded sync and is discarded.
	generation uint64

	// deleting holds the variant id of the single in-flight delete, or ""
	// when idle. One global slot, deliberately not per-item: concurrent
	// deletes of unrelated targets are serialised too.
	deleting string
}

func newWishlistState() *wishlistState {
	return &wishlistState{}
}

// identityResolved installs a freshly resolved identity.
func (s *wishlistState) identityResolved(identity models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &identity
}

// identityCleared drops the identity and everything dependent on it: the
// collection is emptied, loading is cleared, and the generation is bumped so
// any fetch still in flight resolves stale.
func (s *wishlistState) identityCleared() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.entries = nil
	s.loading = false
	s.generation++
}

// clearedWhileSignedOut empties the collection only while no identity is
// installed, and reports whether it did. A sync launched from a signed-out
// snapshot may execute after a sign-in lands in between; in that case the
// identity is no longer nil and the stale clear must not apply.
func (s *wishlistState) clearedWhileSignedOut() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity != nil {
		return false
	}
	s.entries = nil
	s.loading = false
	s.generation++
	return true
}

// fetchStarted begins a new fetch and returns its generation.
func (s *wishlistState) fetchStarted() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.loading = true
	return s.generation
}

// fetchSucceeded replaces the collection wholesale with entries, provided
// gen is still the current generation. Returns false when the result was
// stale and discarded.
func (s *wishlistState) fetchSucceeded(gen uint64, entries []models.WishlistEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.entries = entries
	s.loading = false
	return true
}

// fetchFailed empties the collection, provided gen is still the current
// generation. Returns false when the failure belonged to a superseded fetch.
func (s *wishlistState) fetchFailed(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.entries = nil
	s.loading = false
	return true
}

// deleteStarted acquires the delete lock for target. Returns false when a
// delete is already in flight, regardless of target.
func (s *wishlistState) deleteStarted(target string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleting != "" {
		return false
	}
	s.deleting = target
	return true
}

// deleteSucceeded removes every entry matching target from the collection,
// preserving the relative order of the rest.
func (s *wishlistState) deleteSucceeded(target string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	for _, entry := range s.entries {
		if entry.VarientID != target {
			kept = append(kept, entry)
		}
	}
	s.entries = kept
}

// deleteFinished releases the delete lock. Called on every exit path.
func (s *wishlistState) deleteFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleting = ""
}

// Identity returns the current identity, or nil when signed out.
func (s *wishlistState) Identity() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Entries returns a copy of the collection in service response order.
func (s *wishlistState) Entries() []models.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return nil
	}
	out := make([]models.WishlistEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Loading reports whether a fetch is in flight.
func (s *wishlistState) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Deleting returns the variant id of the in-flight delete, or "".
func (s *wishlistState) Deleting() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleting
}
