package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun-sureshh/beestore-client/models"
)

func entriesWithIDs(ids ...string) []models.WishlistEntry {
	out := make([]models.WishlistEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.WishlistEntry{VarientID: id, MinimumQty: 1, ProductStock: 5})
	}
	return out
}

func variantIDs(entries []models.WishlistEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.VarientID)
	}
	return out
}

// ── identity ─────────────────────────────────────────────────────────────────

func TestState_IdentityResolved(t *testing.T) {
	s := newWishlistState()
	s.identityResolved(models.Identity{UserID: "u-1"})

	require.NotNil(t, s.Identity())
	assert.Equal(t, "u-1", s.Identity().UserID)
}

func TestState_IdentityCleared_CascadesToCollection(t *testing.T) {
	s := newWishlistState()
	s.identityResolved(models.Identity{UserID: "u-1"})
	gen := s.fetchStarted()
	require.True(t, s.fetchSucceeded(gen, entriesWithIDs("v1", "v2")))

	s.identityCleared()

	assert.Nil(t, s.Identity())
	assert.Empty(t, s.Entries())
	assert.False(t, s.Loading())
}

func TestState_IdentityCleared_InvalidatesInFlightFetch(t *testing.T) {
	s := newWishlistState()
	gen := s.fetchStarted()

	s.identityCleared()

	assert.False(t, s.fetchSucceeded(gen, entriesWithIDs("v1")),
		"a fetch issued before sign-out must not repopulate the collection")
	assert.Empty(t, s.Entries())
}

func TestState_ClearedWhileSignedOut_ClearsWhenStillSignedOut(t *testing.T) {
	s := newWishlistState()
	gen := s.fetchStarted()
	require.True(t, s.fetchSucceeded(gen, entriesWithIDs("v1")))

	assert.True(t, s.clearedWhileSignedOut())
	assert.Empty(t, s.Entries())
	assert.False(t, s.Loading())
}

func TestState_ClearedWhileSignedOut_SkipsAfterSignIn(t *testing.T) {
	s := newWishlistState()
	s.identityResolved(models.Identity{UserID: "u-1"})
	gen := s.fetchStarted()
	require.True(t, s.fetchSucceeded(gen, entriesWithIDs("v1", "v2")))

	assert.False(t, s.clearedWhileSignedOut(),
		"a sign-in landing after the signed-out snapshot must win")
	assert.NotNil(t, s.Identity())
	assert.Equal(t, []string{"v1", "v2"}, variantIDs(s.Entries()))
}

// ── fetch generations ────────────────────────────────────────────────────────

func TestState_FetchSucceeded_ReplacesWholesale(t *testing.T) {
	s := newWishlistState()
	gen := s.fetchStarted()
	require.True(t, s.fetchSucceeded(gen, entriesWithIDs("v1", "v2")))

	gen = s.fetchStarted()
	require.True(t, s.fetchSucceeded(gen, entriesWithIDs("v9")))

	assert.Equal(t, []string{"v9"}, variantIDs(s.Entries()))
	assert.False(t, s.Loading())
}

func TestState_FetchFailed_EmptiesCollection(t *testing.T) {
	s := newWishlistState()
	gen := s.fetchStarted()
	require.True(t, s.fetchSucceeded(gen, entriesWithIDs("v1")))

	gen = s.fetchStarted()
	assert.True(t, s.Loading())
	require.True(t, s.fetchFailed(gen))

	assert.Empty(t, s.Entries())
	assert.False(t, s.Loading())
}

// TestState_StaleFetchDiscarded covers the two-sync interleaving: an older
// fetch that resolves after a newer one completed must not overwrite the
// newer collection.
func TestState_StaleFetchDiscarded(t *testing.T) {
	s := newWishlistState()

	oldGen := s.fetchStarted()
	newGen := s.fetchStarted()

	require.True(t, s.fetchSucceeded(newGen, entriesWithIDs("new")))

	assert.False(t, s.fetchSucceeded(oldGen, entriesWithIDs("old")))
	assert.Equal(t, []string{"new"}, variantIDs(s.Entries()))

	assert.False(t, s.fetchFailed(oldGen), "a stale failure must not empty the fresh collection")
	assert.Equal(t, []string{"new"}, variantIDs(s.Entries()))
}

// TestState_StaleFetch_WouldOverwriteWithoutGuard documents the race the
// generation check closes: applying the late payload as if it were current
// silently replaces the newer data.
func TestState_StaleFetch_WouldOverwriteWithoutGuard(t *testing.T) {
	s := newWishlistState()

	// the first sync will resolve late; the second one wins
	_ = s.fetchStarted()
	newGen := s.fetchStarted()
	require.True(t, s.fetchSucceeded(newGen, entriesWithIDs("new")))

	// An implementation without the generation check applies whatever
	// arrives last; replaying the stale payload under the current
	// generation shows the newer collection being lost.
	require.True(t, s.fetchSucceeded(newGen, entriesWithIDs("old")))
	assert.Equal(t, []string{"old"}, variantIDs(s.Entries()))
}

// ── delete lock ──────────────────────────────────────────────────────────────

func TestState_DeleteLock_SingleSlot(t *testing.T) {
	s := newWishlistState()

	require.True(t, s.deleteStarted("v1"))
	assert.Equal(t, "v1", s.Deleting())

	assert.False(t, s.deleteStarted("v1"), "same target must be rejected while in flight")
	assert.False(t, s.deleteStarted("v2"), "unrelated targets are serialised too")

	s.deleteFinished()
	assert.Empty(t, s.Deleting())
	assert.True(t, s.deleteStarted("v2"))
}

func TestState_DeleteSucceeded_PreservesOrder(t *testing.T) {
	s := newWishlistState()
	gen := s.fetchStarted()
	require.True(t, s.fetchSucceeded(gen, entriesWithIDs("v1", "v2", "v3")))

	s.deleteSucceeded("v2")

	assert.Equal(t, []string{"v1", "v3"}, variantIDs(s.Entries()))
}

func TestState_DeleteSucceeded_RemovesDuplicates(t *testing.T) {
	s := newWishlistState()
	gen := s.fetchStarted()
	require.True(t, s.fetchSucceeded(gen, entriesWithIDs("v1", "v2", "v2", "v3")))

	s.deleteSucceeded("v2")

	assert.Equal(t, []string{"v1", "v3"}, variantIDs(s.Entries()))
}

// ── snapshots ────────────────────────────────────────────────────────────────

func TestState_Entries_ReturnsCopy(t *testing.T) {
	s := newWishlistState()
	gen := s.fetchStarted()
	require.True(t, s.fetchSucceeded(gen, entriesWithIDs("v1", "v2")))

	snapshot := s.Entries()
	snapshot[0].VarientID = "mutated"

	assert.Equal(t, []string{"v1", "v2"}, variantIDs(s.Entries()))
}
