// SPDX-License-Identifier: Apache-2.0

// Package service implements the client-side view-model of the BeeStore
// wishlist: session resolution, wishlist synchronisation, and the two
// mutations (remove from wishlist, move to cart).
//
// All services share a single [wishlistState] container. Its transitions are
// named after the events that drive them, so the whole lifecycle is
// enumerable and testable without any UI attached.
package service

import (
	"context"
	"time"

	"github.com/arjun-sureshh/beestore-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mocks.go -package=servicemock

// SessionService resolves the identity of the signed-in user from the locally
// stored credential token. It is the root of the dependency chain: nothing is
// fetched until an identity has been resolved.
type SessionService interface {
	// Resolve reads the stored token and asks the server who it belongs to.
	//
	// With no stored token it clears all dependent state and returns
	// [ErrNotSignedIn] without touching the network. With a token the server
	// is asked to identify the caller; on rejection or transport failure the
	// stored token is removed, dependent state is cleared, and the wrapped
	// error is returned. The caller is expected to redirect to sign-in on
	// any error.
	Resolve(ctx context.Context) (*models.Identity, error)

	// Identity returns the currently resolved identity, or nil when no
	// session is active.
	Identity() *models.Identity
}

// WishlistService owns the authoritative in-memory copy of the wishlist and
// the loading flag. The collection is replaced wholesale on every successful
// fetch and cleared wholesale on any failure or identity loss.
type WishlistService interface {
	// Sync fetches the wishlist for identity and replaces the collection
	// with the result. A nil identity clears the collection and skips the
	// network call. Fetch failures empty the collection and are logged, not
	// returned: the UI renders an empty wishlist either way.
	//
	// Every sync runs under a fresh generation; a response whose generation
	// is no longer current is discarded, so an older fetch resolving late
	// can never overwrite newer state.
	Sync(ctx context.Context, identity *models.Identity)

	// Entries returns a snapshot of the current collection in service
	// response order.
	Entries() []models.WishlistEntry

	// Loading reports whether a fetch is in flight.
	Loading() bool
}

// MutationService executes single-item mutations against the remote service
// and reconciles local state after server confirmation. No retries are
// performed; every failure is terminal for that user action.
type MutationService interface {
	// RemoveEntry deletes one variant from the wishlist. The local entry is
	// removed only after the server confirms (confirmed, not optimistic,
	// removal). At most one delete may be in flight system-wide; a second
	// call while one is outstanding is a no-op reported as [DeleteBusy].
	RemoveEntry(ctx context.Context, variantID string) DeleteResult

	// AddToCart moves a variant into the cart. Local validation failures
	// (no session, missing variant id, zero stock) are reported without a
	// network call. The wishlist collection is never mutated by this
	// operation.
	AddToCart(ctx context.Context, variantID string, stock, minimumQty int) CartAddResult
}

// RefreshJob periodically re-syncs the wishlist in the background.
// Stale-generation discarding makes this safe to run alongside user-driven
// syncs.
type RefreshJob interface {
	// Start launches the background refresh goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
