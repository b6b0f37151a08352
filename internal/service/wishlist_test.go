package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arjun-sureshh/beestore-client/internal/logger"
	"github.com/arjun-sureshh/beestore-client/internal/mock"
	"github.com/arjun-sureshh/beestore-client/models"
)

func newWishlistTestEnv(ctrl *gomock.Controller) (*mock.MockStoreAdapter, *wishlistState, WishlistService) {
	storeAdapter := mock.NewMockStoreAdapter(ctrl)
	state := newWishlistState()
	return storeAdapter, state, NewWishlistService(storeAdapter, state, logger.Nop())
}

// ── Sync ─────────────────────────────────────────────────────────────────────

func TestWishlistService_Sync_ReplacesCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeAdapter, _, svc := newWishlistTestEnv(ctrl)

	storeAdapter.EXPECT().FetchWishlist(gomock.Any(), "u-1").Return(entriesWithIDs("v1", "v2"), nil)
	svc.Sync(context.Background(), &models.Identity{UserID: "u-1"})
	assert.Equal(t, []string{"v1", "v2"}, variantIDs(svc.Entries()))

	storeAdapter.EXPECT().FetchWishlist(gomock.Any(), "u-1").Return(entriesWithIDs("v3"), nil)
	svc.Sync(context.Background(), &models.Identity{UserID: "u-1"})
	assert.Equal(t, []string{"v3"}, variantIDs(svc.Entries()),
		"each sync replaces the collection wholesale")
}

func TestWishlistService_Sync_NilIdentity_ClearsWithoutFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, state, svc := newWishlistTestEnv(ctrl)

	gen := state.fetchStarted()
	require.True(t, state.fetchSucceeded(gen, entriesWithIDs("v1")))

	// no FetchWishlist expectation: the adapter must not be called
	svc.Sync(context.Background(), nil)

	assert.Empty(t, svc.Entries())
	assert.False(t, svc.Loading())
}

func TestWishlistService_Sync_NilIdentity_AfterSignIn_KeepsCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeAdapter, state, svc := newWishlistTestEnv(ctrl)

	// A refresh tick reads the identity while nobody is signed in, then a
	// sign-in and a successful fetch land before the tick's Sync executes.
	state.identityResolved(models.Identity{UserID: "u-1"})
	storeAdapter.EXPECT().FetchWishlist(gomock.Any(), "u-1").Return(entriesWithIDs("v1", "v2"), nil)
	svc.Sync(context.Background(), state.Identity())
	require.Equal(t, []string{"v1", "v2"}, variantIDs(svc.Entries()))

	svc.Sync(context.Background(), nil)

	assert.NotNil(t, state.Identity(), "a stale signed-out sync must not sign the user out")
	assert.Equal(t, []string{"v1", "v2"}, variantIDs(svc.Entries()))
}

func TestWishlistService_Sync_FetchError_EmptiesCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeAdapter, _, svc := newWishlistTestEnv(ctrl)

	storeAdapter.EXPECT().FetchWishlist(gomock.Any(), "u-1").Return(entriesWithIDs("v1"), nil)
	svc.Sync(context.Background(), &models.Identity{UserID: "u-1"})
	require.NotEmpty(t, svc.Entries())

	storeAdapter.EXPECT().FetchWishlist(gomock.Any(), "u-1").Return(nil, errors.New("boom"))
	svc.Sync(context.Background(), &models.Identity{UserID: "u-1"})

	assert.Empty(t, svc.Entries(), "a failed fetch leaves an empty collection, not the previous one")
	assert.False(t, svc.Loading())
}

func TestWishlistService_Sync_EmptyWishlist(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeAdapter, _, svc := newWishlistTestEnv(ctrl)

	storeAdapter.EXPECT().FetchWishlist(gomock.Any(), "u-1").Return([]models.WishlistEntry{}, nil)
	svc.Sync(context.Background(), &models.Identity{UserID: "u-1"})

	assert.Empty(t, svc.Entries())
	assert.False(t, svc.Loading())
}

// TestWishlistService_Sync_StaleResponseDiscarded interleaves two syncs: the
// first fetch triggers a complete second sync before returning, so its
// payload arrives after newer data is already in place. The old payload must
// be dropped.
func TestWishlistService_Sync_StaleResponseDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeAdapter, _, svc := newWishlistTestEnv(ctrl)

	identity := &models.Identity{UserID: "u-1"}

	storeAdapter.EXPECT().FetchWishlist(gomock.Any(), "u-1").
		DoAndReturn(func(ctx context.Context, userID string) ([]models.WishlistEntry, error) {
			storeAdapter.EXPECT().FetchWishlist(gomock.Any(), "u-1").Return(entriesWithIDs("new"), nil)
			svc.Sync(ctx, identity) // the newer sync completes first
			return entriesWithIDs("old"), nil
		})

	svc.Sync(context.Background(), identity)

	assert.Equal(t, []string{"new"}, variantIDs(svc.Entries()),
		"the later sync's data must survive the earlier sync resolving late")
	assert.False(t, svc.Loading())
}

// ── Loading ──────────────────────────────────────────────────────────────────

func TestWishlistService_Loading_TrueDuringFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeAdapter, _, svc := newWishlistTestEnv(ctrl)

	var loadingDuringFetch bool
	storeAdapter.EXPECT().FetchWishlist(gomock.Any(), "u-1").
		DoAndReturn(func(ctx context.Context, userID string) ([]models.WishlistEntry, error) {
			loadingDuringFetch = svc.Loading()
			return nil, nil
		})

	require.False(t, svc.Loading())
	svc.Sync(context.Background(), &models.Identity{UserID: "u-1"})

	assert.True(t, loadingDuringFetch)
	assert.False(t, svc.Loading())
}
