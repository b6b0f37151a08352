package service

import (
	"context"

	"github.com/arjun-sureshh/beestore-client/internal/adapter"
	"github.com/arjun-sureshh/beestore-client/internal/logger"
	"github.com/arjun-sureshh/beestore-client/models"
)

type wishlistService struct {
	adapter adapter.StoreAdapter
	state   *wishlistState
	logger  *logger.Logger
}

func NewWishlistService(storeAdapter adapter.StoreAdapter, state *wishlistState, logger *logger.Logger) WishlistService {
	return &wishlistService{adapter: storeAdapter, state: state, logger: logger}
}

// Sync implements [WishlistService].
func (w *wishlistService) Sync(ctx context.Context, identity *models.Identity) {
	if identity == nil {
		if !w.state.clearedWhileSignedOut() {
			w.logger.Debug().Msg("user signed in since snapshot, keeping wishlist")
			return
		}
		w.logger.Debug().Msg("no user logged in, skipping wishlist fetch")
		return
	}

	gen := w.state.fetchStarted()

	entries, err := w.adapter.FetchWishlist(ctx, identity.UserID)
	if err != nil {
		w.logger.Error().Err(err).Str("userId", identity.UserID).Msg("error fetching wishlist")
		if !w.state.fetchFailed(gen) {
			w.logger.Debug().Uint64("generation", gen).Msg("discarding stale wishlist failure")
		}
		return
	}

	if !w.state.fetchSucceeded(gen, entries) {
		w.logger.Debug().Uint64("generation", gen).Msg("discarding stale wishlist response")
		return
	}

	w.logger.Debug().Int("count", len(entries)).Msg("wishlist synced")
}

// Entries implements [WishlistService].
func (w *wishlistService) Entries() []models.WishlistEntry {
	return w.state.Entries()
}

// Loading implements [WishlistService].
func (w *wishlistService) Loading() bool {
	return w.state.Loading()
}
