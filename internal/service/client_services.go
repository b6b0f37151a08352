package service

import (
	"github.com/arjun-sureshh/beestore-client/internal/adapter"
	"github.com/arjun-sureshh/beestore-client/internal/logger"
	"github.com/arjun-sureshh/beestore-client/internal/store"
)

// ClientServices bundles every client-side service behind one value the UI
// and app runtime can share.
type ClientServices struct {
	SessionService  SessionService
	WishlistService WishlistService
	MutationService MutationService
	RefreshJob      RefreshJob
}

func NewClientServices(localStore *store.ClientStorages, storeAdapter adapter.StoreAdapter, logger *logger.Logger) *ClientServices {
	state := newWishlistState()

	sessionSvc := NewSessionService(localStore, storeAdapter, state, logger)
	wishlistSvc := NewWishlistService(storeAdapter, state, logger)
	mutationSvc := NewMutationService(storeAdapter, state, logger)

	return &ClientServices{
		SessionService:  sessionSvc,
		WishlistService: wishlistSvc,
		MutationService: mutationSvc,
		RefreshJob:      NewRefreshJob(sessionSvc, wishlistSvc),
	}
}
