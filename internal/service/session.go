package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/arjun-sureshh/beestore-client/internal/adapter"
	"github.com/arjun-sureshh/beestore-client/internal/logger"
	"github.com/arjun-sureshh/beestore-client/internal/store"
	"github.com/arjun-sureshh/beestore-client/models"
)

type sessionService struct {
	localStore *store.ClientStorages
	adapter    adapter.StoreAdapter
	state      *wishlistState
	logger     *logger.Logger
}

func NewSessionService(localStore *store.ClientStorages, storeAdapter adapter.StoreAdapter, state *wishlistState, logger *logger.Logger) SessionService {
	return &sessionService{localStore: localStore, adapter: storeAdapter, state: state, logger: logger}
}

// Resolve implements [SessionService].
func (s *sessionService) Resolve(ctx context.Context) (*models.Identity, error) {
	token, err := s.localStore.Credentials.Read()
	if err != nil {
		if !errors.Is(err, store.ErrNoStoredToken) {
			s.logger.Error().Err(err).Msg("read stored credential")
		}
		s.logger.Debug().Msg("no user signed in")
		s.state.identityCleared()
		return nil, ErrNotSignedIn
	}

	s.adapter.SetToken(token)

	identity, err := s.adapter.WhoAmI(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("error fetching user details")
		s.state.identityCleared()
		s.adapter.SetToken("")
		if clearErr := s.localStore.Credentials.Clear(); clearErr != nil {
			s.logger.Error().Err(clearErr).Msg("clear rejected credential")
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}

	s.logger.Debug().Str("userId", identity.UserID).Msg("identity resolved")
	s.state.identityResolved(identity)
	return &identity, nil
}

// Identity implements [SessionService].
func (s *sessionService) Identity() *models.Identity {
	return s.state.Identity()
}
