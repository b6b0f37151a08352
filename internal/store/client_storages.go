package store

import (
	"github.com/arjun-sureshh/beestore-client/internal/config"
	"github.com/arjun-sureshh/beestore-client/internal/logger"
)

// ClientStorages groups all client-side storage backends into a single value
// that can be passed around the service layer. Currently it holds only the
// credential token store; additional stores can be added here as the feature
// set grows.
type ClientStorages struct {
	// Credentials is the file-backed store for the session token.
	Credentials CredentialStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	return &ClientStorages{
		Credentials: NewFileCredentialStore(cfg.Credentials, logger),
	}, nil
}
