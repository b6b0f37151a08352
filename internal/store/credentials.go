package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arjun-sureshh/beestore-client/internal/config"
	"github.com/arjun-sureshh/beestore-client/internal/logger"
)

type fileCredentialStore struct {
	path   string
	logger *logger.Logger
}

// NewFileCredentialStore constructs a [CredentialStore] backed by a single
// file at cfg.FilePath. The parent directory is created on first Write; the
// file is written with 0600 permissions since it holds a live session token.
func NewFileCredentialStore(cfg config.ClientCredentials, logger *logger.Logger) CredentialStore {
	return &fileCredentialStore{path: cfg.FilePath, logger: logger}
}

// Read implements [CredentialStore]. Whitespace around the stored token is
// trimmed; an existing but empty file counts as no token.
func (s *fileCredentialStore) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoStoredToken
		}
		return "", fmt.Errorf("read credential file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoStoredToken
	}
	return token, nil
}

// Write implements [CredentialStore].
func (s *fileCredentialStore) Write(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(strings.TrimSpace(token)+"\n"), 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}

	s.logger.Debug().Str("path", s.path).Msg("credential token stored")
	return nil
}

// Clear implements [CredentialStore].
func (s *fileCredentialStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential file: %w", err)
	}

	s.logger.Debug().Str("path", s.path).Msg("credential token cleared")
	return nil
}
