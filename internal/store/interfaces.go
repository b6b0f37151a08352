// SPDX-License-Identifier: Apache-2.0

// Package store implements local persistence for the beestore client.
//
// The client keeps almost no local state: the only thing persisted between
// runs is the session token issued at sign-in, held in a single file. The
// token is removed whenever the server rejects it, forcing a fresh sign-in.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// CredentialStore is the local store for the user's session token.
// Implementations hold at most one token at a time.
type CredentialStore interface {
	// Read returns the stored session token.
	// Returns [ErrNoStoredToken] if no token is currently stored.
	Read() (string, error)

	// Write persists token, replacing any previously stored one.
	Write(token string) error

	// Clear removes the stored token. Clearing an empty store is not an
	// error.
	Clear() error
}
