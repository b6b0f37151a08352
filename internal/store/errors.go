package store

import "errors"

var (
	// ErrNoStoredToken is returned by [CredentialStore.Read] when no session
	// token has been persisted, i.e. the user has never signed in on this
	// machine or the token was cleared after a rejection.
	ErrNoStoredToken = errors.New("no stored credential token")
)
