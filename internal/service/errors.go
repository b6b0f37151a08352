package service

import "errors"

var (
	// ErrNotSignedIn is returned by [SessionService.Resolve] when no
	// credential token is stored locally. No network call was made.
	ErrNotSignedIn = errors.New("not signed in")
)
