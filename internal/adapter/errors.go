package adapter

import "errors"

var (
	// ErrBadRequest is returned for HTTP 400 responses.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized is returned for HTTP 401 responses, typically a
	// missing or rejected session token.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrNotFound is returned for HTTP 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrInternalServerError is returned for HTTP 500 responses.
	ErrInternalServerError = errors.New("internal server error")
)
