package models

// Identity is the resolved representation of the signed-in user as returned
// by the identity endpoint. It is owned by the session service for the
// duration of one authenticated session and becomes nil on sign-out or
// token rejection.
type Identity struct {
	// UserID is the unique identifier assigned by the server.
	// Every wishlist and cart request is keyed by this value.
	UserID string `json:"_id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the account email address.
	Email string `json:"email"`

	// Mobile is the account phone number, if any.
	Mobile string `json:"mobile"`
}
