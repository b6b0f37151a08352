// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// BeeStore API.
//
// The primary abstraction is [StoreAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPStoreAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401). Add-to-cart responses are
// the exception: the server reports "already in cart" as a 400, which is not
// an error for the client, so AddToCart classifies (status, body) into a
// [models.CartResult] instead of mapping the status code blindly.
package adapter

import (
	"context"

	"github.com/arjun-sureshh/beestore-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_adapter_mock.go -package=mock

// StoreAdapter defines transport-agnostic communication with the BeeStore
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type StoreAdapter interface {
	// SetToken stores the session token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the session token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// WhoAmI resolves the identity behind the stored session token via
	// GET /api/Login. Returns [ErrUnauthorized] (wrapped) if the server
	// rejects the token.
	WhoAmI(ctx context.Context) (models.Identity, error)

	// FetchWishlist retrieves the wishlist for userID via
	// GET /api/wishlist?userId=. A response whose data field is not an
	// array decodes as an empty wishlist, not an error.
	FetchWishlist(ctx context.Context, userID string) ([]models.WishlistEntry, error)

	// DeleteWishlistEntry asks the server to remove one variant from the
	// wishlist via DELETE /api/wishlist. A 2xx response is returned as a
	// [models.DeleteWishlistResponse] whose Success flag may still be false;
	// the entry must only be dropped locally when Success is true.
	DeleteWishlistEntry(ctx context.Context, req models.DeleteWishlistRequest) (models.DeleteWishlistResponse, error)

	// AddToCart adds a variant to the user's cart via POST /api/cart and
	// classifies the response into a [models.CartResult]. Only transport
	// failures are returned as errors; server-side refusals come back as
	// CartRejected results.
	AddToCart(ctx context.Context, req models.AddToCartRequest) (models.CartResult, error)
}
