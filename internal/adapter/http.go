package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/arjun-sureshh/beestore-client/internal/config"
	"github.com/arjun-sureshh/beestore-client/internal/logger"
	"github.com/arjun-sureshh/beestore-client/models"
)

// alreadyInCartMessage is the exact body message the server sends with a 400
// when the variant is already in the cart. The client treats this as success.
const alreadyInCartMessage = "This product variant is already in your cart"

type httpStoreAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPStoreAdapter constructs an HTTP/REST implementation of
// [StoreAdapter]. It normalises and validates the base URL from
// adapterCfg.APIBaseURL and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.APIBaseURL is empty or cannot be parsed as
// a valid URL.
func NewHTTPStoreAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (StoreAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpStoreAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [StoreAdapter]. It stores token (whitespace-trimmed)
// for use in the x-auth-token header of all subsequent requests.
func (h *httpStoreAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [StoreAdapter]. It returns the session token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpStoreAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// WhoAmI implements [StoreAdapter]. It GETs /api/Login with the stored token
// in the x-auth-token header and decodes the identity from the response.
func (h *httpStoreAdapter) WhoAmI(ctx context.Context) (models.Identity, error) {
	var identity models.Identity

	resp, err := h.authedRequest(ctx).
		SetResult(&identity).
		Get("/api/Login")
	if err != nil {
		return models.Identity{}, fmt.Errorf("who am i request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	return identity, nil
}

// FetchWishlist implements [StoreAdapter]. It GETs /api/wishlist with the
// userId query parameter. Decoding goes through
// [models.WishlistResponse.UnmarshalJSON], which coerces any non-array data
// field to an empty list.
func (h *httpStoreAdapter) FetchWishlist(ctx context.Context, userID string) ([]models.WishlistEntry, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("userId", userID).
		Get("/api/wishlist")
	if err != nil {
		return nil, fmt.Errorf("fetch wishlist request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.WishlistResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode wishlist response: %w", err)
	}

	return envelope.Data, nil
}

// DeleteWishlistEntry implements [StoreAdapter]. It sends a DELETE request
// to /api/wishlist carrying the variant and user ids in the body. The
// server's success flag is passed through untouched; a 2xx response with
// Success false is a valid outcome, not an error.
func (h *httpStoreAdapter) DeleteWishlistEntry(ctx context.Context, req models.DeleteWishlistRequest) (models.DeleteWishlistResponse, error) {
	var result models.DeleteWishlistResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Delete("/api/wishlist")
	if err != nil {
		return models.DeleteWishlistResponse{}, fmt.Errorf("delete wishlist request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteWishlistResponse{}, err
	}

	return result, nil
}

// AddToCart implements [StoreAdapter]. It POSTs the request to /api/cart and
// classifies the (status, body) pair into a [models.CartResult] via
// classifyCartResponse. Only transport-level failures are errors.
func (h *httpStoreAdapter) AddToCart(ctx context.Context, req models.AddToCartRequest) (models.CartResult, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/cart")
	if err != nil {
		return models.CartResult{}, fmt.Errorf("add to cart request: %w", err)
	}

	return classifyCartResponse(resp.StatusCode(), resp.Body()), nil
}

// classifyCartResponse maps the add-to-cart response onto a named outcome.
// "Already in cart" is business logic, not an error, so the string match
// lives here at the transport boundary and nowhere else.
func classifyCartResponse(status int, body []byte) models.CartResult {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return models.CartResult{Kind: models.CartAdded}
	}

	message := extractMessage(body)
	if status == http.StatusBadRequest && message == alreadyInCartMessage {
		return models.CartResult{Kind: models.CartAlreadyPresent}
	}

	return models.CartResult{Kind: models.CartRejected, Message: message}
}

// extractMessage pulls the "message" field out of a JSON error body.
// Returns the raw trimmed body when it is not a JSON object with a message.
func extractMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(body))
}

func (h *httpStoreAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())
	if token := h.Token(); token != "" {
		req.SetHeader("x-auth-token", token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
