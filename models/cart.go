package models

// AddToCartRequest is the body of POST /api/cart.
type AddToCartRequest struct {
	CartQty   int    `json:"cartQty"`
	VarientID string `json:"variantId"`
	UserID    string `json:"userId"`
}

// CartResultKind classifies the outcome of an add-to-cart call.
// Classification is done once at the transport boundary so callers switch on
// a named case instead of comparing status codes and message strings.
type CartResultKind int

const (
	// CartAdded means the server created a new cart line (HTTP 201).
	CartAdded CartResultKind = iota

	// CartAlreadyPresent means the variant was already in the cart.
	// The server reports this as an error, but for the client it is
	// equivalent to success: the item is in the cart either way.
	CartAlreadyPresent

	// CartRejected covers every other server-side refusal.
	CartRejected
)

// CartResult is the classified response of an add-to-cart request.
type CartResult struct {
	Kind CartResultKind

	// Message is the server-provided reason when Kind is CartRejected.
	Message string
}

// Ok reports whether the variant ended up in the cart.
func (r CartResult) Ok() bool {
	return r.Kind == CartAdded || r.Kind == CartAlreadyPresent
}
