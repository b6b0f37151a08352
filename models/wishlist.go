package models

import "encoding/json"

// WishlistEntry is one product variant saved to the user's wishlist.
// Entries are immutable snapshots received from the server; the client never
// edits an entry in place, it only removes entries after a confirmed delete.
//
// Field tags follow the wire names of the BeeStore API verbatim, including
// the historical "varientId" spelling.
type WishlistEntry struct {
	// VarientID identifies the product variant. It is the key used for
	// delete and add-to-cart requests. Uniqueness within one wishlist is
	// best effort only: duplicates are tolerated, not deduplicated.
	VarientID string `json:"varientId"`

	ProductName   string `json:"productName"`
	Image         string `json:"image"`
	SellingPrice  string `json:"sellingPrice"`
	MRP           string `json:"MRP"`
	OfferPer      string `json:"offerPer"`
	ProductRating string `json:"productRating"`
	TotalOrders   string `json:"totalOrders"`

	// MinimumQty is the smallest quantity the variant can be ordered in.
	// It is the quantity sent with an add-to-cart request.
	MinimumQty int `json:"minimumQty"`

	// ProductStock is the units currently in stock. Zero or negative means
	// the variant is out of stock and must not be added to a cart.
	ProductStock int `json:"productstock"`
}

// WishlistResponse is the envelope of GET /api/wishlist.
//
// The server is not strict about the shape of the data field: it has been
// observed to return null, an object, or a plain string instead of an array.
// Decoding tolerates every such shape by treating it as an empty list, so a
// malformed payload renders as "no items" rather than an error.
type WishlistResponse struct {
	Data []WishlistEntry `json:"data"`
}

// UnmarshalJSON decodes the envelope, coercing any non-array data field to
// an empty entry list.
func (r *WishlistResponse) UnmarshalJSON(b []byte) error {
	var raw struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	r.Data = nil
	if len(raw.Data) == 0 {
		return nil
	}

	var entries []WishlistEntry
	if err := json.Unmarshal(raw.Data, &entries); err != nil {
		// Non-array data is treated as an empty wishlist.
		return nil
	}

	r.Data = entries
	return nil
}

// DeleteWishlistRequest is the body of DELETE /api/wishlist.
type DeleteWishlistRequest struct {
	VarientID string `json:"varientId"`
	UserID    string `json:"userId"`
}

// DeleteWishlistResponse reports whether the server removed the entry.
// Message carries the server-side reason when Success is false.
type DeleteWishlistResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
