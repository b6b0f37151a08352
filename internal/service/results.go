package service

// DeleteOutcome names the terminal state of a RemoveEntry call.
type DeleteOutcome int

const (
	// DeleteDone means the server confirmed the removal and the entry was
	// dropped from the local collection.
	DeleteDone DeleteOutcome = iota

	// DeleteNoSession means no identity is resolved; nothing was sent.
	DeleteNoSession

	// DeleteBusy means another delete was already in flight; nothing was
	// sent and the collection is untouched.
	DeleteBusy

	// DeleteRejected means the server answered but refused the removal
	// (success flag false). The collection is untouched.
	DeleteRejected

	// DeleteFailed means the request failed at the transport level.
	// The collection is untouched.
	DeleteFailed
)

// DeleteResult is the classified outcome of a RemoveEntry call.
type DeleteResult struct {
	Outcome DeleteOutcome

	// Message carries the server-side reason when Outcome is DeleteRejected.
	Message string
}

// CartOutcome names the terminal state of an AddToCart call.
type CartOutcome int

const (
	// CartDone means the variant is in the cart, either freshly added or
	// already present. The UI should navigate to the cart.
	CartDone CartOutcome = iota

	// CartNoSession means no identity is resolved; the UI should redirect
	// to sign-in.
	CartNoSession

	// CartNoVariant means the variant id was empty. Logged only; a
	// well-formed collection never produces this.
	CartNoVariant

	// CartOutOfStock means the variant has no stock. No request was sent;
	// the UI shows an out-of-stock notice.
	CartOutOfStock

	// CartFailed means the server refused or the request failed. Message
	// holds the text to show the user.
	CartFailed
)

// CartAddResult is the classified outcome of an AddToCart call.
type CartAddResult struct {
	Outcome CartOutcome

	// Message is the user-facing text for CartOutOfStock and CartFailed.
	Message string
}
