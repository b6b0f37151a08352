package tui

import (
	"github.com/arjun-sureshh/beestore-client/internal/service"
	"github.com/arjun-sureshh/beestore-client/models"
)

type identityResolvedMsg struct {
	identity *models.Identity
	err      error
}

type wishlistSyncedMsg struct{}

type deleteDoneMsg struct {
	result service.DeleteResult
}

type cartDoneMsg struct {
	result service.CartAddResult
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

// refreshTickMsg fires on a fixed interval so entries written by the
// background refresher show up without a keypress.
type refreshTickMsg struct{}
