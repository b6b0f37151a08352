package service

import (
	"context"

	"github.com/arjun-sureshh/beestore-client/internal/adapter"
	"github.com/arjun-sureshh/beestore-client/internal/logger"
	"github.com/arjun-sureshh/beestore-client/models"
)

const outOfStockMessage = "This product is out of stock."
const addToCartFallbackMessage = "Failed to add to cart"

type mutationService struct {
	adapter adapter.StoreAdapter
	state   *wishlistState
	logger  *logger.Logger
}

func NewMutationService(storeAdapter adapter.StoreAdapter, state *wishlistState, logger *logger.Logger) MutationService {
	return &mutationService{adapter: storeAdapter, state: state, logger: logger}
}

// RemoveEntry implements [MutationService].
func (m *mutationService) RemoveEntry(ctx context.Context, variantID string) DeleteResult {
	identity := m.state.Identity()
	if identity == nil {
		m.logger.Debug().Msg("no user logged in, cannot delete")
		return DeleteResult{Outcome: DeleteNoSession}
	}

	if !m.state.deleteStarted(variantID) {
		m.logger.Debug().Str("varientId", variantID).Msg("deletion in progress, please wait")
		return DeleteResult{Outcome: DeleteBusy}
	}
	defer m.state.deleteFinished()

	resp, err := m.adapter.DeleteWishlistEntry(ctx, models.DeleteWishlistRequest{
		VarientID: variantID,
		UserID:    identity.UserID,
	})
	if err != nil {
		m.logger.Error().Err(err).Str("varientId", variantID).Msg("wishlist delete error")
		return DeleteResult{Outcome: DeleteFailed}
	}

	if !resp.Success {
		m.logger.Error().Str("varientId", variantID).Str("reason", resp.Message).Msg("failed to delete from wishlist")
		return DeleteResult{Outcome: DeleteRejected, Message: resp.Message}
	}

	m.state.deleteSucceeded(variantID)
	m.logger.Debug().Str("varientId", variantID).Msg("removed variant from wishlist")
	return DeleteResult{Outcome: DeleteDone}
}

// AddToCart implements [MutationService].
func (m *mutationService) AddToCart(ctx context.Context, variantID string, stock, minimumQty int) CartAddResult {
	identity := m.state.Identity()
	if identity == nil {
		m.logger.Debug().Msg("no user logged in, redirecting to login")
		return CartAddResult{Outcome: CartNoSession}
	}
	if variantID == "" {
		m.logger.Error().Msg("no product variant id")
		return CartAddResult{Outcome: CartNoVariant}
	}
	if stock <= 0 {
		return CartAddResult{Outcome: CartOutOfStock, Message: outOfStockMessage}
	}

	result, err := m.adapter.AddToCart(ctx, models.AddToCartRequest{
		CartQty:   minimumQty,
		VarientID: variantID,
		UserID:    identity.UserID,
	})
	if err != nil {
		m.logger.Error().Err(err).Str("varientId", variantID).Msg("error adding to cart")
		return CartAddResult{Outcome: CartFailed, Message: addToCartFallbackMessage}
	}

	if result.Ok() {
		return CartAddResult{Outcome: CartDone}
	}

	message := result.Message
	if message == "" {
		message = addToCartFallbackMessage
	}
	m.logger.Error().Str("varientId", variantID).Str("reason", message).Msg("add to cart rejected")
	return CartAddResult{Outcome: CartFailed, Message: message}
}
