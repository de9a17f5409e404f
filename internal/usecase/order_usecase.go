package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// PlaceOrderInput is a buyer purchase request. Prices are never taken from it.
type PlaceOrderInput struct {
	ItemID          string
	Quantity        int64
	BuyerName       string
	BuyerEmail      string
	Notes           string
	ShippingAddress *entity.Address
}

// OrderUsecase covers the order desk of a business
type OrderUsecase interface {
	// PlaceOrder records a purchase request priced from the stored item
	PlaceOrder(ctx context.Context, businessID string, input *PlaceOrderInput) (*entity.Order, error)

	// ListOrders lists orders newest first, optionally filtered by status
	ListOrders(ctx context.Context, businessID string, status *entity.OrderStatus) ([]*entity.Order, error)

	// AdvanceOrder moves an order forward to in-progress or done
	AdvanceOrder(ctx context.Context, businessID, orderID string, status entity.OrderStatus) (*entity.Order, error)

	// DeleteOrder removes an order without touching the payment side
	DeleteOrder(ctx context.Context, businessID, orderID string) error
}
