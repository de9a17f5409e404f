package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrOrderNotFound is returned when an order does not exist under the business.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the order document operations.
type OrderRepository interface {
	// CreateOrder persists a new order and fills in its ID.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order of a business.
	FindOrderByID(ctx context.Context, businessID, orderID string) (*entity.Order, error)

	// ListOrders returns the orders of a business newest first, optionally filtered by status.
	ListOrders(ctx context.Context, businessID string, status *entity.OrderStatus) ([]*entity.Order, error)

	// UpdateOrderStatus merge-writes the status of an order.
	UpdateOrderStatus(ctx context.Context, businessID, orderID string, status entity.OrderStatus) error

	// MarkOrderPaid merge-writes status paid, the session ID and a server paid-at timestamp.
	MarkOrderPaid(ctx context.Context, businessID, orderID, sessionID string) error

	// AttachSession merge-writes the session ID and paid-at timestamp without touching status.
	AttachSession(ctx context.Context, businessID, orderID, sessionID string) error

	// DeleteOrder removes an order.
	DeleteOrder(ctx context.Context, businessID, orderID string) error
}
