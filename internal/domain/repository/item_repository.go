package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrItemNotFound is returned when an item does not exist under the business.
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidItemPrice is returned when a stored price is neither a number nor a numeric string.
	ErrInvalidItemPrice = errors.New("item price is not numeric")
)

// ItemRepository reads catalog items. Item writes belong to the storefront editor.
type ItemRepository interface {
	// FindItemByID retrieves an item of a business.
	FindItemByID(ctx context.Context, businessID, itemID string) (*entity.Item, error)
}
