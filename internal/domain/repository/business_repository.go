// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when a business document does not exist.
	ErrBusinessNotFound = errors.New("business not found")
)

// BusinessRepository defines the business document operations used by the payment core.
type BusinessRepository interface {
	// FindBusinessByID retrieves a business by its document ID.
	FindBusinessByID(ctx context.Context, businessID string) (*entity.Business, error)

	// FindBusinessByStripeAccountID returns the business linked to a connected account.
	// At most one match is expected.
	FindBusinessByStripeAccountID(ctx context.Context, accountID string) (*entity.Business, error)

	// MergePayment merge-writes the given payment fields, leaving the others intact.
	MergePayment(ctx context.Context, businessID string, update *entity.PaymentUpdate) error

	// SetSlug points the business at a claimed slug.
	SetSlug(ctx context.Context, businessID, slug string) error

	// ClearSlug removes the slug field from the business.
	ClearSlug(ctx context.Context, businessID string) error
}
