package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OwnershipUsecase decides whether a caller may act on a business.
type OwnershipUsecase interface {
	// AuthorizeOwner returns the business when callerID owns businessID.
	// It fails with ErrForbidden before touching the store when the caller is not the owner,
	// and with ErrBusinessNotFound when the business does not exist.
	AuthorizeOwner(ctx context.Context, callerID, businessID string) (*entity.Business, error)
}
