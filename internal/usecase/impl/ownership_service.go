package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type ownershipService struct {
	businessRepo repository.BusinessRepository
	logger       *slog.Logger
}

// NewOwnershipService creates a new ownership service instance
func NewOwnershipService(businessRepo repository.BusinessRepository, logger *slog.Logger) usecase.OwnershipUsecase {
	return &ownershipService{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// isOwner is the single place encoding who may act on a business.
// A business is owned by the user whose uid equals the business ID.
func isOwner(callerID, businessID string) bool {
	return callerID != "" && callerID == businessID
}

// AuthorizeOwner checks ownership and loads the business
func (s *ownershipService) AuthorizeOwner(ctx context.Context, callerID, businessID string) (*entity.Business, error) {
	if businessID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing businessId")
	}

	if !isOwner(callerID, businessID) {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Ownership check failed",
			slog.String("caller_id", callerID),
			slog.String("business_id", businessID),
		)

		return nil, domainerrors.ErrForbidden
	}

	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}
