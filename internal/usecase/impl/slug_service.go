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

type slugService struct {
	slugRepo  repository.SlugRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSlugService creates a new slug service instance
func NewSlugService(
	slugRepo repository.SlugRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SlugUsecase {
	return &slugService{
		slugRepo:  slugRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// SetSlug claims the normalized slug for the business in one transaction
func (s *slugService) SetSlug(ctx context.Context, businessID, requested string) (string, error) {
	slug := entity.NormalizeSlug(requested)
	if reason := entity.ValidateSlug(slug); reason != "" {
		return "", domainerrors.ErrInvalidSlug.WithDetails(string(reason))
	}

	var previous string
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		businessRepo := txRepoFactory.NewBusinessRepository()
		slugRepo := txRepoFactory.NewSlugRepository()

		// reads
		business, err := businessRepo.FindBusinessByID(ctx, businessID)
		if err != nil {
			return err
		}
		previous = business.Slug

		owner, err := slugRepo.FindSlugOwner(ctx, slug)
		switch {
		case errors.Is(err, repository.ErrSlugNotFound):
		case err != nil:
			return err
		case owner != businessID:
			return domainerrors.ErrSlugTaken
		}

		// writes
		if previous != "" && previous != slug {
			if err := slugRepo.ReleaseSlug(ctx, previous); err != nil {
				return err
			}
		}
		if err := slugRepo.ClaimSlug(ctx, slug, businessID); err != nil {
			return err
		}

		return businessRepo.SetSlug(ctx, businessID, slug)
	})
	if err != nil {
		return "", mapSlugTxError(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Slug claimed",
		slog.String("business_id", businessID),
		slog.String("slug", slug),
		slog.String("previous", previous),
	)

	return slug, nil
}

// ClearSlug releases the business's slug in one transaction
func (s *slugService) ClearSlug(ctx context.Context, businessID string) error {
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		businessRepo := txRepoFactory.NewBusinessRepository()
		slugRepo := txRepoFactory.NewSlugRepository()

		business, err := businessRepo.FindBusinessByID(ctx, businessID)
		if err != nil {
			return err
		}
		if business.Slug == "" {
			return nil
		}

		// Only release the record if it still points at this business.
		owner, err := slugRepo.FindSlugOwner(ctx, business.Slug)
		if err != nil && !errors.Is(err, repository.ErrSlugNotFound) {
			return err
		}
		if err == nil && owner == businessID {
			if err := slugRepo.ReleaseSlug(ctx, business.Slug); err != nil {
				return err
			}
		}

		return businessRepo.ClearSlug(ctx, businessID)
	})
	if err != nil {
		return mapSlugTxError(err)
	}

	return nil
}

// CheckAvailability reports whether a slug can be claimed
func (s *slugService) CheckAvailability(ctx context.Context, requested string) (*usecase.SlugAvailability, error) {
	slug := entity.NormalizeSlug(requested)
	if reason := entity.ValidateSlug(slug); reason != "" {
		return &usecase.SlugAvailability{Slug: slug, Available: false, Reason: reason}, nil
	}

	_, err := s.slugRepo.FindSlugOwner(ctx, slug)
	switch {
	case errors.Is(err, repository.ErrSlugNotFound):
		return &usecase.SlugAvailability{Slug: slug, Available: true}, nil
	case err != nil:
		return nil, errors.Wrap(err, "failed to look up slug")
	default:
		return &usecase.SlugAvailability{Slug: slug, Available: false, Reason: entity.SlugTaken}, nil
	}
}

// ResolveSlug maps a public slug to its business
func (s *slugService) ResolveSlug(ctx context.Context, slug string) (string, error) {
	businessID, err := s.slugRepo.FindSlugOwner(ctx, entity.NormalizeSlug(slug))
	if err != nil {
		if errors.Is(err, repository.ErrSlugNotFound) {
			return "", domainerrors.ErrBusinessNotFound
		}

		return "", errors.Wrap(err, "failed to resolve slug")
	}

	return businessID, nil
}

func mapSlugTxError(err error) error {
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return domainerrors.ErrBusinessNotFound
	}
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return errors.Wrap(err, "slug transaction failed")
}
