package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AccountUsecase manages the connected payment account of a business
type AccountUsecase interface {
	// CreateAccount links a connected account to the business, reusing an existing one
	CreateAccount(ctx context.Context, business *entity.Business) (string, error)

	// CreateOnboardingLink returns an onboarding URL that comes back to returnURL
	CreateOnboardingLink(ctx context.Context, business *entity.Business, returnURL string) (string, error)

	// CreateDashboardLink returns a login link to the connected account dashboard
	CreateDashboardLink(ctx context.Context, business *entity.Business) (string, error)

	// SyncStatus refreshes the cached payment flags from the provider
	SyncStatus(ctx context.Context, business *entity.Business) (*entity.PaymentFlags, error)
}
