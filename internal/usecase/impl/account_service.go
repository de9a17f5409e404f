package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type accountService struct {
	businessRepo    repository.BusinessRepository
	providerFactory service.PaymentProviderFactory
	logger          *slog.Logger
}

// NewAccountService creates a new connected account service instance
func NewAccountService(
	businessRepo repository.BusinessRepository,
	providerFactory service.PaymentProviderFactory,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		businessRepo:    businessRepo,
		providerFactory: providerFactory,
		logger:          logger,
	}
}

// CreateAccount links a connected account to the business, reusing an existing one
func (s *accountService) CreateAccount(ctx context.Context, business *entity.Business) (string, error) {
	provider, err := resolveProvider(s.providerFactory)
	if err != nil {
		return "", err
	}

	if business.HasConnectedAccount() {
		return business.Payment.StripeAccountID, nil
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	accountID, err := provider.CreateConnectedAccount(ctx, business.CompanyEmail, connectedAccountIdempotencyKey(business.ID))
	if err != nil {
		logger.Error("Failed to create connected account",
			slog.String("business_id", business.ID),
			slog.Any("error", err),
		)

		return "", providerFailure(err)
	}

	method := entity.PaymentMethodStripe
	if err := s.businessRepo.MergePayment(ctx, business.ID, &entity.PaymentUpdate{
		StripeAccountID: &accountID,
		Method:          &method,
	}); err != nil {
		return "", errors.Wrap(err, "failed to persist connected account")
	}

	business.Payment.StripeAccountID = accountID
	business.Payment.Method = method

	logger.Info("Connected account created",
		slog.String("business_id", business.ID),
		slog.String("account_id", accountID),
	)

	return accountID, nil
}

// CreateOnboardingLink returns an onboarding URL that comes back to returnURL
func (s *accountService) CreateOnboardingLink(ctx context.Context, business *entity.Business, returnURL string) (string, error) {
	provider, err := resolveProvider(s.providerFactory)
	if err != nil {
		return "", err
	}

	if !business.HasConnectedAccount() {
		return "", domainerrors.ErrAccountNotCreated
	}

	accountID := business.Payment.StripeAccountID
	if _, err := verifyConnectedAccount(ctx, provider, accountID); err != nil {
		return "", err
	}

	url, err := provider.CreateOnboardingLink(ctx, accountID, returnURL, returnURL)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to create onboarding link",
			slog.String("business_id", business.ID),
			slog.Any("error", err),
		)

		return "", providerFailure(err)
	}

	return url, nil
}

// CreateDashboardLink returns a login link to the connected account dashboard
func (s *accountService) CreateDashboardLink(ctx context.Context, business *entity.Business) (string, error) {
	provider, err := resolveProvider(s.providerFactory)
	if err != nil {
		return "", err
	}

	if !business.HasConnectedAccount() {
		return "", domainerrors.ErrAccountNotCreated
	}

	url, err := provider.CreateDashboardLink(ctx, business.Payment.StripeAccountID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to create dashboard link",
			slog.String("business_id", business.ID),
			slog.Any("error", err),
		)

		return "", providerFailure(err)
	}

	return url, nil
}

// SyncStatus refreshes the cached payment flags from the provider
func (s *accountService) SyncStatus(ctx context.Context, business *entity.Business) (*entity.PaymentFlags, error) {
	provider, err := resolveProvider(s.providerFactory)
	if err != nil {
		return nil, err
	}

	if !business.HasConnectedAccount() {
		return nil, domainerrors.ErrAccountNotCreated
	}

	account, err := verifyConnectedAccount(ctx, provider, business.Payment.StripeAccountID)
	if err != nil {
		return nil, err
	}

	flags := flagsFromAccount(account)
	if err := s.businessRepo.MergePayment(ctx, business.ID, &entity.PaymentUpdate{Flags: &flags}); err != nil {
		return nil, errors.Wrap(err, "failed to persist payment flags")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Payment flags synced",
		slog.String("business_id", business.ID),
		slog.Bool("charges_enabled", flags.ChargesEnabled),
		slog.Bool("payouts_enabled", flags.PayoutsEnabled),
		slog.Bool("onboarding_complete", flags.OnboardingComplete),
	)

	return &flags, nil
}

func connectedAccountIdempotencyKey(businessID string) string {
	return "connect-account-" + businessID
}
