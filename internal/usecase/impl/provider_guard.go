package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// resolveProvider maps a missing configuration onto the user-facing error.
func resolveProvider(factory service.PaymentProviderFactory) (service.PaymentProvider, error) {
	provider, err := factory.Provider()
	if err != nil {
		if errors.Is(err, service.ErrProviderNotConfigured) {
			return nil, domainerrors.ErrProviderNotConfigured
		}

		return nil, errors.Wrap(err, "failed to resolve payment provider")
	}

	return provider, nil
}

// verifyConnectedAccount rejects the platform's own account and accounts the
// platform cannot see, returning the provider's view of the account.
func verifyConnectedAccount(ctx context.Context, provider service.PaymentProvider, accountID string) (*service.ConnectedAccount, error) {
	platformID, err := provider.PlatformAccountID(ctx)
	if err != nil {
		return nil, providerFailure(err)
	}
	if accountID == platformID {
		return nil, domainerrors.ErrMisconfiguredDestination
	}

	account, err := provider.RetrieveAccount(ctx, accountID)
	if err != nil {
		return nil, domainerrors.ErrInvalidConnectedAccount
	}

	return account, nil
}

// providerFailure converts a provider call failure into ErrProviderError.
func providerFailure(err error) error {
	if providerErr, ok := errors.AsType[*service.ProviderError](err); ok {
		return domainerrors.ErrProviderError.WithDetails(providerErr.Message)
	}

	return domainerrors.ErrProviderError
}

func flagsFromAccount(account *service.ConnectedAccount) entity.PaymentFlags {
	return entity.PaymentFlags{
		ChargesEnabled:     account.ChargesEnabled,
		PayoutsEnabled:     account.PayoutsEnabled,
		OnboardingComplete: account.DetailsSubmitted,
	}
}
