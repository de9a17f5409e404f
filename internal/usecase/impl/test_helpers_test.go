package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

const (
	testBusinessID      = "uid-owner-1"
	testAccountID       = "acct_connected_1"
	testPlatformAccount = "acct_platform"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(retryWebhook bool) *config.Config {
	return &config.Config{
		Stripe: &config.StripeConfig{
			SecretKey:                      "sk_test_123",
			WebhookSecret:                  "whsec_test",
			DefaultCurrency:                "usd",
			RetryWebhookOnPersistenceError: retryWebhook,
		},
	}
}

func newConnectedBusiness() *entity.Business {
	return &entity.Business{
		ID:           testBusinessID,
		Name:         "Test Shop",
		CompanyEmail: "shop@example.com",
		Payment: entity.Payment{
			StripeAccountID: testAccountID,
			Method:          entity.PaymentMethodStripe,
		},
	}
}

// txRepos holds the repositories handed to a mocked transaction.
type txRepos struct {
	factory      *mockRepo.MockRepositoryFactory
	businessRepo *mockRepo.MockBusinessRepository
	orderRepo    *mockRepo.MockOrderRepository
	slugRepo     *mockRepo.MockSlugRepository
}

// expectTransaction makes txManager run the callback against fresh repository mocks
// prepared by setup, returning whatever the callback returns.
func expectTransaction(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	setup func(repos *txRepos),
) {
	t.Helper()

	repos := &txRepos{
		factory:      mockRepo.NewMockRepositoryFactory(t),
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		slugRepo:     mockRepo.NewMockSlugRepository(t),
	}
	repos.factory.EXPECT().NewBusinessRepository().Return(repos.businessRepo).Maybe()
	repos.factory.EXPECT().NewOrderRepository().Return(repos.orderRepo).Maybe()
	repos.factory.EXPECT().NewSlugRepository().Return(repos.slugRepo).Maybe()

	setup(repos)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		}).
		Once()
}

// expectValidDestination prepares the provider for the connected-account checks.
func expectValidDestination(ctx context.Context, provider *mockService.MockPaymentProvider, chargesEnabled bool) {
	provider.EXPECT().PlatformAccountID(ctx).Return(testPlatformAccount, nil)
	provider.EXPECT().RetrieveAccount(ctx, testAccountID).Return(&service.ConnectedAccount{
		ID:               testAccountID,
		ChargesEnabled:   chargesEnabled,
		PayoutsEnabled:   chargesEnabled,
		DetailsSubmitted: chargesEnabled,
	}, nil)
}
