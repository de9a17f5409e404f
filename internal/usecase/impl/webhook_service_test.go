package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testPayload   = []byte(`{"id":"evt_1"}`)
	testSignature = "t=1,v1=abc"
)

type webhookServiceFixtures struct {
	service      *webhookService
	businessRepo *mockRepo.MockBusinessRepository
	txManager    *mockRepo.MockTransactionManager
	provider     *mockService.MockPaymentProvider
	publisher    *mockService.MockEventPublisher
}

func createTestWebhookService(t *testing.T, retry bool) webhookServiceFixtures {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockService.NewMockPaymentProviderFactory(t)
	provider := mockService.NewMockPaymentProvider(t)
	publisher := mockService.NewMockEventPublisher(t)

	factory.EXPECT().Provider().Return(provider, nil).Maybe()

	svc := NewWebhookService(businessRepo, txManager, factory, publisher, newTestConfig(retry), newDiscardLogger()).(*webhookService)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	return webhookServiceFixtures{
		service:      svc,
		businessRepo: businessRepo,
		txManager:    txManager,
		provider:     provider,
		publisher:    publisher,
	}
}

func (fx webhookServiceFixtures) expectEvent(event *service.WebhookEvent) {
	fx.provider.EXPECT().ConstructWebhookEvent(testPayload, testSignature).Return(event, nil)
}

func checkoutCompletedEvent(metadata map[string]string) *service.WebhookEvent {
	return &service.WebhookEvent{
		ID:   "evt_1",
		Type: "checkout.session.completed",
		CheckoutSessionCompleted: &service.CheckoutSessionCompletedPayload{
			SessionID: "cs_1",
			Metadata:  metadata,
		},
	}
}

func TestWebhookService_BadSignatureMutatesNothing(t *testing.T) {
	fx := createTestWebhookService(t, false)

	fx.provider.EXPECT().
		ConstructWebhookEvent(testPayload, "forged").
		Return(nil, errors.Wrap(service.ErrWebhookSignature, "no valid signature"))

	err := fx.service.HandleWebhook(context.Background(), testPayload, "forged")

	assert.ErrorIs(t, err, domainerrors.ErrSignatureInvalid)
}

func TestWebhookService_ProviderNotConfigured(t *testing.T) {
	factory := mockService.NewMockPaymentProviderFactory(t)
	factory.EXPECT().Provider().Return(nil, service.ErrProviderNotConfigured)

	svc := NewWebhookService(mockRepo.NewMockBusinessRepository(t), mockRepo.NewMockTransactionManager(t),
		factory, nil, newTestConfig(false), newDiscardLogger())

	err := svc.HandleWebhook(context.Background(), testPayload, testSignature)

	assert.ErrorIs(t, err, domainerrors.ErrProviderNotConfigured)
}

func TestWebhookService_AccountUpdated_MergesFlags(t *testing.T) {
	fx := createTestWebhookService(t, false)

	ctx := context.Background()
	fx.expectEvent(&service.WebhookEvent{
		ID:   "evt_2",
		Type: "account.updated",
		AccountUpdated: &service.AccountUpdatedPayload{Account: service.ConnectedAccount{
			ID:               testAccountID,
			ChargesEnabled:   true,
			PayoutsEnabled:   true,
			DetailsSubmitted: true,
		}},
	})
	fx.businessRepo.EXPECT().FindBusinessByStripeAccountID(ctx, testAccountID).Return(newConnectedBusiness(), nil)
	fx.businessRepo.EXPECT().
		MergePayment(ctx, testBusinessID, &entity.PaymentUpdate{Flags: &entity.PaymentFlags{
			ChargesEnabled:     true,
			PayoutsEnabled:     true,
			OnboardingComplete: true,
		}}).
		Return(nil)

	require.NoError(t, fx.service.HandleWebhook(ctx, testPayload, testSignature))
}

func TestWebhookService_AccountUpdated_UnknownAccountIsNoop(t *testing.T) {
	fx := createTestWebhookService(t, false)

	ctx := context.Background()
	fx.expectEvent(&service.WebhookEvent{
		ID:             "evt_3",
		Type:           "account.updated",
		AccountUpdated: &service.AccountUpdatedPayload{Account: service.ConnectedAccount{ID: "acct_unknown"}},
	})
	fx.businessRepo.EXPECT().FindBusinessByStripeAccountID(ctx, "acct_unknown").Return(nil, repository.ErrBusinessNotFound)

	require.NoError(t, fx.service.HandleWebhook(ctx, testPayload, testSignature))
}

func TestWebhookService_CheckoutCompleted_MarksPaidAndPublishes(t *testing.T) {
	fx := createTestWebhookService(t, false)

	ctx := context.Background()
	fx.expectEvent(checkoutCompletedEvent(map[string]string{"businessId": testBusinessID, "orderId": "order-1"}))
	expectTransaction(t, fx.txManager, func(repos *txRepos) {
		repos.orderRepo.EXPECT().FindOrderByID(ctx, testBusinessID, "order-1").
			Return(&entity.Order{ID: "order-1", Status: entity.OrderStatusPendingPayment}, nil)
		repos.orderRepo.EXPECT().MarkOrderPaid(ctx, testBusinessID, "order-1", "cs_1").Return(nil)
	})
	fx.publisher.EXPECT().
		PublishOrderPaid(ctx, &service.OrderPaidEvent{
			EventID:    "evt_1",
			BusinessID: testBusinessID,
			OrderID:    "order-1",
			SessionID:  "cs_1",
			PaidAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		}).
		Return(nil)

	require.NoError(t, fx.service.HandleWebhook(ctx, testPayload, testSignature))
}

func TestWebhookService_CheckoutCompleted_ReplayIsIdempotent(t *testing.T) {
	fx := createTestWebhookService(t, false)

	ctx := context.Background()
	fx.expectEvent(checkoutCompletedEvent(map[string]string{"businessId": testBusinessID, "orderId": "order-1"}))
	expectTransaction(t, fx.txManager, func(repos *txRepos) {
		repos.orderRepo.EXPECT().FindOrderByID(ctx, testBusinessID, "order-1").
			Return(&entity.Order{ID: "order-1", Status: entity.OrderStatusPaid, StripeSessionID: "cs_1"}, nil)
	})

	require.NoError(t, fx.service.HandleWebhook(ctx, testPayload, testSignature))
	fx.publisher.AssertNotCalled(t, "PublishOrderPaid", mock.Anything, mock.Anything)
}

func TestWebhookService_CheckoutCompleted_AdvancedOrderKeepsStatus(t *testing.T) {
	fx := createTestWebhookService(t, false)

	ctx := context.Background()
	fx.expectEvent(checkoutCompletedEvent(map[string]string{"businessId": testBusinessID, "orderId": "order-1"}))
	expectTransaction(t, fx.txManager, func(repos *txRepos) {
		repos.orderRepo.EXPECT().FindOrderByID(ctx, testBusinessID, "order-1").
			Return(&entity.Order{ID: "order-1", Status: entity.OrderStatusInProgress}, nil)
		repos.orderRepo.EXPECT().AttachSession(ctx, testBusinessID, "order-1", "cs_1").Return(nil)
	})

	require.NoError(t, fx.service.HandleWebhook(ctx, testPayload, testSignature))
}

func TestWebhookService_CheckoutCompleted_MissingMetadataSkips(t *testing.T) {
	fx := createTestWebhookService(t, false)

	fx.expectEvent(checkoutCompletedEvent(map[string]string{"businessId": testBusinessID}))

	require.NoError(t, fx.service.HandleWebhook(context.Background(), testPayload, testSignature))
}

func TestWebhookService_CheckoutCompleted_UnknownOrderIsAcknowledged(t *testing.T) {
	fx := createTestWebhookService(t, true)

	ctx := context.Background()
	fx.expectEvent(checkoutCompletedEvent(map[string]string{"businessId": testBusinessID, "orderId": "ghost"}))
	expectTransaction(t, fx.txManager, func(repos *txRepos) {
		repos.orderRepo.EXPECT().FindOrderByID(ctx, testBusinessID, "ghost").Return(nil, repository.ErrOrderNotFound)
	})

	require.NoError(t, fx.service.HandleWebhook(ctx, testPayload, testSignature))
}

func TestWebhookService_PersistenceFailureAcknowledgedByDefault(t *testing.T) {
	fx := createTestWebhookService(t, false)

	ctx := context.Background()
	fx.expectEvent(checkoutCompletedEvent(map[string]string{"businessId": testBusinessID, "orderId": "order-1"}))
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("unavailable"))

	require.NoError(t, fx.service.HandleWebhook(ctx, testPayload, testSignature))
}

func TestWebhookService_PersistenceFailureRetriedWhenConfigured(t *testing.T) {
	fx := createTestWebhookService(t, true)

	ctx := context.Background()
	fx.expectEvent(checkoutCompletedEvent(map[string]string{"businessId": testBusinessID, "orderId": "order-1"}))
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("unavailable"))

	err := fx.service.HandleWebhook(ctx, testPayload, testSignature)

	assert.ErrorIs(t, err, domainerrors.ErrWebhookPersistenceFailed)
}

func TestWebhookService_PublishFailureDoesNotFailEvent(t *testing.T) {
	fx := createTestWebhookService(t, true)

	ctx := context.Background()
	fx.expectEvent(checkoutCompletedEvent(map[string]string{"businessId": testBusinessID, "orderId": "order-1"}))
	expectTransaction(t, fx.txManager, func(repos *txRepos) {
		repos.orderRepo.EXPECT().FindOrderByID(ctx, testBusinessID, "order-1").
			Return(&entity.Order{ID: "order-1", Status: entity.OrderStatusRequested}, nil)
		repos.orderRepo.EXPECT().MarkOrderPaid(ctx, testBusinessID, "order-1", "cs_1").Return(nil)
	})
	fx.publisher.EXPECT().PublishOrderPaid(ctx, mock.Anything).Return(errors.New("topic missing"))

	require.NoError(t, fx.service.HandleWebhook(ctx, testPayload, testSignature))
}

func TestWebhookService_UnhandledTypeIgnored(t *testing.T) {
	fx := createTestWebhookService(t, false)

	fx.expectEvent(&service.WebhookEvent{ID: "evt_9", Type: "payment_intent.created"})

	require.NoError(t, fx.service.HandleWebhook(context.Background(), testPayload, testSignature))
}
