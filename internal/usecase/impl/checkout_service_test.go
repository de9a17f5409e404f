package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceFixtures struct {
	service      usecase.CheckoutUsecase
	businessRepo *mockRepo.MockBusinessRepository
	itemRepo     *mockRepo.MockItemRepository
	txManager    *mockRepo.MockTransactionManager
	factory      *mockService.MockPaymentProviderFactory
	provider     *mockService.MockPaymentProvider
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockService.NewMockPaymentProviderFactory(t)
	provider := mockService.NewMockPaymentProvider(t)

	factory.EXPECT().Provider().Return(provider, nil).Maybe()

	return checkoutServiceFixtures{
		service:      NewCheckoutService(businessRepo, itemRepo, txManager, factory, newTestConfig(false), newDiscardLogger()),
		businessRepo: businessRepo,
		itemRepo:     itemRepo,
		txManager:    txManager,
		factory:      factory,
		provider:     provider,
	}
}

func TestCheckoutService_Public_AmountComesFromStoredPrice(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).Return(newConnectedBusiness(), nil)
	expectValidDestination(ctx, fx.provider, true)
	fx.itemRepo.EXPECT().FindItemByID(ctx, testBusinessID, "item-1").Return(&entity.Item{
		ID:       "item-1",
		Name:     "Mug",
		Price:    decimal.RequireFromString("19.99"),
		ImageURL: "https://img.example.com/mug.png",
	}, nil)

	var captured *service.CheckoutSessionParams
	fx.provider.EXPECT().
		CreateCheckoutSession(ctx, mock.AnythingOfType("*service.CheckoutSessionParams")).
		Run(func(_ context.Context, params *service.CheckoutSessionParams) {
			captured = params
		}).
		Return(&service.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/cs_1"}, nil)

	result, err := fx.service.CreatePublicCheckoutSession(ctx, &usecase.PublicCheckoutInput{
		BusinessID: testBusinessID,
		ItemID:     "item-1",
		Quantity:   3,
		SuccessURL: "https://shop/success",
		CancelURL:  "https://shop/cancel",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/cs_1", result.URL)
	require.NotNil(t, captured)
	require.Len(t, captured.LineItems, 1)
	assert.Equal(t, int64(1999), captured.LineItems[0].UnitAmount)
	assert.Equal(t, int64(3), captured.LineItems[0].Quantity)
	assert.Equal(t, "Mug", captured.LineItems[0].Name)
	assert.Equal(t, "usd", captured.Currency)
	assert.Equal(t, testAccountID, captured.DestinationAccountID)
	assert.Equal(t, map[string]string{
		"businessId": testBusinessID,
		"itemId":     "item-1",
		"quantity":   "3",
	}, captured.Metadata)
}

func TestCheckoutService_Public_QuantityClampedAndRounding(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).Return(newConnectedBusiness(), nil)
	expectValidDestination(ctx, fx.provider, true)
	fx.itemRepo.EXPECT().FindItemByID(ctx, testBusinessID, "item-1").Return(&entity.Item{
		ID:    "item-1",
		Name:  "Sticker",
		Price: decimal.RequireFromString("0.005"),
	}, nil)
	fx.provider.EXPECT().
		CreateCheckoutSession(ctx, mock.MatchedBy(func(p *service.CheckoutSessionParams) bool {
			return p.LineItems[0].UnitAmount == 1 && p.LineItems[0].Quantity == 1
		})).
		Return(&service.CheckoutSession{ID: "cs_2", URL: "https://checkout/cs_2"}, nil)

	_, err := fx.service.CreatePublicCheckoutSession(ctx, &usecase.PublicCheckoutInput{
		BusinessID: testBusinessID,
		ItemID:     "item-1",
		Quantity:   -4,
	})

	require.NoError(t, err)
}

func TestCheckoutService_Public_MissingIdentifiers(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.CreatePublicCheckoutSession(context.Background(), &usecase.PublicCheckoutInput{BusinessID: testBusinessID})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckoutService_Public_BusinessNotFound(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, "nope").Return(nil, repository.ErrBusinessNotFound)

	_, err := fx.service.CreatePublicCheckoutSession(ctx, &usecase.PublicCheckoutInput{BusinessID: "nope", ItemID: "item-1"})

	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestCheckoutService_Public_NotConnected(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).Return(&entity.Business{ID: testBusinessID}, nil)

	_, err := fx.service.CreatePublicCheckoutSession(ctx, &usecase.PublicCheckoutInput{BusinessID: testBusinessID, ItemID: "item-1"})

	assert.ErrorIs(t, err, domainerrors.ErrNotConnected)
}

func TestCheckoutService_Public_PlatformDestinationCreatesNoSession(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	business := newConnectedBusiness()
	business.Payment.StripeAccountID = testPlatformAccount
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).Return(business, nil)
	fx.provider.EXPECT().PlatformAccountID(ctx).Return(testPlatformAccount, nil)

	_, err := fx.service.CreatePublicCheckoutSession(ctx, &usecase.PublicCheckoutInput{BusinessID: testBusinessID, ItemID: "item-1"})

	assert.ErrorIs(t, err, domainerrors.ErrMisconfiguredDestination)
	fx.provider.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestCheckoutService_Public_ChargesDisabled(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).Return(newConnectedBusiness(), nil)
	expectValidDestination(ctx, fx.provider, false)

	_, err := fx.service.CreatePublicCheckoutSession(ctx, &usecase.PublicCheckoutInput{BusinessID: testBusinessID, ItemID: "item-1"})

	assert.ErrorIs(t, err, domainerrors.ErrChargesDisabled)
}

func TestCheckoutService_Public_ItemNotFound(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).Return(newConnectedBusiness(), nil)
	expectValidDestination(ctx, fx.provider, true)
	fx.itemRepo.EXPECT().FindItemByID(ctx, testBusinessID, "gone").Return(nil, repository.ErrItemNotFound)

	_, err := fx.service.CreatePublicCheckoutSession(ctx, &usecase.PublicCheckoutInput{BusinessID: testBusinessID, ItemID: "gone"})

	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestCheckoutService_Public_InvalidStoredPrice(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).Return(newConnectedBusiness(), nil)
	expectValidDestination(ctx, fx.provider, true)
	fx.itemRepo.EXPECT().FindItemByID(ctx, testBusinessID, "item-1").Return(nil, repository.ErrInvalidItemPrice)

	_, err := fx.service.CreatePublicCheckoutSession(ctx, &usecase.PublicCheckoutInput{BusinessID: testBusinessID, ItemID: "item-1"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidItemPrice)
}

func TestCheckoutService_Public_ProviderRejection(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).Return(newConnectedBusiness(), nil)
	expectValidDestination(ctx, fx.provider, true)
	fx.itemRepo.EXPECT().FindItemByID(ctx, testBusinessID, "item-1").Return(&entity.Item{ID: "item-1", Name: "Mug", Price: decimal.NewFromInt(5)}, nil)
	fx.provider.EXPECT().
		CreateCheckoutSession(ctx, mock.Anything).
		Return(nil, &service.ProviderError{Op: "create checkout session", Message: "Not a valid URL"})

	_, err := fx.service.CreatePublicCheckoutSession(ctx, &usecase.PublicCheckoutInput{BusinessID: testBusinessID, ItemID: "item-1"})

	require.ErrorIs(t, err, domainerrors.ErrCheckoutCreationFailed)
	assert.Contains(t, err.Error(), "Not a valid URL")
}

func TestCheckoutService_Public_MovesRequestedOrderToPendingPayment(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).Return(newConnectedBusiness(), nil)
	expectValidDestination(ctx, fx.provider, true)
	fx.itemRepo.EXPECT().FindItemByID(ctx, testBusinessID, "item-1").Return(&entity.Item{ID: "item-1", Name: "Mug", Price: decimal.NewFromInt(5)}, nil)
	fx.provider.EXPECT().
		CreateCheckoutSession(ctx, mock.MatchedBy(func(p *service.CheckoutSessionParams) bool {
			return p.Metadata["orderId"] == "order-1"
		})).
		Return(&service.CheckoutSession{ID: "cs_3", URL: "https://checkout/cs_3"}, nil)

	expectTransaction(t, fx.txManager, func(repos *txRepos) {
		repos.orderRepo.EXPECT().FindOrderByID(ctx, testBusinessID, "order-1").
			Return(&entity.Order{ID: "order-1", Status: entity.OrderStatusRequested}, nil)
		repos.orderRepo.EXPECT().UpdateOrderStatus(ctx, testBusinessID, "order-1", entity.OrderStatusPendingPayment).
			Return(nil)
	})

	result, err := fx.service.CreatePublicCheckoutSession(ctx, &usecase.PublicCheckoutInput{
		BusinessID: testBusinessID,
		ItemID:     "item-1",
		OrderID:    "order-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_3", result.SessionID)
}

func TestCheckoutService_Public_OrderAlreadyPaidIsNotMovedBack(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).Return(newConnectedBusiness(), nil)
	expectValidDestination(ctx, fx.provider, true)
	fx.itemRepo.EXPECT().FindItemByID(ctx, testBusinessID, "item-1").Return(&entity.Item{ID: "item-1", Name: "Mug", Price: decimal.NewFromInt(5)}, nil)
	fx.provider.EXPECT().CreateCheckoutSession(ctx, mock.Anything).Return(&service.CheckoutSession{ID: "cs_4", URL: "u"}, nil)

	expectTransaction(t, fx.txManager, func(repos *txRepos) {
		repos.orderRepo.EXPECT().FindOrderByID(ctx, testBusinessID, "order-1").
			Return(&entity.Order{ID: "order-1", Status: entity.OrderStatusPaid}, nil)
	})

	_, err := fx.service.CreatePublicCheckoutSession(ctx, &usecase.PublicCheckoutInput{
		BusinessID: testBusinessID,
		ItemID:     "item-1",
		OrderID:    "order-1",
	})

	require.NoError(t, err)
}

func TestCheckoutService_Public_OrderTransitionFailureDoesNotFailCheckout(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).Return(newConnectedBusiness(), nil)
	expectValidDestination(ctx, fx.provider, true)
	fx.itemRepo.EXPECT().FindItemByID(ctx, testBusinessID, "item-1").Return(&entity.Item{ID: "item-1", Name: "Mug", Price: decimal.NewFromInt(5)}, nil)
	fx.provider.EXPECT().CreateCheckoutSession(ctx, mock.Anything).Return(&service.CheckoutSession{ID: "cs_5", URL: "u"}, nil)
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("contention"))

	result, err := fx.service.CreatePublicCheckoutSession(ctx, &usecase.PublicCheckoutInput{
		BusinessID: testBusinessID,
		ItemID:     "item-1",
		OrderID:    "order-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "u", result.URL)
}

func TestCheckoutService_Owner_BuildsLineItems(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	expectValidDestination(ctx, fx.provider, true)

	var captured *service.CheckoutSessionParams
	fx.provider.EXPECT().
		CreateCheckoutSession(ctx, mock.Anything).
		Run(func(_ context.Context, params *service.CheckoutSessionParams) {
			captured = params
		}).
		Return(&service.CheckoutSession{ID: "cs_6", URL: "https://checkout/cs_6"}, nil)

	result, err := fx.service.CreateCheckoutSession(ctx, newConnectedBusiness(), &usecase.OwnerCheckoutInput{
		LineItems: []usecase.CheckoutLineItemInput{
			{Name: "Custom print", Amount: 2500.4, Quantity: 0, Image: "https://img/print.png"},
			{Name: "Frame", Amount: 1000, Quantity: 2},
		},
		Currency:      "eur",
		SuccessURL:    "https://shop/success",
		CancelURL:     "https://shop/cancel",
		CustomerEmail: "buyer@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout/cs_6", result.URL)
	require.NotNil(t, captured)
	assert.Equal(t, "eur", captured.Currency)
	assert.Equal(t, "buyer@example.com", captured.CustomerEmail)
	assert.Equal(t, []service.CheckoutLineItem{
		{Name: "Custom print", UnitAmount: 2500, Quantity: 1, ImageURL: "https://img/print.png"},
		{Name: "Frame", UnitAmount: 1000, Quantity: 2},
	}, captured.LineItems)
	assert.Equal(t, map[string]string{"businessId": testBusinessID}, captured.Metadata)
}

func TestCheckoutService_Owner_RejectsEmptyAndNegativeLines(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	business := newConnectedBusiness()

	_, err := fx.service.CreateCheckoutSession(ctx, business, &usecase.OwnerCheckoutInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.CreateCheckoutSession(ctx, business, &usecase.OwnerCheckoutInput{
		LineItems: []usecase.CheckoutLineItemInput{{Name: "Refund", Amount: -100}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckoutService_Owner_ProviderNotConfigured(t *testing.T) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	factory := mockService.NewMockPaymentProviderFactory(t)
	factory.EXPECT().Provider().Return(nil, service.ErrProviderNotConfigured)

	svc := NewCheckoutService(businessRepo, mockRepo.NewMockItemRepository(t), mockRepo.NewMockTransactionManager(t),
		factory, newTestConfig(false), newDiscardLogger())

	_, err := svc.CreateCheckoutSession(context.Background(), newConnectedBusiness(), &usecase.OwnerCheckoutInput{})

	assert.ErrorIs(t, err, domainerrors.ErrProviderNotConfigured)
}
