package impl

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type checkoutService struct {
	businessRepo    repository.BusinessRepository
	itemRepo        repository.ItemRepository
	txManager       repository.TransactionManager
	providerFactory service.PaymentProviderFactory
	defaultCurrency string
	logger          *slog.Logger
}

// NewCheckoutService creates a new checkout session service instance
func NewCheckoutService(
	businessRepo repository.BusinessRepository,
	itemRepo repository.ItemRepository,
	txManager repository.TransactionManager,
	providerFactory service.PaymentProviderFactory,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	currency := constants.DefaultCurrency
	if cfg.Stripe != nil && cfg.Stripe.DefaultCurrency != "" {
		currency = cfg.Stripe.DefaultCurrency
	}

	return &checkoutService{
		businessRepo:    businessRepo,
		itemRepo:        itemRepo,
		txManager:       txManager,
		providerFactory: providerFactory,
		defaultCurrency: currency,
		logger:          logger,
	}
}

// CreateCheckoutSession creates a session from owner-supplied line items
func (s *checkoutService) CreateCheckoutSession(
	ctx context.Context,
	business *entity.Business,
	input *usecase.OwnerCheckoutInput,
) (*usecase.CheckoutResult, error) {
	provider, err := resolveProvider(s.providerFactory)
	if err != nil {
		return nil, err
	}

	lineItems, err := ownerLineItems(input.LineItems)
	if err != nil {
		return nil, err
	}

	if err := validateDestination(ctx, provider, business); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	metadata := map[string]string{constants.MetadataBusinessID: business.ID}
	if input.OrderID != "" {
		metadata[constants.MetadataOrderID] = input.OrderID
	}

	return s.createSession(ctx, provider, business.ID, input.OrderID, &service.CheckoutSessionParams{
		Currency:             currency,
		LineItems:            lineItems,
		SuccessURL:           input.SuccessURL,
		CancelURL:            input.CancelURL,
		CustomerEmail:        input.CustomerEmail,
		DestinationAccountID: business.Payment.StripeAccountID,
		Metadata:             metadata,
	})
}

// CreatePublicCheckoutSession creates a session for one item at its stored price
func (s *checkoutService) CreatePublicCheckoutSession(
	ctx context.Context,
	input *usecase.PublicCheckoutInput,
) (*usecase.CheckoutResult, error) {
	provider, err := resolveProvider(s.providerFactory)
	if err != nil {
		return nil, err
	}

	if input.BusinessID == "" || input.ItemID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Missing businessId or itemId")
	}

	business, err := s.businessRepo.FindBusinessByID(ctx, input.BusinessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	if err := validateDestination(ctx, provider, business); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.FindItemByID(ctx, business.ID, input.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrItemNotFound):
			return nil, domainerrors.ErrItemNotFound
		case errors.Is(err, repository.ErrInvalidItemPrice):
			return nil, domainerrors.ErrInvalidItemPrice
		default:
			return nil, errors.Wrap(err, "failed to find item")
		}
	}
	if !item.HasValidPrice() {
		return nil, domainerrors.ErrInvalidItemPrice
	}

	quantity := clampQuantity(input.Quantity)

	metadata := map[string]string{
		constants.MetadataBusinessID: business.ID,
		constants.MetadataItemID:     item.ID,
		constants.MetadataQuantity:   strconv.FormatInt(quantity, 10),
	}
	if input.OrderID != "" {
		metadata[constants.MetadataOrderID] = input.OrderID
	}

	return s.createSession(ctx, provider, business.ID, input.OrderID, &service.CheckoutSessionParams{
		Currency: s.defaultCurrency,
		LineItems: []service.CheckoutLineItem{{
			Name:       item.Name,
			UnitAmount: item.UnitAmount(),
			Quantity:   quantity,
			ImageURL:   item.ImageURL,
		}},
		SuccessURL:           input.SuccessURL,
		CancelURL:            input.CancelURL,
		CustomerEmail:        input.CustomerEmail,
		DestinationAccountID: business.Payment.StripeAccountID,
		Metadata:             metadata,
	})
}

func (s *checkoutService) createSession(
	ctx context.Context,
	provider service.PaymentProvider,
	businessID, orderID string,
	params *service.CheckoutSessionParams,
) (*usecase.CheckoutResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	session, err := provider.CreateCheckoutSession(ctx, params)
	if err != nil {
		logger.Error("Failed to create checkout session",
			slog.String("business_id", businessID),
			slog.Any("error", err),
		)

		if providerErr, ok := errors.AsType[*service.ProviderError](err); ok {
			return nil, domainerrors.ErrCheckoutCreationFailed.WithDetails(providerErr.Message)
		}

		return nil, domainerrors.ErrCheckoutCreationFailed
	}

	logger.Info("Checkout session created",
		slog.String("business_id", businessID),
		slog.String("session_id", session.ID),
		slog.String("destination", params.DestinationAccountID),
	)

	if orderID != "" {
		s.markAwaitingPayment(ctx, businessID, orderID)
	}

	return &usecase.CheckoutResult{SessionID: session.ID, URL: session.URL}, nil
}

// markAwaitingPayment moves a requested order to pending-payment. Failures
// are logged only; the buyer already has a usable session.
func (s *checkoutService) markAwaitingPayment(ctx context.Context, businessID, orderID string) {
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		orderRepo := txRepoFactory.NewOrderRepository()

		order, err := orderRepo.FindOrderByID(ctx, businessID, orderID)
		if err != nil {
			return err
		}
		if order.Status != entity.OrderStatusRequested {
			return nil
		}

		return orderRepo.UpdateOrderStatus(ctx, businessID, orderID, entity.OrderStatusPendingPayment)
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to mark order awaiting payment",
			slog.String("business_id", businessID),
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)
	}
}

// validateDestination runs the connected-account checks shared by both checkout paths, in order.
func validateDestination(ctx context.Context, provider service.PaymentProvider, business *entity.Business) error {
	if !business.HasConnectedAccount() {
		return domainerrors.ErrNotConnected
	}

	account, err := verifyConnectedAccount(ctx, provider, business.Payment.StripeAccountID)
	if err != nil {
		return err
	}

	if !account.ChargesEnabled {
		return domainerrors.ErrChargesDisabled
	}

	return nil
}

func ownerLineItems(inputs []usecase.CheckoutLineItemInput) ([]service.CheckoutLineItem, error) {
	if len(inputs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("lineItems required")
	}

	items := make([]service.CheckoutLineItem, 0, len(inputs))
	for i, in := range inputs {
		if in.Name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("lineItems[" + strconv.Itoa(i) + "].name required")
		}

		amount := math.Round(in.Amount)
		if math.IsNaN(amount) || amount < 0 || amount >= math.MaxInt64 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("lineItems[" + strconv.Itoa(i) + "].amount must be a non-negative number")
		}

		items = append(items, service.CheckoutLineItem{
			Name:       in.Name,
			UnitAmount: int64(amount),
			Quantity:   clampQuantity(in.Quantity),
			ImageURL:   in.Image,
		})
	}

	return items, nil
}

func clampQuantity(quantity int64) int64 {
	if quantity < 1 {
		return 1
	}

	return quantity
}
