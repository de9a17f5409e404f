package impl

import (
	"context"
	"log/slog"
	"time"

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

type webhookService struct {
	businessRepo       repository.BusinessRepository
	txManager          repository.TransactionManager
	providerFactory    service.PaymentProviderFactory
	publisher          service.EventPublisher
	retryOnPersistence bool
	logger             *slog.Logger
	now                func() time.Time
}

// NewWebhookService creates a new webhook reconciler instance
func NewWebhookService(
	businessRepo repository.BusinessRepository,
	txManager repository.TransactionManager,
	providerFactory service.PaymentProviderFactory,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.WebhookUsecase {
	return &webhookService{
		businessRepo:       businessRepo,
		txManager:          txManager,
		providerFactory:    providerFactory,
		publisher:          publisher,
		retryOnPersistence: cfg.Stripe != nil && cfg.Stripe.RetryWebhookOnPersistenceError,
		logger:             logger,
		now:                time.Now,
	}
}

// HandleWebhook verifies and applies one provider event
func (s *webhookService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	provider, err := resolveProvider(s.providerFactory)
	if err != nil {
		return err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	event, err := provider.ConstructWebhookEvent(payload, signature)
	if err != nil {
		if errors.Is(err, service.ErrProviderNotConfigured) {
			return domainerrors.ErrProviderNotConfigured
		}

		logger.Warn("Webhook signature verification failed", slog.Any("error", err))

		return domainerrors.ErrSignatureInvalid.WithDetails(err.Error())
	}

	logger = logger.With(slog.String("event_id", event.ID), slog.String("event_type", event.Type))

	switch {
	case event.AccountUpdated != nil:
		err = s.applyAccountUpdated(ctx, logger, event.AccountUpdated)
	case event.CheckoutSessionCompleted != nil:
		err = s.applyCheckoutCompleted(ctx, logger, event.ID, event.CheckoutSessionCompleted)
	default:
		logger.Debug("Ignoring webhook event")

		return nil
	}

	if err == nil {
		return nil
	}

	logger.Warn("Failed to persist webhook event", slog.Any("error", err))
	if s.retryOnPersistence {
		return errors.Wrap(domainerrors.ErrWebhookPersistenceFailed, err.Error())
	}

	return nil
}

func (s *webhookService) applyAccountUpdated(
	ctx context.Context,
	logger *slog.Logger,
	payload *service.AccountUpdatedPayload,
) error {
	business, err := s.businessRepo.FindBusinessByStripeAccountID(ctx, payload.Account.ID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			logger.Debug("No business linked to account", slog.String("account_id", payload.Account.ID))

			return nil
		}

		return errors.Wrap(err, "failed to find business by account")
	}

	flags := flagsFromAccount(&payload.Account)
	if err := s.businessRepo.MergePayment(ctx, business.ID, &entity.PaymentUpdate{Flags: &flags}); err != nil {
		return errors.Wrap(err, "failed to merge payment flags")
	}

	logger.Info("Account status reconciled",
		slog.String("business_id", business.ID),
		slog.String("account_id", payload.Account.ID),
		slog.Bool("charges_enabled", flags.ChargesEnabled),
	)

	return nil
}

func (s *webhookService) applyCheckoutCompleted(
	ctx context.Context,
	logger *slog.Logger,
	eventID string,
	payload *service.CheckoutSessionCompletedPayload,
) error {
	businessID := payload.Metadata[constants.MetadataBusinessID]
	orderID := payload.Metadata[constants.MetadataOrderID]
	if businessID == "" || orderID == "" {
		logger.Debug("Checkout session without order metadata", slog.String("session_id", payload.SessionID))

		return nil
	}

	logger = logger.With(
		slog.String("business_id", businessID),
		slog.String("order_id", orderID),
		slog.String("session_id", payload.SessionID),
	)

	var marked bool
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		marked = false
		orderRepo := txRepoFactory.NewOrderRepository()

		order, err := orderRepo.FindOrderByID(ctx, businessID, orderID)
		if err != nil {
			return err
		}

		switch {
		case order.Status == entity.OrderStatusPaid && order.StripeSessionID == payload.SessionID:
			return nil
		case order.Status.IsSettled() && order.Status != entity.OrderStatusPaid:
			return orderRepo.AttachSession(ctx, businessID, orderID, payload.SessionID)
		default:
			marked = true

			return orderRepo.MarkOrderPaid(ctx, businessID, orderID, payload.SessionID)
		}
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			logger.Warn("Paid checkout references unknown order")

			return nil
		}

		return errors.Wrap(err, "failed to mark order paid")
	}

	if !marked {
		logger.Debug("Order already settled")

		return nil
	}

	logger.Info("Order marked paid")
	s.publishOrderPaid(ctx, logger, &service.OrderPaidEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    eventID,
		BusinessID: businessID,
		OrderID:    orderID,
		SessionID:  payload.SessionID,
		PaidAt:     s.now().UTC(),
	})

	return nil
}

func (s *webhookService) publishOrderPaid(ctx context.Context, logger *slog.Logger, event *service.OrderPaidEvent) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishOrderPaid(ctx, event); err != nil {
		logger.Warn("Failed to publish order paid event", slog.Any("error", err))
	}
}
