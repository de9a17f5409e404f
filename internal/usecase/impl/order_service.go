package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
)

type orderService struct {
	itemRepo  repository.ItemRepository
	orderRepo repository.OrderRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewOrderService creates a new order desk service instance
func NewOrderService(
	itemRepo repository.ItemRepository,
	orderRepo repository.OrderRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		itemRepo:  itemRepo,
		orderRepo: orderRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// PlaceOrder snapshots the item and records a requested order
func (s *orderService) PlaceOrder(ctx context.Context, businessID string, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if businessID == "" || input.ItemID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Missing businessId or itemId")
	}

	item, err := s.itemRepo.FindItemByID(ctx, businessID, input.ItemID)
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

	if item.RequireAddress && input.ShippingAddress == nil {
		return nil, domainerrors.ErrShippingAddressRequired
	}

	quantity := clampQuantity(input.Quantity)
	order := &entity.Order{
		BusinessID:      businessID,
		ItemID:          item.ID,
		ItemName:        item.Name,
		UnitPrice:       item.Price,
		Quantity:        quantity,
		Total:           item.Price.Mul(decimal.NewFromInt(quantity)),
		BuyerName:       strings.TrimSpace(input.BuyerName),
		BuyerEmail:      strings.TrimSpace(input.BuyerEmail),
		ShippingAddress: input.ShippingAddress,
		Notes:           input.Notes,
		Status:          entity.OrderStatusRequested,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Order placed",
		slog.String("business_id", businessID),
		slog.String("order_id", order.ID),
		slog.String("item_id", item.ID),
		slog.Int64("quantity", quantity),
	)

	return order, nil
}

// ListOrders lists the business's orders
func (s *orderService) ListOrders(ctx context.Context, businessID string, status *entity.OrderStatus) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx, businessID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// AdvanceOrder moves an order forward under a transaction
func (s *orderService) AdvanceOrder(
	ctx context.Context,
	businessID, orderID string,
	status entity.OrderStatus,
) (*entity.Order, error) {
	var updated *entity.Order
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		orderRepo := txRepoFactory.NewOrderRepository()

		order, err := orderRepo.FindOrderByID(ctx, businessID, orderID)
		if err != nil {
			return err
		}

		if !order.Status.CanAdvanceManually(status) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(string(order.Status) + " -> " + string(status))
		}

		if err := orderRepo.UpdateOrderStatus(ctx, businessID, orderID, status); err != nil {
			return err
		}

		order.Status = status
		updated = order

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}
		if _, ok := errors.AsType[domainerrors.AppError](err); ok {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to advance order")
	}

	return updated, nil
}

// DeleteOrder removes an order
func (s *orderService) DeleteOrder(ctx context.Context, businessID, orderID string) error {
	if err := s.orderRepo.DeleteOrder(ctx, businessID, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}
