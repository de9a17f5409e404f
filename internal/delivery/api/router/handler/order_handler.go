package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const paramOrderID = "orderId"

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the order desk
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// PlaceOrderRequest is a buyer's order form
type PlaceOrderRequest struct {
	ItemID          string          `json:"itemId" validate:"required"`
	Quantity        int64           `json:"quantity"`
	BuyerName       string          `json:"buyerName" validate:"required"`
	BuyerEmail      string          `json:"buyerEmail" validate:"required,email"`
	Notes           string          `json:"notes" validate:"max=2000"`
	ShippingAddress *entity.Address `json:"shippingAddress"`
}

// AdvanceOrderRequest moves an order forward
type AdvanceOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

// PlaceOrder handles POST /businesses/:businessId/orders
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), c.Param(middleware.ParamBusinessID), &usecase.PlaceOrderInput{
		ItemID:          req.ItemID,
		Quantity:        req.Quantity,
		BuyerName:       req.BuyerName,
		BuyerEmail:      req.BuyerEmail,
		Notes:           req.Notes,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListOrders handles GET /businesses/:businessId/orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	business, err := currentBusiness(c)
	if err != nil {
		return err
	}

	var status *entity.OrderStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed, ok := entity.ParseOrderStatus(raw)
		if !ok {
			return domainerrors.ErrValidationFailed.WithDetails("unknown status " + raw)
		}
		status = &parsed
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), business.ID, status)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{"orders": orders})
}

// AdvanceOrder handles PATCH /businesses/:businessId/orders/:orderId
func (h *OrderHandler) AdvanceOrder(c echo.Context) error {
	business, err := currentBusiness(c)
	if err != nil {
		return err
	}

	var req AdvanceOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	status, ok := entity.ParseOrderStatus(req.Status)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails("unknown status " + req.Status)
	}

	order, err := h.orderUC.AdvanceOrder(c.Request().Context(), business.ID, c.Param(paramOrderID), status)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order)
}

// DeleteOrder handles DELETE /businesses/:businessId/orders/:orderId
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	business, err := currentBusiness(c)
	if err != nil {
		return err
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), business.ID, c.Param(paramOrderID)); err != nil {
		return err
	}

	return response.NoContent(c)
}
