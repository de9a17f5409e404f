package handler

import (
	"io"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	WebhookUC usecase.WebhookUsecase
	Logger    *slog.Logger
}

// WebhookHandler receives provider events
type WebhookHandler struct {
	webhookUC usecase.WebhookUsecase
	logger    *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		webhookUC: params.WebhookUC,
		logger:    params.Logger,
	}
}

// HandleStripeWebhook handles POST /stripe/webhook. The body must reach the
// verifier byte for byte, so it is read raw and never bound.
func (h *WebhookHandler) HandleStripeWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("unreadable body")
	}

	signature := c.Request().Header.Get(constants.HeaderStripeSignature)
	if err := h.webhookUC.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]bool{"received": true})
}
