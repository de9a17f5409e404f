package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const onboardingReturnPath = "/account#stripe"

// StripeHandlerParams holds dependencies for StripeHandler, injected by Fx.
type StripeHandlerParams struct {
	fx.In

	AccountUC  usecase.AccountUsecase
	CheckoutUC usecase.CheckoutUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// StripeHandler serves the connected account and checkout endpoints.
type StripeHandler struct {
	accountUC  usecase.AccountUsecase
	checkoutUC usecase.CheckoutUsecase
	origin     string
	logger     *slog.Logger
}

// NewStripeHandler is the constructor for StripeHandler
func NewStripeHandler(params StripeHandlerParams) *StripeHandler {
	h := &StripeHandler{
		accountUC:  params.AccountUC,
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
	if params.Config.Stripe != nil {
		h.origin = strings.TrimRight(params.Config.Stripe.Origin, "/")
	}

	return h
}

// CreateAccountLinkRequest is the body of createAccountLink
type CreateAccountLinkRequest struct {
	BusinessID string `json:"businessId"`
	ReturnURL  string `json:"returnUrl" validate:"omitempty,url"`
}

// CreateCheckoutSessionRequest is the owner checkout body
type CreateCheckoutSessionRequest struct {
	BusinessID    string                          `json:"businessId"`
	OrderID       string                          `json:"orderId"`
	LineItems     []usecase.CheckoutLineItemInput `json:"lineItems"`
	Currency      string                          `json:"currency"`
	SuccessURL    string                          `json:"successUrl" validate:"required"`
	CancelURL     string                          `json:"cancelUrl" validate:"required"`
	CustomerEmail string                          `json:"customerEmail" validate:"omitempty,email"`
}

// CreatePublicCheckoutSessionRequest is the buyer checkout body. Amounts sent by
// clients are not part of it and are never read.
type CreatePublicCheckoutSessionRequest struct {
	BusinessID    string `json:"businessId"`
	ItemID        string `json:"itemId"`
	OrderID       string `json:"orderId"`
	Quantity      int64  `json:"quantity"`
	SuccessURL    string `json:"successUrl" validate:"required"`
	CancelURL     string `json:"cancelUrl" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
}

// CreateAccount handles POST /stripe/createAccount
func (h *StripeHandler) CreateAccount(c echo.Context) error {
	business, err := currentBusiness(c)
	if err != nil {
		return err
	}

	accountID, err := h.accountUC.CreateAccount(c.Request().Context(), business)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"stripeAccountId": accountID})
}

// CreateAccountLink handles POST /stripe/createAccountLink
func (h *StripeHandler) CreateAccountLink(c echo.Context) error {
	business, err := currentBusiness(c)
	if err != nil {
		return err
	}

	var req CreateAccountLinkRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = h.defaultReturnURL(c)
	}

	url, err := h.accountUC.CreateOnboardingLink(c.Request().Context(), business, returnURL)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url})
}

// DashboardLink handles GET /stripe/dashboardLink
func (h *StripeHandler) DashboardLink(c echo.Context) error {
	business, err := currentBusiness(c)
	if err != nil {
		return err
	}

	url, err := h.accountUC.CreateDashboardLink(c.Request().Context(), business)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url})
}

// SyncAccount handles POST /stripe/syncAccount
func (h *StripeHandler) SyncAccount(c echo.Context) error {
	business, err := currentBusiness(c)
	if err != nil {
		return err
	}

	flags, err := h.accountUC.SyncStatus(c.Request().Context(), business)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, flags)
}

// CreateCheckoutSession handles POST /stripe/createCheckoutSession
func (h *StripeHandler) CreateCheckoutSession(c echo.Context) error {
	business, err := currentBusiness(c)
	if err != nil {
		return err
	}

	var req CreateCheckoutSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.checkoutUC.CreateCheckoutSession(c.Request().Context(), business, &usecase.OwnerCheckoutInput{
		OrderID:       req.OrderID,
		LineItems:     req.LineItems,
		Currency:      req.Currency,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": result.URL})
}

// CreatePublicCheckoutSession handles POST /stripe/createCheckoutSessionPublic
func (h *StripeHandler) CreatePublicCheckoutSession(c echo.Context) error {
	var req CreatePublicCheckoutSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.checkoutUC.CreatePublicCheckoutSession(c.Request().Context(), &usecase.PublicCheckoutInput{
		BusinessID:    req.BusinessID,
		ItemID:        req.ItemID,
		OrderID:       req.OrderID,
		Quantity:      req.Quantity,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": result.URL})
}

// defaultReturnURL sends the owner back to the account page of the site they came from.
func (h *StripeHandler) defaultReturnURL(c echo.Context) string {
	origin := strings.TrimRight(c.Request().Header.Get(echo.HeaderOrigin), "/")
	if origin == "" {
		origin = h.origin
	}

	return origin + onboardingReturnPath
}
