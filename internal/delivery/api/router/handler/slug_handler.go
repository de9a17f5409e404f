package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const paramSlug = "slug"

// SlugHandlerParams holds dependencies for SlugHandler, injected by Fx.
type SlugHandlerParams struct {
	fx.In

	SlugUC usecase.SlugUsecase
	Logger *slog.Logger
}

// SlugHandler serves storefront vanity paths
type SlugHandler struct {
	slugUC usecase.SlugUsecase
	logger *slog.Logger
}

// NewSlugHandler is the constructor for SlugHandler
func NewSlugHandler(params SlugHandlerParams) *SlugHandler {
	return &SlugHandler{
		slugUC: params.SlugUC,
		logger: params.Logger,
	}
}

// SetSlugRequest claims a slug
type SetSlugRequest struct {
	Slug string `json:"slug" validate:"required"`
}

// SetSlug handles PUT /businesses/:businessId/slug
func (h *SlugHandler) SetSlug(c echo.Context) error {
	business, err := currentBusiness(c)
	if err != nil {
		return err
	}

	var req SetSlugRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	slug, err := h.slugUC.SetSlug(c.Request().Context(), business.ID, req.Slug)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"slug": slug})
}

// ClearSlug handles DELETE /businesses/:businessId/slug
func (h *SlugHandler) ClearSlug(c echo.Context) error {
	business, err := currentBusiness(c)
	if err != nil {
		return err
	}

	if err := h.slugUC.ClearSlug(c.Request().Context(), business.ID); err != nil {
		return err
	}

	return response.NoContent(c)
}

// ResolveSlug handles GET /slugs/:slug
func (h *SlugHandler) ResolveSlug(c echo.Context) error {
	businessID, err := h.slugUC.ResolveSlug(c.Request().Context(), c.Param(paramSlug))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"businessId": businessID})
}

// CheckAvailability handles GET /slugs/:slug/availability
func (h *SlugHandler) CheckAvailability(c echo.Context) error {
	availability, err := h.slugUC.CheckAvailability(c.Request().Context(), c.Param(paramSlug))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, availability)
}
