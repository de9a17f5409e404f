// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness probes
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// currentBusiness returns the business authorized by the ownership middleware.
func currentBusiness(c echo.Context) (*entity.Business, error) {
	business, ok := deliverycontext.GetBusiness(c)
	if !ok {
		return nil, domainerrors.ErrForbidden
	}

	return business, nil
}

// bindAndValidate decodes the request and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}

	return c.Validate(req)
}
