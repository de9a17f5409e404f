package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix = "Bearer "

	// ParamBusinessID is the path parameter naming the target business.
	ParamBusinessID = "businessId"
)

// AuthMiddleware verifies bearer tokens and guards business-owner routes.
type AuthMiddleware struct {
	verifier    service.IdentityVerifier
	ownershipUC usecase.OwnershipUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier, ownershipUC usecase.OwnershipUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, ownershipUC: ownershipUC, logger: logger}
}

// Authenticate validates the bearer token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if authHeader == "" || token == "" || token == authHeader {
			return domainerrors.ErrUnauthenticated
		}

		identity, err := m.verifier.VerifyIDToken(c.Request().Context(), token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected bearer token", slog.Any("error", err))

			return domainerrors.ErrUnauthenticated
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireBusinessOwner resolves the target business and lets the request through
// only when the caller owns it. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireBusinessOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		business, err := m.ownershipUC.AuthorizeOwner(c.Request().Context(), identity.UID, targetBusinessID(c, identity))
		if err != nil {
			return err
		}

		deliverycontext.SetBusiness(c, business)

		return next(c)
	}
}

// targetBusinessID looks at the JSON body, the query, the path and finally
// falls back to the caller's own uid.
func targetBusinessID(c echo.Context, identity *service.Identity) string {
	if id := businessIDFromBody(c); id != "" {
		return id
	}
	if id := c.QueryParam(ParamBusinessID); id != "" {
		return id
	}
	if id := c.Param(ParamBusinessID); id != "" {
		return id
	}

	return identity.UID
}

// businessIDFromBody peeks at the body and puts it back for the handler's Bind.
func businessIDFromBody(c echo.Context) string {
	req := c.Request()
	if req.Body == nil || req.ContentLength == 0 {
		return ""
	}
	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return ""
	}

	body, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var peek struct {
		BusinessID string `json:"businessId"`
	}
	if err := json.Unmarshal(body, &peek); err != nil {
		return ""
	}

	return peek.BusinessID
}
