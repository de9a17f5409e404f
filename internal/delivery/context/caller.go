package context

import (
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	// KeyIdentity is the key for storing the verified caller in echo.Context.
	KeyIdentity ContextKey = "identity"

	// KeyBusiness is the key for storing the authorized business in echo.Context.
	KeyBusiness ContextKey = "business"
)

// SetIdentity stores the verified caller and tags the request logger with its uid.
func SetIdentity(c echo.Context, identity *service.Identity) {
	c.Set(string(KeyIdentity), identity)
	AddLogAttrs(c, slog.String("caller_uid", identity.UID))
}

// GetIdentity returns the verified caller set by the authentication middleware.
func GetIdentity(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*service.Identity)

	return identity, ok && identity != nil
}

// SetBusiness stores the business the caller was authorized for.
func SetBusiness(c echo.Context, business *entity.Business) {
	c.Set(string(KeyBusiness), business)
	AddLogAttrs(c, slog.String("business_id", business.ID))
}

// GetBusiness returns the business set by the ownership middleware.
func GetBusiness(c echo.Context) (*entity.Business, bool) {
	business, ok := c.Get(string(KeyBusiness)).(*entity.Business)

	return business, ok && business != nil
}
