// Package router contains routing for the HTTP API.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// routePrefixes lists the mount points of every route. Hosting rewrites
// forward "/api/..." unchanged, so both are served.
var routePrefixes = []string{"", "/api"}

type RouterParams struct {
	fx.In

	StripeHandler  *handler.StripeHandler
	WebhookHandler *handler.WebhookHandler
	OrderHandler   *handler.OrderHandler
	SlugHandler    *handler.SlugHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	stripeHandler  *handler.StripeHandler
	webhookHandler *handler.WebhookHandler
	orderHandler   *handler.OrderHandler
	slugHandler    *handler.SlugHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		stripeHandler:  params.StripeHandler,
		webhookHandler: params.WebhookHandler,
		orderHandler:   params.OrderHandler,
		slugHandler:    params.SlugHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	for _, prefix := range routePrefixes {
		r.registerGroup(e.Group(prefix))
	}
}

func (r *router) registerGroup(g *echo.Group) {
	owner := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireBusinessOwner}

	g.GET("/health", handler.HealthCheck)

	stripeGroup := g.Group("/stripe")
	{
		stripeGroup.POST("/createAccount", r.stripeHandler.CreateAccount, owner...)
		stripeGroup.POST("/createAccountLink", r.stripeHandler.CreateAccountLink, owner...)
		stripeGroup.GET("/dashboardLink", r.stripeHandler.DashboardLink, owner...)
		stripeGroup.POST("/syncAccount", r.stripeHandler.SyncAccount, owner...)
		stripeGroup.POST("/createCheckoutSession", r.stripeHandler.CreateCheckoutSession, owner...)

		// Public and signature-verified routes
		stripeGroup.POST("/createCheckoutSessionPublic", r.stripeHandler.CreatePublicCheckoutSession)
		stripeGroup.POST("/webhook", r.webhookHandler.HandleStripeWebhook)
	}

	businessGroup := g.Group("/businesses/:businessId")
	{
		businessGroup.POST("/orders", r.orderHandler.PlaceOrder)
		businessGroup.GET("/orders", r.orderHandler.ListOrders, owner...)
		businessGroup.PATCH("/orders/:orderId", r.orderHandler.AdvanceOrder, owner...)
		businessGroup.DELETE("/orders/:orderId", r.orderHandler.DeleteOrder, owner...)

		businessGroup.PUT("/slug", r.slugHandler.SetSlug, owner...)
		businessGroup.DELETE("/slug", r.slugHandler.ClearSlug, owner...)
	}

	slugGroup := g.Group("/slugs")
	{
		slugGroup.GET("/:slug", r.slugHandler.ResolveSlug)
		slugGroup.GET("/:slug/availability", r.slugHandler.CheckAvailability)
	}
}
