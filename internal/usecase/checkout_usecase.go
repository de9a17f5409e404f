package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutLineItemInput is an owner-supplied line. Amount is in minor units and may be fractional.
type CheckoutLineItemInput struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Quantity int64   `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

// OwnerCheckoutInput is the owner-initiated multi-item checkout request
type OwnerCheckoutInput struct {
	OrderID       string
	LineItems     []CheckoutLineItemInput
	Currency      string
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
}

// PublicCheckoutInput is the buyer-initiated single-item checkout request.
// It deliberately carries no amount.
type PublicCheckoutInput struct {
	BusinessID    string
	ItemID        string
	OrderID       string
	Quantity      int64
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
}

// CheckoutResult is the created session
type CheckoutResult struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// CheckoutUsecase builds checkout sessions routed to a business's connected account
type CheckoutUsecase interface {
	// CreateCheckoutSession creates a session from explicit owner line items
	CreateCheckoutSession(ctx context.Context, business *entity.Business, input *OwnerCheckoutInput) (*CheckoutResult, error)

	// CreatePublicCheckoutSession creates a session for one catalog item priced server-side
	CreatePublicCheckoutSession(ctx context.Context, input *PublicCheckoutInput) (*CheckoutResult, error)
}
