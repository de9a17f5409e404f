package service

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrProviderNotConfigured is returned by a factory when no secret key is configured.
	ErrProviderNotConfigured = errors.New("payment provider not configured")
	// ErrWebhookSignature is returned when a webhook payload fails signature verification.
	ErrWebhookSignature = errors.New("webhook signature verification failed")
)

// ProviderError carries a human-readable message from the payment provider.
// The message is safe to show to the user who triggered the call.
type ProviderError struct {
	Op      string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return e.Op + ": " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ConnectedAccount is the provider's view of a connected account.
type ConnectedAccount struct {
	ID               string
	ChargesEnabled   bool
	PayoutsEnabled   bool
	DetailsSubmitted bool
}

// CheckoutLineItem is one priced line of a checkout session. UnitAmount is in minor units.
type CheckoutLineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
	ImageURL   string
}

// CheckoutSessionParams describes a destination-charge checkout session.
type CheckoutSessionParams struct {
	Currency             string
	LineItems            []CheckoutLineItem
	SuccessURL           string
	CancelURL            string
	CustomerEmail        string
	DestinationAccountID string
	Metadata             map[string]string
}

// CheckoutSession is a created provider-hosted checkout.
type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentProvider wraps the payment processor's Connect, Checkout and webhook APIs.
type PaymentProvider interface {
	// PlatformAccountID returns the ID of the platform's own account.
	PlatformAccountID(ctx context.Context) (string, error)

	// CreateConnectedAccount creates an express connected account. Calls sharing an
	// idempotency key resolve to the same account.
	CreateConnectedAccount(ctx context.Context, email, idempotencyKey string) (string, error)

	// RetrieveAccount fetches a connected account.
	RetrieveAccount(ctx context.Context, accountID string) (*ConnectedAccount, error)

	// CreateOnboardingLink returns a single-use onboarding URL.
	CreateOnboardingLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)

	// CreateDashboardLink returns a login link to the connected account's dashboard.
	CreateDashboardLink(ctx context.Context, accountID string) (string, error)

	// CreateCheckoutSession creates a payment-mode checkout session.
	CreateCheckoutSession(ctx context.Context, params *CheckoutSessionParams) (*CheckoutSession, error)

	// ConstructWebhookEvent verifies the signature of a raw payload and decodes it.
	ConstructWebhookEvent(payload []byte, signature string) (*WebhookEvent, error)
}

// PaymentProviderFactory hands out a provider bound to the current configuration.
type PaymentProviderFactory interface {
	// Provider returns ErrProviderNotConfigured when credentials are missing.
	Provider() (PaymentProvider, error)
}
