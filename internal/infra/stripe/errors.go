package stripe

import (
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	stripego "github.com/stripe/stripe-go/v81"
)

// wrapStripeError converts an SDK error into a ProviderError whose message
// is the one Stripe returned.
func wrapStripeError(op string, err error) error {
	if err == nil {
		return nil
	}

	if stripeErr, ok := errors.AsType[*stripego.Error](err); ok && stripeErr.Msg != "" {
		return &service.ProviderError{Op: op, Message: stripeErr.Msg, Err: err}
	}

	return &service.ProviderError{Op: op, Message: err.Error(), Err: err}
}
