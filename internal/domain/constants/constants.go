// Package constants holds wire-level names shared across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"

	// DefaultOrderPaidTopic receives order paid events when no topic is configured.
	DefaultOrderPaidTopic = "order-paid"
)

// Identity verifier providers
const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

// Stripe webhook event types handled by the reconciler.
const (
	EventTypeAccountUpdated           = "account.updated"
	EventTypeCheckoutSessionCompleted = "checkout.session.completed"
)

// Checkout session metadata keys echoed back in webhook events.
const (
	MetadataBusinessID = "businessId"
	MetadataOrderID    = "orderId"
	MetadataItemID     = "itemId"
	MetadataQuantity   = "quantity"
)

// HeaderStripeSignature carries the webhook signature.
const HeaderStripeSignature = "Stripe-Signature"

const DefaultCurrency = "usd"
