package usecase

import "context"

// WebhookUsecase reconciles provider events into business and order state
type WebhookUsecase interface {
	// HandleWebhook verifies the raw payload against its signature and applies the event.
	// A nil error means the event may be acknowledged.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}
