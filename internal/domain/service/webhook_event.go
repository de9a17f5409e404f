package service

// WebhookEvent is a verified provider event decoded into at most one typed payload.
// Both payloads are nil for event types the reconciler does not handle and for
// handled types whose payload did not have the expected shape.
type WebhookEvent struct {
	ID   string
	Type string

	AccountUpdated           *AccountUpdatedPayload
	CheckoutSessionCompleted *CheckoutSessionCompletedPayload
}

// AccountUpdatedPayload is the account snapshot of an account.updated event.
type AccountUpdatedPayload struct {
	Account ConnectedAccount
}

// CheckoutSessionCompletedPayload is the session of a checkout.session.completed event.
type CheckoutSessionCompletedPayload struct {
	SessionID string
	Metadata  map[string]string
}
