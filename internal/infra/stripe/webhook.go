package stripe

import (
	"encoding/json"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	stripego "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
)

// ConstructWebhookEvent verifies the Stripe-Signature header and decodes the
// payload of the event types the reconciler handles.
func (p *provider) ConstructWebhookEvent(payload []byte, signature string) (*service.WebhookEvent, error) {
	if p.webhookSecret == "" {
		return nil, service.ErrProviderNotConfigured
	}

	// Events may be pinned to a newer API version than the SDK; only the
	// fields read below matter.
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errors.Wrap(service.ErrWebhookSignature, err.Error())
	}

	return decodeEvent(&event), nil
}

func decodeEvent(event *stripego.Event) *service.WebhookEvent {
	out := &service.WebhookEvent{ID: event.ID, Type: string(event.Type)}
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return out
	}

	switch out.Type {
	case constants.EventTypeAccountUpdated:
		var account stripego.Account
		if err := json.Unmarshal(event.Data.Raw, &account); err != nil || account.ID == "" {
			return out
		}
		out.AccountUpdated = &service.AccountUpdatedPayload{Account: *toConnectedAccount(&account)}

	case constants.EventTypeCheckoutSessionCompleted:
		var session stripego.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil || session.ID == "" {
			return out
		}
		out.CheckoutSessionCompleted = &service.CheckoutSessionCompletedPayload{
			SessionID: session.ID,
			Metadata:  session.Metadata,
		}
	}

	return out
}
