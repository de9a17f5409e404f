package stripe

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func newTestProvider(t *testing.T, webhookSecret string) service.PaymentProvider {
	t.Helper()
	factory := newProviderFactory(&config.StripeConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: webhookSecret,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), "")

	p, err := factory.Provider()
	require.NoError(t, err)

	return p
}

func signedPayload(t *testing.T, payload string) (body []byte, header string) {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})

	return signed.Payload, signed.Header
}

func eventJSON(id, eventType, object string) string {
	return fmt.Sprintf(`{"id":%q,"object":"event","type":%q,"data":{"object":%s}}`, id, eventType, object)
}

func TestConstructWebhookEvent_AccountUpdated(t *testing.T) {
	p := newTestProvider(t, testWebhookSecret)
	body, header := signedPayload(t, eventJSON("evt_1", "account.updated",
		`{"id":"acct_1","object":"account","charges_enabled":true,"payouts_enabled":false,"details_submitted":true}`))

	event, err := p.ConstructWebhookEvent(body, header)

	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, "account.updated", event.Type)
	require.NotNil(t, event.AccountUpdated)
	assert.Nil(t, event.CheckoutSessionCompleted)
	assert.Equal(t, service.ConnectedAccount{
		ID:               "acct_1",
		ChargesEnabled:   true,
		DetailsSubmitted: true,
	}, event.AccountUpdated.Account)
}

func TestConstructWebhookEvent_CheckoutSessionCompleted(t *testing.T) {
	p := newTestProvider(t, testWebhookSecret)
	body, header := signedPayload(t, eventJSON("evt_2", "checkout.session.completed",
		`{"id":"cs_test_1","object":"checkout.session","metadata":{"businessId":"biz-1","orderId":"order-1"}}`))

	event, err := p.ConstructWebhookEvent(body, header)

	require.NoError(t, err)
	require.NotNil(t, event.CheckoutSessionCompleted)
	assert.Equal(t, "cs_test_1", event.CheckoutSessionCompleted.SessionID)
	assert.Equal(t, map[string]string{"businessId": "biz-1", "orderId": "order-1"}, event.CheckoutSessionCompleted.Metadata)
}

func TestConstructWebhookEvent_IgnoresOtherShapes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "unhandled type", payload: eventJSON("evt_3", "payment_intent.created", `{"id":"pi_1","object":"payment_intent"}`)},
		{name: "account without id", payload: eventJSON("evt_4", "account.updated", `{"object":"account"}`)},
		{name: "session of wrong shape", payload: eventJSON("evt_5", "checkout.session.completed", `{"id":42}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, testWebhookSecret)
			body, header := signedPayload(t, tt.payload)

			event, err := p.ConstructWebhookEvent(body, header)

			require.NoError(t, err)
			assert.Nil(t, event.AccountUpdated)
			assert.Nil(t, event.CheckoutSessionCompleted)
		})
	}
}

func TestConstructWebhookEvent_BadSignature(t *testing.T) {
	p := newTestProvider(t, testWebhookSecret)
	body, _ := signedPayload(t, eventJSON("evt_1", "account.updated", `{"id":"acct_1"}`))

	_, err := p.ConstructWebhookEvent(body, "t=1,v1=deadbeef")

	assert.ErrorIs(t, err, service.ErrWebhookSignature)
}

func TestConstructWebhookEvent_TamperedBody(t *testing.T) {
	p := newTestProvider(t, testWebhookSecret)
	_, header := signedPayload(t, eventJSON("evt_1", "account.updated", `{"id":"acct_1"}`))

	_, err := p.ConstructWebhookEvent([]byte(eventJSON("evt_1", "account.updated", `{"id":"acct_evil"}`)), header)

	assert.ErrorIs(t, err, service.ErrWebhookSignature)
}

func TestConstructWebhookEvent_NoSecret(t *testing.T) {
	p := newTestProvider(t, "")
	body, header := signedPayload(t, eventJSON("evt_1", "account.updated", `{"id":"acct_1"}`))

	_, err := p.ConstructWebhookEvent(body, header)

	assert.ErrorIs(t, err, service.ErrProviderNotConfigured)
}
