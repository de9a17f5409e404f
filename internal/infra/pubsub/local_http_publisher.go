package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// localPushSubscription names the simulated subscription in push envelopes.
const localPushSubscription = "projects/local/subscriptions/" + constants.DefaultOrderPaidTopic + "-push"

// localHTTPPublisher posts Pub/Sub push envelopes straight to a subscriber
// endpoint so order fulfilment can be developed without the emulator.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
		OrderingKey string            `json:"orderingKey,omitempty"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		// Publishing happens inside webhook handling, so keep it short.
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// PublishOrderPaid publishes an event by sending HTTP POST to the local endpoint
func (p *localHTTPPublisher) PublishOrderPaid(ctx context.Context, event *service.OrderPaidEvent) error {
	body, err := newPushEnvelope(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push order paid %s", event.OrderID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("subscriber returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Order paid event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("business_id", event.BusinessID),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

// newPushEnvelope wraps the event the way a push subscription delivers it.
// The publish time is the payment time so redeliveries carry the same envelope.
func newPushEnvelope(event *service.OrderPaidEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	publishTime := event.PaidAt
	if publishTime.IsZero() {
		publishTime = time.Now()
	}

	envelope := PubSubPushMessage{Subscription: localPushSubscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = orderPaidAttributes(event)
	envelope.Message.MessageID = event.EventID
	envelope.Message.PublishTime = publishTime.UTC().Format(time.RFC3339)
	envelope.Message.OrderingKey = event.BusinessID

	body, err := json.Marshal(envelope)

	return body, errors.WithStack(err)
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
