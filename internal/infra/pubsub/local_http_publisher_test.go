package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishOrderPaid(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.OrderPaidEvent{
		RequestID:  "req-1",
		EventID:    "evt_1",
		BusinessID: "biz-1",
		OrderID:    "order-1",
		SessionID:  "cs_1",
		PaidAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishOrderPaid(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt_1", received.Message.MessageID)
	assert.Equal(t, "order.paid", received.Message.Attributes["event_type"])
	assert.Equal(t, "order-1", received.Message.Attributes["order_id"])
	assert.Equal(t, "biz-1", received.Message.OrderingKey)
	assert.Equal(t, "2026-03-01T12:00:00Z", received.Message.PublishTime)
	assert.Equal(t, localPushSubscription, received.Subscription)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.OrderPaidEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishOrderPaid(context.Background(), &service.OrderPaidEvent{OrderID: "order-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
