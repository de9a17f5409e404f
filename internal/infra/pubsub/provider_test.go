package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newPublisherParams(t *testing.T, cfg *config.PubSubConfig) (PublisherParams, *fxtest.Lifecycle) {
	lc := fxtest.NewLifecycle(t)

	return PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, lc
}

func TestNewEventPublisher(t *testing.T) {
	t.Run("unconfigured falls back to noop", func(t *testing.T) {
		params, _ := newPublisherParams(t, &config.PubSubConfig{})

		publisher, err := NewEventPublisher(params)
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishOrderPaid(context.Background(), &service.OrderPaidEvent{OrderID: "o-1"}))
	})

	t.Run("local provider needs an endpoint", func(t *testing.T) {
		params, _ := newPublisherParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderLocal})

		_, err := NewEventPublisher(params)
		assert.Error(t, err)
	})

	t.Run("local provider closes on stop", func(t *testing.T) {
		params, lc := newPublisherParams(t, &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://127.0.0.1:1/push",
		})

		publisher, err := NewEventPublisher(params)
		require.NoError(t, err)
		assert.NotNil(t, publisher)

		lc.RequireStart().RequireStop()
	})

	t.Run("google provider without any project fails", func(t *testing.T) {
		params, _ := newPublisherParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderGoogle})

		_, err := NewEventPublisher(params)
		assert.ErrorContains(t, err, "project ID")
	})

	t.Run("unknown provider", func(t *testing.T) {
		params, _ := newPublisherParams(t, &config.PubSubConfig{Provider: "kafka"})

		_, err := NewEventPublisher(params)
		assert.ErrorContains(t, err, "unknown pubsub provider")
	})
}
