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

	"weev/config"
	"weev/internal/domain/constants"
	"weev/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishLedgerEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.LedgerEvent{
		ID:         "evt-1",
		Type:       constants.EventProductActivated,
		RequestID:  "req-1",
		UserID:     "user-1",
		ProductID:  "product-1",
		Points:     10,
		OccurredAt: time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishLedgerEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "user-1", received.Message.OrderingKey)
	assert.Equal(t, constants.EventProductActivated, received.Message.Attributes["event_type"])
	assert.Equal(t, "user-1", received.Message.Attributes["user_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.LedgerEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "product-1", decoded.ProductID)
	assert.Equal(t, 10, decoded.Points)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishLedgerEvent(context.Background(), &service.LedgerEvent{ID: "evt-2", Type: constants.EventRewardClaimed})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	newParams := func(cfg *config.Config) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: cfg,
			Logger: newDiscardLogger(),
		}
	}

	t.Run("unconfigured falls back to noop", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(&config.Config{}))
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishLedgerEvent(context.Background(), &service.LedgerEvent{Type: constants.EventRewardExpired}))
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}))
		assert.Error(t, err)
	})

	t.Run("local with endpoint", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://localhost:9999/push",
		}}))
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	t.Run("google requires project and topic", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "projectId, topicId")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}))
		assert.Error(t, err)
	})
}
