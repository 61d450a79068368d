package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"weev/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/ledger-events"
	localPushTimeout    = 10 * time.Second
	maxErrorBodyExcerpt = 256
)

// PubSubPushMessage is the body Google Pub/Sub sends to push subscribers.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher delivers ledger events straight to a push endpoint, so a
// consumer can be developed without a Pub/Sub emulator.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
		now:      time.Now,
	}
}

func (p *localHTTPPublisher) PublishLedgerEvent(ctx context.Context, event *service.LedgerEvent) error {
	body, err := p.envelope(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push ledger event %s", event.ID)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyExcerpt))

		return errors.Errorf("push endpoint answered %d: %s", resp.StatusCode, bytes.TrimSpace(excerpt))
	}

	p.logger.Debug("Ledger event pushed",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}

func (p *localHTTPPublisher) envelope(event *service.LedgerEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode ledger event")
	}

	var msg PubSubPushMessage
	msg.Subscription = localSubscription
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.ID
	msg.Message.OrderingKey = event.UserID
	msg.Message.PublishTime = p.now().UTC().Format(time.RFC3339Nano)
	msg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(err, "encode push envelope")
	}

	return body, nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}

// eventAttributes flattens the routing fields consumers filter on.
func eventAttributes(event *service.LedgerEvent) map[string]string {
	attrs := make(map[string]string, len(event.Attributes)+3)
	for k, v := range event.Attributes {
		attrs[k] = v
	}
	attrs["event_type"] = event.Type
	attrs["user_id"] = event.UserID
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return attrs
}
