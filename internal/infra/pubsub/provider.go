// Package pubsub publishes committed ledger changes to Google Pub/Sub or a local push endpoint.
package pubsub

import (
	"context"
	"log/slog"
	"strings"

	"weev/config"
	"weev/internal/domain/constants"
	"weev/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishLedgerEvent(_ context.Context, event *service.LedgerEvent) error {
	p.logger.Debug("Ledger event dropped, publishing disabled",
		slog.String("event_type", event.Type),
		slog.String("user_id", event.UserID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider and closes it on stop.
// An empty provider yields a publisher that drops events.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "ledger_events"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, ledger events will not be published")

		return &noopPublisher{logger: logger}, nil
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	var (
		publisher service.EventPublisher
		err       error
	)
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		logger.Info("Publishing ledger events to local push endpoint", slog.String("endpoint", cfg.LocalEndpoint))
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing ledger event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// validateConfig reports every missing setting of the selected provider at once.
func validateConfig(cfg *config.PubSubConfig) error {
	var missing []string
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			missing = append(missing, "localEndpoint")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			missing = append(missing, "projectId")
		}
		if cfg.TopicID == "" {
			missing = append(missing, "topicId")
		}
	default:
		return errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	if len(missing) > 0 {
		return errors.Errorf("pubsub provider %q requires %s", cfg.Provider, strings.Join(missing, ", "))
	}

	return nil
}
