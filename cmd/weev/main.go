package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"weev/config"
	"weev/internal/delivery"
	"weev/internal/delivery/api"
	apimiddleware "weev/internal/delivery/api/middleware"
	"weev/internal/delivery/api/router/handler"
	"weev/internal/infra/auth"
	logs "weev/internal/infra/log"
	"weev/internal/infra/metrics"
	"weev/internal/infra/persistence/postgres"
	"weev/internal/infra/pubsub"
	"weev/internal/infra/qrcode"
	"weev/internal/usecase/impl"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const sentryFlushTimeout = 2 * time.Second

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			initSentry,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewBrandRepository,
			postgres.NewProductRepository,
			postgres.NewRewardTemplateRepository,
			postgres.NewActivationRepository,
			postgres.NewRewardGrantRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewFromConfig,
			pubsub.NewEventPublisher,
			metrics.NewLedgerMetrics,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewActivationService,
			impl.NewRewardService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewActivationHandler,
			handler.NewRewardHandler,
			handler.NewCatalogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// initSentry enables error reporting when a DSN is configured and flushes pending events on stop.
func initSentry(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Sentry == nil || cfg.Sentry.DSN == "" {
		logger.Info("Sentry not configured, error reporting disabled")

		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Env.Env,
		ServerName:       cfg.Env.ServiceName,
		SampleRate:       cfg.Sentry.SampleRate,
		EnableTracing:    cfg.Sentry.TracesSampleRate > 0,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
	}); err != nil {
		return errors.Wrap(err, "failed to init sentry")
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			sentry.Flush(sentryFlushTimeout)

			return nil
		},
	})

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
