// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "weev/internal/delivery/context"
	"weev/internal/domain/entity"
	domainerrors "weev/internal/domain/errors"
	"weev/internal/domain/lifecycle"
	"weev/internal/domain/service"
	"weev/internal/errors"

	"github.com/google/uuid"
)

const outcomeSuccess = "success"

// ledgerNotifier publishes committed ledger changes. Publishing never fails the
// operation that produced the event; errors are only logged.
type ledgerNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (n *ledgerNotifier) notify(ctx context.Context, event *service.LedgerEvent) {
	if n.publisher == nil {
		return
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	// The request may be cancelled as soon as the response is written.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := n.publisher.PublishLedgerEvent(publishCtx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to publish ledger event",
			slog.String("type", event.Type),
			slog.String("eventID", event.ID),
			slog.Any("error", err),
		)
	}
}

// outcomeOf turns a workflow error into a metric label.
func outcomeOf(err error) string {
	if err == nil {
		return outcomeSuccess
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Kind() != domainerrors.KindInternal {
		return strings.ToLower(appErr.ErrorCode())
	}

	return string(domainerrors.KindInternal)
}

// logFailure logs client errors at info and everything else at error.
func logFailure(logger *slog.Logger, msg string, err error, attrs ...any) {
	attrs = append(attrs, slog.Any("error", err))
	if domainerrors.KindOf(err) == domainerrors.KindInternal {
		logger.Error(msg, attrs...)

		return
	}

	logger.Info(msg, attrs...)
}

func grantIDs(grants []*entity.RewardGrant) []string {
	ids := make([]string, 0, len(grants))
	for _, grant := range grants {
		ids = append(ids, grant.ID.String())
	}

	return ids
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

type nopLedgerMetrics struct{}

func (nopLedgerMetrics) ObserveActivation(string) {}
func (nopLedgerMetrics) ObservePoints(string, int) {}
func (nopLedgerMetrics) ObserveGrantsIssued(int) {}
func (nopLedgerMetrics) ObserveClaim(string) {}
func (nopLedgerMetrics) ObserveExpired(int) {}

func metricsOrNop(m service.LedgerMetrics) service.LedgerMetrics {
	if m == nil {
		return nopLedgerMetrics{}
	}

	return m
}
