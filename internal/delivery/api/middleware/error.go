package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"weev/internal/delivery/api/response"
	deliverycontext "weev/internal/delivery/context"
	domainerrors "weev/internal/domain/errors"
	"weev/internal/errors"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Kind() != domainerrors.KindInternal {
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, response.CodeHTTPError, message, nil)

		return
	}

	attrs := []any{
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	}
	if stack := errors.StackTrace(err); stack != nil {
		attrs = append(attrs, slog.String("stack", fmt.Sprintf("%+v", stack)))
	}
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error", attrs...)
	m.report(c, err)

	_ = response.InternalServerError(c)
}

// report sends the error to Sentry tagged with the request. A no-op when Sentry is not initialised.
func (m *ErrorMiddleware) report(c echo.Context, err error) {
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetRequest(c.Request())
		scope.SetTag("request_id", deliverycontext.GetRequestID(c))
		scope.SetTag("route", c.Path())
		if principal, ok := deliverycontext.GetPrincipal(c); ok {
			scope.SetUser(sentry.User{ID: principal.UserID.String()})
		}
	})
	hub.CaptureException(err)
}
