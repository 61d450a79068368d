package handler

import (
	"log/slog"
	"net/http"

	"weev/internal/delivery/api/response"
	"weev/internal/errors"
	"weev/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActivationHandlerParams holds dependencies for ActivationHandler, injected by Fx.
type ActivationHandlerParams struct {
	fx.In

	ActivationUC usecase.ActivationUsecase
	Logger       *slog.Logger
}

// ActivationHandler serves product activation.
type ActivationHandler struct {
	uc     usecase.ActivationUsecase
	logger *slog.Logger
}

// NewActivationHandler is the constructor for ActivationHandler.
func NewActivationHandler(params ActivationHandlerParams) *ActivationHandler {
	return &ActivationHandler{
		uc:     params.ActivationUC,
		logger: params.Logger,
	}
}

// Activate handles POST /api/v1/activate.
func (h *ActivationHandler) Activate(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	var input usecase.ActivateInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.uc.Activate(c.Request().Context(), caller, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// ActivateQR handles POST /api/v1/activate/qr.
func (h *ActivationHandler) ActivateQR(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	var input usecase.ActivateQRInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.uc.ActivateQR(c.Request().Context(), caller, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// ValidateCode handles POST /api/v1/validate-code. It does not require a session.
func (h *ActivationHandler) ValidateCode(c echo.Context) error {
	var input usecase.ValidateCodeInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.uc.ValidateCode(c.Request().Context(), input.ActivationCode)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ListActivations handles GET /api/v1/my-activations.
func (h *ActivationHandler) ListActivations(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	activations, err := h.uc.ListActivations(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activations)
}
