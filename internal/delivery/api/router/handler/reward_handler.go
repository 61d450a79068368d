package handler

import (
	"log/slog"
	"net/http"

	"weev/internal/delivery/api/response"
	"weev/internal/domain/entity"
	"weev/internal/errors"
	"weev/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RewardHandlerParams holds dependencies for RewardHandler, injected by Fx.
type RewardHandlerParams struct {
	fx.In

	RewardUC usecase.RewardUsecase
	Logger   *slog.Logger
}

// RewardHandler serves the caller's grants.
type RewardHandler struct {
	uc     usecase.RewardUsecase
	logger *slog.Logger
}

// NewRewardHandler is the constructor for RewardHandler.
func NewRewardHandler(params RewardHandlerParams) *RewardHandler {
	return &RewardHandler{
		uc:     params.RewardUC,
		logger: params.Logger,
	}
}

// Claim handles POST /api/v1/claim/:id.
func (h *RewardHandler) Claim(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	grantID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.Claim(c.Request().Context(), caller, grantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// ListGrants handles GET /api/v1/my-rewards?estado=. estado defaults to available.
func (h *RewardHandler) ListGrants(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	// A missing estado means available grants; an explicit empty one lists them all.
	state := string(entity.GrantStateAvailable)
	if c.QueryParams().Has("estado") {
		state = c.QueryParam("estado")
	}

	grants, err := h.uc.ListGrants(c.Request().Context(), caller, state)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, grants)
}

// Stats handles GET /api/v1/stats.
func (h *RewardHandler) Stats(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	stats, err := h.uc.Stats(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}
