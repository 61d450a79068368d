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

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public catalog and brand administration.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		uc:     params.CatalogUC,
		logger: params.Logger,
	}
}

// ListProducts handles GET /api/v1/products?categoria=.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context(), usecase.ProductQuery{Category: c.QueryParam("categoria")})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products)
}

// Categories handles GET /api/v1/categories.
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// ListBrandProducts handles GET /api/v1/brand/products.
func (h *CatalogHandler) ListBrandProducts(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	products, err := h.uc.ListBrandProducts(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products)
}

// CreateProduct handles POST /api/v1/brand/products.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	var input usecase.ProductInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), caller, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/v1/brand/products/:id.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.ProductInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), caller, productID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// ProductQR handles GET /api/v1/brand/products/:id/qr and answers with a PNG.
func (h *CatalogHandler) ProductQR(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.ProductQR(c.Request().Context(), caller, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListBrandRewards handles GET /api/v1/brand/rewards.
func (h *CatalogHandler) ListBrandRewards(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	rewards, err := h.uc.ListBrandRewards(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rewards)
}

// CreateReward handles POST /api/v1/brand/rewards.
func (h *CatalogHandler) CreateReward(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	var input usecase.RewardInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	reward, err := h.uc.CreateReward(c.Request().Context(), caller, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reward)
}

// UpdateReward handles PUT /api/v1/brand/rewards/:id.
func (h *CatalogHandler) UpdateReward(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	rewardID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.RewardInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	reward, err := h.uc.UpdateReward(c.Request().Context(), caller, rewardID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reward)
}
