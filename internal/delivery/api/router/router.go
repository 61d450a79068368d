// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"weev/internal/delivery/api/middleware"
	"weev/internal/delivery/api/router/handler"
	"weev/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ActivationHandler *handler.ActivationHandler
	RewardHandler     *handler.RewardHandler
	CatalogHandler    *handler.CatalogHandler
	AuthMiddleware    *middleware.AuthMiddleware
	RateLimiter       *middleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	activationHandler *handler.ActivationHandler
	rewardHandler     *handler.RewardHandler
	catalogHandler    *handler.CatalogHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimiter       *middleware.RateLimiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		activationHandler: params.ActivationHandler,
		rewardHandler:     params.RewardHandler,
		catalogHandler:    params.CatalogHandler,
		authMiddleware:    params.AuthMiddleware,
		rateLimiter:       params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	apiV1 := e.Group("/api/v1")

	// Public catalog
	{
		apiV1.GET("/products", r.catalogHandler.ListProducts)
		apiV1.GET("/categories", r.catalogHandler.Categories)
		apiV1.POST("/validate-code", r.activationHandler.ValidateCode)
	}

	// Consumer ledger. The limiter runs after authentication so it keys on the user.
	authenticated := r.authMiddleware.Authenticate
	{
		apiV1.POST("/activate", r.activationHandler.Activate, authenticated, r.rateLimiter.Limit)
		apiV1.POST("/activate/qr", r.activationHandler.ActivateQR, authenticated, r.rateLimiter.Limit)
		apiV1.GET("/my-activations", r.activationHandler.ListActivations, authenticated)
		apiV1.GET("/my-rewards", r.rewardHandler.ListGrants, authenticated)
		apiV1.POST("/claim/:id", r.rewardHandler.Claim, authenticated)
		apiV1.GET("/stats", r.rewardHandler.Stats, authenticated)
	}

	// Brand administration
	brand := apiV1.Group("/brand", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.BrandAdminRoles))
	{
		brand.GET("/products", r.catalogHandler.ListBrandProducts)
		brand.POST("/products", r.catalogHandler.CreateProduct)
		brand.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		brand.GET("/products/:id/qr", r.catalogHandler.ProductQR)

		brand.GET("/rewards", r.catalogHandler.ListBrandRewards)
		brand.POST("/rewards", r.catalogHandler.CreateReward)
		brand.PUT("/rewards/:id", r.catalogHandler.UpdateReward)
	}
}
