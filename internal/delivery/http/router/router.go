// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	ProductHandler    *handler.ProductHandler
	CategoryHandler   *handler.CategoryHandler
	ReviewHandler     *handler.ReviewHandler
	PermissionHandler *handler.PermissionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	productHandler    *handler.ProductHandler
	categoryHandler   *handler.CategoryHandler
	reviewHandler     *handler.ReviewHandler
	permissionHandler *handler.PermissionHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		productHandler:    params.ProductHandler,
		categoryHandler:   params.CategoryHandler,
		reviewHandler:     params.ReviewHandler,
		permissionHandler: params.PermissionHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// Public catalog reads
	e.GET("/products", r.productHandler.List)
	e.GET("/products/:slug", r.productHandler.Detail)
	e.GET("/categories", r.categoryHandler.List)
	e.GET("/categories/:slug/products", r.productHandler.ListByCategory)

	// Public review reads
	e.GET("/reviews", r.reviewHandler.List)
	e.GET("/reviews/product/:id", r.reviewHandler.ListByProduct)

	// Routes that require authentication. Product writes authorize against
	// ownership inside the workflows, so no role middleware here.
	userGroup := e.Group("")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.accountHandler.CurrentUser)
		userGroup.POST("/reviews", r.reviewHandler.Submit)
		userGroup.POST("/products", r.productHandler.Create)
		userGroup.PUT("/products/:slug", r.productHandler.Update)
		userGroup.DELETE("/products/:slug", r.productHandler.Delete)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.DELETE("/reviews/:id", r.reviewHandler.Retract)
		adminGroup.PUT("/users/:id/supplier", r.permissionHandler.ToggleSupplier)
		adminGroup.DELETE("/users/:id", r.permissionHandler.DeactivateUser)
		adminGroup.POST("/categories", r.categoryHandler.Create)
		adminGroup.PUT("/categories/:id", r.categoryHandler.Update)
		adminGroup.DELETE("/categories/:id", r.categoryHandler.Delete)
	}
}
