// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"orla/internal/delivery/http/middleware"
	"orla/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ListingHandler *handler.ListingHandler
	CatalogHandler *handler.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	listingHandler *handler.ListingHandler
	catalogHandler *handler.CatalogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		listingHandler: params.ListingHandler,
		catalogHandler: params.CatalogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Everything behind the admin panel requires a valid session.
	adminGroup := e.Group("")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.GET("/me", r.userHandler.Me)
		adminGroup.PUT("/me", r.userHandler.UpdateMe)

		adminGroup.GET("/listings", r.listingHandler.List)
		adminGroup.POST("/listings", r.listingHandler.Create)
		adminGroup.GET("/listings/:id", r.listingHandler.Get)
		adminGroup.PATCH("/listings/:id/status", r.listingHandler.SetStatus)
		adminGroup.DELETE("/listings/:id", r.listingHandler.Delete)

		adminGroup.GET("/owners", r.catalogHandler.ListOwners)
		adminGroup.POST("/owners", r.catalogHandler.CreateOwner)
		adminGroup.GET("/brokers", r.catalogHandler.ListBrokers)
	}
}
