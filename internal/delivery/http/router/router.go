// Package router contains routing setup for the HTTP delivery.
package router

import (
	"recetario/internal/delivery/http/router/handler"
	"recetario/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers the router wires up, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	RecetaHandler       *handler.RecetaHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	recetaHandler       *handler.RecetaHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		recetaHandler:       params.RecetaHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Service metadata
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)
	e.GET("/api/info", handler.APIInfo)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes
	userGroup := e.Group("/usuarios")
	{
		userGroup.GET("/", r.userHandler.List)
		userGroup.GET("/:id", r.userHandler.Get)
	}

	// Recipe catalog routes
	recetaGroup := e.Group("/api/recetas")
	{
		recetaGroup.GET("/", r.recetaHandler.List)
		recetaGroup.GET("/:id", r.recetaHandler.Get)
		recetaGroup.POST("/", r.recetaHandler.Create)
		recetaGroup.PUT("/:id", r.recetaHandler.Update)
		recetaGroup.DELETE("/:id", r.recetaHandler.Delete)
	}
}
