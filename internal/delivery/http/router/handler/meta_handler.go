package handler

import (
	"net/http"

	"recetario/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "Recetas API",
	}, "Service is healthy")
}

// Root welcomes the caller and indexes the available endpoint groups.
func Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"mensaje": "Bienvenido a la API de Recetas con SQLite",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"recetas":  "/api/recetas/",
			"usuarios": "/usuarios/",
			"auth":     "/auth/",
			"health":   "/health",
		},
	}, "")
}

// APIInfo describes the service.
func APIInfo(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"nombre":      "API Recetas",
		"descripcion": "Sistema de gestión de recetas de cocina",
		"tecnologias": []string{"Go", "Echo", "GORM", "SQLite"},
	}, "")
}
