package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"recetario/internal/delivery/http/response"
	"recetario/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecetaHandler holds dependencies for recipe catalog handlers.
type RecetaHandler struct {
	uc     usecase.RecetaUsecase
	logger *slog.Logger
}

// NewRecetaHandler is the constructor for RecetaHandler, injected by Fx.
func NewRecetaHandler(uc usecase.RecetaUsecase, logger *slog.Logger) *RecetaHandler {
	return &RecetaHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the whole catalog.
func (h *RecetaHandler) List(c echo.Context) error {
	recetas, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recetas, "")
}

// Get returns a single recipe.
func (h *RecetaHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	receta, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, receta, "")
}

// Create stores a new recipe. All fields are optional; defaults apply to
// whatever the client omits, an empty body included.
func (h *RecetaHandler) Create(c echo.Context) error {
	input := new(usecase.CreateRecetaInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de receta no válidos")
	}

	receta, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, receta, "Receta creada correctamente")
}

// Update applies a partial update to a stored recipe.
func (h *RecetaHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdateRecetaInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de receta no válidos")
	}

	receta, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, receta, "Receta actualizada correctamente")
}

// Delete removes a recipe and confirms with the removed title.
func (h *RecetaHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	receta, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	mensaje := fmt.Sprintf("Receta '%s' eliminada correctamente", receta.Titulo)

	return response.Success(c, http.StatusOK, map[string]string{"mensaje": mensaje}, mensaje)
}
