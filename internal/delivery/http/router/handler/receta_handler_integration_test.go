package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recetaEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		ID               uint   `json:"id"`
		Titulo           string `json:"titulo"`
		Descripcion      string `json:"descripcion"`
		Ingredientes     string `json:"ingredientes"`
		PasosPreparacion string `json:"pasos_preparacion"`
		AutorID          uint   `json:"autor_id"`
	} `json:"data"`
}

func TestRecetaCRUDFlow(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/recetas/",
		`{"titulo":"Gazpacho","descripcion":"Sopa fría","ingredientes":"Tomate, Pepino","pasos_preparacion":"1. Triturar\n2. Enfriar"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created recetaEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.Data.ID)
	assert.Equal(t, "Gazpacho", created.Data.Titulo)
	assert.Equal(t, uint(1), created.Data.AutorID)

	path := fmt.Sprintf("/api/recetas/%d", created.Data.ID)

	rec = doJSON(e, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPut, path, `{"descripcion":"Sopa fría andaluza"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated recetaEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Gazpacho", updated.Data.Titulo)
	assert.Equal(t, "Sopa fría andaluza", updated.Data.Descripcion)
	assert.Equal(t, "Tomate, Pepino", updated.Data.Ingredientes)

	rec = doJSON(e, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Receta 'Gazpacho' eliminada correctamente")

	rec = doJSON(e, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecetaCreate_OnlyTitulo(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/recetas/", `{"titulo":"Pan"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created recetaEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Pan", created.Data.Titulo)
	assert.Empty(t, created.Data.Descripcion)
	assert.Empty(t, created.Data.Ingredientes)
	assert.Empty(t, created.Data.PasosPreparacion)
	assert.Equal(t, uint(1), created.Data.AutorID)
}

func TestRecetaCreate_EmptyBodyAppliesDefaults(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/recetas/", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created recetaEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.Data.ID)
	assert.Empty(t, created.Data.Titulo)
	assert.Empty(t, created.Data.Descripcion)
	assert.Empty(t, created.Data.Ingredientes)
	assert.Empty(t, created.Data.PasosPreparacion)
	assert.Equal(t, uint(1), created.Data.AutorID)
}

func TestRecetaUpdate_EmptyBodyLeavesRecetaUnchanged(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/recetas/", `{"titulo":"Crema","descripcion":"De calabaza"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created recetaEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/recetas/%d", created.Data.ID), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated recetaEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Crema", updated.Data.Titulo)
	assert.Equal(t, "De calabaza", updated.Data.Descripcion)
}

func TestReceta_NotFoundPaths(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/recetas/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodPut, "/api/recetas/99", `{"titulo":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/recetas/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RECETA_NOT_FOUND")
}

func TestReceta_InvalidIDParamRejected(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/recetas/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}
