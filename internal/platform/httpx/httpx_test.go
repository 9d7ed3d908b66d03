package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"adopciones-api/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_Mapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", apperr.Validation("nombre", "es obligatorio"), http.StatusUnprocessableEntity, "validation_error"},
		{"not found", apperr.New("refugio no encontrado", apperr.ErrNotFound), http.StatusNotFound, "not_found"},
		{"conflict wins over invalid state", apperr.New("ya adoptada", apperr.ErrConflict, apperr.ErrInvalidState), http.StatusBadRequest, "conflict"},
		{"invalid state", apperr.New("no disponible", apperr.ErrInvalidState), http.StatusBadRequest, "invalid_state"},
		{"bad request", apperr.New("json inválido", apperr.ErrBadRequest), http.StatusBadRequest, "bad_request"},
		{"wrapped not found", fmt.Errorf("get: %w", apperr.ErrNotFound), http.StatusNotFound, "not_found"},
		{"unknown", errors.New("pq: connection refused"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/x", nil)
			WriteError(w, r, tc.err)

			require.Equal(t, tc.status, w.Code)
			var body ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tc.code, body.Error)
		})
	}
}

func TestWriteError_InternalDoesNotLeakDetail(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	WriteError(w, r, errors.New("dial tcp 10.0.0.1:5432: secret host"))

	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}

func TestWriteError_ValidationFields(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/x", nil)
	WriteError(w, r, apperr.Validation("especie", "valor no permitido"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "valor no permitido", body.Fields["especie"])
}

func TestParsePage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	p, err := ParsePage(r, DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, Page{Offset: 0, Limit: 10}, p)

	r = httptest.NewRequest(http.MethodGet, "/x?skip=5&limit=100", nil)
	p, err = ParsePage(r, DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, Page{Offset: 5, Limit: 100}, p)

	for _, q := range []string{"skip=-1", "limit=0", "limit=101", "limit=abc"} {
		r = httptest.NewRequest(http.MethodGet, "/x?"+q, nil)
		_, err = ParsePage(r, DefaultLimit)
		assert.ErrorIs(t, err, apperr.ErrValidation, q)
	}
}

func TestQueryBool(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x?a=false&b=1&c=quizas", nil)

	v, err := QueryBool(r, "a", true)
	require.NoError(t, err)
	assert.False(t, v)

	v, err = QueryBool(r, "b", false)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = QueryBool(r, "missing", true)
	require.NoError(t, err)
	assert.True(t, v)

	_, err = QueryBool(r, "c", true)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestQueryInt64(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x?refugio_id=7&anio=dos", nil)

	v, err := QueryInt64(r, "refugio_id")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, int64(7), *v)

	v, err = QueryInt64(r, "mascota_id")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = QueryInt64(r, "anio")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		Nombre string `json:"nombre"`
	}
	r := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"nombre":"a","extra":1}`))
	err := DecodeJSON(r, &dst)
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}
