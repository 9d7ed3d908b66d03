// Package httpx escribe respuestas JSON, traduce errores de apperr a status
// HTTP y parsea ids de ruta, paginación y flags de query.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"adopciones-api/internal/platform/apperr"
	"adopciones-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100

	// DateLayout es el formato de fechas de la API (YYYY-MM-DD).
	DateLayout = "2006-01-02"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Detail string            `json:"detail,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError traduce la taxonomía de apperr a HTTP.
// Los errores no clasificados se loguean y se responden como 500 sin detalle.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *apperr.ValidationError

	switch {
	case errors.As(err, &ve):
		WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "validation_error",
			Detail: "datos inválidos",
			Fields: ve.Fields,
		})
	case errors.Is(err, apperr.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, ErrorResponse{Error: "not_found", Detail: err.Error()})
	case errors.Is(err, apperr.ErrConflict):
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "conflict", Detail: err.Error()})
	case errors.Is(err, apperr.ErrInvalidState):
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid_state", Detail: err.Error()})
	case errors.Is(err, apperr.ErrBadRequest):
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_request", Detail: err.Error()})
	default:
		logger.FromContext(r.Context()).Error("request failed", map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err,
		})
		WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal_error", Detail: "error interno"})
	}
}

// DecodeJSON decodifica el body rechazando campos desconocidos.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.New(fmt.Sprintf("json inválido: %v", err), apperr.ErrBadRequest)
	}
	return nil
}

// Page es la paginación skip/limit de los listados.
type Page struct {
	Offset int
	Limit  int
}

// ParsePage lee skip (>=0) y limit (1..MaxLimit).
func ParsePage(r *http.Request, defaultLimit int) (Page, error) {
	v := apperr.NewValidation()
	p := Page{Offset: 0, Limit: defaultLimit}

	if s := strings.TrimSpace(r.URL.Query().Get("skip")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			v.Add("skip", "debe ser un entero >= 0")
		} else {
			p.Offset = n
		}
	}
	if s := strings.TrimSpace(r.URL.Query().Get("limit")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > MaxLimit {
			v.Add("limit", fmt.Sprintf("debe ser un entero entre 1 y %d", MaxLimit))
		} else {
			p.Limit = n
		}
	}
	return p, v.Err()
}

// QueryBool acepta true/false, 1/0, yes/no, on/off.
func QueryBool(r *http.Request, key string, def bool) (bool, error) {
	s := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key)))
	switch s {
	case "":
		return def, nil
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, apperr.Validation(key, "debe ser un booleano")
	}
}

// QueryInt64 devuelve nil si el parámetro no vino.
func QueryInt64(r *http.Request, key string) (*int64, error) {
	s := strings.TrimSpace(r.URL.Query().Get(key))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, apperr.Validation(key, "debe ser un entero")
	}
	return &n, nil
}

// PathID lee un id entero de la ruta.
func PathID(r *http.Request, name string) (int64, error) {
	s := chi.URLParam(r, name)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, apperr.Validation(name, "debe ser un entero")
	}
	return n, nil
}
