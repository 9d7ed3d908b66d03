// Package apperr define la taxonomía de errores que cruza capas:
// storage -> services -> handlers.
//
// Los adapters de storage devuelven los sentinels (envueltos con %w).
// Los services los traducen a errores de dominio con mensaje para el cliente.
// httpx.WriteError decide el status HTTP a partir del "kind".
package apperr

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation error")
	ErrBadRequest   = errors.New("bad request")
)

// Error es un error de dominio con mensaje visible para el cliente.
// Puede pertenecer a más de un kind (errors.Is matchea cualquiera).
type Error struct {
	msg   string
	kinds []error
}

func New(msg string, kinds ...error) *Error {
	return &Error{msg: msg, kinds: kinds}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() []error { return e.kinds }

// ValidationError agrupa problemas por campo (campo -> mensaje).
type ValidationError struct {
	Fields map[string]string
}

func NewValidation() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// Add registra un problema; el primero por campo gana.
func (v *ValidationError) Add(field, msg string) {
	if _, ok := v.Fields[field]; ok {
		return
	}
	v.Fields[field] = msg
}

// Err devuelve nil si no hubo problemas.
func (v *ValidationError) Err() error {
	if v == nil || len(v.Fields) == 0 {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v.Fields[k])
	}
	return "datos inválidos: " + strings.Join(parts, "; ")
}

func (v *ValidationError) Unwrap() error { return ErrValidation }

// Validation es un atajo para un único campo inválido.
func Validation(field, msg string) error {
	v := NewValidation()
	v.Add(field, msg)
	return v
}

// Merge suma los campos de err si es un ValidationError; otros errores se ignoran.
func (v *ValidationError) Merge(err error) {
	var other *ValidationError
	if !errors.As(err, &other) {
		return
	}
	for k, msg := range other.Fields {
		v.Add(k, msg)
	}
}
