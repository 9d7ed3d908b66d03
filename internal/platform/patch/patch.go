// Package patch modela campos de actualizaciones parciales.
//
// Un Field distingue tres casos: no enviado (Set=false), enviado como null
// (Set=true, Value=nil) y enviado con valor.
package patch

import "encoding/json"

type Field[T any] struct {
	Set   bool
	Value *T
}

// Of construye un campo enviado con valor.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

// Null construye un campo enviado explícitamente como null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

// IsNull indica que el campo vino como null.
func (f Field[T]) IsNull() bool {
	return f.Set && f.Value == nil
}

// UnmarshalJSON solo se invoca cuando la key está presente en el body.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if string(b) == "null" {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

// Apply copia el valor sobre dst si el campo vino con valor.
func (f Field[T]) Apply(dst *T) {
	if f.Set && f.Value != nil {
		*dst = *f.Value
	}
}

// ApplyNullable copia valor o nil sobre dst si el campo vino.
func (f Field[T]) ApplyNullable(dst **T) {
	if !f.Set {
		return
	}
	if f.Value == nil {
		*dst = nil
		return
	}
	v := *f.Value
	*dst = &v
}
