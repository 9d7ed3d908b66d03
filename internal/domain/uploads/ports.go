package uploads

import (
	"context"
	"io"
)

// ObjectStore es el almacenamiento externo de imágenes (S3, Supabase, memoria).
// Se construye al arrancar el proceso y se inyecta; no hay cliente global.
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PublicURL(key string) string
}

// PhotoTarget es una entidad que guarda la URL de su foto (refugio o mascota).
type PhotoTarget interface {
	Exists(ctx context.Context, id int64) error
	SetPhoto(ctx context.Context, id int64, url string) error
}
