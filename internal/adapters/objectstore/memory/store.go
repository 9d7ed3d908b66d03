// Package memory guarda los objetos en memoria. Se usa en desarrollo y en
// tests cuando no hay bucket configurado.
package memory

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

const DefaultBaseURL = "http://localhost/objects"

type Object struct {
	Body        []byte
	ContentType string
}

type Store struct {
	mu      sync.RWMutex
	objects map[string]Object
	baseURL string
}

func New(baseURL string) *Store {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Store{objects: map[string]Object{}, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *Store) Put(ctx context.Context, key string, body io.Reader, _ int64, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = Object{Body: b, ContentType: contentType}
	return nil
}

func (s *Store) PublicURL(key string) string {
	return s.baseURL + "/" + key
}

// Get devuelve una copia del objeto guardado.
func (s *Store) Get(key string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.objects[key]
	if !ok {
		return Object{}, false
	}
	o.Body = append([]byte(nil), o.Body...)
	return o, true
}
