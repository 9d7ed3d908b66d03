// Package supabase sube objetos a Supabase Storage por su API REST.
package supabase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"adopciones-api/internal/platform/httpclient"
)

const defaultTimeout = 30 * time.Second

type Config struct {
	URL    string // https://<proyecto>.supabase.co
	Key    string // service role o anon key con permisos de escritura
	Bucket string
}

type Store struct {
	hc     *httpclient.Client
	key    string
	bucket string
	base   string
}

func New(cfg Config) (*Store, error) {
	return NewWithClient(cfg, nil)
}

// NewWithClient permite inyectar el cliente HTTP (tests).
func NewWithClient(cfg Config, hc *httpclient.Client) (*Store, error) {
	if strings.TrimSpace(cfg.URL) == "" || strings.TrimSpace(cfg.Key) == "" {
		return nil, errors.New("supabase: url y key son requeridos")
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("supabase: bucket requerido")
	}

	base := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if hc == nil {
		var err error
		hc, err = httpclient.NewWithBaseURL(base, defaultTimeout)
		if err != nil {
			return nil, fmt.Errorf("supabase: %w", err)
		}
	} else if hc.BaseURL == "" {
		hc.BaseURL = base
	}

	return &Store{hc: hc, key: cfg.Key, bucket: cfg.Bucket, base: base}, nil
}

func (s *Store) authHeaders() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + s.key,
		"apikey":        s.key,
	}
}

// Put sube con x-upsert para que reintentar con el mismo nombre no falle.
func (s *Store) Put(ctx context.Context, key string, body io.Reader, _ int64, contentType string) error {
	headers := s.authHeaders()
	headers["x-upsert"] = "true"
	headers["cache-control"] = "max-age=3600"

	_, err := s.hc.Do(ctx, httpclient.Request{
		Method:      http.MethodPost,
		PathOrURL:   "/storage/v1/object/" + url.PathEscape(s.bucket) + "/" + escapeKey(key),
		Headers:     headers,
		Body:        body,
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("supabase put %s: %w", key, err)
	}
	return nil
}

func (s *Store) PublicURL(key string) string {
	return s.base + "/storage/v1/object/public/" + url.PathEscape(s.bucket) + "/" + escapeKey(key)
}

type bucketInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Public bool   `json:"public"`
}

// CheckBucket verifica al arrancar que el bucket exista y sea público.
func (s *Store) CheckBucket(ctx context.Context) error {
	var b bucketInfo
	err := s.hc.DoJSON(ctx, http.MethodGet, "/storage/v1/bucket/"+url.PathEscape(s.bucket), s.authHeaders(), nil, &b)
	if err != nil {
		return fmt.Errorf("supabase bucket %s: %w", s.bucket, err)
	}
	if !b.Public {
		return fmt.Errorf("supabase bucket %s no es público", s.bucket)
	}
	return nil
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
