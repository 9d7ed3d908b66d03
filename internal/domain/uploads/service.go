package uploads

import (
	"context"
	"io"
	"mime"
	"path"
	"strings"

	"adopciones-api/internal/platform/apperr"
	"adopciones-api/internal/platform/logger"
	"adopciones-api/internal/platform/metrics"

	"github.com/google/uuid"
)

const (
	DefaultPrefix   = "public"
	DefaultMaxBytes = 10 << 20
)

var (
	ErrUploadFailed = apperr.New("error subiendo imagen", apperr.ErrBadRequest)
	ErrNotImage     = apperr.Validation("file", "debe ser una imagen")
)

type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Service struct {
	store    ObjectStore
	prefix   string
	maxBytes int64
	metrics  *metrics.Metrics
	newName  func() string
}

func NewService(store ObjectStore, prefix string, maxBytes int64, m *metrics.Metrics) *Service {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Service{
		store:    store,
		prefix:   prefix,
		maxBytes: maxBytes,
		metrics:  m,
		newName:  uuid.NewString,
	}
}

func (s *Service) MaxBytes() int64 { return s.maxBytes }

// Upload sube f bajo prefix/<nombre> y devuelve la URL pública.
func (s *Service) Upload(ctx context.Context, f File) (string, error) {
	if !strings.HasPrefix(f.ContentType, "image/") {
		return "", ErrNotImage
	}

	key := s.key(f)
	if err := s.store.Put(ctx, key, f.Body, f.Size, f.ContentType); err != nil {
		s.metrics.Upload(false)
		logger.FromContext(ctx).Error("object store upload failed", map[string]any{
			"key":   key,
			"error": err,
		})
		return "", ErrUploadFailed
	}

	s.metrics.Upload(true)
	return s.store.PublicURL(key), nil
}

// UploadFor sube la imagen y recién después guarda la URL en la entidad:
// si la subida falla, la entidad queda como estaba.
func (s *Service) UploadFor(ctx context.Context, target PhotoTarget, id int64, f File) (string, error) {
	if err := target.Exists(ctx, id); err != nil {
		return "", err
	}

	url, err := s.Upload(ctx, f)
	if err != nil {
		return "", err
	}

	if err := target.SetPhoto(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *Service) key(f File) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(f.Name), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = s.newName() + extensionFor(f.ContentType)
	}
	return s.prefix + "/" + name
}

func extensionFor(contentType string) string {
	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}
