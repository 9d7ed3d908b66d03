package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adopciones-api/internal/adapters/objectstore/memory"
	"adopciones-api/internal/adapters/objectstore/s3"
	"adopciones-api/internal/adapters/objectstore/supabase"
	"adopciones-api/internal/adapters/storage/sqlstore"
	"adopciones-api/internal/domain/uploads"
	"adopciones-api/internal/platform/config"
	"adopciones-api/internal/platform/logger"
	"adopciones-api/internal/platform/metrics"
	"adopciones-api/internal/router"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

// @title Adopciones API
// @version 1.0
// @description CRUD de refugios, mascotas, adopciones e historial de cuidado, con estadísticas y subida de imágenes.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "adopciones-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sqlstore.DB
	if cfg.DB.DSN != "" {
		db, err = sqlstore.Open(ctx, cfg.DB.Driver, cfg.DB.DSN)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()

		if cfg.DB.Migrate {
			if err := db.Migrate(ctx); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("schema migrated", map[string]any{"driver": cfg.DB.Driver})
		}
	} else {
		log.Warn("DB_DSN vacío, usando storage en memoria", nil)
	}

	objects, err := newObjectStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("object store: %w", err)
	}

	handler := router.NewRouter(router.Options{
		DB:             db,
		Objects:        objects,
		Logger:         log,
		Metrics:        metrics.New(),
		UploadPrefix:   cfg.Storage.Prefix,
		MaxUploadBytes: cfg.Storage.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second, // uploads
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", map[string]any{
			"addr":    cfg.Addr,
			"db":      dbLabel(cfg.DB),
			"storage": cfg.Storage.Driver,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	return g.Wait()
}

func newObjectStore(ctx context.Context, cfg config.Storage) (uploads.ObjectStore, error) {
	switch cfg.Driver {
	case "s3":
		store, err := s3.New(ctx, s3.Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.Bucket,
			Endpoint:        cfg.S3Endpoint,
			PathStyle:       cfg.S3PathStyle,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PublicBaseURL:   cfg.PublicBaseURL,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	case "supabase":
		store, err := supabase.New(supabase.Config{
			URL:    cfg.SupabaseURL,
			Key:    cfg.SupabaseKey,
			Bucket: cfg.Bucket,
		})
		if err != nil {
			return nil, err
		}
		cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := store.CheckBucket(cctx); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return memory.New(cfg.PublicBaseURL), nil
	}
}

func dbLabel(db config.Database) string {
	if db.DSN == "" {
		return "memory"
	}
	return db.Driver
}
