package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "8080"
	DefaultStoragePrefix  = "public"
	DefaultMaxUploadBytes = 10 << 20
)

type Config struct {
	Addr string

	LogLevel  string
	LogFormat string
	AppName   string

	DB      Database
	Storage Storage
}

type Database struct {
	// Driver: pgx (default), postgres (lib/pq) o sqlite.
	Driver string
	// DSN vacío => storage in-memory.
	DSN     string
	Migrate bool
}

type Storage struct {
	// Driver: memory (default), s3 o supabase.
	Driver        string
	Bucket        string
	Prefix        string
	PublicBaseURL string

	S3Region          string
	S3Endpoint        string
	S3PathStyle       bool
	S3AccessKeyID     string
	S3SecretAccessKey string

	SupabaseURL string
	SupabaseKey string

	MaxUploadBytes int64
}

// Load lee .env (si existe) y luego el entorno. Las variables ya definidas
// en el entorno tienen prioridad sobre el archivo.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = DefaultPort
	}

	cfg := Config{
		Addr:      ":" + port,
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),
		AppName:   envOr("APP_NAME", "adopciones-api"),
		DB: Database{
			Driver:  strings.ToLower(envOr("DB_DRIVER", "pgx")),
			DSN:     strings.TrimSpace(os.Getenv("DB_DSN")),
			Migrate: envBool("DB_MIGRATE"),
		},
		Storage: Storage{
			Driver:            strings.ToLower(envOr("STORAGE_DRIVER", "memory")),
			Bucket:            envOr("STORAGE_BUCKET", os.Getenv("SUPABASE_BUCKET")),
			Prefix:            envOr("STORAGE_PREFIX", DefaultStoragePrefix),
			PublicBaseURL:     strings.TrimSpace(os.Getenv("STORAGE_PUBLIC_BASE_URL")),
			S3Region:          os.Getenv("S3_REGION"),
			S3Endpoint:        os.Getenv("S3_ENDPOINT"),
			S3PathStyle:       envBool("S3_PATH_STYLE"),
			S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
			SupabaseURL:       strings.TrimSpace(os.Getenv("SUPABASE_URL")),
			SupabaseKey:       strings.TrimSpace(os.Getenv("SUPABASE_KEY")),
			MaxUploadBytes:    DefaultMaxUploadBytes,
		},
	}

	if cfg.DB.DSN == "" {
		cfg.DB.DSN = cleverCloudDSN()
	}

	if v := strings.TrimSpace(os.Getenv("UPLOAD_MAX_BYTES")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("UPLOAD_MAX_BYTES must be a positive integer, got %q", v)
		}
		cfg.Storage.MaxUploadBytes = n
	}

	switch cfg.DB.Driver {
	case "pgx", "postgres", "sqlite":
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	switch cfg.Storage.Driver {
	case "memory":
	case "s3", "supabase":
		if strings.TrimSpace(cfg.Storage.Bucket) == "" {
			return Config{}, fmt.Errorf("STORAGE_BUCKET required for %s storage", cfg.Storage.Driver)
		}
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

	return cfg, nil
}

// cleverCloudDSN arma el DSN con las variables del addon de Postgres
// de Clever Cloud. Devuelve "" si falta el host.
func cleverCloudDSN() string {
	host := strings.TrimSpace(os.Getenv("POSTGRESQL_ADDON_HOST"))
	if host == "" {
		return ""
	}
	port := envOr("POSTGRESQL_ADDON_PORT", "5432")

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(os.Getenv("POSTGRESQL_ADDON_USER"), os.Getenv("POSTGRESQL_ADDON_PASSWORD")),
		Host:   host + ":" + port,
		Path:   "/" + os.Getenv("POSTGRESQL_ADDON_DB"),
	}
	return u.String()
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return b
}
