package router

import (
	"net/http"

	_ "adopciones-api/docs"

	objmem "adopciones-api/internal/adapters/objectstore/memory"
	mem "adopciones-api/internal/adapters/storage/memory"
	"adopciones-api/internal/adapters/storage/sqlstore"
	"adopciones-api/internal/domain/adoptions"
	"adopciones-api/internal/domain/care"
	"adopciones-api/internal/domain/pets"
	"adopciones-api/internal/domain/shelters"
	"adopciones-api/internal/domain/stats"
	"adopciones-api/internal/domain/uploads"
	"adopciones-api/internal/middleware"
	"adopciones-api/internal/platform/httpx"
	"adopciones-api/internal/platform/logger"
	"adopciones-api/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa SQL. Si no, in-memory.
	DB *sqlstore.DB

	// Opcional: si no viene, las imágenes quedan en memoria.
	Objects uploads.ObjectStore

	Logger  logger.Logger    // nil => Nop
	Metrics *metrics.Metrics // nil => sin /metrics

	UploadPrefix   string
	MaxUploadBytes int64
}

type repos struct {
	shelters  shelters.Repository
	pets      pets.Repository
	adoptions adoptions.Repository
	care      care.Repository
	stats     stats.Repository
}

func newRepos(db *sqlstore.DB) repos {
	if db != nil {
		return repos{
			shelters:  sqlstore.NewShelterRepo(db),
			pets:      sqlstore.NewPetRepo(db),
			adoptions: sqlstore.NewAdoptionRepo(db),
			care:      sqlstore.NewCareRepo(db),
			stats:     sqlstore.NewStatsRepo(db),
		}
	}
	m := mem.New()
	return repos{
		shelters:  mem.NewShelterRepo(m),
		pets:      mem.NewPetRepo(m),
		adoptions: mem.NewAdoptionRepo(m),
		care:      mem.NewCareRepo(m),
		stats:     mem.NewStatsRepo(m),
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	objects := opts.Objects
	if objects == nil {
		objects = objmem.New("")
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover)
	r.Use(middleware.Metrics(opts.Metrics))
	r.Use(chimw.StripSlashes)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"mensaje": "API de adopciones de mascotas"})
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	rp := newRepos(opts.DB)

	// Services por módulo
	sheltersSvc := shelters.NewService(rp.shelters)
	petsSvc := pets.NewService(rp.pets, sheltersSvc)
	adoptionsSvc := adoptions.NewService(rp.adoptions, opts.Metrics)
	careSvc := care.NewService(rp.care, petsSvc, opts.Metrics)
	statsSvc := stats.NewService(rp.stats)
	uploadsSvc := uploads.NewService(objects, opts.UploadPrefix, opts.MaxUploadBytes, opts.Metrics)

	// Rutas por módulo
	shelters.RegisterRoutes(r, sheltersSvc, petsSvc)
	pets.RegisterRoutes(r, petsSvc)
	adoptions.RegisterRoutes(r, adoptionsSvc)
	care.RegisterRoutes(r, careSvc)
	stats.RegisterRoutes(r, statsSvc)
	uploads.RegisterRoutes(r, uploadsSvc, sheltersSvc, petsSvc)

	return r
}
