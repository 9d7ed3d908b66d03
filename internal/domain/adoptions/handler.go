package adoptions

import (
	"net/http"
	"strings"
	"time"

	"adopciones-api/internal/platform/apperr"
	"adopciones-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/adopciones", createAdoptionHandler(svc))
	r.Get("/adopciones", listAdoptionsHandler(svc))
}

type createAdoptionRequest struct {
	Adoptante     string `json:"adoptante"`
	FechaAdopcion string `json:"fecha_adopcion"` // YYYY-MM-DD
	MascotaID     int64  `json:"mascota_id"`
	RefugioID     int64  `json:"refugio_id"`
}

type adoptionResponse struct {
	ID            int64  `json:"id"`
	Adoptante     string `json:"adoptante"`
	FechaAdopcion string `json:"fecha_adopcion"`
	MascotaID     int64  `json:"mascota_id"`
	RefugioID     int64  `json:"refugio_id"`
}

func toAdoptionResponse(a Adoption) adoptionResponse {
	return adoptionResponse{
		ID:            a.ID,
		Adoptante:     a.Adopter,
		FechaAdopcion: a.Date.Format(httpx.DateLayout),
		MascotaID:     a.PetID,
		RefugioID:     a.ShelterID,
	}
}

// createAdoptionHandler godoc
// @Summary Registrar una adopción
// @Description Valida mascota y refugio, exige que la mascota esté disponible y la marca como adoptada en la misma transacción.
// @Tags adopciones
// @Accept json
// @Produce json
// @Param payload body createAdoptionRequest true "Datos de la adopción; fecha_adopcion en formato YYYY-MM-DD"
// @Success 201 {object} adoptionResponse
// @Failure 400 {object} httpx.ErrorResponse "mascota no disponible / adopción duplicada"
// @Failure 404 {object} httpx.ErrorResponse "mascota o refugio no encontrado"
// @Failure 422 {object} httpx.ErrorResponse "datos inválidos"
// @Router /adopciones [post]
func createAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAdoptionRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		in := CreateInput{
			PetID:     req.MascotaID,
			ShelterID: req.RefugioID,
			Adopter:   req.Adoptante,
		}
		if s := strings.TrimSpace(req.FechaAdopcion); s != "" {
			t, err := time.Parse(httpx.DateLayout, s)
			if err != nil {
				httpx.WriteError(w, r, apperr.Validation("fecha_adopcion", "debe tener formato YYYY-MM-DD"))
				return
			}
			in.Date = &t
		}

		a, err := svc.Create(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toAdoptionResponse(a))
	}
}

// listAdoptionsHandler godoc
// @Summary Listar adopciones con filtros
// @Tags adopciones
// @Produce json
// @Param skip query int false "Desplazamiento" default(0)
// @Param limit query int false "Máximo de resultados (1..100)" default(10)
// @Param anio query int false "Año de la adopción"
// @Param refugio_id query int false "Filtrar por refugio"
// @Param mascota_id query int false "Filtrar por mascota"
// @Success 200 {array} adoptionResponse
// @Failure 422 {object} httpx.ErrorResponse
// @Router /adopciones [get]
func listAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := parseListFilter(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]adoptionResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAdoptionResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	v := apperr.NewValidation()
	var f ListFilter

	page, err := httpx.ParsePage(r, httpx.DefaultLimit)
	v.Merge(err)
	f.Offset, f.Limit = page.Offset, page.Limit

	year, err := httpx.QueryInt64(r, "anio")
	v.Merge(err)
	if year != nil {
		if *year < 1 || *year > 9999 {
			v.Add("anio", "debe estar entre 1 y 9999")
		} else {
			y := int(*year)
			f.Year = &y
		}
	}

	f.ShelterID, err = httpx.QueryInt64(r, "refugio_id")
	v.Merge(err)
	f.PetID, err = httpx.QueryInt64(r, "mascota_id")
	v.Merge(err)

	return f, v.Err()
}
