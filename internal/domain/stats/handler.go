package stats

import (
	"net/http"

	"adopciones-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/stats/resumen-general", summaryHandler(svc))
	r.Get("/stats/adopciones-por-anio", byYearHandler(svc))
	r.Get("/stats/adopciones-por-mes", byMonthHandler(svc))
}

type summaryResponse struct {
	Refugios struct {
		Total int `json:"total"`
	} `json:"refugios"`
	Mascotas struct {
		Total      int            `json:"total"`
		Activas    int            `json:"activas"`
		Inactivas  int            `json:"inactivas"`
		PorEspecie map[string]int `json:"por_especie"`
	} `json:"mascotas"`
	Adopciones struct {
		Total int `json:"total"`
	} `json:"adopciones"`
	Cuidados struct {
		TotalEventos int     `json:"total_eventos"`
		CostoTotal   float64 `json:"costo_total"`
	} `json:"cuidados"`
}

type yearResponse struct {
	Anio            int `json:"anio"`
	TotalAdopciones int `json:"total_adopciones"`
}

type monthResponse struct {
	Mes             string `json:"mes"`
	TotalAdopciones int    `json:"total_adopciones"`
}

// summaryHandler godoc
// @Summary Resumen general de la plataforma
// @Tags estadisticas
// @Produce json
// @Success 200 {object} summaryResponse
// @Router /stats/resumen-general [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.Summary(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		var out summaryResponse
		out.Refugios.Total = s.Shelters
		out.Mascotas.Total = s.Pets.Total
		out.Mascotas.Activas = s.Pets.Active
		out.Mascotas.Inactivas = s.Pets.Inactive
		out.Mascotas.PorEspecie = s.Pets.BySpecies
		out.Adopciones.Total = s.Adoptions
		out.Cuidados.TotalEventos = s.Care.Events
		out.Cuidados.CostoTotal = s.Care.Cost

		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// byYearHandler godoc
// @Summary Adopciones agrupadas por año
// @Tags estadisticas
// @Produce json
// @Success 200 {array} yearResponse
// @Router /stats/adopciones-por-anio [get]
func byYearHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.AdoptionsByYear(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]yearResponse, 0, len(items))
		for _, y := range items {
			out = append(out, yearResponse{Anio: y.Year, TotalAdopciones: y.Total})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// byMonthHandler godoc
// @Summary Adopciones por mes (últimos 60 meses)
// @Description Serie densa de 60 meses consecutivos terminando en el mes actual; los meses sin adopciones valen 0.
// @Tags estadisticas
// @Produce json
// @Success 200 {array} monthResponse
// @Router /stats/adopciones-por-mes [get]
func byMonthHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.AdoptionsByMonth(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]monthResponse, 0, len(items))
		for _, m := range items {
			out = append(out, monthResponse{Mes: m.Month, TotalAdopciones: m.Total})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}
