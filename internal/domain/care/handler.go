package care

import (
	"net/http"
	"strings"
	"time"

	"adopciones-api/internal/platform/apperr"
	"adopciones-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

// DefaultHistoryLimit es el límite por defecto del historial de una mascota.
const DefaultHistoryLimit = 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/historial", createEventHandler(svc))
	r.Get("/historial/mascota/{id}", listPetEventsHandler(svc))
	r.Get("/historial/mascota/{id}/costo-total", totalCostHandler(svc))
}

type createEventRequest struct {
	TipoEvento string   `json:"tipo_evento"`
	Costo      *float64 `json:"costo"`
	Fecha      string   `json:"fecha"` // YYYY-MM-DD, opcional (hoy)
	MascotaID  int64    `json:"mascota_id"`
}

type eventResponse struct {
	ID         int64   `json:"id"`
	TipoEvento string  `json:"tipo_evento"`
	Costo      float64 `json:"costo"`
	Fecha      string  `json:"fecha"`
	MascotaID  int64   `json:"mascota_id"`
}

type totalCostResponse struct {
	MascotaID     int64   `json:"mascota_id"`
	MascotaNombre string  `json:"mascota_nombre"`
	TotalEventos  int     `json:"total_eventos"`
	CostoTotal    float64 `json:"costo_total"`
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:         e.ID,
		TipoEvento: e.Type,
		Costo:      e.Cost,
		Fecha:      e.Date.Format(httpx.DateLayout),
		MascotaID:  e.PetID,
	}
}

// createEventHandler godoc
// @Summary Registrar un evento de cuidado
// @Tags historial
// @Accept json
// @Produce json
// @Param payload body createEventRequest true "Evento; fecha opcional en formato YYYY-MM-DD"
// @Success 201 {object} eventResponse
// @Failure 404 {object} httpx.ErrorResponse "mascota no encontrada"
// @Failure 422 {object} httpx.ErrorResponse "datos inválidos"
// @Router /historial [post]
func createEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEventRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		in := CreateInput{
			PetID: req.MascotaID,
			Type:  req.TipoEvento,
			Cost:  req.Costo,
		}
		if s := strings.TrimSpace(req.Fecha); s != "" {
			t, err := time.Parse(httpx.DateLayout, s)
			if err != nil {
				httpx.WriteError(w, r, apperr.Validation("fecha", "debe tener formato YYYY-MM-DD"))
				return
			}
			in.Date = &t
		}

		e, err := svc.Create(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

// listPetEventsHandler godoc
// @Summary Ver historial de una mascota
// @Description Ordenado por fecha descendente.
// @Tags historial
// @Produce json
// @Param id path int true "ID de la mascota"
// @Param skip query int false "Desplazamiento" default(0)
// @Param limit query int false "Máximo de resultados (1..100)" default(20)
// @Success 200 {array} eventResponse
// @Router /historial/mascota/{id} [get]
func listPetEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		page, err := httpx.ParsePage(r, DefaultHistoryLimit)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		items, err := svc.ListByPet(r.Context(), id, page.Offset, page.Limit)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// totalCostHandler godoc
// @Summary Costo total de cuidado de una mascota
// @Tags historial
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} totalCostResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /historial/mascota/{id}/costo-total [get]
func totalCostHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		c, err := svc.TotalCost(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, totalCostResponse{
			MascotaID:     c.PetID,
			MascotaNombre: c.PetName,
			TotalEventos:  c.Events,
			CostoTotal:    c.Cost,
		})
	}
}
