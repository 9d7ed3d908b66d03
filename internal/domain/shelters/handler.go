package shelters

import (
	"context"
	"net/http"

	"adopciones-api/internal/domain/pets"
	"adopciones-api/internal/platform/httpx"
	"adopciones-api/internal/platform/patch"

	"github.com/go-chi/chi/v5"
)

// PetLister lista las mascotas de un refugio (disponibles o no).
type PetLister interface {
	ListByShelter(ctx context.Context, shelterID int64, offset, limit int) ([]pets.Pet, error)
}

func RegisterRoutes(r chi.Router, svc *Service, petsSvc PetLister) {
	r.Post("/refugios", createShelterHandler(svc))
	r.Get("/refugios", listSheltersHandler(svc))
	r.Get("/refugios/{id}", getShelterHandler(svc))
	r.Put("/refugios/{id}", updateShelterHandler(svc))
	r.Delete("/refugios/{id}", deleteShelterHandler(svc))
	r.Get("/refugios/{id}/mascotas", listShelterPetsHandler(svc, petsSvc))
}

type createShelterRequest struct {
	Nombre    string  `json:"nombre"`
	Ubicacion string  `json:"ubicacion"`
	Activo    *bool   `json:"activo"`
	FotoURL   *string `json:"foto_url"`
}

type updateShelterRequest struct {
	Nombre    patch.Field[string] `json:"nombre" swaggertype:"string"`
	Ubicacion patch.Field[string] `json:"ubicacion" swaggertype:"string"`
	Activo    patch.Field[bool]   `json:"activo" swaggertype:"boolean"`
	FotoURL   patch.Field[string] `json:"foto_url" swaggertype:"string"`
}

type shelterResponse struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Ubicacion string  `json:"ubicacion"`
	Activo    bool    `json:"activo"`
	FotoURL   *string `json:"foto_url"`
}

func toShelterResponse(s Shelter) shelterResponse {
	return shelterResponse{
		ID:        s.ID,
		Nombre:    s.Name,
		Ubicacion: s.Location,
		Activo:    s.Active,
		FotoURL:   s.PhotoURL,
	}
}

// createShelterHandler godoc
// @Summary Crear un refugio
// @Tags refugios
// @Accept json
// @Produce json
// @Param payload body createShelterRequest true "Datos del refugio"
// @Success 201 {object} shelterResponse
// @Failure 400 {object} httpx.ErrorResponse "json inválido"
// @Failure 422 {object} httpx.ErrorResponse "datos inválidos"
// @Router /refugios [post]
func createShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createShelterRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		s, err := svc.Create(r.Context(), CreateInput{
			Name:     req.Nombre,
			Location: req.Ubicacion,
			Active:   req.Activo,
			PhotoURL: req.FotoURL,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toShelterResponse(s))
	}
}

// listSheltersHandler godoc
// @Summary Listar refugios
// @Tags refugios
// @Produce json
// @Param skip query int false "Desplazamiento" default(0)
// @Param limit query int false "Máximo de resultados (1..100)" default(10)
// @Param solo_activos query bool false "Solo refugios activos" default(true)
// @Success 200 {array} shelterResponse
// @Failure 422 {object} httpx.ErrorResponse
// @Router /refugios [get]
func listSheltersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := httpx.ParsePage(r, httpx.DefaultLimit)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		onlyActive, err := httpx.QueryBool(r, "solo_activos", true)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		items, err := svc.List(r.Context(), ListFilter{
			OnlyActive: onlyActive,
			Offset:     page.Offset,
			Limit:      page.Limit,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]shelterResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toShelterResponse(s))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getShelterHandler godoc
// @Summary Obtener un refugio por ID
// @Tags refugios
// @Produce json
// @Param id path int true "ID del refugio"
// @Success 200 {object} shelterResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /refugios/{id} [get]
func getShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		s, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toShelterResponse(s))
	}
}

// updateShelterHandler godoc
// @Summary Actualizar un refugio
// @Description Actualización parcial: solo se modifican los campos enviados.
// @Tags refugios
// @Accept json
// @Produce json
// @Param id path int true "ID del refugio"
// @Param payload body updateShelterRequest true "Campos a modificar"
// @Success 200 {object} shelterResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 422 {object} httpx.ErrorResponse
// @Router /refugios/{id} [put]
func updateShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		var req updateShelterRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		s, err := svc.Update(r.Context(), id, UpdateInput{
			Name:     req.Nombre,
			Location: req.Ubicacion,
			Active:   req.Activo,
			PhotoURL: req.FotoURL,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toShelterResponse(s))
	}
}

// deleteShelterHandler godoc
// @Summary Desactivar un refugio (baja lógica)
// @Tags refugios
// @Produce json
// @Param id path int true "ID del refugio"
// @Success 200 {object} shelterResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /refugios/{id} [delete]
func deleteShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		s, err := svc.Deactivate(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toShelterResponse(s))
	}
}

// listShelterPetsHandler godoc
// @Summary Listar mascotas de un refugio
// @Tags refugios
// @Produce json
// @Param id path int true "ID del refugio"
// @Param skip query int false "Desplazamiento" default(0)
// @Param limit query int false "Máximo de resultados (1..100)" default(100)
// @Success 200 {array} pets.Response
// @Failure 404 {object} httpx.ErrorResponse
// @Router /refugios/{id}/mascotas [get]
func listShelterPetsHandler(svc *Service, petsSvc PetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		page, err := httpx.ParsePage(r, httpx.MaxLimit)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		if err := svc.Exists(r.Context(), id); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		items, err := petsSvc.ListByShelter(r.Context(), id, page.Offset, page.Limit)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, pets.NewResponses(items))
	}
}
