package pets

import (
	"net/http"

	"adopciones-api/internal/platform/apperr"
	"adopciones-api/internal/platform/httpx"
	"adopciones-api/internal/platform/patch"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/mascotas", createPetHandler(svc))
	r.Get("/mascotas", listPetsHandler(svc))
	r.Get("/mascotas/{id}", getPetHandler(svc))
	r.Put("/mascotas/{id}", updatePetHandler(svc))
	r.Delete("/mascotas/{id}", deletePetHandler(svc))
}

type createPetRequest struct {
	Nombre    string  `json:"nombre"`
	Especie   string  `json:"especie"`
	Raza      *string `json:"raza"`
	Edad      *int    `json:"edad"`
	Sexo      string  `json:"sexo"`
	Estado    *bool   `json:"estado"`
	FotoURL   *string `json:"foto_url"`
	RefugioID int64   `json:"refugio_id"`
}

// updatePetRequest: key ausente => no tocar; null => limpiar (solo raza y foto_url).
type updatePetRequest struct {
	Nombre    patch.Field[string] `json:"nombre" swaggertype:"string"`
	Especie   patch.Field[string] `json:"especie" swaggertype:"string"`
	Raza      patch.Field[string] `json:"raza" swaggertype:"string"`
	Edad      patch.Field[int]    `json:"edad" swaggertype:"integer"`
	Sexo      patch.Field[string] `json:"sexo" swaggertype:"string"`
	Estado    patch.Field[bool]   `json:"estado" swaggertype:"boolean"`
	FotoURL   patch.Field[string] `json:"foto_url" swaggertype:"string"`
	RefugioID patch.Field[int64]  `json:"refugio_id" swaggertype:"integer"`
}

// Response es la representación JSON de una mascota. La usa también
// GET /refugios/{id}/mascotas.
type Response struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Especie   Species `json:"especie"`
	Raza      *string `json:"raza"`
	Edad      int     `json:"edad"`
	Sexo      string  `json:"sexo"`
	Estado    bool    `json:"estado"`
	FotoURL   *string `json:"foto_url"`
	RefugioID int64   `json:"refugio_id"`
}

func NewResponse(p Pet) Response {
	return Response{
		ID:        p.ID,
		Nombre:    p.Name,
		Especie:   p.Species,
		Raza:      p.Breed,
		Edad:      p.Age,
		Sexo:      p.Sex,
		Estado:    p.Available,
		FotoURL:   p.PhotoURL,
		RefugioID: p.ShelterID,
	}
}

func NewResponses(items []Pet) []Response {
	out := make([]Response, 0, len(items))
	for _, p := range items {
		out = append(out, NewResponse(p))
	}
	return out
}

// createPetHandler godoc
// @Summary Crear una mascota
// @Tags mascotas
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} Response
// @Failure 400 {object} httpx.ErrorResponse "json inválido"
// @Failure 404 {object} httpx.ErrorResponse "refugio no encontrado"
// @Failure 422 {object} httpx.ErrorResponse "datos inválidos"
// @Router /mascotas [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:      req.Nombre,
			Species:   req.Especie,
			Breed:     req.Raza,
			Age:       req.Edad,
			Sex:       req.Sexo,
			Available: req.Estado,
			PhotoURL:  req.FotoURL,
			ShelterID: req.RefugioID,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, NewResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Filtros combinables. Orden por id ascendente.
// @Tags mascotas
// @Produce json
// @Param skip query int false "Desplazamiento" default(0)
// @Param limit query int false "Máximo de resultados (1..100)" default(10)
// @Param refugio_id query int false "Filtrar por refugio"
// @Param especie query string false "Dog, Cat, Rabbit o Bird"
// @Param solo_activas query bool false "Solo mascotas disponibles" default(true)
// @Param solo_con_foto query bool false "Solo mascotas con foto" default(false)
// @Success 200 {array} Response
// @Failure 422 {object} httpx.ErrorResponse
// @Router /mascotas [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
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

		httpx.WriteJSON(w, http.StatusOK, NewResponses(items))
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	v := apperr.NewValidation()
	var f ListFilter

	page, err := httpx.ParsePage(r, httpx.DefaultLimit)
	v.Merge(err)
	f.Offset, f.Limit = page.Offset, page.Limit

	shelterID, err := httpx.QueryInt64(r, "refugio_id")
	v.Merge(err)
	f.ShelterID = shelterID

	if s := r.URL.Query().Get("especie"); s != "" {
		sp, ok := ParseSpecies(s)
		if !ok {
			v.Add("especie", "debe ser Dog, Cat, Rabbit o Bird")
		} else {
			f.Species = &sp
		}
	}

	f.OnlyAvailable, err = httpx.QueryBool(r, "solo_activas", true)
	v.Merge(err)
	f.OnlyWithPhoto, err = httpx.QueryBool(r, "solo_con_foto", false)
	v.Merge(err)

	return f, v.Err()
}

// getPetHandler godoc
// @Summary Obtener una mascota por ID
// @Tags mascotas
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} Response
// @Failure 404 {object} httpx.ErrorResponse
// @Router /mascotas/{id} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, NewResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar una mascota
// @Description Actualización parcial: solo se modifican los campos enviados.
// @Tags mascotas
// @Accept json
// @Produce json
// @Param id path int true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} Response
// @Failure 400 {object} httpx.ErrorResponse "json inválido / no se puede reactivar"
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 422 {object} httpx.ErrorResponse
// @Router /mascotas/{id} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		var req updatePetRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		p, err := svc.Update(r.Context(), id, UpdateInput{
			Name:      req.Nombre,
			Species:   req.Especie,
			Breed:     req.Raza,
			Age:       req.Edad,
			Sex:       req.Sexo,
			Available: req.Estado,
			PhotoURL:  req.FotoURL,
			ShelterID: req.RefugioID,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, NewResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Inactivar mascota (baja lógica)
// @Tags mascotas
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} Response
// @Failure 404 {object} httpx.ErrorResponse
// @Router /mascotas/{id} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		p, err := svc.Deactivate(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, NewResponse(p))
	}
}
