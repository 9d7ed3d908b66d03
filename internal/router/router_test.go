package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	objmem "adopciones-api/internal/adapters/objectstore/memory"
	"adopciones-api/internal/adapters/storage/sqlstore"
	"adopciones-api/internal/platform/metrics"
	"adopciones-api/internal/router"
)

// backends corre cada escenario contra memoria y contra SQLite.
func backends(t *testing.T) map[string]router.Options {
	t.Helper()

	db, err := sqlstore.Open(context.Background(), "sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return map[string]router.Options{
		"memory": {},
		"sqlite": {DB: db},
	}
}

func TestHTTP_EndToEnd_AdoptionFlow(t *testing.T) {
	for name, opts := range backends(t) {
		t.Run(name, func(t *testing.T) {
			m := metrics.New()
			opts.Metrics = m
			ts := httptest.NewServer(router.NewRouter(opts))
			defer ts.Close()

			shelterID := createShelter(t, ts.URL, "Huellitas")
			petID := createPet(t, ts.URL, map[string]any{
				"nombre":     "Firulais",
				"especie":    "Dog",
				"edad":       3,
				"sexo":       "M",
				"refugio_id": shelterID,
			})

			year := time.Now().Year()
			payload := map[string]any{
				"adoptante":      "Ana",
				"fecha_adopcion": fmt.Sprintf("%d-03-15", year),
				"mascota_id":     petID,
				"refugio_id":     shelterID,
			}

			// 1) primera adopción
			{
				st, body := doReq(t, ts.URL, "POST", "/adopciones", payload)
				if st != http.StatusCreated {
					t.Fatalf("expected 201 create adoption, got %d body=%s", st, string(body))
				}
				var a struct {
					ID            int64  `json:"id"`
					FechaAdopcion string `json:"fecha_adopcion"`
				}
				_ = json.Unmarshal(body, &a)
				if a.ID == 0 || a.FechaAdopcion != fmt.Sprintf("%d-03-15", year) {
					t.Fatalf("unexpected adoption body=%s", string(body))
				}
			}

			// 2) la mascota queda no disponible
			{
				st, body := doReq(t, ts.URL, "GET", fmt.Sprintf("/mascotas/%d", petID), nil)
				if st != http.StatusOK {
					t.Fatalf("expected 200 get pet, got %d", st)
				}
				var p struct {
					Estado bool `json:"estado"`
				}
				_ = json.Unmarshal(body, &p)
				if p.Estado {
					t.Fatalf("expected estado=false after adoption, body=%s", string(body))
				}
			}

			// 3) repetir => 400 conflict, sin segunda fila
			{
				st, body := doReq(t, ts.URL, "POST", "/adopciones", payload)
				if st != http.StatusBadRequest {
					t.Fatalf("expected 400 on repeated adoption, got %d body=%s", st, string(body))
				}
				if code := errorCode(t, body); code != "conflict" {
					t.Fatalf("expected conflict, got %q", code)
				}

				st, body = doReq(t, ts.URL, "GET", fmt.Sprintf("/adopciones?mascota_id=%d", petID), nil)
				if st != http.StatusOK {
					t.Fatalf("expected 200 list adoptions, got %d", st)
				}
				var list []map[string]any
				_ = json.Unmarshal(body, &list)
				if len(list) != 1 {
					t.Fatalf("expected exactly one adoption, got %d", len(list))
				}
			}

			// 4) estadísticas
			{
				st, body := doReq(t, ts.URL, "GET", "/stats/adopciones-por-anio", nil)
				if st != http.StatusOK {
					t.Fatalf("expected 200 by year, got %d", st)
				}
				var years []struct {
					Anio  int `json:"anio"`
					Total int `json:"total_adopciones"`
				}
				_ = json.Unmarshal(body, &years)
				if len(years) != 1 || years[0].Anio != year || years[0].Total != 1 {
					t.Fatalf("unexpected by-year body=%s", string(body))
				}

				st, body = doReq(t, ts.URL, "GET", "/stats/resumen-general", nil)
				if st != http.StatusOK {
					t.Fatalf("expected 200 summary, got %d", st)
				}
				var s struct {
					Mascotas struct {
						Total     int `json:"total"`
						Activas   int `json:"activas"`
						Inactivas int `json:"inactivas"`
					} `json:"mascotas"`
					Adopciones struct {
						Total int `json:"total"`
					} `json:"adopciones"`
				}
				_ = json.Unmarshal(body, &s)
				if s.Mascotas.Total != 1 || s.Mascotas.Inactivas != 1 || s.Adopciones.Total != 1 {
					t.Fatalf("unexpected summary body=%s", string(body))
				}
			}

			// 5) métricas
			{
				st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
				if st != http.StatusOK {
					t.Fatalf("expected 200 metrics, got %d", st)
				}
				if !strings.Contains(string(body), "adoptions_created_total 1") {
					t.Fatalf("expected adoptions_created_total 1 in metrics")
				}
			}
		})
	}
}

func TestHTTP_AdoptUnavailablePet_InvalidState(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	shelterID := createShelter(t, ts.URL, "Huellitas")
	petID := createPet(t, ts.URL, map[string]any{
		"nombre": "Michi", "especie": "Cat", "edad": 1, "sexo": "F", "refugio_id": shelterID,
	})

	if st, _ := doReq(t, ts.URL, "DELETE", fmt.Sprintf("/mascotas/%d", petID), nil); st != http.StatusOK {
		t.Fatalf("expected 200 delete pet, got %d", st)
	}

	st, body := doReq(t, ts.URL, "POST", "/adopciones", map[string]any{
		"adoptante": "Ana", "fecha_adopcion": "2024-01-01", "mascota_id": petID, "refugio_id": shelterID,
	})
	if st != http.StatusBadRequest || errorCode(t, body) != "invalid_state" {
		t.Fatalf("expected 400 invalid_state, got %d body=%s", st, string(body))
	}
}

func TestHTTP_AdoptUnknownPet_NotFound(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	shelterID := createShelter(t, ts.URL, "Huellitas")
	st, _ := doReq(t, ts.URL, "POST", "/adopciones", map[string]any{
		"adoptante": "Ana", "fecha_adopcion": "2024-01-01", "mascota_id": 999, "refugio_id": shelterID,
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", st)
	}
}

func TestHTTP_PetFiltersAndPartialUpdate(t *testing.T) {
	for name, opts := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(router.NewRouter(opts))
			defer ts.Close()

			shelterID := createShelter(t, ts.URL, "Huellitas")
			cat := createPet(t, ts.URL, map[string]any{"nombre": "Michi", "especie": "Cat", "raza": "Siamés", "edad": 2, "sexo": "F", "refugio_id": shelterID})
			createPet(t, ts.URL, map[string]any{"nombre": "Firu", "especie": "Dog", "edad": 4, "sexo": "M", "refugio_id": shelterID})

			// filtro por especie
			st, body := doReq(t, ts.URL, "GET", "/mascotas?especie=Cat", nil)
			if st != http.StatusOK {
				t.Fatalf("expected 200 list pets, got %d body=%s", st, string(body))
			}
			var list []struct {
				ID      int64  `json:"id"`
				Especie string `json:"especie"`
			}
			_ = json.Unmarshal(body, &list)
			if len(list) != 1 || list[0].ID != cat || list[0].Especie != "Cat" {
				t.Fatalf("unexpected cats body=%s", string(body))
			}

			// especie inválida => 422
			if st, _ := doReq(t, ts.URL, "GET", "/mascotas?especie=Fish", nil); st != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422 for unknown species, got %d", st)
			}

			// update parcial: solo edad
			st, body = doReq(t, ts.URL, "PUT", fmt.Sprintf("/mascotas/%d", cat), map[string]any{"edad": 3})
			if st != http.StatusOK {
				t.Fatalf("expected 200 update pet, got %d body=%s", st, string(body))
			}
			var p struct {
				Nombre string  `json:"nombre"`
				Raza   *string `json:"raza"`
				Edad   int     `json:"edad"`
				Estado bool    `json:"estado"`
			}
			_ = json.Unmarshal(body, &p)
			if p.Nombre != "Michi" || p.Raza == nil || *p.Raza != "Siamés" || p.Edad != 3 || !p.Estado {
				t.Fatalf("partial update touched other fields: %s", string(body))
			}

			// mascotas del refugio
			st, body = doReq(t, ts.URL, "GET", fmt.Sprintf("/refugios/%d/mascotas", shelterID), nil)
			if st != http.StatusOK {
				t.Fatalf("expected 200 shelter pets, got %d", st)
			}
			var all []map[string]any
			_ = json.Unmarshal(body, &all)
			if len(all) != 2 {
				t.Fatalf("expected 2 pets in shelter, got %d", len(all))
			}
		})
	}
}

func TestHTTP_CreatePet_UnknownShelter(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/mascotas", map[string]any{
		"nombre": "Michi", "especie": "Cat", "edad": 2, "sexo": "F", "refugio_id": 42,
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown shelter, got %d body=%s", st, string(body))
	}
}

func TestHTTP_ShelterSoftDelete_Idempotent(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	id := createShelter(t, ts.URL, "Huellitas")
	for i := 0; i < 2; i++ {
		st, body := doReq(t, ts.URL, "DELETE", fmt.Sprintf("/refugios/%d", id), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete shelter (#%d), got %d", i+1, st)
		}
		var s struct {
			Activo bool `json:"activo"`
		}
		_ = json.Unmarshal(body, &s)
		if s.Activo {
			t.Fatalf("expected activo=false, body=%s", string(body))
		}
	}

	// solo_activos por defecto
	_, body := doReq(t, ts.URL, "GET", "/refugios", nil)
	var list []map[string]any
	_ = json.Unmarshal(body, &list)
	if len(list) != 0 {
		t.Fatalf("expected no active shelters, got %s", string(body))
	}

	_, body = doReq(t, ts.URL, "GET", "/refugios?solo_activos=false", nil)
	_ = json.Unmarshal(body, &list)
	if len(list) != 1 {
		t.Fatalf("expected 1 shelter with solo_activos=false, got %s", string(body))
	}

	if st, _ := doReq(t, ts.URL, "GET", "/refugios/999", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown shelter, got %d", st)
	}
}

func TestHTTP_PartialUpdateKeepsSoftDelete(t *testing.T) {
	for name, opts := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(router.NewRouter(opts))
			defer ts.Close()

			shelterID := createShelter(t, ts.URL, "Huellitas")
			petID := createPet(t, ts.URL, map[string]any{"nombre": "Firu", "especie": "Dog", "edad": 4, "sexo": "M", "refugio_id": shelterID})

			if st, _ := doReq(t, ts.URL, "DELETE", fmt.Sprintf("/refugios/%d", shelterID), nil); st != http.StatusOK {
				t.Fatalf("expected 200 delete shelter, got %d", st)
			}
			st, body := doReq(t, ts.URL, "PUT", fmt.Sprintf("/refugios/%d", shelterID), map[string]any{"nombre": "Patitas"})
			if st != http.StatusOK {
				t.Fatalf("expected 200 rename shelter, got %d body=%s", st, string(body))
			}
			_, body = doReq(t, ts.URL, "GET", fmt.Sprintf("/refugios/%d", shelterID), nil)
			var sh struct {
				Nombre    string `json:"nombre"`
				Ubicacion string `json:"ubicacion"`
				Activo    bool   `json:"activo"`
			}
			_ = json.Unmarshal(body, &sh)
			if sh.Nombre != "Patitas" || sh.Activo || sh.Ubicacion == "" {
				t.Fatalf("expected renamed inactive shelter, got %s", string(body))
			}

			if st, _ := doReq(t, ts.URL, "DELETE", fmt.Sprintf("/mascotas/%d", petID), nil); st != http.StatusOK {
				t.Fatalf("expected 200 delete pet, got %d", st)
			}
			st, body = doReq(t, ts.URL, "PUT", fmt.Sprintf("/mascotas/%d", petID), map[string]any{"nombre": "Firulais"})
			if st != http.StatusOK {
				t.Fatalf("expected 200 rename pet, got %d body=%s", st, string(body))
			}
			_, body = doReq(t, ts.URL, "GET", fmt.Sprintf("/mascotas/%d", petID), nil)
			var p struct {
				Nombre string `json:"nombre"`
				Edad   int    `json:"edad"`
				Estado bool   `json:"estado"`
			}
			_ = json.Unmarshal(body, &p)
			if p.Nombre != "Firulais" || p.Estado || p.Edad != 4 {
				t.Fatalf("expected renamed unavailable pet, got %s", string(body))
			}

			st, body = doReq(t, ts.URL, "PUT", fmt.Sprintf("/mascotas/%d", petID), map[string]any{"refugio_id": 999})
			if st != http.StatusNotFound {
				t.Fatalf("expected 404 unknown shelter, got %d body=%s", st, string(body))
			}
			if !strings.Contains(string(body), "refugio") {
				t.Fatalf("expected shelter in error detail, got %s", string(body))
			}
		})
	}
}

func TestHTTP_CareHistory_AndZeroTotal(t *testing.T) {
	for name, opts := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(router.NewRouter(opts))
			defer ts.Close()

			shelterID := createShelter(t, ts.URL, "Huellitas")
			petID := createPet(t, ts.URL, map[string]any{"nombre": "Firu", "especie": "Dog", "edad": 4, "sexo": "M", "refugio_id": shelterID})

			// sin eventos => total cero
			st, body := doReq(t, ts.URL, "GET", fmt.Sprintf("/historial/mascota/%d/costo-total", petID), nil)
			if st != http.StatusOK {
				t.Fatalf("expected 200 total, got %d body=%s", st, string(body))
			}
			var total struct {
				Nombre  string  `json:"mascota_nombre"`
				Eventos int     `json:"total_eventos"`
				Costo   float64 `json:"costo_total"`
			}
			_ = json.Unmarshal(body, &total)
			if total.Nombre != "Firu" || total.Eventos != 0 || total.Costo != 0 {
				t.Fatalf("unexpected zero total body=%s", string(body))
			}

			for _, ev := range []map[string]any{
				{"tipo_evento": "vacuna", "costo": 20.5, "fecha": "2024-01-05", "mascota_id": petID},
				{"tipo_evento": "baño", "costo": 10, "fecha": "2024-02-01", "mascota_id": petID},
			} {
				if st, body := doReq(t, ts.URL, "POST", "/historial", ev); st != http.StatusCreated {
					t.Fatalf("expected 201 care event, got %d body=%s", st, string(body))
				}
			}

			// costo negativo => 422
			if st, _ := doReq(t, ts.URL, "POST", "/historial", map[string]any{
				"tipo_evento": "x", "costo": -1, "mascota_id": petID,
			}); st != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422 negative cost, got %d", st)
			}

			st, body = doReq(t, ts.URL, "GET", fmt.Sprintf("/historial/mascota/%d", petID), nil)
			if st != http.StatusOK {
				t.Fatalf("expected 200 history, got %d", st)
			}
			var events []struct {
				Tipo  string `json:"tipo_evento"`
				Fecha string `json:"fecha"`
			}
			_ = json.Unmarshal(body, &events)
			if len(events) != 2 || events[0].Fecha != "2024-02-01" {
				t.Fatalf("expected newest first, body=%s", string(body))
			}

			_, body = doReq(t, ts.URL, "GET", fmt.Sprintf("/historial/mascota/%d/costo-total", petID), nil)
			_ = json.Unmarshal(body, &total)
			if total.Eventos != 2 || total.Costo != 30.5 {
				t.Fatalf("unexpected total body=%s", string(body))
			}

			if st, _ := doReq(t, ts.URL, "GET", "/historial/mascota/999/costo-total", nil); st != http.StatusNotFound {
				t.Fatalf("expected 404 total for unknown pet, got %d", st)
			}
		})
	}
}

func TestHTTP_StatsByMonth_SixtyBuckets(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/stats/adopciones-por-mes", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var months []struct {
		Mes   string `json:"mes"`
		Total int    `json:"total_adopciones"`
	}
	_ = json.Unmarshal(body, &months)
	if len(months) != 60 {
		t.Fatalf("expected 60 months, got %d", len(months))
	}
	if last := months[59].Mes; last != time.Now().Format("2006-01") {
		t.Fatalf("expected last bucket to be current month, got %s", last)
	}
	for _, m := range months {
		if m.Total != 0 {
			t.Fatalf("expected zero-filled series, got %+v", m)
		}
	}
}

func TestHTTP_UploadPetImage(t *testing.T) {
	objects := objmem.New("https://cdn.example")
	ts := httptest.NewServer(router.NewRouter(router.Options{Objects: objects}))
	defer ts.Close()

	shelterID := createShelter(t, ts.URL, "Huellitas")
	petID := createPet(t, ts.URL, map[string]any{"nombre": "Firu", "especie": "Dog", "edad": 4, "sexo": "M", "refugio_id": shelterID})

	st, body := doUpload(t, ts.URL, fmt.Sprintf("/mascotas/%d/imagen", petID), "firu.png", "image/png", []byte("\x89PNG\r\n\x1a\n"))
	if st != http.StatusOK {
		t.Fatalf("expected 200 upload, got %d body=%s", st, string(body))
	}
	var resp struct {
		MascotaID int64  `json:"mascota_id"`
		FotoURL   string `json:"foto_url"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.MascotaID != petID || resp.FotoURL != "https://cdn.example/public/firu.png" {
		t.Fatalf("unexpected upload body=%s", string(body))
	}
	if _, ok := objects.Get("public/firu.png"); !ok {
		t.Fatalf("expected object stored")
	}

	// la mascota guarda la URL y aparece con solo_con_foto
	_, body = doReq(t, ts.URL, "GET", "/mascotas?solo_con_foto=true", nil)
	var list []struct {
		ID      int64  `json:"id"`
		FotoURL string `json:"foto_url"`
	}
	_ = json.Unmarshal(body, &list)
	if len(list) != 1 || list[0].FotoURL != resp.FotoURL {
		t.Fatalf("unexpected pets with photo body=%s", string(body))
	}

	// entidad inexistente => 404
	if st, _ := doUpload(t, ts.URL, "/refugios/999/imagen", "x.png", "image/png", []byte("png")); st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown shelter, got %d", st)
	}

	// no imagen => 422
	if st, _ := doUpload(t, ts.URL, "/upload", "notas.txt", "text/plain", []byte("hola")); st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 non-image, got %d", st)
	}
}

func TestHTTP_MalformedJSON_BadRequest(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	req, _ := http.NewRequest("POST", ts.URL+"/refugios", strings.NewReader(`{"nombre":`))
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 malformed json, got %d", res.StatusCode)
	}
}

func TestHTTP_HealthAndWelcome(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	if st, body := doReq(t, ts.URL, "GET", "/health", nil); st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health: %d %s", st, string(body))
	}
	if st, _ := doReq(t, ts.URL, "GET", "/", nil); st != http.StatusOK {
		t.Fatalf("expected 200 welcome, got %d", st)
	}
	// trailing slash
	if st, _ := doReq(t, ts.URL, "GET", "/refugios/", nil); st != http.StatusOK {
		t.Fatalf("expected 200 with trailing slash, got %d", st)
	}
}

func createShelter(t *testing.T, baseURL, name string) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/refugios", map[string]any{
		"nombre":    name,
		"ubicacion": "Lima",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create shelter, got %d body=%s", st, string(body))
	}
	return decodeID(t, body)
}

func createPet(t *testing.T, baseURL string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/mascotas", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}
	return decodeID(t, body)
}

func decodeID(t *testing.T, body []byte) int64 {
	t.Helper()

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("missing id body=%s", string(body))
	}
	return resp.ID
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &resp)
	return resp.Error
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func doUpload(t *testing.T, baseURL, path, filename, contentType string, content []byte) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	_, _ = part.Write(content)
	_ = mw.Close()

	req, err := http.NewRequest("POST", baseURL+path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
