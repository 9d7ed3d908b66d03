package uploads

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"adopciones-api/internal/platform/apperr"
	"adopciones-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

// memoria para el form multipart; lo que exceda va a archivos temporales
const multipartMemory = 8 << 20

// RegisterRoutes registra /upload y los endpoints de imagen de refugios y mascotas.
func RegisterRoutes(r chi.Router, svc *Service, shelters, pets PhotoTarget) {
	r.Post("/upload", uploadHandler(svc))
	r.Post("/refugios/{id}/imagen", entityImageHandler(svc, shelters, "refugio_id", "Imagen de refugio subida/actualizada correctamente"))
	r.Post("/mascotas/{id}/imagen", entityImageHandler(svc, pets, "mascota_id", "Imagen de mascota subida/actualizada correctamente"))
}

type uploadResponse struct {
	URL string `json:"url"`
}

// uploadHandler godoc
// @Summary Subir una imagen
// @Description Sube el archivo al object store y devuelve su URL pública.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Imagen"
// @Success 200 {object} uploadResponse
// @Failure 400 {object} httpx.ErrorResponse "error subiendo imagen"
// @Failure 422 {object} httpx.ErrorResponse "archivo faltante o no es imagen"
// @Router /upload [post]
func uploadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, closeFn, err := readFile(w, r, svc.MaxBytes())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		defer closeFn()

		url, err := svc.Upload(r.Context(), f)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, uploadResponse{URL: url})
	}
}

// entityImageHandler godoc
// @Summary Subir/actualizar la imagen de un refugio o una mascota
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID de la entidad"
// @Param file formData file true "Imagen"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httpx.ErrorResponse "error subiendo imagen"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /refugios/{id}/imagen [post]
// @Router /mascotas/{id}/imagen [post]
func entityImageHandler(svc *Service, target PhotoTarget, idField, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		f, closeFn, err := readFile(w, r, svc.MaxBytes())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		defer closeFn()

		url, err := svc.UploadFor(r.Context(), target, id, f)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"mensaje":  message,
			idField:    id,
			"foto_url": url,
		})
	}
}

// readFile lee el campo "file" del form. Si el cliente no manda Content-Type
// se detecta con los primeros 512 bytes.
func readFile(w http.ResponseWriter, r *http.Request, maxBytes int64) (File, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return File{}, nil, apperr.Validation("file", "supera el tamaño máximo permitido")
		}
		return File{}, nil, apperr.New("se esperaba multipart/form-data", apperr.ErrBadRequest)
	}

	file, hdr, err := r.FormFile("file")
	if err != nil {
		return File{}, nil, apperr.Validation("file", "es obligatorio")
	}
	closeFn := func() {
		_ = file.Close()
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}

	ct := hdr.Header.Get("Content-Type")
	if ct == "" || ct == "application/octet-stream" {
		ct, err = sniff(file)
		if err != nil {
			closeFn()
			return File{}, nil, apperr.New("no se pudo leer el archivo", apperr.ErrBadRequest)
		}
	}

	return File{
		Name:        hdr.Filename,
		ContentType: ct,
		Size:        hdr.Size,
		Body:        file,
	}, closeFn, nil
}

func sniff(f multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}
