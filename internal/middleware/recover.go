package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"adopciones-api/internal/platform/httpx"
	"adopciones-api/internal/platform/logger"
)

// Recover convierte un panic en 500 con el mismo formato de error que el
// resto de la API. Va después de RequestLogger para loguear con request_id.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.FromContext(r.Context()).Error("panic", map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
				"panic":  fmt.Sprint(rec),
				"stack":  string(debug.Stack()),
			})
			httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
				Error:  "internal_error",
				Detail: "error interno",
			})
		}()
		next.ServeHTTP(w, r)
	})
}
