package middleware

import (
	"net/http"

	"yatube/internal/view"
	"yatube/internal/wlog"
)

// WithRecover turns a handler panic into the rendered 500 page instead of a
// dropped connection.
func WithRecover(renderer *view.PageRenderer, logger wlog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Logf("Recovered panic{%v} on %s %s", rec, r.Method, r.URL.Path)
				if err := renderer.Render(w, http.StatusInternalServerError, "server_error.html", nil); err != nil {
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}
		}()
		next.ServeHTTP(w, r)
	})
}
