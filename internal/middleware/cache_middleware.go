package middleware

import (
	"bytes"
	"net/http"
	"time"

	"yatube/internal/cache"
	"yatube/internal/wlog"
)

// recordingWriter tees a response into a buffer so a successful render can
// be stored after the handler is done with it.
type recordingWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (rw *recordingWriter) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *recordingWriter) Write(p []byte) (int, error) {
	rw.body.Write(p)
	return rw.ResponseWriter.Write(p)
}

// PageCache serves the fully rendered page from the store when a live entry
// exists for the request URL (query string included, page number and all).
// Only successful GET responses are stored; nothing ever invalidates an
// entry, it just expires after ttl.
func PageCache(store cache.Store, ttl time.Duration, logger wlog.Logger, next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next(w, r)
			return
		}

		key := r.URL.RequestURI()
		if body, ok := store.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			w.Write(body)
			return
		}

		rw := &recordingWriter{ResponseWriter: w, status: http.StatusOK}
		next(rw, r)

		if rw.status == http.StatusOK {
			store.Set(r.Context(), key, rw.body.Bytes(), ttl)
			logger.Logf("Cached %q for %v", key, ttl)
		}
	}
}
