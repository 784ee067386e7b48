package api

import (
	"bytes"
	"net/http"

	"github.com/francislub/busines-consultant-sub001/cache"
)

type recordingResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	buf         bytes.Buffer
}

func (w *recordingResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func (w *recordingResponseWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	return w.ResponseWriter.Write(p)
}

// CacheViews serves public GET responses from the view cache and records
// misses. Mutating handlers invalidate the affected paths, which is the
// "mark this view stale" signal the marketing site relies on.
func CacheViews(viewCache *cache.ViewCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !viewCache.Enabled() || r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := r.URL.Path
			if r.URL.RawQuery != "" {
				key += "?" + r.URL.RawQuery
			}

			if payload, ok := viewCache.Get(r.Context(), key); ok {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.Header().Set("X-Cache", "HIT")
				w.Write(payload)
				return
			}

			rec := &recordingResponseWriter{ResponseWriter: w, status: 200}
			next.ServeHTTP(rec, r)

			if rec.status == http.StatusOK {
				viewCache.Set(r.Context(), key, rec.buf.Bytes())
			}
		})
	}
}
