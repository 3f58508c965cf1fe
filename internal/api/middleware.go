package api

import (
	"net/http"
	"runtime/debug"

	"github.com/PayRam/go-storefront/response"
	"github.com/PayRam/go-storefront/service"
	"github.com/felixge/httpsnoop"
)

func (sr *StoreRouter) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		sr.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", m.Code).
			Int64("bytes", m.Written).
			Dur("duration", m.Duration).
			Msg("Handled request")
	})
}

// recoverPanics turns a handler panic into an Internal error envelope.
func (sr *StoreRouter) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			sr.log.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("Recovered from panic")
			sr.respondWithJSON(w, http.StatusInternalServerError,
				response.Error(string(service.KindInternal), "internal error"))
		}()
		next.ServeHTTP(w, r)
	})
}
