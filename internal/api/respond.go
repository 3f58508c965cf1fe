package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/PayRam/go-storefront/response"
	"github.com/PayRam/go-storefront/service"
)

func statusFor(kind service.ErrorKind) int {
	switch kind {
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindConstraintViolation:
		return http.StatusConflict
	case service.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (sr *StoreRouter) respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		sr.log.Error().Err(err).Msg("Failed to encode response")
	}
}

// respondError writes err as an error envelope. Internal causes are logged,
// not returned to the client.
func (sr *StoreRouter) respondError(w http.ResponseWriter, r *http.Request, err error) {
	kind := service.KindOf(err)
	message := err.Error()

	if kind == service.KindInternal {
		sr.log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("Request failed")
		var serviceErr *service.Error
		if errors.As(err, &serviceErr) {
			message = serviceErr.Message
		} else {
			message = "internal error"
		}
	} else {
		sr.log.Debug().Err(err).Str("kind", string(kind)).Str("path", r.URL.Path).Msg("Request rejected")
	}

	sr.respondWithJSON(w, statusFor(kind), response.Error(string(kind), message))
}
