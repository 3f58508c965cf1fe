package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/response"
	"github.com/PayRam/go-storefront/service"
)

type keyed interface {
	PrimaryKey() uint
}

func listHandler[T any](sr *StoreRouter, list func(context.Context, request.PaginationConditions) ([]T, int64, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var conditions request.PaginationConditions
		if err := decodeForm(w, r, &conditions); err != nil {
			sr.respondError(w, r, err)
			return
		}

		rows, total, err := list(r.Context(), conditions)
		if err != nil {
			sr.respondError(w, r, err)
			return
		}
		if rows == nil {
			rows = []T{}
		}
		sr.respondWithJSON(w, http.StatusOK, response.List(rows, total))
	}
}

func getHandler[T any](sr *StoreRouter, get func(context.Context, uint) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := pathKey(r)
		if err != nil {
			sr.respondError(w, r, err)
			return
		}

		row, err := get(r.Context(), key)
		if err != nil {
			sr.respondError(w, r, err)
			return
		}
		sr.respondWithJSON(w, http.StatusOK, response.Item(row))
	}
}

func createHandler[Req any, T keyed](sr *StoreRouter, create func(context.Context, Req) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := decodeForm(w, r, &req); err != nil {
			sr.respondError(w, r, err)
			return
		}

		created, err := create(r.Context(), req)
		if err != nil {
			sr.respondError(w, r, err)
			return
		}
		sr.respondWithJSON(w, http.StatusOK, response.OK((*created).PrimaryKey()))
	}
}

// updateHandler reads the row key from the keyField form value.
func updateHandler[Req any, T keyed](sr *StoreRouter, keyField string, update func(context.Context, uint, Req) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := decodeForm(w, r, &req); err != nil {
			sr.respondError(w, r, err)
			return
		}
		key, err := formKey(r, keyField)
		if err != nil {
			sr.respondError(w, r, err)
			return
		}

		updated, err := update(r.Context(), key, req)
		if err != nil {
			sr.respondError(w, r, err)
			return
		}
		sr.respondWithJSON(w, http.StatusOK, response.OK((*updated).PrimaryKey()))
	}
}

func deleteHandler(sr *StoreRouter, remove func(context.Context, uint) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := pathKey(r)
		if err != nil {
			sr.respondError(w, r, err)
			return
		}

		if err := remove(r.Context(), key); err != nil {
			sr.respondError(w, r, err)
			return
		}
		sr.respondWithJSON(w, http.StatusOK, response.OK(key))
	}
}

// imageHandler writes a stored image as raw bytes.
func imageHandler(sr *StoreRouter, get func(context.Context, uint) ([]byte, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := pathKey(r)
		if err != nil {
			sr.respondError(w, r, err)
			return
		}

		image, err := get(r.Context(), key)
		if err != nil {
			sr.respondError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", http.DetectContentType(image))
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(image); err != nil {
			sr.log.Warn().Err(err).Msg("Failed to write image")
		}
	}
}

// updateImageHandler replaces only the image of a row. The upload is required.
func updateImageHandler(sr *StoreRouter, keyField string, update func(context.Context, uint, []byte) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(w, r); err != nil {
			sr.respondError(w, r, err)
			return
		}
		key, err := formKey(r, keyField)
		if err != nil {
			sr.respondError(w, r, err)
			return
		}

		image, err := readUpload(r)
		if errors.Is(err, http.ErrMissingFile) {
			err = service.Validation("%s upload is required", uploadField)
		}
		if err != nil {
			sr.respondError(w, r, err)
			return
		}

		if err := update(r.Context(), key, image); err != nil {
			sr.respondError(w, r, err)
			return
		}
		sr.respondWithJSON(w, http.StatusOK, response.OK(key))
	}
}
