package handlers

import (
	"context"
	"errors"
	"net/http"
)

// Lister is any collection service that can list all of its rows.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Deleter is any collection service that deletes rows by id.
type Deleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewListHandler returns every row of the collection in id order.
func NewListHandler[T any](resource string, svc Lister[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, resource, err)
			return
		}
		if rows == nil {
			rows = []T{}
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// NewDeleteHandler deletes the row named by the {id} route parameter.
func NewDeleteHandler(resource string, svc Deleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, resource, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: resource + " deleted"})
	}
}

// writeDecodeError answers a body that could not be decoded.
func writeDecodeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errBodyTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, errBodyTooLarge.Error())
	case errors.Is(err, errInvalidMultipart):
		writeError(w, http.StatusBadRequest, errInvalidMultipart.Error())
	default:
		writeError(w, http.StatusBadRequest, errInvalidBody.Error())
	}
}
