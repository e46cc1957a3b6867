package handlers

import (
	"net/http"

	"github.com/gradevo/gradevo-api/internal/models"
)

const serviceResource = "Service"

// NewServiceListHandler lists all services.
// @Summary List services
// @Tags services
// @Produce json
// @Success 200 {array} models.Service
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/content/services [get]
func NewServiceListHandler(svc ServiceManager) http.HandlerFunc {
	return NewListHandler[models.Service](serviceResource, svc)
}

// NewServiceCreateHandler creates a service.
// @Summary Create service
// @Tags services
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param service body handlers.ServiceRequest true "Service"
// @Success 201 {object} models.Service
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /api/content/services [post]
func NewServiceCreateHandler(svc ServiceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ServiceRequest
		upload, err := decodeRequest(r, &req)
		if err != nil {
			writeDecodeError(w, err)
			return
		}
		defer closeUpload(upload)

		created, err := svc.Create(r.Context(), models.Service{
			Title:       req.Title,
			Description: req.Description,
			Icon:        req.Icon,
		})
		if err != nil {
			writeServiceError(w, serviceResource, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// NewServiceUpdateHandler replaces a service.
// @Summary Update service
// @Tags services
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param service body handlers.ServiceRequest true "Service"
// @Success 200 {object} models.Service
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/content/services/{id} [put]
func NewServiceUpdateHandler(svc ServiceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var req ServiceRequest
		upload, err := decodeRequest(r, &req)
		if err != nil {
			writeDecodeError(w, err)
			return
		}
		defer closeUpload(upload)

		updated, err := svc.Update(r.Context(), models.Service{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			Icon:        req.Icon,
		})
		if err != nil {
			writeServiceError(w, serviceResource, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// NewServiceDeleteHandler deletes a service.
// @Summary Delete service
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/content/services/{id} [delete]
func NewServiceDeleteHandler(svc ServiceManager) http.HandlerFunc {
	return NewDeleteHandler(serviceResource, svc)
}
