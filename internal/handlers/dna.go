package handlers

import (
	"net/http"

	"github.com/gradevo/gradevo-api/internal/models"
)

const dnaResource = "DNA item"

func (req DnaRequest) toModel(id int64) models.DnaItem {
	return models.DnaItem{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}
}

// NewDnaListHandler lists all DNA items.
// @Summary List DNA items
// @Tags dna
// @Produce json
// @Success 200 {array} models.DnaItem
// @Router /api/content/dna [get]
func NewDnaListHandler(svc DnaManager) http.HandlerFunc {
	return NewListHandler[models.DnaItem](dnaResource, svc)
}

// NewDnaCreateHandler creates a DNA item.
// @Summary Create DNA item
// @Tags dna
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param item body handlers.DnaRequest true "DNA item"
// @Success 201 {object} models.DnaItem
// @Router /api/content/dna [post]
func NewDnaCreateHandler(svc DnaManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DnaRequest
		upload, err := decodeRequest(r, &req)
		if err != nil {
			writeDecodeError(w, err)
			return
		}
		defer closeUpload(upload)

		created, err := svc.Create(r.Context(), req.toModel(0), upload)
		if err != nil {
			writeServiceError(w, dnaResource, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// NewDnaUpdateHandler replaces a DNA item.
// @Summary Update DNA item
// @Tags dna
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "DNA item ID"
// @Param item body handlers.DnaRequest true "DNA item"
// @Success 200 {object} models.DnaItem
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/content/dna/{id} [put]
func NewDnaUpdateHandler(svc DnaManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var req DnaRequest
		upload, err := decodeRequest(r, &req)
		if err != nil {
			writeDecodeError(w, err)
			return
		}
		defer closeUpload(upload)

		updated, err := svc.Update(r.Context(), req.toModel(id), upload)
		if err != nil {
			writeServiceError(w, dnaResource, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// NewDnaDeleteHandler deletes a DNA item.
// @Summary Delete DNA item
// @Tags dna
// @Produce json
// @Security BearerAuth
// @Param id path int true "DNA item ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/content/dna/{id} [delete]
func NewDnaDeleteHandler(svc DnaManager) http.HandlerFunc {
	return NewDeleteHandler(dnaResource, svc)
}
