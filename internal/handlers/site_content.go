package handlers

import (
	"net/http"

	"github.com/gradevo/gradevo-api/internal/models"
)

const siteContentResource = "Site content"

// NewSiteContentListHandler lists all site content entries.
// @Summary List site content
// @Tags site-content
// @Produce json
// @Success 200 {array} models.SiteContent
// @Router /api/content/site-content [get]
func NewSiteContentListHandler(svc SiteContentManager) http.HandlerFunc {
	return NewListHandler[models.SiteContent](siteContentResource, svc)
}

// NewSiteContentUpsertHandler creates or overwrites one entry. An uploaded "image"
// file is stored and its path saved as the value.
// @Summary Upsert site content
// @Tags site-content
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param entry body handlers.SiteContentRequest true "Entry"
// @Success 200 {object} models.SiteContent
// @Failure 400 {object} handlers.ErrorResponse "Key is required"
// @Router /api/content/site-content [post]
func NewSiteContentUpsertHandler(svc SiteContentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SiteContentRequest
		upload, err := decodeRequest(r, &req)
		if err != nil {
			writeDecodeError(w, err)
			return
		}
		defer closeUpload(upload)

		if req.Key == "" {
			writeError(w, http.StatusBadRequest, "Key is required")
			return
		}

		entry, err := svc.Upsert(r.Context(), req.Key, req.Value, upload)
		if err != nil {
			writeServiceError(w, siteContentResource, err)
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}
