package handlers

import (
	"net/http"

	"github.com/gradevo/gradevo-api/internal/models"
)

const portfolioResource = "Portfolio item"

func (req PortfolioRequest) toModel(id int64) models.PortfolioItem {
	return models.PortfolioItem{
		ID:          id,
		Title:       req.Title,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
		ProjectURL:  req.ProjectURL,
		TechStack:   req.TechStack,
		IsFeatured:  req.IsFeatured,
	}
}

// NewPortfolioListHandler lists all portfolio items.
// @Summary List portfolio items
// @Tags portfolio
// @Produce json
// @Success 200 {array} models.PortfolioItem
// @Router /api/content/portfolio [get]
func NewPortfolioListHandler(svc PortfolioManager) http.HandlerFunc {
	return NewListHandler[models.PortfolioItem](portfolioResource, svc)
}

// NewPortfolioCreateHandler creates a portfolio item. A multipart "image" file
// takes precedence over the literal image field.
// @Summary Create portfolio item
// @Tags portfolio
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param item body handlers.PortfolioRequest true "Portfolio item"
// @Success 201 {object} models.PortfolioItem
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/content/portfolio [post]
func NewPortfolioCreateHandler(svc PortfolioManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PortfolioRequest
		upload, err := decodeRequest(r, &req)
		if err != nil {
			writeDecodeError(w, err)
			return
		}
		defer closeUpload(upload)

		created, err := svc.Create(r.Context(), req.toModel(0), upload)
		if err != nil {
			writeServiceError(w, portfolioResource, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// NewPortfolioUpdateHandler replaces a portfolio item.
// @Summary Update portfolio item
// @Tags portfolio
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Portfolio item ID"
// @Param item body handlers.PortfolioRequest true "Portfolio item"
// @Success 200 {object} models.PortfolioItem
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/content/portfolio/{id} [put]
func NewPortfolioUpdateHandler(svc PortfolioManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var req PortfolioRequest
		upload, err := decodeRequest(r, &req)
		if err != nil {
			writeDecodeError(w, err)
			return
		}
		defer closeUpload(upload)

		updated, err := svc.Update(r.Context(), req.toModel(id), upload)
		if err != nil {
			writeServiceError(w, portfolioResource, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// NewPortfolioDeleteHandler deletes a portfolio item.
// @Summary Delete portfolio item
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Param id path int true "Portfolio item ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/content/portfolio/{id} [delete]
func NewPortfolioDeleteHandler(svc PortfolioManager) http.HandlerFunc {
	return NewDeleteHandler(portfolioResource, svc)
}
