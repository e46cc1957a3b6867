package handlers

import (
	"net/http"

	"github.com/gradevo/gradevo-api/internal/models"
)

const testimonialResource = "Testimonial"

func (req TestimonialRequest) toModel(id int64) models.Testimonial {
	return models.Testimonial{
		ID:          id,
		Name:        req.Name,
		Role:        req.Role,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		LinkedinURL: req.LinkedinURL,
	}
}

// NewTestimonialListHandler lists all testimonials.
// @Summary List testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {array} models.Testimonial
// @Router /api/content/testimonials [get]
func NewTestimonialListHandler(svc TestimonialManager) http.HandlerFunc {
	return NewListHandler[models.Testimonial](testimonialResource, svc)
}

// NewTestimonialCreateHandler creates a testimonial. An uploaded "image" file
// becomes the image_url.
// @Summary Create testimonial
// @Tags testimonials
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param testimonial body handlers.TestimonialRequest true "Testimonial"
// @Success 201 {object} models.Testimonial
// @Router /api/content/testimonials [post]
func NewTestimonialCreateHandler(svc TestimonialManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TestimonialRequest
		upload, err := decodeRequest(r, &req)
		if err != nil {
			writeDecodeError(w, err)
			return
		}
		defer closeUpload(upload)

		created, err := svc.Create(r.Context(), req.toModel(0), upload)
		if err != nil {
			writeServiceError(w, testimonialResource, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// NewTestimonialUpdateHandler replaces a testimonial.
// @Summary Update testimonial
// @Tags testimonials
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Param testimonial body handlers.TestimonialRequest true "Testimonial"
// @Success 200 {object} models.Testimonial
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/content/testimonials/{id} [put]
func NewTestimonialUpdateHandler(svc TestimonialManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var req TestimonialRequest
		upload, err := decodeRequest(r, &req)
		if err != nil {
			writeDecodeError(w, err)
			return
		}
		defer closeUpload(upload)

		updated, err := svc.Update(r.Context(), req.toModel(id), upload)
		if err != nil {
			writeServiceError(w, testimonialResource, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// NewTestimonialDeleteHandler deletes a testimonial.
// @Summary Delete testimonial
// @Tags testimonials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/content/testimonials/{id} [delete]
func NewTestimonialDeleteHandler(svc TestimonialManager) http.HandlerFunc {
	return NewDeleteHandler(testimonialResource, svc)
}
