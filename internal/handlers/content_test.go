package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/golang/mock/gomock"
	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/gradevo/gradevo-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestServiceCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := NewMockServiceManager(ctrl)
	svc.EXPECT().
		Create(gomock.Any(), models.Service{Title: "SEO", Description: "Rank higher", Icon: "Search"}).
		Return(&models.Service{ID: 5, Title: "SEO", Description: "Rank higher", Icon: "Search"}, nil)

	req := jsonRequest(t, http.MethodPost, "/services", ServiceRequest{Title: "SEO", Description: "Rank higher", Icon: "Search"})
	w := serve(t, http.MethodPost, "/services", NewServiceCreateHandler(svc), req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.Service{ID: 5, Title: "SEO", Description: "Rank higher", Icon: "Search"}, decodeBody[models.Service](t, w))
}

func TestServiceCreateHandler_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockServiceManager(ctrl)

	req := jsonRequest(t, http.MethodPost, "/services", "{oops")
	w := serve(t, http.MethodPost, "/services", NewServiceCreateHandler(svc), req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String())
}

func TestServiceUpdateHandler(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		mockSetup    func(svc *MockServiceManager)
		expectedCode int
		expectedBody string
	}{
		{
			name: "updated",
			path: "/services/2",
			mockSetup: func(svc *MockServiceManager) {
				svc.EXPECT().
					Update(gomock.Any(), models.Service{ID: 2, Title: "New", Description: "D", Icon: "Code"}).
					Return(&models.Service{ID: 2, Title: "New", Description: "D", Icon: "Code"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":2,"title":"New","description":"D","icon":"Code"}`,
		},
		{
			name: "not found",
			path: "/services/42",
			mockSetup: func(svc *MockServiceManager) {
				svc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Service not found"}`,
		},
		{
			name:         "bad id",
			path:         "/services/x",
			mockSetup:    func(svc *MockServiceManager) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid id"}`,
		},
		{
			name: "internal error",
			path: "/services/2",
			mockSetup: func(svc *MockServiceManager) {
				svc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockServiceManager(ctrl)
			tt.mockSetup(svc)

			req := jsonRequest(t, http.MethodPut, tt.path, ServiceRequest{Title: "New", Description: "D", Icon: "Code"})
			w := serve(t, http.MethodPut, "/services/{id}", NewServiceUpdateHandler(svc), req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestPortfolioCreateHandler_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockPortfolioManager(ctrl)

	want := models.PortfolioItem{
		Title:      "Shop",
		Category:   models.CategoryTechSolutions,
		Image:      "https://example.com/shop.png",
		TechStack:  strPtr("Go, React"),
		IsFeatured: true,
	}
	svc.EXPECT().
		Create(gomock.Any(), want, (*models.Upload)(nil)).
		DoAndReturn(func(_ any, item models.PortfolioItem, _ *models.Upload) (*models.PortfolioItem, error) {
			item.ID = 1
			return &item, nil
		})

	req := jsonRequest(t, http.MethodPost, "/portfolio", PortfolioRequest{
		Title:      "Shop",
		Category:   models.CategoryTechSolutions,
		Image:      "https://example.com/shop.png",
		TechStack:  strPtr("Go, React"),
		IsFeatured: true,
	})
	w := serve(t, http.MethodPost, "/portfolio", NewPortfolioCreateHandler(svc), req)

	assert.Equal(t, http.StatusCreated, w.Code)
	got := decodeBody[models.PortfolioItem](t, w)
	assert.Equal(t, int64(1), got.ID)
	assert.True(t, got.IsFeatured)
}

func TestPortfolioCreateHandler_Multipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockPortfolioManager(ctrl)

	svc.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ any, item models.PortfolioItem, upload *models.Upload) (*models.PortfolioItem, error) {
			assert.Equal(t, "Shop", item.Title)
			assert.Equal(t, models.CategoryBrandSolutions, item.Category)
			assert.True(t, item.IsFeatured)
			assert.Equal(t, strPtr("https://shop.example.com"), item.ProjectURL)
			assert.Nil(t, item.TechStack)

			assert.Equal(t, "cover.png", upload.Filename)
			assert.Equal(t, "image/png", upload.ContentType)
			content, err := io.ReadAll(upload.Content)
			require.NoError(t, err)
			assert.Equal(t, "PNGDATA", string(content))

			item.ID = 9
			item.Image = "/uploads/abc.png"
			return &item, nil
		})

	req := multipartRequest(t, http.MethodPost, "/portfolio", map[string]string{
		"title":       "Shop",
		"category":    models.CategoryBrandSolutions,
		"is_featured": "true",
		"project_url": "https://shop.example.com",
	}, "cover.png", "PNGDATA")
	w := serve(t, http.MethodPost, "/portfolio", NewPortfolioCreateHandler(svc), req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/uploads/abc.png", decodeBody[models.PortfolioItem](t, w).Image)
}

func TestPortfolioUpdateHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockPortfolioManager(ctrl)
	svc.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrNotFound)

	req := jsonRequest(t, http.MethodPut, "/portfolio/7", PortfolioRequest{Title: "x"})
	w := serve(t, http.MethodPut, "/portfolio/{id}", NewPortfolioUpdateHandler(svc), req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Portfolio item not found"}`, w.Body.String())
}

func TestTestimonialCreateHandler_MultipartWithoutFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockTestimonialManager(ctrl)

	svc.EXPECT().
		Create(gomock.Any(), models.Testimonial{
			Name:     "Ana",
			Role:     "CTO",
			Content:  "Great work",
			ImageURL: strPtr("https://example.com/ana.jpg"),
		}, (*models.Upload)(nil)).
		Return(&models.Testimonial{ID: 3, Name: "Ana"}, nil)

	req := multipartRequest(t, http.MethodPost, "/testimonials", map[string]string{
		"name":    "Ana",
		"role":    "CTO",
		"content": "Great work",
		"image":   "https://example.com/ana.jpg",
	}, "", "")
	w := serve(t, http.MethodPost, "/testimonials", NewTestimonialCreateHandler(svc), req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(3), decodeBody[models.Testimonial](t, w).ID)
}

func TestTestimonialUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockTestimonialManager(ctrl)
	svc.EXPECT().
		Update(gomock.Any(), models.Testimonial{ID: 4, Name: "Bo", LinkedinURL: strPtr("https://linkedin.com/in/bo")}, (*models.Upload)(nil)).
		Return(&models.Testimonial{ID: 4, Name: "Bo"}, nil)

	req := jsonRequest(t, http.MethodPut, "/testimonials/4", TestimonialRequest{Name: "Bo", LinkedinURL: strPtr("https://linkedin.com/in/bo")})
	w := serve(t, http.MethodPut, "/testimonials/{id}", NewTestimonialUpdateHandler(svc), req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDnaCreateHandler_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockDnaManager(ctrl)
	svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))

	req := multipartRequest(t, http.MethodPost, "/dna", map[string]string{"title": "Craft"}, "pillar.jpg", "JPG")
	w := serve(t, http.MethodPost, "/dna", NewDnaCreateHandler(svc), req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDnaUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockDnaManager(ctrl)
	svc.EXPECT().
		Update(gomock.Any(), models.DnaItem{ID: 2, Title: "Craft", Description: "Detail", Image: "/uploads/a.jpg"}, (*models.Upload)(nil)).
		Return(&models.DnaItem{ID: 2, Title: "Craft", Description: "Detail", Image: "/uploads/a.jpg"}, nil)

	req := jsonRequest(t, http.MethodPut, "/dna/2", DnaRequest{Title: "Craft", Description: "Detail", Image: "/uploads/a.jpg"})
	w := serve(t, http.MethodPut, "/dna/{id}", NewDnaUpdateHandler(svc), req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":2,"title":"Craft","description":"Detail","image":"/uploads/a.jpg"}`, w.Body.String())
}

func TestSiteContentUpsertHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         any
		mockSetup    func(svc *MockSiteContentManager)
		expectedCode int
		expectedBody string
	}{
		{
			name: "upsert",
			body: SiteContentRequest{Key: "heroTitle", Value: "Hello"},
			mockSetup: func(svc *MockSiteContentManager) {
				svc.EXPECT().
					Upsert(gomock.Any(), "heroTitle", "Hello", (*models.Upload)(nil)).
					Return(&models.SiteContent{Key: "heroTitle", Value: "Hello"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"key":"heroTitle","value":"Hello"}`,
		},
		{
			name:         "empty key",
			body:         SiteContentRequest{Value: "Hello"},
			mockSetup:    func(svc *MockSiteContentManager) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Key is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockSiteContentManager(ctrl)
			tt.mockSetup(svc)

			req := jsonRequest(t, http.MethodPost, "/site-content", tt.body)
			w := serve(t, http.MethodPost, "/site-content", NewSiteContentUpsertHandler(svc), req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestSiteContentUpsertHandler_ImageUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockSiteContentManager(ctrl)
	svc.EXPECT().
		Upsert(gomock.Any(), "heroImage", "", gomock.Not(gomock.Nil())).
		Return(&models.SiteContent{Key: "heroImage", Value: "/uploads/x.png"}, nil)

	req := multipartRequest(t, http.MethodPost, "/site-content", map[string]string{"key": "heroImage"}, "hero.png", "PNG")
	w := serve(t, http.MethodPost, "/site-content", NewSiteContentUpsertHandler(svc), req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"key":"heroImage","value":"/uploads/x.png"}`, w.Body.String())
}

func TestPortfolioCreateHandler_BodyTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockPortfolioManager(ctrl)
	limited := func(h http.HandlerFunc) http.HandlerFunc {
		return chimiddleware.RequestSize(64)(h).ServeHTTP
	}

	t.Run("json", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/portfolio", PortfolioRequest{
			Title:       "Shop",
			Description: strings.Repeat("x", 256),
		})
		w := serve(t, http.MethodPost, "/portfolio", limited(NewPortfolioCreateHandler(svc)), req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.JSONEq(t, `{"error":"request body too large"}`, w.Body.String())
	})

	t.Run("multipart", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPost, "/portfolio", map[string]string{"title": "Shop"},
			"cover.png", strings.Repeat("P", 1024))
		w := serve(t, http.MethodPost, "/portfolio", limited(NewPortfolioCreateHandler(svc)), req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestPortfolioCreateHandler_RejectsNonImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockPortfolioManager(ctrl)
	svc.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
		Return(nil, services.ErrUnsupportedUpload)

	req := multipartRequest(t, http.MethodPost, "/portfolio", map[string]string{"title": "Shop"}, "notes.txt", "hello")
	w := serve(t, http.MethodPost, "/portfolio", NewPortfolioCreateHandler(svc), req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Only image uploads are allowed"}`, w.Body.String())
}
