package services

//go:generate mockgen -source=content.go -destination=content_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/gradevo/gradevo-api/internal/logger"
	"github.com/gradevo/gradevo-api/internal/models"
)

var (
	// ErrNotFound is returned when an update or delete targets an id that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnsupportedUpload rejects a file whose declared type is not an image.
	ErrUnsupportedUpload = errors.New("unsupported upload type")
)

// FileStore persists uploaded files and returns their public path.
type FileStore interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}

type ServiceRepository interface {
	List(ctx context.Context) ([]models.Service, error)
	Create(ctx context.Context, s models.Service) (*models.Service, error)
	Update(ctx context.Context, s models.Service) (*models.Service, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type PortfolioRepository interface {
	List(ctx context.Context) ([]models.PortfolioItem, error)
	Create(ctx context.Context, p models.PortfolioItem) (*models.PortfolioItem, error)
	Update(ctx context.Context, p models.PortfolioItem) (*models.PortfolioItem, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type TestimonialRepository interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	Create(ctx context.Context, t models.Testimonial) (*models.Testimonial, error)
	Update(ctx context.Context, t models.Testimonial) (*models.Testimonial, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type DnaRepository interface {
	List(ctx context.Context) ([]models.DnaItem, error)
	Create(ctx context.Context, d models.DnaItem) (*models.DnaItem, error)
	Update(ctx context.Context, d models.DnaItem) (*models.DnaItem, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type SiteContentRepository interface {
	List(ctx context.Context) ([]models.SiteContent, error)
	Upsert(ctx context.Context, key, value string) (*models.SiteContent, error)
}

// storeUpload saves the upload when there is one. An empty path means nothing was stored.
func storeUpload(ctx context.Context, files FileStore, upload *models.Upload) (string, error) {
	if upload == nil {
		return "", nil
	}
	if !isImage(upload.ContentType) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedUpload, upload.ContentType)
	}
	path, err := files.Save(ctx, upload.Filename, upload.Content)
	if err != nil {
		logger.Log.Errorw("failed to store upload", "filename", upload.Filename, "error", err)
		return "", fmt.Errorf("store upload: %w", err)
	}
	return path, nil
}

// isImage accepts image/* media types. A part sent without a type is accepted.
func isImage(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "image/")
}

// deleted maps the affected row count of a delete to ErrNotFound.
func deleted(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ServiceCatalogService manages the services listed on the site.
type ServiceCatalogService struct {
	repo ServiceRepository
}

func NewServiceCatalogService(repo ServiceRepository) *ServiceCatalogService {
	return &ServiceCatalogService{repo: repo}
}

func (s *ServiceCatalogService) List(ctx context.Context) ([]models.Service, error) {
	services, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list services", "error", err)
		return nil, err
	}
	return services, nil
}

func (s *ServiceCatalogService) Create(ctx context.Context, svc models.Service) (*models.Service, error) {
	created, err := s.repo.Create(ctx, svc)
	if err != nil {
		logger.Log.Errorw("failed to create service", "title", svc.Title, "error", err)
		return nil, err
	}
	return created, nil
}

func (s *ServiceCatalogService) Update(ctx context.Context, svc models.Service) (*models.Service, error) {
	updated, err := s.repo.Update(ctx, svc)
	if err != nil {
		logger.Log.Errorw("failed to update service", "id", svc.ID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *ServiceCatalogService) Delete(ctx context.Context, id int64) error {
	err := deleted(s.repo.Delete(ctx, id))
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.Log.Errorw("failed to delete service", "id", id, "error", err)
	}
	return err
}

// PortfolioService manages portfolio case studies.
type PortfolioService struct {
	repo  PortfolioRepository
	files FileStore
}

func NewPortfolioService(repo PortfolioRepository, files FileStore) *PortfolioService {
	return &PortfolioService{repo: repo, files: files}
}

func (s *PortfolioService) List(ctx context.Context) ([]models.PortfolioItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list portfolio", "error", err)
		return nil, err
	}
	return items, nil
}

// Create stores the item. An attached upload replaces any literal image value.
func (s *PortfolioService) Create(ctx context.Context, item models.PortfolioItem, upload *models.Upload) (*models.PortfolioItem, error) {
	path, err := storeUpload(ctx, s.files, upload)
	if err != nil {
		return nil, err
	}
	if path != "" {
		item.Image = path
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		logger.Log.Errorw("failed to create portfolio item", "title", item.Title, "error", err)
		return nil, err
	}
	return created, nil
}

func (s *PortfolioService) Update(ctx context.Context, item models.PortfolioItem, upload *models.Upload) (*models.PortfolioItem, error) {
	path, err := storeUpload(ctx, s.files, upload)
	if err != nil {
		return nil, err
	}
	if path != "" {
		item.Image = path
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		logger.Log.Errorw("failed to update portfolio item", "id", item.ID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *PortfolioService) Delete(ctx context.Context, id int64) error {
	err := deleted(s.repo.Delete(ctx, id))
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.Log.Errorw("failed to delete portfolio item", "id", id, "error", err)
	}
	return err
}

// TestimonialService manages client testimonials.
type TestimonialService struct {
	repo  TestimonialRepository
	files FileStore
}

func NewTestimonialService(repo TestimonialRepository, files FileStore) *TestimonialService {
	return &TestimonialService{repo: repo, files: files}
}

func (s *TestimonialService) List(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list testimonials", "error", err)
		return nil, err
	}
	return testimonials, nil
}

// Create stores the testimonial. An attached upload becomes its image_url.
func (s *TestimonialService) Create(ctx context.Context, t models.Testimonial, upload *models.Upload) (*models.Testimonial, error) {
	path, err := storeUpload(ctx, s.files, upload)
	if err != nil {
		return nil, err
	}
	if path != "" {
		t.ImageURL = &path
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		logger.Log.Errorw("failed to create testimonial", "name", t.Name, "error", err)
		return nil, err
	}
	return created, nil
}

func (s *TestimonialService) Update(ctx context.Context, t models.Testimonial, upload *models.Upload) (*models.Testimonial, error) {
	path, err := storeUpload(ctx, s.files, upload)
	if err != nil {
		return nil, err
	}
	if path != "" {
		t.ImageURL = &path
	}

	updated, err := s.repo.Update(ctx, t)
	if err != nil {
		logger.Log.Errorw("failed to update testimonial", "id", t.ID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *TestimonialService) Delete(ctx context.Context, id int64) error {
	err := deleted(s.repo.Delete(ctx, id))
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.Log.Errorw("failed to delete testimonial", "id", id, "error", err)
	}
	return err
}

// DnaService manages the brand pillar blocks.
type DnaService struct {
	repo  DnaRepository
	files FileStore
}

func NewDnaService(repo DnaRepository, files FileStore) *DnaService {
	return &DnaService{repo: repo, files: files}
}

func (s *DnaService) List(ctx context.Context) ([]models.DnaItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list dna items", "error", err)
		return nil, err
	}
	return items, nil
}

func (s *DnaService) Create(ctx context.Context, item models.DnaItem, upload *models.Upload) (*models.DnaItem, error) {
	path, err := storeUpload(ctx, s.files, upload)
	if err != nil {
		return nil, err
	}
	if path != "" {
		item.Image = path
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		logger.Log.Errorw("failed to create dna item", "title", item.Title, "error", err)
		return nil, err
	}
	return created, nil
}

func (s *DnaService) Update(ctx context.Context, item models.DnaItem, upload *models.Upload) (*models.DnaItem, error) {
	path, err := storeUpload(ctx, s.files, upload)
	if err != nil {
		return nil, err
	}
	if path != "" {
		item.Image = path
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		logger.Log.Errorw("failed to update dna item", "id", item.ID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (s *DnaService) Delete(ctx context.Context, id int64) error {
	err := deleted(s.repo.Delete(ctx, id))
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.Log.Errorw("failed to delete dna item", "id", id, "error", err)
	}
	return err
}

// SiteContentService manages free-form site copy.
type SiteContentService struct {
	repo  SiteContentRepository
	files FileStore
}

func NewSiteContentService(repo SiteContentRepository, files FileStore) *SiteContentService {
	return &SiteContentService{repo: repo, files: files}
}

func (s *SiteContentService) List(ctx context.Context) ([]models.SiteContent, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list site content", "error", err)
		return nil, err
	}
	return entries, nil
}

// Upsert stores value under key. When an upload is attached its public path is
// stored instead of value.
func (s *SiteContentService) Upsert(ctx context.Context, key, value string, upload *models.Upload) (*models.SiteContent, error) {
	path, err := storeUpload(ctx, s.files, upload)
	if err != nil {
		return nil, err
	}
	if path != "" {
		value = path
	}

	entry, err := s.repo.Upsert(ctx, key, value)
	if err != nil {
		logger.Log.Errorw("failed to upsert site content", "key", key, "error", err)
		return nil, err
	}
	return entry, nil
}
