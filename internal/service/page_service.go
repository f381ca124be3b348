package service

import (
	"context"
	"errors"
	"fmt"
	"go-cms-app/internal/data"
)

// PageRepository defines the interface for database operations on pages.
type PageRepository interface {
	CreatePage(ctx context.Context, page *data.Page) (int64, error)
	GetPageByID(ctx context.Context, id int64) (*data.Page, error)
	GetAllPages(ctx context.Context) ([]*data.Page, error)
	GetPagesByCategoryID(ctx context.Context, categoryID int64) ([]*data.Page, error)
	CountPagesByCategoryID(ctx context.Context, categoryID int64) (int64, error)
	UpdatePage(ctx context.Context, page *data.Page) (int64, error)
	DeletePage(ctx context.Context, id int64) (int64, error)
}

// PageServicer defines the interface for interacting with pages.
type PageServicer interface {
	List(ctx context.Context) ([]*data.Page, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*data.Page, error)
	Get(ctx context.Context, id int64) (*data.Page, error)
	Create(ctx context.Context, in PageInput) (*data.Page, error)
	Update(ctx context.Context, id int64, in PageInput) (*data.Page, error)
	Delete(ctx context.Context, id int64) error
}

// PageInput is the request body for creating or replacing a page.
type PageInput struct {
	Name        string  `json:"page_name" validate:"required"`
	URL         string  `json:"page_url" validate:"required"`
	Description *string `json:"page_description"`
	CategoryID  *int64  `json:"category_id"`
}

// PageService provides business logic for managing pages.
type PageService struct {
	repo     PageRepository
	renderer *Renderer
	cache    *ResponseCache
}

var _ PageServicer = (*PageService)(nil)

// NewPageService creates a new PageService. cache may be nil.
func NewPageService(repo PageRepository, renderer *Renderer, cache *ResponseCache) *PageService {
	return &PageService{repo: repo, renderer: renderer, cache: cache}
}

// toPage keeps the description as sent; only its rendered HTML is sanitized.
func toPage(id int64, in PageInput) *data.Page {
	page := &data.Page{ID: id, Name: in.Name, URL: in.URL}
	if in.Description != nil {
		page.Description = *in.Description
	}
	// A zero category id means "no category".
	if in.CategoryID != nil && *in.CategoryID != 0 {
		categoryID := *in.CategoryID
		page.CategoryID = &categoryID
	}
	return page
}

// List returns every page joined with its category name, newest first.
func (s *PageService) List(ctx context.Context) ([]*data.Page, error) {
	var pages []*data.Page
	if s.cache.read(ctx, cacheKeyPages, &pages) {
		return pages, nil
	}
	gen := s.cache.generation()
	pages, err := s.repo.GetAllPages(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.write(ctx, cacheKeyPages, gen, pages)
	return pages, nil
}

// ListByCategory returns the pages of one category. An unknown id yields an empty list.
func (s *PageService) ListByCategory(ctx context.Context, categoryID int64) ([]*data.Page, error) {
	return s.repo.GetPagesByCategoryID(ctx, categoryID)
}

// Get returns one joined page with its description rendered to HTML.
func (s *PageService) Get(ctx context.Context, id int64) (*data.Page, error) {
	page, err := s.repo.GetPageByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, &NotFoundError{Message: msgPageNotFound}
	}
	html, err := s.renderer.RenderMarkdown(page.Description)
	if err != nil {
		return nil, err
	}
	page.DescriptionHTML = html
	return page, nil
}

// Create validates in, inserts the page and re-reads the joined row.
func (s *PageService) Create(ctx context.Context, in PageInput) (*data.Page, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	id, err := s.repo.CreatePage(ctx, toPage(0, in))
	if err != nil {
		if errors.Is(err, data.ErrNoInsertID) {
			return nil, fmt.Errorf("failed to create page: %w", err)
		}
		return nil, err
	}
	s.cache.invalidate(ctx, cacheKeyPages)

	page, err := s.repo.GetPageByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("failed to create page: row %d not readable after insert", id)
	}
	return page, nil
}

// Update replaces the mutable fields of page id and returns the joined row.
func (s *PageService) Update(ctx context.Context, id int64, in PageInput) (*data.Page, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	n, err := s.repo.UpdatePage(ctx, toPage(id, in))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &NotFoundError{Message: msgPageNotFound}
	}
	s.cache.invalidate(ctx, cacheKeyPages)

	page, err := s.repo.GetPageByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, &NotFoundError{Message: msgPageNotFound}
	}
	return page, nil
}

// Delete removes page id.
func (s *PageService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.DeletePage(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return &NotFoundError{Message: msgPageNotFound}
	}
	s.cache.invalidate(ctx, cacheKeyPages)
	return nil
}
