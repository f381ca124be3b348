package service

import (
	"context"
	"errors"
	"fmt"
	"go-cms-app/internal/data"
)

// CategoryRepository defines the interface for database operations on categories.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]*data.Category, error)
	GetByID(ctx context.Context, id int64) (*data.Category, error)
	Create(ctx context.Context, category *data.Category) (int64, error)
	Update(ctx context.Context, category *data.Category) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// CategoryInput is the request body for creating or replacing a category.
type CategoryInput struct {
	Name  string  `json:"category_name" validate:"required"`
	Order *int64  `json:"category_order"`
	Note  *string `json:"category_note"`
}

func (in CategoryInput) toCategory(id int64) *data.Category {
	c := &data.Category{ID: id, Name: in.Name}
	if in.Order != nil {
		c.Order = *in.Order
	}
	if in.Note != nil {
		c.Note = *in.Note
	}
	return c
}

// CategoryService provides business logic for managing categories.
type CategoryService struct {
	repo  CategoryRepository
	pages PageRepository
	cache *ResponseCache
}

// NewCategoryService creates a CategoryService. cache may be nil.
func NewCategoryService(repo CategoryRepository, pages PageRepository, cache *ResponseCache) *CategoryService {
	return &CategoryService{repo: repo, pages: pages, cache: cache}
}

// List returns all categories ordered by category_order, then category_id.
func (s *CategoryService) List(ctx context.Context) ([]*data.Category, error) {
	var categories []*data.Category
	if s.cache.read(ctx, cacheKeyCategories, &categories) {
		return categories, nil
	}
	gen := s.cache.generation()
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.write(ctx, cacheKeyCategories, gen, categories)
	return categories, nil
}

// Create validates in, inserts it and re-reads the stored row.
func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*data.Category, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	id, err := s.repo.Create(ctx, in.toCategory(0))
	if err != nil {
		if errors.Is(err, data.ErrNoInsertID) {
			return nil, fmt.Errorf("failed to create category: %w", err)
		}
		return nil, err
	}
	s.invalidate(ctx)

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("failed to create category: row %d not readable after insert", id)
	}
	return category, nil
}

// Update replaces the mutable fields of category id.
func (s *CategoryService) Update(ctx context.Context, id int64, in CategoryInput) (*data.Category, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	n, err := s.repo.Update(ctx, in.toCategory(id))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &NotFoundError{Message: msgCategoryNotFound}
	}
	s.invalidate(ctx)

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &NotFoundError{Message: msgCategoryNotFound}
	}
	return category, nil
}

// Delete removes category id unless a page still references it.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	count, err := s.pages.CountPagesByCategoryID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &ConflictError{Message: msgCategoryInUse}
	}
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return &NotFoundError{Message: msgCategoryNotFound}
	}
	s.invalidate(ctx)
	return nil
}

// Pages embed the category name, so category writes also drop the page list.
func (s *CategoryService) invalidate(ctx context.Context) {
	s.cache.invalidate(ctx, cacheKeyCategories, cacheKeyPages)
}
