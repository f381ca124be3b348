package service

import (
	"context"
	"errors"
	"fmt"
	"go-cms-app/internal/data"
)

// ItemRepository defines the interface for database operations on legacy items.
type ItemRepository interface {
	GetAll(ctx context.Context) ([]*data.Item, error)
	GetByID(ctx context.Context, id int64) (*data.Item, error)
	Create(ctx context.Context, item *data.Item) (int64, error)
	Update(ctx context.Context, item *data.Item) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ItemInput is the request body for creating or replacing an item.
type ItemInput struct {
	Name    string  `json:"name" validate:"required"`
	Content *string `json:"content"`
	URL     *string `json:"url"`
}

// ItemService serves the legacy items endpoints.
type ItemService struct {
	repo ItemRepository
}

// NewItemService creates an ItemService.
func NewItemService(repo ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// toItem keeps content and url exactly as sent.
func toItem(id int64, in ItemInput) *data.Item {
	item := &data.Item{ID: id, Name: in.Name}
	if in.Content != nil {
		item.Content = *in.Content
	}
	if in.URL != nil {
		item.URL = *in.URL
	}
	return item
}

// List returns all items, newest first.
func (s *ItemService) List(ctx context.Context) ([]*data.Item, error) {
	return s.repo.GetAll(ctx)
}

// Get returns item id.
func (s *ItemService) Get(ctx context.Context, id int64) (*data.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &NotFoundError{Message: msgItemNotFound}
	}
	return item, nil
}

// Create validates in, inserts it and re-reads the stored row.
func (s *ItemService) Create(ctx context.Context, in ItemInput) (*data.Item, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	id, err := s.repo.Create(ctx, toItem(0, in))
	if err != nil {
		if errors.Is(err, data.ErrNoInsertID) {
			return nil, fmt.Errorf("failed to create item: %w", err)
		}
		return nil, err
	}
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("failed to create item: row %d not readable after insert", id)
	}
	return item, nil
}

// Update replaces name, content and url of item id.
func (s *ItemService) Update(ctx context.Context, id int64, in ItemInput) (*data.Item, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	n, err := s.repo.Update(ctx, toItem(id, in))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &NotFoundError{Message: msgItemNotFound}
	}
	return s.Get(ctx, id)
}

// Delete removes item id.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return &NotFoundError{Message: msgItemNotFound}
	}
	return nil
}
