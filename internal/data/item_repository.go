package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const itemColumns = `id, name, COALESCE(content, '') AS content, COALESCE(url, '') AS url, created_at`

// ItemRepository handles database operations for the legacy items table.
type ItemRepository struct {
	db *sqlx.DB
}

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// GetAll returns every item, newest first.
func (r *ItemRepository) GetAll(ctx context.Context) ([]*Item, error) {
	items := make([]*Item, 0)
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC, id DESC`
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to get all items: %w", err)
	}
	return items, nil
}

// GetByID returns one item, or nil when no row matches.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*Item, error) {
	var item Item
	if err := r.db.GetContext(ctx, &item, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item by id: %w", err)
	}
	return &item, nil
}

// Create inserts an item and returns its id.
func (r *ItemRepository) Create(ctx context.Context, item *Item) (int64, error) {
	query := `INSERT INTO items (name, content, url) VALUES (:name, :content, :url)`
	res, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return 0, fmt.Errorf("failed to create item: %w", err)
	}
	return insertedID(res)
}

// Update overwrites name, content and url of an item.
func (r *ItemRepository) Update(ctx context.Context, item *Item) (int64, error) {
	query := `UPDATE items SET name = :name, content = :content, url = :url WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return 0, fmt.Errorf("failed to update item: %w", err)
	}
	return rowsAffected(res)
}

// Delete removes an item by id.
func (r *ItemRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete item: %w", err)
	}
	return rowsAffected(res)
}
