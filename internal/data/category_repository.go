package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNoInsertID is returned when an insert succeeds without reporting the new row id.
var ErrNoInsertID = errors.New("store reported no inserted id")

const categoryColumns = `category_id, category_name, COALESCE(category_order, 0) AS category_order,
	COALESCE(category_note, '') AS category_note, created_at`

// CategoryRepository handles database operations for categories.
type CategoryRepository struct {
	DB *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// GetAll retrieves all categories in display order.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*Category, error) {
	categories := make([]*Category, 0)
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY category_order ASC, category_id ASC`
	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetByID finds a category by its ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*Category, error) {
	var category Category
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = ?`
	if err := r.DB.GetContext(ctx, &category, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found is not an error
		}
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}
	return &category, nil
}

// FindByName returns the first category with the given name, or nil.
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*Category, error) {
	var category Category
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_name = ? ORDER BY category_id LIMIT 1`
	if err := r.DB.GetContext(ctx, &category, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category by name: %w", err)
	}
	return &category, nil
}

// Create inserts a category and returns the id the store assigned to it.
func (r *CategoryRepository) Create(ctx context.Context, category *Category) (int64, error) {
	query := `INSERT INTO categories (category_name, category_order, category_note) VALUES (:category_name, :category_order, :category_note)`
	res, err := r.DB.NamedExecContext(ctx, query, category)
	if err != nil {
		return 0, fmt.Errorf("failed to create category: %w", err)
	}
	return insertedID(res)
}

// Update overwrites the mutable fields of a category and reports how many rows matched.
func (r *CategoryRepository) Update(ctx context.Context, category *Category) (int64, error) {
	query := `UPDATE categories SET category_name = :category_name, category_order = :category_order, category_note = :category_note WHERE category_id = :category_id`
	res, err := r.DB.NamedExecContext(ctx, query, category)
	if err != nil {
		return 0, fmt.Errorf("failed to update category: %w", err)
	}
	return rowsAffected(res)
}

// Delete removes a category by id and reports how many rows were removed.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE category_id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete category: %w", err)
	}
	return rowsAffected(res)
}

func insertedID(res sql.Result) (int64, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	if id == 0 {
		return 0, ErrNoInsertID
	}
	return id, nil
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
