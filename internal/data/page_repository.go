package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// pageSelect is the joined read: every page column plus the category name, nil when absent.
const pageSelect = `SELECT p.page_id, p.page_name, COALESCE(p.page_description, '') AS page_description,
	p.page_url, p.category_id, c.category_name, p.created_at
FROM pages p LEFT JOIN categories c ON p.category_id = c.category_id`

// SQLPageRepository is a concrete implementation of the PageRepository interface using sqlx.
type SQLPageRepository struct {
	db *sqlx.DB
}

// NewSQLPageRepository creates a new SQLPageRepository.
func NewSQLPageRepository(db *sqlx.DB) *SQLPageRepository {
	return &SQLPageRepository{db: db}
}

// CreatePage inserts a new page and returns the id assigned by the store.
func (r *SQLPageRepository) CreatePage(ctx context.Context, page *Page) (int64, error) {
	query := `INSERT INTO pages (page_name, page_description, page_url, category_id) VALUES (:page_name, :page_description, :page_url, :category_id)`
	res, err := r.db.NamedExecContext(ctx, query, page)
	if err != nil {
		return 0, fmt.Errorf("failed to execute create page query: %w", err)
	}
	return insertedID(res)
}

// GetPageByID retrieves a single joined page by its ID. It returns nil when no row matches.
func (r *SQLPageRepository) GetPageByID(ctx context.Context, id int64) (*Page, error) {
	var page Page
	if err := r.db.GetContext(ctx, &page, pageSelect+` WHERE p.page_id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get page by id: %w", err)
	}
	return &page, nil
}

// GetPageByURL retrieves the first page with the given url, or nil.
func (r *SQLPageRepository) GetPageByURL(ctx context.Context, url string) (*Page, error) {
	var page Page
	if err := r.db.GetContext(ctx, &page, pageSelect+` WHERE p.page_url = ? ORDER BY p.page_id LIMIT 1`, url); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get page by url: %w", err)
	}
	return &page, nil
}

// UpdatePage overwrites the mutable fields of a page and reports how many rows matched.
func (r *SQLPageRepository) UpdatePage(ctx context.Context, page *Page) (int64, error) {
	query := `UPDATE pages SET page_name = :page_name, page_description = :page_description, page_url = :page_url, category_id = :category_id WHERE page_id = :page_id`
	result, err := r.db.NamedExecContext(ctx, query, page)
	if err != nil {
		return 0, fmt.Errorf("failed to update page: %w", err)
	}
	return rowsAffected(result)
}

// GetPagesByCategoryID retrieves all pages filed under a category, newest first.
func (r *SQLPageRepository) GetPagesByCategoryID(ctx context.Context, categoryID int64) ([]*Page, error) {
	pages := make([]*Page, 0)
	if err := r.db.SelectContext(ctx, &pages, pageSelect+` WHERE p.category_id = ? ORDER BY p.page_id DESC`, categoryID); err != nil {
		return nil, fmt.Errorf("failed to get pages by category id: %w", err)
	}
	return pages, nil
}

// CountPagesByCategoryID counts the pages that reference a category.
func (r *SQLPageRepository) CountPagesByCategoryID(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM pages WHERE category_id = ?`, categoryID); err != nil {
		return 0, fmt.Errorf("failed to count pages by category id: %w", err)
	}
	return count, nil
}

// GetAllPages retrieves all pages from the database, newest first.
func (r *SQLPageRepository) GetAllPages(ctx context.Context) ([]*Page, error) {
	pages := make([]*Page, 0)
	if err := r.db.SelectContext(ctx, &pages, pageSelect+` ORDER BY p.page_id DESC`); err != nil {
		return nil, fmt.Errorf("failed to get all pages: %w", err)
	}
	return pages, nil
}

// DeletePage removes a page from the database by its ID and reports how many rows were removed.
func (r *SQLPageRepository) DeletePage(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pages WHERE page_id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete page: %w", err)
	}
	return rowsAffected(result)
}
