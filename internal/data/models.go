package data

import (
	"time"
)

// Category groups pages for display. Rows are ordered by Order, then ID.
type Category struct {
	ID        int64     `db:"category_id" json:"category_id"`
	Name      string    `db:"category_name" json:"category_name"`
	Order     int64     `db:"category_order" json:"category_order"`
	Note      string    `db:"category_note" json:"category_note"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Page is a content page, optionally filed under a category.
// CategoryName is filled by the left join and is nil when the page has no category.
type Page struct {
	ID              int64     `db:"page_id" json:"page_id"`
	Name            string    `db:"page_name" json:"page_name"`
	Description     string    `db:"page_description" json:"page_description"`
	DescriptionHTML string    `db:"-" json:"page_description_html,omitempty"`
	URL             string    `db:"page_url" json:"page_url"`
	CategoryID      *int64    `db:"category_id" json:"category_id"`
	CategoryName    *string   `db:"category_name" json:"category_name"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Item is a row of the legacy items table.
type Item struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Content   string    `db:"content" json:"content"`
	URL       string    `db:"url" json:"url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
