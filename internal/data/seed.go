package data

import (
	"context"
	"fmt"
)

type categorySeed struct {
	Name  string
	Order int64
	Note  string
}

type pageSeed struct {
	Name         string
	Description  string
	URL          string
	CategoryName string
}

var (
	seedCategories = []categorySeed{
		{Name: "Sights", Order: 1, Note: "Detailed introductions to tourist attractions"},
		{Name: "Food", Order: 2, Note: "Local specialties worth trying"},
		{Name: "Travel Guides", Order: 3, Note: "Itineraries and travel tips"},
	}
	seedPages = []pageSeed{
		{Name: "The Palace Museum", Description: "Imperial palace of the Ming and Qing dynasties", URL: "/pages/forbidden-city", CategoryName: "Sights"},
		{Name: "Peking Duck", Description: "A classic Beijing dish", URL: "/pages/beijing-duck", CategoryName: "Food"},
		{Name: "Three Days in Beijing", Description: "A classic three-day Beijing itinerary", URL: "/pages/beijing-trip", CategoryName: "Travel Guides"},
	}
)

// Seed inserts the example categories and pages. Each row is looked up by its
// natural key (category name, page url) first, so repeated calls insert nothing.
func Seed(ctx context.Context, categories *CategoryRepository, pages *SQLPageRepository) error {
	ids := make(map[string]int64, len(seedCategories))
	for _, s := range seedCategories {
		existing, err := categories.FindByName(ctx, s.Name)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", s.Name, err)
		}
		if existing != nil {
			ids[s.Name] = existing.ID
			continue
		}
		id, err := categories.Create(ctx, &Category{Name: s.Name, Order: s.Order, Note: s.Note})
		if err != nil {
			return fmt.Errorf("seed category %s: %w", s.Name, err)
		}
		ids[s.Name] = id
	}

	for _, s := range seedPages {
		existing, err := pages.GetPageByURL(ctx, s.URL)
		if err != nil {
			return fmt.Errorf("seed page %s: %w", s.URL, err)
		}
		if existing != nil {
			continue
		}
		categoryID := ids[s.CategoryName]
		page := &Page{Name: s.Name, Description: s.Description, URL: s.URL, CategoryID: &categoryID}
		if _, err := pages.CreatePage(ctx, page); err != nil {
			return fmt.Errorf("seed page %s: %w", s.URL, err)
		}
	}
	return nil
}
