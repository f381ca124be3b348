//go:build unit

package service

import (
	"context"
	"go-cms-app/internal/data"
)

// mockCategoryRepository is a mock implementation of the CategoryRepository interface.
type mockCategoryRepository struct {
	categories   map[int64]*data.Category
	nextID       int64
	errToReturn  error
	createResult *int64 // overrides the id returned by Create

	afterGetAll  func() // runs after GetAll has read its rows

	getAllCalled int
	createCalled int
	updateCalled int
	deleteCalled int
	lastSaved    *data.Category
}

var _ CategoryRepository = (*mockCategoryRepository)(nil)

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{categories: map[int64]*data.Category{}}
}

func (m *mockCategoryRepository) GetAll(ctx context.Context) ([]*data.Category, error) {
	m.getAllCalled++
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	out := make([]*data.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	if hook := m.afterGetAll; hook != nil {
		m.afterGetAll = nil
		hook()
	}
	return out, nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id int64) (*data.Category, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	return m.categories[id], nil
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *data.Category) (int64, error) {
	m.createCalled++
	m.lastSaved = c
	if m.errToReturn != nil {
		return 0, m.errToReturn
	}
	if m.createResult != nil {
		return *m.createResult, nil
	}
	m.nextID++
	c.ID = m.nextID
	m.categories[c.ID] = c
	return c.ID, nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *data.Category) (int64, error) {
	m.updateCalled++
	m.lastSaved = c
	if m.errToReturn != nil {
		return 0, m.errToReturn
	}
	if _, ok := m.categories[c.ID]; !ok {
		return 0, nil
	}
	m.categories[c.ID] = c
	return 1, nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id int64) (int64, error) {
	m.deleteCalled++
	if m.errToReturn != nil {
		return 0, m.errToReturn
	}
	if _, ok := m.categories[id]; !ok {
		return 0, nil
	}
	delete(m.categories, id)
	return 1, nil
}

// mockPageRepository is a mock implementation of the PageRepository interface.
type mockPageRepository struct {
	pages       map[int64]*data.Page
	nextID      int64
	errToReturn error
	pageCount   int64

	afterGetAll func()

	getAllCalled int
	lastSaved    *data.Page
}

var _ PageRepository = (*mockPageRepository)(nil)

func newMockPageRepository() *mockPageRepository {
	return &mockPageRepository{pages: map[int64]*data.Page{}}
}

func (m *mockPageRepository) CreatePage(ctx context.Context, page *data.Page) (int64, error) {
	m.lastSaved = page
	if m.errToReturn != nil {
		return 0, m.errToReturn
	}
	m.nextID++
	page.ID = m.nextID
	m.pages[page.ID] = page
	return page.ID, nil
}

func (m *mockPageRepository) GetPageByID(ctx context.Context, id int64) (*data.Page, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	p, ok := m.pages[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockPageRepository) GetAllPages(ctx context.Context) ([]*data.Page, error) {
	m.getAllCalled++
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	out := make([]*data.Page, 0, len(m.pages))
	for _, p := range m.pages {
		out = append(out, p)
	}
	if hook := m.afterGetAll; hook != nil {
		m.afterGetAll = nil
		hook()
	}
	return out, nil
}

func (m *mockPageRepository) GetPagesByCategoryID(ctx context.Context, categoryID int64) ([]*data.Page, error) {
	out := make([]*data.Page, 0)
	for _, p := range m.pages {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, m.errToReturn
}

func (m *mockPageRepository) CountPagesByCategoryID(ctx context.Context, categoryID int64) (int64, error) {
	return m.pageCount, m.errToReturn
}

func (m *mockPageRepository) UpdatePage(ctx context.Context, page *data.Page) (int64, error) {
	m.lastSaved = page
	if m.errToReturn != nil {
		return 0, m.errToReturn
	}
	if _, ok := m.pages[page.ID]; !ok {
		return 0, nil
	}
	m.pages[page.ID] = page
	return 1, nil
}

func (m *mockPageRepository) DeletePage(ctx context.Context, id int64) (int64, error) {
	if m.errToReturn != nil {
		return 0, m.errToReturn
	}
	if _, ok := m.pages[id]; !ok {
		return 0, nil
	}
	delete(m.pages, id)
	return 1, nil
}

// mockCache is an in-memory Cacher.
type mockCache struct {
	entries map[string][]byte
	deleted []string
}

var _ Cacher = (*mockCache)(nil)

func newMockCache() *mockCache {
	return &mockCache{entries: map[string][]byte{}}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	return m.entries[key], nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte) error {
	m.entries[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.entries, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}
