//go:build integration

package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"go-cms-app/internal/auth"
	"go-cms-app/internal/cache"
	"go-cms-app/internal/config"
	"go-cms-app/internal/data"
	"go-cms-app/internal/logger"
	"go-cms-app/internal/middleware"
	"go-cms-app/internal/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	Router *chi.Mux
	DB     *sqlx.DB
}

// setupIntegrationTest initializes a full application stack for testing.
func setupIntegrationTest(t *testing.T) *testApp {
	t.Helper()
	dbCfg := config.DBConfig{Driver: data.DriverSQLite, DSN: "file::memory:"}
	db, err := data.NewDB(dbCfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migrator := data.NewMigrator(db, dbCfg)
	require.NoError(t, migrator.Up())

	responseCache, err := cache.New(config.CacheConfig{Enabled: true, FilePath: ":memory:", TTLSeconds: 60})
	require.NoError(t, err)
	t.Cleanup(func() { responseCache.Close() })

	log := logger.Nop()
	enforcer, err := auth.NewEnforcer()
	require.NoError(t, err)
	auth.SeedDefaultPolicies(enforcer, config.EnvDevelopment, log)

	listCache := service.NewResponseCache(responseCache)
	renderer := service.NewRenderer()
	categoryRepo := data.NewCategoryRepository(db)
	pageRepo := data.NewSQLPageRepository(db)
	itemRepo := data.NewItemRepository(db)

	pageService := service.NewPageService(pageRepo, renderer, listCache)
	categoryService := service.NewCategoryService(categoryRepo, pageRepo, listCache)
	itemService := service.NewItemService(itemRepo)
	bootstrapService := service.NewBootstrapService(migrator, func(ctx context.Context) error {
		return data.Seed(ctx, categoryRepo, pageRepo)
	}, listCache)

	h := Handlers{
		Category: NewCategoryHandler(categoryService, pageService),
		Page:     NewPageHandler(pageService),
		Item:     NewItemHandler(itemService),
		Admin:    NewAdminHandler(bootstrapService),
		Health:   NewHealthHandler(db),
		Seo:      NewSeoHandler(pageService, "https://cms.example.com"),
	}
	router := NewRouter(h, log, middleware.Authorizer(enforcer, config.EnvDevelopment), middleware.Error(log, true))

	return &testApp{Router: router, DB: db}
}

func (app *testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	app.Router.ServeHTTP(rr, req)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"), "CORS headers on %s %s", method, path)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dst), rr.Body.String())
}

func TestCategories_Integration(t *testing.T) {
	app := setupIntegrationTest(t)

	t.Run("create applies defaults", func(t *testing.T) {
		rr := app.do(t, http.MethodPost, "/api/categories", `{"category_name":"Food"}`)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var got data.Category
		decodeBody(t, rr, &got)
		assert.NotZero(t, got.ID)
		assert.Equal(t, "Food", got.Name)
		assert.Equal(t, int64(0), got.Order)
		assert.Equal(t, "", got.Note)
	})

	t.Run("validation", func(t *testing.T) {
		for _, body := range []string{`{"category_name":""}`, `{}`, ``} {
			rr := app.do(t, http.MethodPost, "/api/categories", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"error":"category_name is required"}`, rr.Body.String())
		}

		rr := app.do(t, http.MethodPost, "/api/categories", `{"category_name":42}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr = app.do(t, http.MethodPost, "/api/categories", `{not json`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("list is ordered by order then id", func(t *testing.T) {
		app.do(t, http.MethodPost, "/api/categories", `{"category_name":"Late","category_order":9}`)
		app.do(t, http.MethodPost, "/api/categories", `{"category_name":"Early","category_order":-1}`)

		rr := app.do(t, http.MethodGet, "/api/categories", "")
		require.Equal(t, http.StatusOK, rr.Code)
		var got []data.Category
		decodeBody(t, rr, &got)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"Early", "Food", "Late"}, []string{got[0].Name, got[1].Name, got[2].Name})
	})

	t.Run("update and delete unknown id", func(t *testing.T) {
		rr := app.do(t, http.MethodPut, "/api/categories/999999", `{"category_name":"X"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"category not found"}`, rr.Body.String())

		rr = app.do(t, http.MethodDelete, "/api/categories/999999", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("update invalidates cached list", func(t *testing.T) {
		rr := app.do(t, http.MethodPost, "/api/categories", `{"category_name":"Before"}`)
		var c data.Category
		decodeBody(t, rr, &c)

		app.do(t, http.MethodGet, "/api/categories", "")
		rr = app.do(t, http.MethodPut, fmt.Sprintf("/api/categories/%d", c.ID), `{"category_name":"After"}`)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = app.do(t, http.MethodGet, "/api/categories", "")
		assert.Contains(t, rr.Body.String(), `"After"`)
		assert.NotContains(t, rr.Body.String(), `"Before"`)
	})
}

func TestCategoryDeleteBlockedByPages_Integration(t *testing.T) {
	app := setupIntegrationTest(t)

	rr := app.do(t, http.MethodPost, "/api/categories", `{"category_name":"Busy"}`)
	var c data.Category
	decodeBody(t, rr, &c)

	rr = app.do(t, http.MethodPost, "/api/pages", fmt.Sprintf(`{"page_name":"P","page_url":"/p","category_id":%d}`, c.ID))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var p data.Page
	decodeBody(t, rr, &p)
	require.NotNil(t, p.CategoryName)
	assert.Equal(t, "Busy", *p.CategoryName)

	rr = app.do(t, http.MethodDelete, fmt.Sprintf("/api/categories/%d", c.ID), "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"category has pages, cannot delete"}`, rr.Body.String())

	rr = app.do(t, http.MethodGet, fmt.Sprintf("/api/categories/%d/pages", c.ID), "")
	var pages []data.Page
	decodeBody(t, rr, &pages)
	assert.Len(t, pages, 1)

	rr = app.do(t, http.MethodDelete, fmt.Sprintf("/api/pages/%d", p.ID), "")
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())

	rr = app.do(t, http.MethodDelete, fmt.Sprintf("/api/categories/%d", c.ID), "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())
}

func TestPages_Integration(t *testing.T) {
	app := setupIntegrationTest(t)

	rr := app.do(t, http.MethodPost, "/api/pages", `{"page_name":"A","page_url":"/a","page_description":"# Title"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created data.Page
	decodeBody(t, rr, &created)
	assert.Nil(t, created.CategoryID)
	assert.Nil(t, created.CategoryName)

	t.Run("detail renders description", func(t *testing.T) {
		rr := app.do(t, http.MethodGet, fmt.Sprintf("/api/pages/%d", created.ID), "")
		require.Equal(t, http.StatusOK, rr.Code)
		var got data.Page
		decodeBody(t, rr, &got)
		assert.Equal(t, "# Title", got.Description)
		assert.Contains(t, got.DescriptionHTML, "<h1")
	})

	t.Run("missing fields", func(t *testing.T) {
		rr := app.do(t, http.MethodPost, "/api/pages", `{"page_name":"A"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"page_url is required"}`, rr.Body.String())
	})

	t.Run("unknown ids", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/pages/999999", "").Code)
		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPut, "/api/pages/999999", `{"page_name":"B","page_url":"/b"}`).Code)
		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodDelete, "/api/pages/999999", "").Code)
		assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/pages/99999999999999999999", "").Code)
	})

	t.Run("update then list newest first", func(t *testing.T) {
		rr := app.do(t, http.MethodPut, fmt.Sprintf("/api/pages/%d", created.ID), `{"page_name":"A2","page_url":"/a2"}`)
		require.Equal(t, http.StatusOK, rr.Code)
		app.do(t, http.MethodPost, "/api/pages", `{"page_name":"B","page_url":"/b"}`)

		rr = app.do(t, http.MethodGet, "/api/pages", "")
		var got []data.Page
		decodeBody(t, rr, &got)
		require.Len(t, got, 2)
		assert.Equal(t, "B", got[0].Name)
		assert.Equal(t, "A2", got[1].Name)
		assert.Equal(t, "", got[1].Description)
	})

	t.Run("sitemap lists pages", func(t *testing.T) {
		rr := app.do(t, http.MethodGet, "/sitemap.xml", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), fmt.Sprintf("<loc>https://cms.example.com/page/%d</loc>", created.ID))
	})
}

func TestTextRoundTrip_Integration(t *testing.T) {
	app := setupIntegrationTest(t)
	raw := "Tom & Jerry: 1 < 2\n\n> quoted"

	body, err := json.Marshal(map[string]string{"page_name": "A", "page_url": "/a", "page_description": raw})
	require.NoError(t, err)
	rr := app.do(t, http.MethodPost, "/api/pages", string(body))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created data.Page
	decodeBody(t, rr, &created)
	assert.Equal(t, raw, created.Description)

	rr = app.do(t, http.MethodGet, fmt.Sprintf("/api/pages/%d", created.ID), "")
	var got data.Page
	decodeBody(t, rr, &got)
	assert.Equal(t, raw, got.Description)
	assert.Contains(t, got.DescriptionHTML, "<blockquote>")

	rr = app.do(t, http.MethodPost, "/api/items", `{"name":"n","content":"a & b <c>"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var item data.Item
	decodeBody(t, rr, &item)
	assert.Equal(t, "a & b <c>", item.Content)
}

func TestItems_Integration(t *testing.T) {
	app := setupIntegrationTest(t)

	rr := app.do(t, http.MethodPost, "/api/items", `{"name":"first"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var first data.Item
	decodeBody(t, rr, &first)

	app.do(t, http.MethodPost, "/api/items", `{"name":"second","url":"https://example.com"}`)

	rr = app.do(t, http.MethodGet, "/api/items", "")
	var items []data.Item
	decodeBody(t, rr, &items)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Name)

	rr = app.do(t, http.MethodPut, fmt.Sprintf("/api/items/%d", first.ID), `{"name":"renamed","content":"x"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = app.do(t, http.MethodGet, fmt.Sprintf("/api/items/%d", first.ID), "")
	assert.Contains(t, rr.Body.String(), `"renamed"`)

	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/api/items", `{}`).Code)
	assert.Equal(t, http.StatusOK, app.do(t, http.MethodDelete, fmt.Sprintf("/api/items/%d", first.ID), "").Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodDelete, fmt.Sprintf("/api/items/%d", first.ID), "").Code)
}

func TestInitDB_Integration(t *testing.T) {
	app := setupIntegrationTest(t)

	for i := 0; i < 2; i++ {
		rr := app.do(t, http.MethodPost, "/api/init-db", "")
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var body map[string]interface{}
		decodeBody(t, rr, &body)
		assert.Equal(t, true, body["success"])
		assert.NotEmpty(t, body["message"])
	}

	var categories, pages int
	require.NoError(t, app.DB.Get(&categories, `SELECT COUNT(*) FROM categories`))
	require.NoError(t, app.DB.Get(&pages, `SELECT COUNT(*) FROM pages`))
	assert.Equal(t, 3, categories)
	assert.Equal(t, 3, pages)

	rr := app.do(t, http.MethodGet, "/api/pages", "")
	var got []data.Page
	decodeBody(t, rr, &got)
	for _, p := range got {
		assert.NotNil(t, p.CategoryName, p.URL)
	}
}
