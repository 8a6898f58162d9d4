package controllers_test

import (
	"egrow/config"
	controllers "egrow/controllers/search"
	"egrow/database"
	"egrow/models"
	courseModels "egrow/models/course"
	publicRoutes "egrow/routers/publicRoutes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSearchApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", Env: "development"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	publicRoutes.SetupPublicRoutes(app)
	return app
}

func search(t *testing.T, app *fiber.App, query string) []controllers.SearchResult {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/search?q="+url.QueryEscape(query), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Results []controllers.SearchResult `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Results
}

func TestGlobalSearchBlankQuery(t *testing.T) {
	app := setupSearchApp(t)

	for _, q := range []string{"", "   "} {
		results := search(t, app, q)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
}

func TestGlobalSearchNoMatches(t *testing.T) {
	app := setupSearchApp(t)

	results := search(t, app, "zzzzqqqq")
	assert.Empty(t, results)

	// 200 with an empty list, never an error
	req := httptest.NewRequest("GET", "/api/search?q=zzzzqqqq", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.JSONEq(t, "[]", string(raw["results"]))
}

func TestGlobalSearchPrimaryKeywordOutranksCourses(t *testing.T) {
	app := setupSearchApp(t)

	course := courseModels.Course{
		Slug:        "certificado-course",
		Title:       "Curso con certificado incluido",
		IsPublished: true,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	results := search(t, app, "certificado")
	require.NotEmpty(t, results)

	// The static certificates page carries the primary-keyword boost (0.95)
	// and must rank above the course match (0.9).
	first := results[0]
	assert.Equal(t, "page", first.Type)
	assert.Equal(t, "/certificados", first.URL)
	assert.InDelta(t, 0.95, first.Relevance, 0.001)

	foundCourse := false
	for _, r := range results {
		if r.Type == "course" {
			foundCourse = true
			assert.Equal(t, "/curso/certificado-course", r.URL)
			assert.InDelta(t, 0.9, r.Relevance, 0.001)
		}
	}
	assert.True(t, foundCourse)
}

func TestGlobalSearchCourseSubstring(t *testing.T) {
	app := setupSearchApp(t)

	require.NoError(t, database.Database.Db.Create(&courseModels.Course{
		Slug:        "monetiza-ia",
		Title:       "Monetiza con la IA",
		Description: "Aprende a generar ingresos",
		IsPublished: true,
	}).Error)
	require.NoError(t, database.Database.Db.Create(&courseModels.Course{
		Slug:        "draft",
		Title:       "Monetiza borrador",
		IsPublished: false,
	}).Error)

	results := search(t, app, "monetiza")

	courseURLs := []string{}
	for _, r := range results {
		if r.Type == "course" {
			courseURLs = append(courseURLs, r.URL)
		}
	}
	assert.Equal(t, []string{"/curso/monetiza-ia"}, courseURLs)
}

func TestGlobalSearchMergesSources(t *testing.T) {
	app := setupSearchApp(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&courseModels.Course{
		Slug:        "chatgpt-desde-cero",
		Title:       "ChatGPT desde cero",
		IsPublished: true,
	}).Error)
	require.NoError(t, db.Create(&models.Resource{
		Slug:        "guia-chatgpt",
		Title:       "Guía de ChatGPT",
		IsPublished: true,
	}).Error)
	require.NoError(t, db.Create(&models.CommunityPost{
		Title:   "Mi experiencia con ChatGPT",
		Content: "Compartiendo lo que aprendí",
	}).Error)

	results := search(t, app, "chatgpt")

	types := map[string]int{}
	for _, r := range results {
		types[r.Type]++
	}
	assert.Equal(t, 1, types["course"])
	assert.Equal(t, 1, types["resource"])
	assert.Equal(t, 1, types["community"])

	// Descending relevance: course (0.9) before resource (0.8) before community (0.7)
	var order []string
	for _, r := range results {
		if r.Type != "page" {
			order = append(order, r.Type)
		}
	}
	assert.Equal(t, []string{"course", "resource", "community"}, order)
}

func TestGlobalSearchWeightOverrides(t *testing.T) {
	app := setupSearchApp(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.SearchWeight{Source: "course", Weight: 0.3}).Error)
	require.NoError(t, db.Create(&models.SearchWeight{Source: "resource", Weight: 0.85}).Error)

	require.NoError(t, db.Create(&courseModels.Course{
		Slug:        "chatgpt-desde-cero",
		Title:       "ChatGPT desde cero",
		IsPublished: true,
	}).Error)
	require.NoError(t, db.Create(&models.Resource{
		Slug:        "guia-chatgpt",
		Title:       "Guía de ChatGPT",
		IsPublished: true,
	}).Error)

	results := search(t, app, "chatgpt")

	scores := map[string]float64{}
	for _, r := range results {
		scores[r.Type] = r.Relevance
	}
	assert.InDelta(t, 0.3, scores["course"], 0.001)
	assert.InDelta(t, 0.85, scores["resource"], 0.001)

	// Tuned-down courses now rank below resources
	var order []string
	for _, r := range results {
		if r.Type != "page" {
			order = append(order, r.Type)
		}
	}
	assert.Equal(t, []string{"resource", "course"}, order)
}

func TestGlobalSearchResultCap(t *testing.T) {
	app := setupSearchApp(t)
	db := database.Database.Db

	for i := 0; i < 15; i++ {
		require.NoError(t, db.Create(&courseModels.Course{
			Slug:        fmt.Sprintf("quantum-%d", i),
			Title:       fmt.Sprintf("Quantum módulo %d", i),
			IsPublished: true,
		}).Error)
		require.NoError(t, db.Create(&models.Resource{
			Slug:        fmt.Sprintf("quantum-res-%d", i),
			Title:       fmt.Sprintf("Quantum recurso %d", i),
			IsPublished: true,
		}).Error)
		require.NoError(t, db.Create(&models.CommunityPost{
			Title:   fmt.Sprintf("Quantum hilo %d", i),
			Content: "discusión",
		}).Error)
	}

	results := search(t, app, "quantum")
	assert.Len(t, results, 20)

	// Each source is capped before merging
	types := map[string]int{}
	for _, r := range results {
		types[r.Type]++
	}
	assert.LessOrEqual(t, types["course"], 10)
	assert.LessOrEqual(t, types["resource"], 10)
}

func TestGlobalSearchStaticBaseOverride(t *testing.T) {
	app := setupSearchApp(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.SearchWeight{Source: "static_base", Weight: 0.2}).Error)

	// Tag match without the primary keyword takes the static_base override
	results := search(t, app, "diploma")
	found := false
	for _, r := range results {
		if r.URL == "/certificados" {
			found = true
			assert.InDelta(t, 0.2, r.Relevance, 0.001)
		}
	}
	assert.True(t, found)

	// The primary keyword boost still wins over the base override
	results = search(t, app, "certificado")
	require.NotEmpty(t, results)
	assert.Equal(t, "/certificados", results[0].URL)
	assert.InDelta(t, 0.95, results[0].Relevance, 0.001)
}
