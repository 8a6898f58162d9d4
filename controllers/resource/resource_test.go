package controllers_test

import (
	"egrow/config"
	"egrow/database"
	"egrow/middleware"
	"egrow/models"
	publicRoutes "egrow/routers/publicRoutes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupResourceApp(t *testing.T) *fiber.App {
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

func resourceToken(t *testing.T) (models.User, string) {
	t.Helper()

	user := models.User{Name: "Reader", Email: "reader@example.com", Password: "x"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	session := models.Session{Token: token, UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, database.Database.Db.Create(&session).Error)

	return user, token
}

func accessResource(t *testing.T, app *fiber.App, slug, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/resources/"+slug+"/access", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestAccessResourceNotFound(t *testing.T) {
	app := setupResourceApp(t)

	resp, body := accessResource(t, app, "no-such-resource", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Resource not found", body["error"])
}

func TestAccessResourceOpen(t *testing.T) {
	app := setupResourceApp(t)

	require.NoError(t, database.Database.Db.Create(&models.Resource{
		Slug:         "guia-prompts",
		Title:        "Guía de prompts",
		RequiresAuth: false,
		IsPublished:  true,
	}).Error)

	resp, body := accessResource(t, app, "guia-prompts", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["canAccess"])

	// Open resources are not logged or counted
	var logs int64
	database.Database.Db.Model(&models.ResourceAccessLog{}).Count(&logs)
	assert.Equal(t, int64(0), logs)
}

func TestAccessResourceGatedWithoutToken(t *testing.T) {
	app := setupResourceApp(t)

	require.NoError(t, database.Database.Db.Create(&models.Resource{
		Slug:         "toolkit-premium",
		Title:        "Toolkit premium",
		RequiresAuth: true,
		IsPublished:  true,
	}).Error)

	resp, body := accessResource(t, app, "toolkit-premium", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", body["error"])
	assert.Equal(t, true, body["requiresAuth"])
}

func TestAccessResourceGatedWithToken(t *testing.T) {
	app := setupResourceApp(t)

	resource := models.Resource{
		Slug:         "toolkit-premium",
		Title:        "Toolkit premium",
		RequiresAuth: true,
		IsPublished:  true,
	}
	require.NoError(t, database.Database.Db.Create(&resource).Error)

	user, token := resourceToken(t)

	resp, body := accessResource(t, app, "toolkit-premium", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["canAccess"])

	var accessLog models.ResourceAccessLog
	require.NoError(t, database.Database.Db.First(&accessLog).Error)
	assert.Equal(t, resource.ID, accessLog.ResourceID)
	assert.Equal(t, user.ID, accessLog.UserID)

	var reloaded models.Resource
	require.NoError(t, database.Database.Db.First(&reloaded, resource.ID).Error)
	assert.Equal(t, int64(1), reloaded.DownloadsCount)

	// Each access adds a log row and bumps the counter again
	accessResource(t, app, "toolkit-premium", token)

	var logs int64
	database.Database.Db.Model(&models.ResourceAccessLog{}).Count(&logs)
	assert.Equal(t, int64(2), logs)

	require.NoError(t, database.Database.Db.First(&reloaded, resource.ID).Error)
	assert.Equal(t, int64(2), reloaded.DownloadsCount)
}

func TestGetResourcesCategoryFilter(t *testing.T) {
	app := setupResourceApp(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.Resource{
		Slug: "guia-ia", Title: "Guía IA", Category: "guias", IsPublished: true,
	}).Error)
	require.NoError(t, db.Create(&models.Resource{
		Slug: "plantilla-ventas", Title: "Plantilla", Category: "plantillas", IsPublished: true,
	}).Error)
	require.NoError(t, db.Create(&models.Resource{
		Slug: "borrador", Title: "Borrador", Category: "guias", IsPublished: false,
	}).Error)

	req := httptest.NewRequest("GET", "/api/resources?category=guias", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Resources []models.Resource `json:"resources"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Resources, 1)
	assert.Equal(t, "guia-ia", body.Resources[0].Slug)
}
