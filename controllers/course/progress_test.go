package controllers_test

import (
	"bytes"
	"egrow/config"
	"egrow/database"
	"egrow/middleware"
	"egrow/models"
	courseModels "egrow/models/course"
	courseRoutes "egrow/routers/courseRoutes"
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

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
		Env:       "development",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func createTestUser(t *testing.T, email string) (models.User, string) {
	t.Helper()

	user := models.User{Name: "Test User", Email: email, Password: "x"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	session := models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, database.Database.Db.Create(&session).Error)

	return user, token
}

func createTestCourse(t *testing.T, slug string, totalLessons int) courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		Slug:         slug,
		Title:        "Course " + slug,
		TotalLessons: totalLessons,
		IsFree:       true,
		IsPublished:  true,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestGetProgressUnauthenticated(t *testing.T) {
	app := setupTestApp(t)
	createTestCourse(t, "monetiza-ia", 8)

	resp := doJSON(t, app, "GET", "/api/courses/progress?courseId=monetiza-ia", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetProgressMissingCourseID(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, "missing@example.com")

	resp := doJSON(t, app, "GET", "/api/courses/progress", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetProgressNotEnrolled(t *testing.T) {
	app := setupTestApp(t)
	createTestCourse(t, "monetiza-ia", 8)
	_, token := createTestUser(t, "unenrolled@example.com")

	resp := doJSON(t, app, "GET", "/api/courses/progress?courseId=monetiza-ia", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetProgressUnknownCourse(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, "nocourse@example.com")

	resp := doJSON(t, app, "GET", "/api/courses/progress?courseId=does-not-exist", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetProgressExpiredSession(t *testing.T) {
	app := setupTestApp(t)
	createTestCourse(t, "monetiza-ia", 8)
	user, token := createTestUser(t, "expired@example.com")

	database.Database.Db.Model(&models.Session{}).
		Where("user_id = ?", user.ID).
		Update("expires_at", time.Now().Add(-time.Hour))

	resp := doJSON(t, app, "GET", "/api/courses/progress?courseId=monetiza-ia", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Session expired", body["error"])
}

func TestGetProgressLazyMaterialization(t *testing.T) {
	app := setupTestApp(t)
	course := createTestCourse(t, "monetiza-ia", 8)
	user, token := createTestUser(t, "lazy@example.com")

	enrollment := courseModels.Enrollment{
		UserID:     user.ID,
		CourseID:   course.ID,
		Status:     "ACTIVE",
		EnrolledAt: time.Now(),
	}
	require.NoError(t, database.Database.Db.Create(&enrollment).Error)

	resp := doJSON(t, app, "GET", "/api/courses/progress?courseId=monetiza-ia", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, courseModels.StatusNotStarted, body["status"])
	assert.Equal(t, float64(0), body["progressPercentage"])

	var count int64
	database.Database.Db.Model(&courseModels.CourseProgress{}).
		Where("enrollment_id = ?", enrollment.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSaveProgressCompletesCourse(t *testing.T) {
	app := setupTestApp(t)
	createTestCourse(t, "monetiza-ia", 8)
	_, token := createTestUser(t, "complete@example.com")

	resp := doJSON(t, app, "POST", "/api/courses/progress", token, fiber.Map{
		"courseId":         "monetiza-ia",
		"currentLesson":    8,
		"completedLessons": []int{1, 2, 3, 4, 5, 6, 7, 8},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])

	progress := body["progress"].(map[string]interface{})
	assert.Equal(t, float64(100), progress["progressPercentage"])
	assert.Equal(t, courseModels.StatusCompleted, progress["status"])
	assert.NotNil(t, progress["completedAt"])
}

func TestSaveProgressPartial(t *testing.T) {
	app := setupTestApp(t)
	createTestCourse(t, "monetiza-ia", 8)
	_, token := createTestUser(t, "partial@example.com")

	resp := doJSON(t, app, "POST", "/api/courses/progress", token, fiber.Map{
		"courseId":         "monetiza-ia",
		"currentLesson":    2,
		"completedLessons": []int{1, 2},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	progress := decodeBody(t, resp)["progress"].(map[string]interface{})
	assert.Equal(t, float64(25), progress["progressPercentage"])
	assert.Equal(t, courseModels.StatusInProgress, progress["status"])
	assert.Nil(t, progress["completedAt"])
}

func TestSaveProgressLazyEnrollment(t *testing.T) {
	app := setupTestApp(t)
	course := createTestCourse(t, "monetiza-ia", 8)
	user, token := createTestUser(t, "lazyenroll@example.com")

	for i := 0; i < 3; i++ {
		resp := doJSON(t, app, "POST", "/api/courses/progress", token, fiber.Map{
			"courseId":         "monetiza-ia",
			"currentLesson":    1,
			"completedLessons": []int{1},
		})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	var enrollments int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&enrollments)
	assert.Equal(t, int64(1), enrollments)

	var progresses int64
	database.Database.Db.Model(&courseModels.CourseProgress{}).Count(&progresses)
	assert.Equal(t, int64(1), progresses)
}

func TestSaveProgressIdempotentPercentage(t *testing.T) {
	app := setupTestApp(t)
	createTestCourse(t, "monetiza-ia", 8)
	_, token := createTestUser(t, "idem@example.com")

	payload := fiber.Map{
		"courseId":         "monetiza-ia",
		"currentLesson":    3,
		"completedLessons": []int{1, 2, 3},
	}

	first := decodeBody(t, doJSON(t, app, "POST", "/api/courses/progress", token, payload))
	second := decodeBody(t, doJSON(t, app, "POST", "/api/courses/progress", token, payload))

	p1 := first["progress"].(map[string]interface{})
	p2 := second["progress"].(map[string]interface{})

	assert.Equal(t, p1["progressPercentage"], p2["progressPercentage"])
	assert.Equal(t, p1["status"], p2["status"])

	// Sessions are counted per call, not deduplicated
	assert.Equal(t, float64(1), p1["totalSessions"])
	assert.Equal(t, float64(2), p2["totalSessions"])
}

func TestSaveProgressInvalidLessonNumber(t *testing.T) {
	app := setupTestApp(t)
	course := createTestCourse(t, "monetiza-ia", 8)
	user, token := createTestUser(t, "badlesson@example.com")

	resp := doJSON(t, app, "POST", "/api/courses/progress", token, fiber.Map{
		"courseId":     "monetiza-ia",
		"lessonNumber": -2,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/courses/progress", token, fiber.Map{
		"courseId":     "monetiza-ia",
		"lessonNumber": 99,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Validation happens before any write
	var enrollments int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&enrollments)
	assert.Equal(t, int64(0), enrollments)
}

func TestSaveProgressLessonUpsert(t *testing.T) {
	app := setupTestApp(t)
	createTestCourse(t, "monetiza-ia", 8)
	_, token := createTestUser(t, "upsert@example.com")

	payload := fiber.Map{
		"courseId":         "monetiza-ia",
		"currentLesson":    1,
		"completedLessons": []int{1},
		"lessonNumber":     1,
		"lessonTitle":      "Introducción",
		"action":           "complete",
		"timeSpent":        120,
	}

	resp := doJSON(t, app, "POST", "/api/courses/progress", token, payload)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get("X-Lesson-Completed"))
	assert.Equal(t, "true", resp.Header.Get("X-Streak-Updated"))
	assert.Equal(t, "1", resp.Header.Get("X-Week-Progress"))

	resp = doJSON(t, app, "POST", "/api/courses/progress", token, payload)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var lp courseModels.LessonProgress
	require.NoError(t, database.Database.Db.Where("lesson_number = ?", 1).First(&lp).Error)
	assert.True(t, lp.IsCompleted)
	assert.NotNil(t, lp.CompletedAt)
	assert.Equal(t, int64(240), lp.TimeSpent)
	assert.Equal(t, 2, lp.AccessCount)
	assert.Equal(t, 2, lp.CompletionAttempts)

	// One row per (progress, lesson)
	var count int64
	database.Database.Db.Model(&courseModels.LessonProgress{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSaveProgressLessonIDResolution(t *testing.T) {
	app := setupTestApp(t)
	course := createTestCourse(t, "monetiza-ia", 8)
	_, token := createTestUser(t, "publicid@example.com")

	lesson := courseModels.Lesson{
		CourseID:     course.ID,
		LessonNumber: 3,
		PublicID:     "monetiza-ia-l03",
		Title:        "Herramientas esenciales",
		IsPublished:  true,
	}
	require.NoError(t, database.Database.Db.Create(&lesson).Error)

	resp := doJSON(t, app, "POST", "/api/courses/progress", token, fiber.Map{
		"courseId":         "monetiza-ia",
		"currentLesson":    3,
		"completedLessons": []int{1, 2, 3},
		"lessonId":         "monetiza-ia-l03",
		"action":           "complete",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var lp courseModels.LessonProgress
	require.NoError(t, database.Database.Db.First(&lp).Error)
	assert.Equal(t, 3, lp.LessonNumber)
	assert.Equal(t, "Herramientas esenciales", lp.LessonTitle)

	// Unknown durable IDs are invalid input, not a silent fallback
	resp = doJSON(t, app, "POST", "/api/courses/progress", token, fiber.Map{
		"courseId": "monetiza-ia",
		"lessonId": "no-such-lesson",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSaveProgressByNumericID(t *testing.T) {
	app := setupTestApp(t)
	course := createTestCourse(t, "monetiza-ia", 8)
	_, token := createTestUser(t, "numeric@example.com")

	resp := doJSON(t, app, "POST", "/api/courses/progress", token, fiber.Map{
		"courseId":         fmt.Sprintf("%d", course.ID),
		"currentLesson":    1,
		"completedLessons": []int{1},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	progress := decodeBody(t, resp)["progress"].(map[string]interface{})
	assert.Equal(t, "monetiza-ia", progress["courseSlug"])
}

func TestSaveProgressSyncsEnrollmentPercentage(t *testing.T) {
	app := setupTestApp(t)
	course := createTestCourse(t, "monetiza-ia", 8)
	user, token := createTestUser(t, "sync@example.com")

	doJSON(t, app, "POST", "/api/courses/progress", token, fiber.Map{
		"courseId":         "monetiza-ia",
		"completedLessons": []int{1, 2, 3, 4},
	})

	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, 50, enrollment.ProgressPercentage)
	assert.Equal(t, "ACTIVE", enrollment.Status)

	doJSON(t, app, "POST", "/api/courses/progress", token, fiber.Map{
		"courseId":         "monetiza-ia",
		"completedLessons": []int{1, 2, 3, 4, 5, 6, 7, 8},
	})

	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, 100, enrollment.ProgressPercentage)
	assert.Equal(t, "COMPLETED", enrollment.Status)
	assert.NotNil(t, enrollment.CompletedAt)
}

func TestGetProgressLessonBreakdownOrdered(t *testing.T) {
	app := setupTestApp(t)
	createTestCourse(t, "monetiza-ia", 8)
	_, token := createTestUser(t, "breakdown@example.com")

	for _, n := range []int{3, 1, 2} {
		doJSON(t, app, "POST", "/api/courses/progress", token, fiber.Map{
			"courseId":     "monetiza-ia",
			"lessonNumber": n,
			"action":       "complete",
		})
	}

	resp := doJSON(t, app, "GET", "/api/courses/progress?courseId=monetiza-ia", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	breakdown := body["lessonProgress"].([]interface{})
	require.Len(t, breakdown, 3)

	for i, want := range []float64{1, 2, 3} {
		row := breakdown[i].(map[string]interface{})
		assert.Equal(t, want, row["lesson_number"])
	}
}
