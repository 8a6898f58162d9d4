package controllers

import (
	"encoding/json"
	"egrow/database"
	"egrow/middleware"
	courseModels "egrow/models/course"
	"egrow/utils"
	courseValidator "egrow/validators/course"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// resolveCourse accepts a primary key or a slug and returns the course.
// All-digit identifiers are treated as primary keys.
func resolveCourse(db *gorm.DB, identifier string) (*courseModels.Course, error) {
	var course courseModels.Course

	if id, err := strconv.Atoi(identifier); err == nil && id > 0 {
		if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&course).Error; err != nil {
			return nil, err
		}
		return &course, nil
	}

	if err := db.Where("slug = ? AND is_deleted = ?", identifier, false).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// computeProgress derives the percentage and status from the completed count.
// Status is NOT_STARTED iff 0%, COMPLETED iff 100%, else IN_PROGRESS.
func computeProgress(completedCount, totalLessons int) (int, string) {
	if totalLessons <= 0 {
		return 0, courseModels.StatusNotStarted
	}

	pct := int(math.Round(float64(completedCount) / float64(totalLessons) * 100))
	if pct > 100 {
		pct = 100
	}

	switch {
	case pct == 0:
		return 0, courseModels.StatusNotStarted
	case pct == 100:
		return 100, courseModels.StatusCompleted
	default:
		return pct, courseModels.StatusInProgress
	}
}

func decodeCompletedLessons(raw datatypes.JSON) []int {
	if len(raw) == 0 {
		return []int{}
	}
	var lessons []int
	if err := json.Unmarshal(raw, &lessons); err != nil {
		return []int{}
	}
	return lessons
}

func encodeCompletedLessons(lessons []int) datatypes.JSON {
	if lessons == nil {
		lessons = []int{}
	}
	data, _ := json.Marshal(lessons)
	return datatypes.JSON(data)
}

// progressPayload is the progress summary returned by both endpoints
func progressPayload(course *courseModels.Course, progress *courseModels.CourseProgress) fiber.Map {
	return fiber.Map{
		"courseId":           course.ID,
		"courseSlug":         course.Slug,
		"currentLesson":      progress.CurrentLesson,
		"completedLessons":   decodeCompletedLessons(progress.CompletedLessons),
		"progressPercentage": progress.ProgressPercentage,
		"status":             progress.Status,
		"lastAccessed":       progress.LastAccessed,
		"startedAt":          progress.StartedAt,
		"completedAt":        progress.CompletedAt,
		"totalTimeSpent":     progress.TotalTimeSpent,
		"totalSessions":      progress.TotalSessions,
	}
}

// GetProgress returns the caller's progress for one course, including the
// per-lesson breakdown. An enrollment without a CourseProgress row gets one
// created with zeroed defaults.
func GetProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", "")
	}

	identifier := c.Locals("courseIdentifier").(string)
	db := database.Database.Db

	course, err := resolveCourse(db, identifier)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found", "")
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).
		First(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enrollment not found", "")
	}

	var progress courseModels.CourseProgress
	if err := db.Where("enrollment_id = ? AND is_deleted = ?", enrollment.ID, false).
		First(&progress).Error; err != nil {
		// Read triggers lazy materialization of the progress row
		progress = courseModels.CourseProgress{
			EnrollmentID:     enrollment.ID,
			CompletedLessons: encodeCompletedLessons(nil),
			Status:           courseModels.StatusNotStarted,
			LastAccessed:     time.Now(),
		}
		if err := db.Create(&progress).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
		}
	}

	var lessonProgress []courseModels.LessonProgress
	if err := db.Where("course_progress_id = ? AND is_deleted = ?", progress.ID, false).
		Order("lesson_number asc").Find(&lessonProgress).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
	}

	payload := progressPayload(course, &progress)
	payload["lessonProgress"] = lessonProgress

	return c.Status(fiber.StatusOK).JSON(payload)
}

// SaveProgress persists per-lesson and per-course learning progress. A user
// with no enrollment is enrolled automatically. The enrollment creation,
// progress update, lesson upsert and enrollment-percentage sync run in a
// single transaction; streak recording happens after commit and is best-effort.
func SaveProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", "")
	}

	reqData, ok := c.Locals("validatedProgress").(*courseValidator.SaveProgressRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "missing request data")
	}

	db := database.Database.Db

	course, err := resolveCourse(db, reqData.CourseID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found", "")
	}

	// Resolve the lesson ordinal before any write. A durable lesson ID maps
	// to its stored ordinal through the Lesson table.
	lessonNumber := 0
	lessonTitle := reqData.LessonTitle
	if reqData.LessonNumber != nil {
		lessonNumber = *reqData.LessonNumber
	} else if reqData.LessonID != "" {
		var lesson courseModels.Lesson
		if err := db.Where("public_id = ? AND course_id = ? AND is_deleted = ?", reqData.LessonID, course.ID, false).
			First(&lesson).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input",
				fmt.Sprintf("unknown lesson id %q for course %s", reqData.LessonID, course.Slug))
		}
		lessonNumber = lesson.LessonNumber
		if lessonTitle == "" {
			lessonTitle = lesson.Title
		}
	}
	if lessonNumber < 0 || lessonNumber > course.TotalLessons {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input",
			fmt.Sprintf("lesson number %d out of range (course has %d lessons)", lessonNumber, course.TotalLessons))
	}

	markComplete := reqData.Action == "complete" && lessonNumber > 0

	var progress courseModels.CourseProgress
	newlyCompleted := false

	txErr := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		// Implicit self-enrollment: any authenticated user who posts progress
		// becomes enrolled.
		var enrollment courseModels.Enrollment
		if err := tx.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).
			First(&enrollment).Error; err != nil {
			enrollment = courseModels.Enrollment{
				UserID:     userID,
				CourseID:   course.ID,
				Status:     "ACTIVE",
				EnrolledAt: now,
			}
			if err := tx.Create(&enrollment).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("enrollment_id = ? AND is_deleted = ?", enrollment.ID, false).
			First(&progress).Error; err != nil {
			progress = courseModels.CourseProgress{
				EnrollmentID:     enrollment.ID,
				CompletedLessons: encodeCompletedLessons(nil),
				Status:           courseModels.StatusNotStarted,
			}
			if err := tx.Create(&progress).Error; err != nil {
				return err
			}
		}

		completed := decodeCompletedLessons(progress.CompletedLessons)
		if reqData.CompletedLessons != nil {
			completed = *reqData.CompletedLessons
		}

		wasCompleted := progress.Status == courseModels.StatusCompleted
		pct, status := computeProgress(len(completed), course.TotalLessons)

		if reqData.CurrentLesson != nil {
			progress.CurrentLesson = *reqData.CurrentLesson
		}
		progress.CompletedLessons = encodeCompletedLessons(completed)
		progress.ProgressPercentage = pct
		progress.Status = status
		progress.LastAccessed = now
		progress.TotalTimeSpent += reqData.TimeSpent
		progress.TotalSessions++
		if progress.StartedAt == nil && status != courseModels.StatusNotStarted {
			progress.StartedAt = &now
		}
		if status == courseModels.StatusCompleted {
			if progress.CompletedAt == nil {
				progress.CompletedAt = &now
			}
			newlyCompleted = !wasCompleted
		} else {
			progress.CompletedAt = nil
		}
		if err := tx.Save(&progress).Error; err != nil {
			return err
		}

		// Lazy per-lesson upsert
		if lessonNumber > 0 {
			var lp courseModels.LessonProgress
			if err := tx.Where("course_progress_id = ? AND lesson_number = ? AND is_deleted = ?",
				progress.ID, lessonNumber, false).First(&lp).Error; err != nil {
				lp = courseModels.LessonProgress{
					CourseProgressID: progress.ID,
					LessonNumber:     lessonNumber,
					LessonTitle:      lessonTitle,
					TimeSpent:        reqData.TimeSpent,
					AccessCount:      1,
				}
				if markComplete {
					lp.IsCompleted = true
					lp.CompletedAt = &now
					lp.CompletionAttempts = 1
				}
				if err := tx.Create(&lp).Error; err != nil {
					return err
				}
			} else {
				lp.TimeSpent += reqData.TimeSpent
				lp.AccessCount++
				if lessonTitle != "" {
					lp.LessonTitle = lessonTitle
				}
				if markComplete {
					lp.CompletionAttempts++
					if !lp.IsCompleted {
						lp.IsCompleted = true
						lp.CompletedAt = &now
					}
				}
				if err := tx.Save(&lp).Error; err != nil {
					return err
				}
			}
		}

		// Keep the enrollment's cached percentage consistent
		enrollment.ProgressPercentage = pct
		if status == courseModels.StatusCompleted {
			enrollment.Status = "COMPLETED"
			if enrollment.CompletedAt == nil {
				enrollment.CompletedAt = &now
			}
		} else if enrollment.Status == "COMPLETED" {
			enrollment.Status = "ACTIVE"
			enrollment.CompletedAt = nil
		}
		return tx.Save(&enrollment).Error
	})
	if txErr != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", txErr.Error())
	}

	// Streak bookkeeping is best-effort: the progress write above is
	// authoritative, failures here only surface through headers.
	if markComplete {
		c.Set("X-Lesson-Completed", "true")
		weekProgress, goalMet, err := utils.RecordLessonCompletion(db, userID, course.ID, lessonNumber, lessonTitle)
		if err != nil {
			log.Printf("[STREAK] Failed to record completion for user %d: %v", userID, err)
			c.Set("X-Streak-Error", "true")
		} else {
			c.Set("X-Streak-Updated", "true")
			c.Set("X-Week-Progress", strconv.Itoa(weekProgress))
			c.Set("X-Goal-Met", strconv.FormatBool(goalMet))
		}
	}

	if newlyCompleted {
		go notifyCourseCompleted(userID, course)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":         true,
		"progress":        progressPayload(course, &progress),
		"lessonCompleted": markComplete,
	})
}

// notifyCourseCompleted sends the completion email outside the request path
func notifyCourseCompleted(userID uint, course *courseModels.Course) {
	db := database.Database.Db

	var email, name string
	row := db.Table("users").Select("email, name").Where("id = ?", userID).Row()
	if err := row.Scan(&email, &name); err != nil {
		log.Printf("[EMAIL] Could not load user %d for completion email: %v", userID, err)
		return
	}

	if err := utils.SendCourseCompletionEmail(email, name, course.Title); err != nil {
		log.Printf("[EMAIL] Completion email to %s failed: %v", email, err)
	}
}
