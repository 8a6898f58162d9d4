package utils

import (
	"egrow/models"
	"time"

	"gorm.io/gorm"
)

const defaultWeeklyGoal = 5

// weekStart returns the Monday 00:00 of the week containing t
func weekStart(t time.Time) time.Time {
	day := t.Weekday()
	offset := int(day) - int(time.Monday)
	if day == time.Sunday {
		offset = 6
	}
	year, month, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(year, month, d, 0, 0, 0, 0, t.Location())
}

// sameDay reports whether two times fall on the same calendar day
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// RecordLessonCompletion updates the caller's streak counters for one
// completed lesson and appends an activity row. Returns the week progress and
// whether the weekly goal is met. Callers treat failures as best-effort: log
// and continue without failing the surrounding request.
func RecordLessonCompletion(db *gorm.DB, userID, courseID uint, lessonNumber int, lessonTitle string) (int, bool, error) {
	now := time.Now()

	var streak models.UserStreak
	err := db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&streak).Error
	if err != nil {
		streak = models.UserStreak{
			UserID:     userID,
			WeeklyGoal: defaultWeeklyGoal,
			WeekStart:  weekStart(now),
		}
		if err := db.Create(&streak).Error; err != nil {
			return 0, false, err
		}
	}

	// Roll the week window on Monday
	if ws := weekStart(now); streak.WeekStart.Before(ws) {
		streak.WeekStart = ws
		streak.LessonsThisWeek = 0
	}
	streak.LessonsThisWeek++

	// Day streak: same day keeps it, next day extends it, a gap resets it
	if streak.LastActivityDate == nil {
		streak.CurrentStreak = 1
	} else if !sameDay(*streak.LastActivityDate, now) {
		if sameDay(streak.LastActivityDate.AddDate(0, 0, 1), now) {
			streak.CurrentStreak++
		} else {
			streak.CurrentStreak = 1
		}
	}
	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.LastActivityDate = &now

	if err := db.Save(&streak).Error; err != nil {
		return 0, false, err
	}

	activity := models.StreakActivity{
		UserID:       userID,
		CourseID:     courseID,
		LessonNumber: lessonNumber,
		LessonTitle:  lessonTitle,
		CompletedAt:  now,
	}
	if err := db.Create(&activity).Error; err != nil {
		return 0, false, err
	}

	goalMet := streak.WeeklyGoal > 0 && streak.LessonsThisWeek >= streak.WeeklyGoal
	return streak.LessonsThisWeek, goalMet, nil
}
