package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Progress status values
const (
	StatusNotStarted = "NOT_STARTED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// CourseProgress is the per-enrollment progress record. CompletedLessons holds
// the ordered list of completed lesson numbers as a JSON array.
// Invariant: ProgressPercentage = round(100 * len(CompletedLessons) / Course.TotalLessons);
// status is NOT_STARTED iff 0, COMPLETED iff 100, else IN_PROGRESS.
type CourseProgress struct {
	gorm.Model
	EnrollmentID       uint           `json:"enrollment_id" gorm:"uniqueIndex;not null"`
	CurrentLesson      int            `json:"current_lesson" gorm:"default:0"`
	CompletedLessons   datatypes.JSON `json:"completed_lessons"`
	ProgressPercentage int            `json:"progress_percentage" gorm:"default:0"`
	Status             string         `json:"status" gorm:"default:'NOT_STARTED'"`
	LastAccessed       time.Time      `json:"last_accessed"`
	StartedAt          *time.Time     `json:"started_at"`
	CompletedAt        *time.Time     `json:"completed_at"`
	TotalTimeSpent     int64          `json:"total_time_spent" gorm:"default:0"` // seconds
	TotalSessions      int            `json:"total_sessions" gorm:"default:0"`
	IsDeleted          bool           `gorm:"default:false"`
}

// LessonProgress is one row per (CourseProgress, lessonNumber), created lazily
// on the first interaction with that lesson.
type LessonProgress struct {
	gorm.Model
	CourseProgressID   uint       `json:"course_progress_id" gorm:"index:idx_progress_lesson,unique;not null"`
	LessonNumber       int        `json:"lesson_number" gorm:"index:idx_progress_lesson,unique;not null"`
	LessonTitle        string     `json:"lesson_title"`
	IsCompleted        bool       `json:"is_completed" gorm:"default:false"`
	CompletedAt        *time.Time `json:"completed_at"`
	TimeSpent          int64      `json:"time_spent" gorm:"default:0"` // cumulative seconds
	AccessCount        int        `json:"access_count" gorm:"default:0"`
	CompletionAttempts int        `json:"completion_attempts" gorm:"default:0"`
	IsDeleted          bool       `gorm:"default:false"`
}
