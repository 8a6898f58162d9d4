package models

import (
	"time"

	"gorm.io/gorm"
)

// UserStreak tracks the gamification counters for one user. The week window
// rolls on Monday; LessonsThisWeek is compared against WeeklyGoal.
type UserStreak struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	CurrentStreak    int        `json:"current_streak" gorm:"default:0"` // consecutive active days
	LongestStreak    int        `json:"longest_streak" gorm:"default:0"`
	LastActivityDate *time.Time `json:"last_activity_date"`
	WeeklyGoal       int        `json:"weekly_goal" gorm:"default:5"`
	LessonsThisWeek  int        `json:"lessons_this_week" gorm:"default:0"`
	WeekStart        time.Time  `json:"week_start"`
	IsDeleted        bool       `gorm:"default:false"`
}

// StreakActivity is one recorded lesson-completion event
type StreakActivity struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	CourseID     uint      `json:"course_id" gorm:"index;not null"`
	LessonNumber int       `json:"lesson_number"`
	LessonTitle  string    `json:"lesson_title"`
	CompletedAt  time.Time `json:"completed_at"`
	IsDeleted    bool      `gorm:"default:false"`
}
