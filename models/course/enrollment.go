package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment links a user to a course. One row per (user, course) pair; created
// explicitly via the enroll endpoint or implicitly on the first progress save.
// ProgressPercentage is a cached copy of the CourseProgress value.
type Enrollment struct {
	gorm.Model
	UserID             uint       `json:"user_id" gorm:"index:idx_user_course,unique;not null"`
	CourseID           uint       `json:"course_id" gorm:"index:idx_user_course,unique;not null"`
	Status             string     `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, COMPLETED, CANCELLED
	ProgressPercentage int        `json:"progress_percentage" gorm:"default:0"`
	EnrolledAt         time.Time  `json:"enrolled_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	IsDeleted          bool       `gorm:"default:false"`

	Course Course `json:"course" gorm:"foreignKey:CourseID"`
}
