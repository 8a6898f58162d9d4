package course

import "gorm.io/gorm"

// Lesson is one unit of a course. LessonNumber is the explicit stored ordinal
// (1-based) used for progress bookkeeping; PublicID is the durable string
// identifier clients may send instead of the ordinal.
type Lesson struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	LessonNumber int    `json:"lesson_number" gorm:"index;not null"`
	PublicID     string `json:"public_id" gorm:"uniqueIndex;not null"`
	Slug         string `json:"slug"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"video_url"`
	Duration     int    `json:"duration" gorm:"default:0"` // minutes
	IsFree       bool   `json:"is_free" gorm:"default:false"`
	IsPublished  bool   `json:"is_published" gorm:"default:true"`
	IsDeleted    bool   `gorm:"default:false"`
}
