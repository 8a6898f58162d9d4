package course

import "gorm.io/gorm"

// Course represents a catalog course. TotalLessons is the stored lesson count
// that progress-percentage math divides by.
type Course struct {
	gorm.Model
	Slug         string `json:"slug" gorm:"uniqueIndex;not null"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Author       string `json:"author"`
	Duration     int64  `json:"duration" gorm:"default:0"` // duration in hours
	TotalLessons int    `json:"total_lessons" gorm:"default:18"`
	Price        int64  `json:"price" gorm:"default:0"`
	IsFree       bool   `json:"is_free" gorm:"default:true"`
	RequiresAuth bool   `json:"requires_auth" gorm:"default:true"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}
