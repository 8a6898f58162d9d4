package models

import (
	"time"

	"gorm.io/gorm"
)

// Resource is a downloadable asset (guide, template, toolkit)
type Resource struct {
	gorm.Model
	Slug           string `json:"slug" gorm:"uniqueIndex;not null"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	FileURL        string `json:"file_url"`
	RequiresAuth   bool   `json:"requires_auth" gorm:"default:false"`
	DownloadsCount int64  `json:"downloads_count" gorm:"default:0"`
	IsPublished    bool   `json:"is_published" gorm:"default:true"`
	IsDeleted      bool   `gorm:"default:false"`
}

// ResourceAccessLog records each authenticated access to a gated resource
type ResourceAccessLog struct {
	gorm.Model
	ResourceID uint      `json:"resource_id" gorm:"index;not null"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	AccessedAt time.Time `json:"accessed_at"`
	IP         string    `json:"ip"`
	IsDeleted  bool      `gorm:"default:false"`
}
