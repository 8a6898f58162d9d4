package models

import (
	"time"

	"gorm.io/gorm"
)

// Session is the stored counterpart of an issued JWT. A request carrying a
// token whose session row has expired is rejected as a stale session rather
// than a missing one.
type Session struct {
	gorm.Model
	Token     string    `json:"token" gorm:"uniqueIndex;not null"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	UserAgent string    `json:"user_agent"`
	IP        string    `json:"ip"`
	IsDeleted bool      `gorm:"default:false"`
}
