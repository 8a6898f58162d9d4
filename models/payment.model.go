package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment tracks a checkout against the hosted payment processor
type Payment struct {
	gorm.Model
	OrderID   string     `json:"order_id" gorm:"uniqueIndex;not null"`
	UserID    uint       `json:"user_id" gorm:"index;not null"`
	CourseID  uint       `json:"course_id" gorm:"index;not null"`
	Amount    int64      `json:"amount"`
	Status    string     `json:"status" gorm:"default:'PENDING'"` // PENDING, PAID, EXPIRED, CANCELLED
	SnapToken string     `json:"snap_token"`
	PaidAt    *time.Time `json:"paid_at"`
	IsDeleted bool       `gorm:"default:false"`
}
