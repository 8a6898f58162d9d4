package models

import "gorm.io/gorm"

// UTMEvent captures a landing hit attributed to a social-media campaign
type UTMEvent struct {
	gorm.Model
	Source    string `json:"utm_source" gorm:"index"`
	Medium    string `json:"utm_medium"`
	Campaign  string `json:"utm_campaign" gorm:"index"`
	Content   string `json:"utm_content"`
	Path      string `json:"path"`
	UserID    *uint  `json:"user_id" gorm:"index"`
	Referrer  string `json:"referrer"`
	IsDeleted bool   `gorm:"default:false"`
}
