package models

import "gorm.io/gorm"

// CommunityPost is a user-authored post in the community feed
type CommunityPost struct {
	gorm.Model
	AuthorID  uint   `json:"author_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Content   string `json:"content" gorm:"type:text"`
	Category  string `json:"category"`
	IsDeleted bool   `gorm:"default:false"`
}
