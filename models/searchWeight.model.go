package models

import "gorm.io/gorm"

// SearchWeight externalizes the relevance tuning used by the search
// aggregator so ranking changes do not require code edits. Known sources:
// course, resource, community, static_base, static_primary.
type SearchWeight struct {
	gorm.Model
	Source    string  `json:"source" gorm:"uniqueIndex;not null"`
	Weight    float64 `json:"weight" gorm:"not null"`
	IsDeleted bool    `gorm:"default:false"`
}
