package models

import (
	"time"
)

// Scorecard categories. A business holds at most one scorecard per category.
const (
	CategoryFoundation  = "Foundation"
	CategoryAcquisition = "Acquisition"
	CategoryConversion  = "Conversion"
	CategoryRetention   = "Retention"
)

// ScorecardCategories is the fixed category allow-list in display order.
var ScorecardCategories = []string{
	CategoryFoundation,
	CategoryAcquisition,
	CategoryConversion,
	CategoryRetention,
}

// Scorecard is a first-class table. Historically scorecards were opportunities whose
// title contained "Scorecard"; migration 000002 moved those rows here and the
// title-substring convention is gone from runtime code.
type Scorecard struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	BusinessID  uint                 `gorm:"index:biz_category,unique" json:"business_id"`
	Category    string               `gorm:"index:biz_category,unique;type:varchar(50)" json:"category"`
	Score       float64              `json:"score"`
	MaxScore    float64              `gorm:"default:100" json:"max_score"`
	IsPublished bool                 `gorm:"default:false" json:"is_published"`
	Highlights  []ScorecardHighlight `gorm:"foreignKey:ScorecardID;constraint:OnDelete:CASCADE" json:"highlights"`
	CreatedAt   time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsValidScorecardCategory checks a category against the fixed allow-list.
func IsValidScorecardCategory(category string) bool {
	for _, c := range ScorecardCategories {
		if c == category {
			return true
		}
	}
	return false
}
