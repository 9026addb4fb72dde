package models

import (
	"time"
)

// Assessment is one scored category per business, unique on (business_id, name).
type Assessment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BusinessID  uint      `gorm:"index:biz_assessment,unique" json:"business_id"`
	Name        string    `gorm:"index:biz_assessment,unique;type:varchar(150)" json:"name"`
	Score       float64   `json:"score"`
	Notes       string    `gorm:"type:text" json:"notes"`
	IsPublished bool      `gorm:"default:false" json:"is_published"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
