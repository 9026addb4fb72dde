package models

import (
	"time"

	"gorm.io/datatypes"
)

// IntakeQuestion is one question in a business's intake questionnaire. Options only
// apply to SELECT questions.
type IntakeQuestion struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	BusinessID uint           `gorm:"index" json:"business_id"`
	Prompt     string         `gorm:"type:text" json:"prompt"`
	Type       string         `gorm:"type:varchar(20);default:'TEXT'" json:"type"`
	Options    datatypes.JSON `gorm:"type:json" json:"options"`
	Position   int            `gorm:"default:0" json:"position"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
