package models

import (
	"time"

	"gorm.io/datatypes"
)

// ToolConfiguration holds arbitrary per-user provider config (account ids, property
// ids, shop domains) that the read clients need besides the token.
type ToolConfiguration struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index:user_provider_cfg,unique" json:"user_id"`
	Provider  string         `gorm:"index:user_provider_cfg,unique;type:varchar(50)" json:"provider"`
	Config    datatypes.JSON `gorm:"type:json" json:"config"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
