package models

import (
	"time"

	"gorm.io/datatypes"
)

// Audit actions recorded for bulk-authorization and publish toggles.
const (
	AuditGrantAllAccess = "grant_all_access"
	AuditPublishToggle  = "publish_toggle"
)

// AuditLog records privileged admin operations. Append-only.
type AuditLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ActorID   uint           `gorm:"index" json:"actor_id"`
	Action    string         `gorm:"type:varchar(100);index" json:"action"`
	Detail    datatypes.JSON `gorm:"type:json" json:"detail"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
