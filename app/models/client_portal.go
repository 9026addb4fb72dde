package models

import "time"

// ClientPortal is the provisioned grant that lets one client read one business's
// published content. Created lazily on the first successful access-code redeem;
// admins may deactivate it without deleting the row.
type ClientPortal struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BusinessID uint      `gorm:"index:biz_client,unique" json:"business_id"`
	ClientID   uint      `gorm:"index:biz_client,unique" json:"client_id"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
