package models

import "time"

// ToolConnection stores OAuth token material for one user and provider.
type ToolConnection struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"index:user_provider,unique" json:"user_id"`
	Provider     string     `gorm:"index:user_provider,unique;type:varchar(50)" json:"provider"`
	AccessToken  string     `gorm:"type:text" json:"-"`
	RefreshToken string     `gorm:"type:text" json:"-"`
	ExpiresAt    *time.Time `gorm:"type:timestamp;default:null" json:"expires_at,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsExpired reports whether the access token has a known, passed expiry.
func (tc *ToolConnection) IsExpired() bool {
	return tc.ExpiresAt != nil && tc.ExpiresAt.Before(time.Now())
}
