package models

import (
	"time"
)

// Tool access-request statuses.
const (
	ToolStatusPending   = "PENDING"
	ToolStatusRequested = "REQUESTED"
	ToolStatusGranted   = "GRANTED"
	ToolStatusDenied    = "DENIED"
)

// Integrated providers. Names double as goth provider keys except for display.
const (
	ProviderGoogleAnalytics = "google"
	ProviderMeta            = "facebook"
	ProviderLinkedIn        = "linkedin"
	ProviderShopify         = "shopify"
)

// Tool tracks the per-business request/grant state for one provider.
type Tool struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BusinessID uint      `gorm:"index:biz_tool,unique" json:"business_id"`
	Name       string    `gorm:"index:biz_tool,unique;type:varchar(100)" json:"name"`
	Provider   string    `gorm:"type:varchar(50);index" json:"provider"`
	Status     string    `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// DefaultTools is the fixed set seeded for a business the first time a client
// redeems its access code.
func DefaultTools(businessID uint) []Tool {
	return []Tool{
		{BusinessID: businessID, Name: "Google Analytics", Provider: ProviderGoogleAnalytics, Status: ToolStatusPending},
		{BusinessID: businessID, Name: "Meta Ads", Provider: ProviderMeta, Status: ToolStatusPending},
		{BusinessID: businessID, Name: "LinkedIn Ads", Provider: ProviderLinkedIn, Status: ToolStatusPending},
		{BusinessID: businessID, Name: "Shopify", Provider: ProviderShopify, Status: ToolStatusPending},
	}
}

// IsKnownProvider checks a provider key against the integrated set.
func IsKnownProvider(provider string) bool {
	switch provider {
	case ProviderGoogleAnalytics, ProviderMeta, ProviderLinkedIn, ProviderShopify:
		return true
	}
	return false
}
