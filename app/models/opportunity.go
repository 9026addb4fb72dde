package models

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Opportunity categories and statuses.
const (
	OppCategoryEBITDA  = "EBITDA"
	OppCategoryRevenue = "Revenue"
	OppCategoryDeRisk  = "De-Risk"

	OppStatusOpen       = "OPEN"
	OppStatusInProgress = "IN_PROGRESS"
	OppStatusDone       = "DONE"
	OppStatusDismissed  = "DISMISSED"
)

// OpportunityCategories is the fixed category allow-list used by bulk publish.
var OpportunityCategories = []string{
	OppCategoryEBITDA,
	OppCategoryRevenue,
	OppCategoryDeRisk,
}

// Opportunity is a growth recommendation for a business. TimelineSpan is a real
// column; older data smuggled it into the description as a "[SPAN:n]" marker.
type Opportunity struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BusinessID   uint      `gorm:"index" json:"business_id"`
	Title        string    `gorm:"type:varchar(255)" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Category     string    `gorm:"type:varchar(50);index" json:"category"`
	Status       string    `gorm:"type:varchar(50);default:'OPEN'" json:"status"`
	TimelineSpan int       `gorm:"default:1" json:"timeline_span"`
	IsPublished  bool      `gorm:"default:false" json:"is_published"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsValidOpportunityCategory checks a category against the fixed allow-list.
func IsValidOpportunityCategory(category string) bool {
	for _, c := range OpportunityCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidOpportunityStatus checks a status value.
func IsValidOpportunityStatus(status string) bool {
	switch status {
	case OppStatusOpen, OppStatusInProgress, OppStatusDone, OppStatusDismissed:
		return true
	}
	return false
}

var spanMarker = regexp.MustCompile(`\s*\[SPAN:(\d+)\]\s*`)

// SplitSpanMarker extracts a legacy "[SPAN:n]" marker from a description and returns
// the cleaned text plus the span. Descriptions without a marker come back unchanged
// with span 1. Only the migration/import path calls this.
func SplitSpanMarker(description string) (string, int) {
	m := spanMarker.FindStringSubmatch(description)
	if m == nil {
		return description, 1
	}
	span, err := strconv.Atoi(m[1])
	if err != nil || span < 1 {
		span = 1
	}
	cleaned := strings.TrimSpace(spanMarker.ReplaceAllString(description, " "))
	return cleaned, span
}
