package models

import (
	"time"
)

// Metric value types. Values are string-encoded regardless of type; the type drives
// rendering and validation on the client side.
const (
	MetricTypeText    = "TEXT"
	MetricTypeNumber  = "NUMBER"
	MetricTypeBoolean = "BOOLEAN"
	MetricTypeSelect  = "SELECT"
)

type Metric struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	BusinessID        uint      `gorm:"index:biz_metric,unique" json:"business_id"`
	Name              string    `gorm:"index:biz_metric,unique;type:varchar(150)" json:"name"`
	Description       string    `gorm:"type:text" json:"description"`
	Type              string    `gorm:"type:varchar(20);default:'TEXT'" json:"type"`
	Value             string    `gorm:"type:text" json:"value"`
	Target            string    `gorm:"type:varchar(100)" json:"target"`
	Benchmark         string    `gorm:"type:varchar(100)" json:"benchmark"`
	IsClientRequested bool      `gorm:"default:false" json:"is_client_requested"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsValidMetricType checks a metric type value.
func IsValidMetricType(t string) bool {
	switch t {
	case MetricTypeText, MetricTypeNumber, MetricTypeBoolean, MetricTypeSelect:
		return true
	}
	return false
}
