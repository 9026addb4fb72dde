package repository

import (
	"errors"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"gorm.io/gorm"
)

// metricRepository implements the MetricRepository interface
type metricRepository struct {
	db *gorm.DB
}

// NewMetricRepository creates a new metric repository instance
func NewMetricRepository(db *gorm.DB) MetricRepository {
	return &metricRepository{db: db}
}

// Upsert writes one metric row per (business, name), updating in place on conflict
func (r *metricRepository) Upsert(metric *models.Metric) error {
	var existing models.Metric
	err := r.db.Where("business_id = ? AND name = ?", metric.BusinessID, metric.Name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(metric).Error
	}
	if err != nil {
		return err
	}

	existing.Description = metric.Description
	existing.Type = metric.Type
	existing.Value = metric.Value
	existing.Target = metric.Target
	existing.Benchmark = metric.Benchmark
	existing.IsClientRequested = metric.IsClientRequested
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}
	*metric = existing
	return nil
}

// UpsertValue writes a synced reading for (business, name) without touching the
// admin-curated fields (description, target, benchmark, is_client_requested)
func (r *metricRepository) UpsertValue(businessID uint, name, metricType, value string) (*models.Metric, error) {
	var existing models.Metric
	err := r.db.Where("business_id = ? AND name = ?", businessID, name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		metric := &models.Metric{
			BusinessID: businessID,
			Name:       name,
			Type:       metricType,
			Value:      value,
		}
		return metric, r.db.Create(metric).Error
	}
	if err != nil {
		return nil, err
	}

	existing.Type = metricType
	existing.Value = value
	if err := r.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// GetByID retrieves a metric by its ID
func (r *metricRepository) GetByID(id uint) (*models.Metric, error) {
	var metric models.Metric
	err := r.db.First(&metric, id).Error
	if err != nil {
		return nil, err
	}
	return &metric, nil
}

// GetByBusinessID retrieves metrics for a business, optionally only those flagged as
// client requested (the portal read surface)
func (r *metricRepository) GetByBusinessID(businessID uint, clientRequestedOnly bool) ([]models.Metric, error) {
	var metrics []models.Metric
	query := r.db.Where("business_id = ?", businessID)
	if clientRequestedOnly {
		query = query.Where("is_client_requested = ?", true)
	}
	err := query.Order("name").Find(&metrics).Error
	return metrics, err
}

// Delete removes a metric by its ID
func (r *metricRepository) Delete(id uint) error {
	return r.db.Delete(&models.Metric{}, id).Error
}
