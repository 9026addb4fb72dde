package repository

import (
	"errors"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"gorm.io/gorm"
)

// assessmentRepository implements the AssessmentRepository interface
type assessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new assessment repository instance
func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

// Upsert writes one assessment row per (business, name), updating in place on conflict
func (r *assessmentRepository) Upsert(assessment *models.Assessment) error {
	var existing models.Assessment
	err := r.db.Where("business_id = ? AND name = ?", assessment.BusinessID, assessment.Name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(assessment).Error
	}
	if err != nil {
		return err
	}

	existing.Score = assessment.Score
	existing.Notes = assessment.Notes
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}
	*assessment = existing
	return nil
}

// GetByID retrieves an assessment by its ID
func (r *assessmentRepository) GetByID(id uint) (*models.Assessment, error) {
	var assessment models.Assessment
	err := r.db.First(&assessment, id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// GetByBusinessID retrieves assessments for a business, optionally published rows only
func (r *assessmentRepository) GetByBusinessID(businessID uint, publishedOnly bool) ([]models.Assessment, error) {
	var assessments []models.Assessment
	query := r.db.Where("business_id = ?", businessID)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.Order("name").Find(&assessments).Error
	return assessments, err
}

// Delete removes an assessment by its ID
func (r *assessmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Assessment{}, id).Error
}

// SetPublishedByBusiness bulk-sets the publish flag on all of a business's assessments
func (r *assessmentRepository) SetPublishedByBusiness(businessID uint, published bool) error {
	return r.db.Model(&models.Assessment{}).
		Where("business_id = ?", businessID).
		Update("is_published", published).Error
}

// HasPublished reports whether any published assessment row exists for the business
func (r *assessmentRepository) HasPublished(businessID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Assessment{}).
		Where("business_id = ? AND is_published = ?", businessID, true).
		Count(&count).Error
	return count > 0, err
}
