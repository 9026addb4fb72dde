package repository

import (
	"github.com/joegirolamo/obsidian-sub002/app/models"
	"gorm.io/gorm"
)

// opportunityRepository implements the OpportunityRepository interface
type opportunityRepository struct {
	db *gorm.DB
}

// NewOpportunityRepository creates a new opportunity repository instance
func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &opportunityRepository{db: db}
}

// Create creates a new opportunity
func (r *opportunityRepository) Create(opp *models.Opportunity) error {
	return r.db.Create(opp).Error
}

// GetByID retrieves an opportunity by its ID
func (r *opportunityRepository) GetByID(id uint) (*models.Opportunity, error) {
	var opp models.Opportunity
	err := r.db.First(&opp, id).Error
	if err != nil {
		return nil, err
	}
	return &opp, nil
}

// GetByBusinessID retrieves opportunities for a business, optionally published only
func (r *opportunityRepository) GetByBusinessID(businessID uint, publishedOnly bool) ([]models.Opportunity, error) {
	var opps []models.Opportunity
	query := r.db.Where("business_id = ?", businessID)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.Order("category, created_at").Find(&opps).Error
	return opps, err
}

// Update updates an existing opportunity
func (r *opportunityRepository) Update(opp *models.Opportunity) error {
	return r.db.Save(opp).Error
}

// Delete removes an opportunity by its ID
func (r *opportunityRepository) Delete(id uint) error {
	return r.db.Delete(&models.Opportunity{}, id).Error
}

// SetPublishedByBusiness bulk-sets the publish flag on all of a business's
// opportunities within the fixed category allow-list
func (r *opportunityRepository) SetPublishedByBusiness(businessID uint, published bool) error {
	return r.db.Model(&models.Opportunity{}).
		Where("business_id = ? AND category IN ?", businessID, models.OpportunityCategories).
		Update("is_published", published).Error
}

// HasPublished reports whether any published opportunity row exists for the business
func (r *opportunityRepository) HasPublished(businessID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Opportunity{}).
		Where("business_id = ? AND is_published = ?", businessID, true).
		Count(&count).Error
	return count > 0, err
}
