package repository

import (
	"github.com/joegirolamo/obsidian-sub002/app/models"
	"gorm.io/gorm"
)

// toolRepository implements the ToolRepository interface
type toolRepository struct {
	db *gorm.DB
}

// NewToolRepository creates a new tool repository instance
func NewToolRepository(db *gorm.DB) ToolRepository {
	return &toolRepository{db: db}
}

// SeedDefaults inserts the default tool request rows for a business. Idempotent: rows
// that already exist are left untouched, so a partial failure converges on retry.
func (r *toolRepository) SeedDefaults(businessID uint) error {
	for _, tool := range models.DefaultTools(businessID) {
		existing := models.Tool{BusinessID: businessID, Name: tool.Name}
		err := r.db.Where("business_id = ? AND name = ?", businessID, tool.Name).
			Attrs(tool).
			FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// GetByBusinessID lists a business's tool rows
func (r *toolRepository) GetByBusinessID(businessID uint) ([]models.Tool, error) {
	var tools []models.Tool
	err := r.db.Where("business_id = ?", businessID).Order("name").Find(&tools).Error
	return tools, err
}

// CountByBusinessID counts a business's tool rows
func (r *toolRepository) CountByBusinessID(businessID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Tool{}).Where("business_id = ?", businessID).Count(&count).Error
	return count, err
}

// Get retrieves the tool row for (business, provider)
func (r *toolRepository) Get(businessID uint, provider string) (*models.Tool, error) {
	var tool models.Tool
	err := r.db.Where("business_id = ? AND provider = ?", businessID, provider).First(&tool).Error
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

// SetStatus transitions the tool row for (business, provider) to the given status
func (r *toolRepository) SetStatus(businessID uint, provider, status string) error {
	res := r.db.Model(&models.Tool{}).
		Where("business_id = ? AND provider = ?", businessID, provider).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
