package repository

import (
	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/accesscode"
	"gorm.io/gorm"
)

// businessRepository implements the BusinessRepository interface
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new business repository instance
func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

// Create creates a new business; an access code is generated when none is set.
// Retries once on the (unlikely) code collision.
func (r *businessRepository) Create(business *models.Business) error {
	for attempt := 0; attempt < 2; attempt++ {
		if business.AccessCode == "" {
			code, err := accesscode.Generate()
			if err != nil {
				return err
			}
			business.AccessCode = code
		}
		err := r.db.Create(business).Error
		if err == nil {
			return nil
		}
		if attempt == 0 && err == gorm.ErrDuplicatedKey {
			business.AccessCode = ""
			continue
		}
		return err
	}
	return nil
}

// GetByID retrieves a business by its ID
func (r *businessRepository) GetByID(id uint) (*models.Business, error) {
	var business models.Business
	err := r.db.First(&business, id).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// GetByUUID retrieves a business by its public UUID
func (r *businessRepository) GetByUUID(uuid string) (*models.Business, error) {
	var business models.Business
	err := r.db.Where("uuid = ?", uuid).First(&business).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// GetByAccessCode retrieves a business by its unique access code
func (r *businessRepository) GetByAccessCode(code string) (*models.Business, error) {
	var business models.Business
	err := r.db.Where("access_code = ?", accesscode.Normalize(code)).First(&business).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// GetByAdminID retrieves all businesses owned by the given admin
func (r *businessRepository) GetByAdminID(adminID uint) ([]models.Business, error) {
	var businesses []models.Business
	err := r.db.Where("admin_id = ?", adminID).Order("name").Find(&businesses).Error
	return businesses, err
}

// Update updates an existing business
func (r *businessRepository) Update(business *models.Business) error {
	return r.db.Save(business).Error
}

// Delete soft deletes a business by its ID
func (r *businessRepository) Delete(id uint) error {
	return r.db.Delete(&models.Business{}, id).Error
}

// List retrieves a paginated list of businesses
func (r *businessRepository) List(offset, limit int) ([]models.Business, error) {
	var businesses []models.Business
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&businesses).Error
	return businesses, err
}

// Count returns the total number of businesses
func (r *businessRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Business{}).Count(&count).Error
	return count, err
}
