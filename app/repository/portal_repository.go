package repository

import (
	"fmt"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"gorm.io/gorm"
)

// portalRepository implements the PortalRepository interface
type portalRepository struct {
	db *gorm.DB
}

// NewPortalRepository creates a new portal repository instance
func NewPortalRepository(db *gorm.DB) PortalRepository {
	return &portalRepository{db: db}
}

// Ensure returns the portal for (business, client), creating it active if missing.
// Never creates duplicates and never flips IsActive on an existing row: an
// admin-deactivated portal stays deactivated no matter how often the code is redeemed.
func (r *portalRepository) Ensure(businessID, clientID uint) (*models.ClientPortal, error) {
	portal := models.ClientPortal{BusinessID: businessID, ClientID: clientID}
	err := r.db.Where("business_id = ? AND client_id = ?", businessID, clientID).
		Attrs(models.ClientPortal{IsActive: true}).
		FirstOrCreate(&portal).Error
	if err != nil {
		return nil, err
	}
	return &portal, nil
}

// Get retrieves the portal for (business, client)
func (r *portalRepository) Get(businessID, clientID uint) (*models.ClientPortal, error) {
	var portal models.ClientPortal
	err := r.db.Where("business_id = ? AND client_id = ?", businessID, clientID).First(&portal).Error
	if err != nil {
		return nil, err
	}
	return &portal, nil
}

// GetByID retrieves a portal by its row id
func (r *portalRepository) GetByID(id uint) (*models.ClientPortal, error) {
	var portal models.ClientPortal
	err := r.db.First(&portal, id).Error
	if err != nil {
		return nil, err
	}
	return &portal, nil
}

// GetForClient lists all portals a client holds
func (r *portalRepository) GetForClient(clientID uint) ([]models.ClientPortal, error) {
	var portals []models.ClientPortal
	err := r.db.Where("client_id = ?", clientID).Find(&portals).Error
	return portals, err
}

// SetActive toggles a portal's active flag
func (r *portalRepository) SetActive(id uint, active bool) error {
	res := r.db.Model(&models.ClientPortal{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GrantAll ensures a portal row for every active client x business pair and returns
// the number of rows created. Existing rows are left untouched.
func (r *portalRepository) GrantAll() (int, error) {
	var clients []models.User
	if err := r.db.Where("role = ? AND status = ?", models.ROLE_CLIENT, models.STATUS_ACTIVE).Find(&clients).Error; err != nil {
		return 0, fmt.Errorf("failed to list clients: %w", err)
	}

	var businesses []models.Business
	if err := r.db.Find(&businesses).Error; err != nil {
		return 0, fmt.Errorf("failed to list businesses: %w", err)
	}

	created := 0
	for _, client := range clients {
		for _, business := range businesses {
			portal := models.ClientPortal{BusinessID: business.ID, ClientID: client.ID}
			res := r.db.Where("business_id = ? AND client_id = ?", business.ID, client.ID).
				Attrs(models.ClientPortal{IsActive: true}).
				FirstOrCreate(&portal)
			if res.Error != nil {
				return created, res.Error
			}
			if res.RowsAffected > 0 {
				created++
			}
		}
	}

	return created, nil
}
