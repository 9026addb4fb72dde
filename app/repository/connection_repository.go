package repository

import (
	"errors"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// connectionRepository implements the ConnectionRepository interface
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new connection repository instance
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

// Upsert stores token material keyed by (user, provider), replacing tokens in place
// when the pair already exists
func (r *connectionRepository) Upsert(conn *models.ToolConnection) error {
	var existing models.ToolConnection
	err := r.db.Where("user_id = ? AND provider = ?", conn.UserID, conn.Provider).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(conn).Error
	}
	if err != nil {
		return err
	}

	existing.AccessToken = conn.AccessToken
	existing.RefreshToken = conn.RefreshToken
	existing.ExpiresAt = conn.ExpiresAt
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}
	*conn = existing
	return nil
}

// Get retrieves the connection for (user, provider)
func (r *connectionRepository) Get(userID uint, provider string) (*models.ToolConnection, error) {
	var conn models.ToolConnection
	err := r.db.Where("user_id = ? AND provider = ?", userID, provider).First(&conn).Error
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

// ListByUser lists all of a user's provider connections
func (r *connectionRepository) ListByUser(userID uint) ([]models.ToolConnection, error) {
	var conns []models.ToolConnection
	err := r.db.Where("user_id = ?", userID).Find(&conns).Error
	return conns, err
}

// SaveConfiguration upserts the JSON config for (user, provider)
func (r *connectionRepository) SaveConfiguration(userID uint, provider string, config datatypes.JSON) error {
	var existing models.ToolConfiguration
	err := r.db.Where("user_id = ? AND provider = ?", userID, provider).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&models.ToolConfiguration{
			UserID:   userID,
			Provider: provider,
			Config:   config,
		}).Error
	}
	if err != nil {
		return err
	}

	existing.Config = config
	return r.db.Save(&existing).Error
}

// GetConfiguration retrieves the JSON config for (user, provider)
func (r *connectionRepository) GetConfiguration(userID uint, provider string) (*models.ToolConfiguration, error) {
	var cfg models.ToolConfiguration
	err := r.db.Where("user_id = ? AND provider = ?", userID, provider).First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
