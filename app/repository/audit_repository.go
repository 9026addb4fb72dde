package repository

import (
	"encoding/json"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// auditRepository implements the AuditRepository interface
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository instance
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

// Record appends one audit row for a privileged operation
func (r *auditRepository) Record(actorID uint, action string, detail map[string]any) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return err
	}

	return r.db.Create(&models.AuditLog{
		ActorID: actorID,
		Action:  action,
		Detail:  datatypes.JSON(raw),
	}).Error
}

// List retrieves audit rows newest first
func (r *auditRepository) List(offset, limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&logs).Error
	return logs, err
}
