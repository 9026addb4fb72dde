package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Business is the root aggregate for a client workspace. The access code is the sole
// capability token a client redeems to bootstrap a portal; publish state is derived
// from the content rows, never stored here.
type Business struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UUID        string         `gorm:"type:varchar(36);uniqueIndex" json:"uuid"`
	Name        string         `gorm:"type:varchar(200)" json:"name" validate:"required,min=2,max=200"`
	AccessCode  string         `gorm:"type:varchar(16);uniqueIndex" json:"access_code"`
	Industry    string         `gorm:"type:varchar(150)" json:"industry" validate:"max=150"`
	Website     string         `gorm:"type:varchar(255)" json:"website" validate:"omitempty,url,max=255"`
	Description string         `gorm:"type:text" json:"description" validate:"max=2000"`
	Connections datatypes.JSON `gorm:"type:json" json:"connections"`
	AdminID     uint           `gorm:"index" json:"admin_id"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Business) Validate() error {
	v := validator.New()

	return v.Struct(b)
}

// BeforeCreate assigns the public UUID so external references never leak row ids.
func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.UUID == "" {
		b.UUID = uuid.New().String()
	}
	return nil
}

// IsOwnedBy reports whether the given admin user owns this workspace.
func (b *Business) IsOwnedBy(userID uint) bool {
	return b.AdminID == userID
}
