package models

import "time"

// IntakeAnswer is a client's answer to one intake question, scoped to the portal it
// was answered through. One answer per question per portal; re-submits update in place.
type IntakeAnswer struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	QuestionID     uint      `gorm:"index:question_portal,unique" json:"question_id"`
	ClientPortalID uint      `gorm:"index:question_portal,unique" json:"client_portal_id"`
	Value          string    `gorm:"type:text" json:"value"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
