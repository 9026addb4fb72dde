package models

import (
	"encoding/json"
	"time"

	"github.com/joegirolamo/obsidian-sub002/internal/pkg/accesscode"
)

// ScorecardHighlight is one annotation row under a scorecard. Highlights used to live
// in a JSON column on the parent row; the child table makes concurrent appends
// independent inserts instead of a read-modify-write on a blob.
type ScorecardHighlight struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	ScorecardID uint      `gorm:"index:card_highlight,unique" json:"-"`
	HighlightID string    `gorm:"index:card_highlight,unique;type:varchar(32)" json:"id"`
	Label       string    `gorm:"type:varchar(255)" json:"label"`
	Value       string    `gorm:"type:text" json:"value"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewHighlightID returns a `<unix-ms>-<suffix>` identifier. Not a UUID; collisions are
// possible in theory but the (scorecard_id, highlight_id) unique index rejects them.
func NewHighlightID() string {
	return accesscode.TimestampedID(6)
}

// HighlightItem is the canonical wire/blob form of a single highlight.
type HighlightItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// HighlightBlob is the canonical shape of the legacy JSON column.
type HighlightBlob struct {
	Items    []HighlightItem `json:"items"`
	Score    float64         `json:"score"`
	MaxScore float64         `json:"maxScore"`
}

// NormalizeHighlightBlob coerces every shape the legacy column was observed to hold
// into the canonical {items, score, maxScore} form:
//   - null / empty
//   - a JSON-encoded string containing one of the other shapes
//   - a bare array of items
//   - the canonical object itself
//
// Used by the import/migration path; live data is relational.
func NormalizeHighlightBlob(raw []byte) (HighlightBlob, error) {
	blob := HighlightBlob{Items: []HighlightItem{}}
	if len(raw) == 0 {
		return blob, nil
	}

	// Double-encoded: a JSON string wrapping the real payload.
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		return NormalizeHighlightBlob([]byte(inner))
	}

	// Legacy array-only shape.
	var items []HighlightItem
	if err := json.Unmarshal(raw, &items); err == nil {
		blob.Items = items
		return blob, nil
	}

	if err := json.Unmarshal(raw, &blob); err != nil {
		return HighlightBlob{Items: []HighlightItem{}}, err
	}
	if blob.Items == nil {
		blob.Items = []HighlightItem{}
	}
	return blob, nil
}

// Encode renders the canonical JSON form.
func (b HighlightBlob) Encode() ([]byte, error) {
	if b.Items == nil {
		b.Items = []HighlightItem{}
	}
	return json.Marshal(b)
}
