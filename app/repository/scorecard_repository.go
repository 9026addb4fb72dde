package repository

import (
	"fmt"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"gorm.io/gorm"
)

// scorecardRepository implements the ScorecardRepository interface
type scorecardRepository struct {
	db *gorm.DB
}

// NewScorecardRepository creates a new scorecard repository instance
func NewScorecardRepository(db *gorm.DB) ScorecardRepository {
	return &scorecardRepository{db: db}
}

// GetOrCreate returns the scorecard for (business, category), creating an empty one if
// missing. The category must be on the fixed allow-list.
func (r *scorecardRepository) GetOrCreate(businessID uint, category string) (*models.Scorecard, error) {
	if !models.IsValidScorecardCategory(category) {
		return nil, fmt.Errorf("unknown scorecard category: %s", category)
	}

	card := models.Scorecard{BusinessID: businessID, Category: category}
	err := r.db.Where("business_id = ? AND category = ?", businessID, category).
		Attrs(models.Scorecard{MaxScore: 100}).
		FirstOrCreate(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// GetByCategory retrieves one scorecard with its highlights preloaded
func (r *scorecardRepository) GetByCategory(businessID uint, category string) (*models.Scorecard, error) {
	var card models.Scorecard
	err := r.db.Preload("Highlights").
		Where("business_id = ? AND category = ?", businessID, category).
		First(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// GetByBusinessID retrieves a business's scorecards with highlights, optionally
// published rows only
func (r *scorecardRepository) GetByBusinessID(businessID uint, publishedOnly bool) ([]models.Scorecard, error) {
	var cards []models.Scorecard
	query := r.db.Preload("Highlights").Where("business_id = ?", businessID)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.Order("category").Find(&cards).Error
	return cards, err
}

// UpdateScores sets score and max score on one scorecard
func (r *scorecardRepository) UpdateScores(scorecardID uint, score, maxScore float64) error {
	return r.db.Model(&models.Scorecard{}).
		Where("id = ?", scorecardID).
		Updates(map[string]any{"score": score, "max_score": maxScore}).Error
}

// SetPublishedByBusiness bulk-sets the publish flag on all of a business's scorecards
func (r *scorecardRepository) SetPublishedByBusiness(businessID uint, published bool) error {
	return r.db.Model(&models.Scorecard{}).
		Where("business_id = ?", businessID).
		Update("is_published", published).Error
}

// HasPublished reports whether any published scorecard row exists for the business
func (r *scorecardRepository) HasPublished(businessID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Scorecard{}).
		Where("business_id = ? AND is_published = ?", businessID, true).
		Count(&count).Error
	return count > 0, err
}

// AddHighlight appends a highlight row under the scorecard. Appends are independent
// inserts, so concurrent callers cannot overwrite each other; the unique index on
// (scorecard_id, highlight_id) rejects the rare generated-id collision.
func (r *scorecardRepository) AddHighlight(scorecardID uint, label, value string) (*models.ScorecardHighlight, error) {
	if err := r.db.First(&models.Scorecard{}, scorecardID).Error; err != nil {
		return nil, err
	}

	h := models.ScorecardHighlight{
		ScorecardID: scorecardID,
		HighlightID: models.NewHighlightID(),
		Label:       label,
		Value:       value,
	}
	if err := r.db.Create(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// UpdateHighlight updates a highlight addressed by its public id
func (r *scorecardRepository) UpdateHighlight(scorecardID uint, highlightID, label, value string) (*models.ScorecardHighlight, error) {
	var h models.ScorecardHighlight
	err := r.db.Where("scorecard_id = ? AND highlight_id = ?", scorecardID, highlightID).First(&h).Error
	if err != nil {
		return nil, err
	}

	h.Label = label
	h.Value = value
	if err := r.db.Save(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// DeleteHighlight removes a highlight addressed by its public id; a miss is reported
// as ErrRecordNotFound and leaves the rows unchanged
func (r *scorecardRepository) DeleteHighlight(scorecardID uint, highlightID string) error {
	res := r.db.Where("scorecard_id = ? AND highlight_id = ?", scorecardID, highlightID).
		Delete(&models.ScorecardHighlight{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetHighlights lists a scorecard's highlights in insertion order
func (r *scorecardRepository) GetHighlights(scorecardID uint) ([]models.ScorecardHighlight, error) {
	var highlights []models.ScorecardHighlight
	err := r.db.Where("scorecard_id = ?", scorecardID).Order("id").Find(&highlights).Error
	return highlights, err
}
