package repository

import (
	"errors"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"gorm.io/gorm"
)

// intakeRepository implements the IntakeRepository interface
type intakeRepository struct {
	db *gorm.DB
}

// NewIntakeRepository creates a new intake repository instance
func NewIntakeRepository(db *gorm.DB) IntakeRepository {
	return &intakeRepository{db: db}
}

// CreateQuestion creates a new intake question
func (r *intakeRepository) CreateQuestion(q *models.IntakeQuestion) error {
	return r.db.Create(q).Error
}

// UpdateQuestion updates an existing intake question
func (r *intakeRepository) UpdateQuestion(q *models.IntakeQuestion) error {
	return r.db.Save(q).Error
}

// DeleteQuestion removes a question and its answers
func (r *intakeRepository) DeleteQuestion(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&models.IntakeAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.IntakeQuestion{}, id).Error
	})
}

// GetQuestion retrieves a question by its ID
func (r *intakeRepository) GetQuestion(id uint) (*models.IntakeQuestion, error) {
	var q models.IntakeQuestion
	err := r.db.First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// GetQuestionsByBusinessID lists a business's questions in position order
func (r *intakeRepository) GetQuestionsByBusinessID(businessID uint) ([]models.IntakeQuestion, error) {
	var questions []models.IntakeQuestion
	err := r.db.Where("business_id = ?", businessID).Order("position, id").Find(&questions).Error
	return questions, err
}

// UpsertAnswer writes one answer per (question, portal), updating in place on resubmit
func (r *intakeRepository) UpsertAnswer(questionID, portalID uint, value string) (*models.IntakeAnswer, error) {
	var answer models.IntakeAnswer
	err := r.db.Where("question_id = ? AND client_portal_id = ?", questionID, portalID).First(&answer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		answer = models.IntakeAnswer{QuestionID: questionID, ClientPortalID: portalID, Value: value}
		if err := r.db.Create(&answer).Error; err != nil {
			return nil, err
		}
		return &answer, nil
	}
	if err != nil {
		return nil, err
	}

	answer.Value = value
	if err := r.db.Save(&answer).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

// GetAnswersByPortalID lists the answers a portal has submitted
func (r *intakeRepository) GetAnswersByPortalID(portalID uint) ([]models.IntakeAnswer, error) {
	var answers []models.IntakeAnswer
	err := r.db.Where("client_portal_id = ?", portalID).Find(&answers).Error
	return answers, err
}
