package repository

import (
	"github.com/joegirolamo/obsidian-sub002/app/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	ListClients() ([]models.User, error)
	Count() (int64, error)
}

// BusinessRepository defines the interface for business workspace operations
type BusinessRepository interface {
	Create(business *models.Business) error
	GetByID(id uint) (*models.Business, error)
	GetByUUID(uuid string) (*models.Business, error)
	GetByAccessCode(code string) (*models.Business, error)
	GetByAdminID(adminID uint) ([]models.Business, error)
	Update(business *models.Business) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Business, error)
	Count() (int64, error)
}

// AssessmentRepository defines the interface for assessment operations
type AssessmentRepository interface {
	Upsert(assessment *models.Assessment) error
	GetByID(id uint) (*models.Assessment, error)
	GetByBusinessID(businessID uint, publishedOnly bool) ([]models.Assessment, error)
	Delete(id uint) error
	SetPublishedByBusiness(businessID uint, published bool) error
	HasPublished(businessID uint) (bool, error)
}

// ScorecardRepository defines the interface for scorecard and highlight operations
type ScorecardRepository interface {
	GetOrCreate(businessID uint, category string) (*models.Scorecard, error)
	GetByCategory(businessID uint, category string) (*models.Scorecard, error)
	GetByBusinessID(businessID uint, publishedOnly bool) ([]models.Scorecard, error)
	UpdateScores(scorecardID uint, score, maxScore float64) error
	SetPublishedByBusiness(businessID uint, published bool) error
	HasPublished(businessID uint) (bool, error)
	AddHighlight(scorecardID uint, label, value string) (*models.ScorecardHighlight, error)
	UpdateHighlight(scorecardID uint, highlightID, label, value string) (*models.ScorecardHighlight, error)
	DeleteHighlight(scorecardID uint, highlightID string) error
	GetHighlights(scorecardID uint) ([]models.ScorecardHighlight, error)
}

// OpportunityRepository defines the interface for opportunity operations
type OpportunityRepository interface {
	Create(opp *models.Opportunity) error
	GetByID(id uint) (*models.Opportunity, error)
	GetByBusinessID(businessID uint, publishedOnly bool) ([]models.Opportunity, error)
	Update(opp *models.Opportunity) error
	Delete(id uint) error
	SetPublishedByBusiness(businessID uint, published bool) error
	HasPublished(businessID uint) (bool, error)
}

// MetricRepository defines the interface for metric operations
type MetricRepository interface {
	Upsert(metric *models.Metric) error
	UpsertValue(businessID uint, name, metricType, value string) (*models.Metric, error)
	GetByID(id uint) (*models.Metric, error)
	GetByBusinessID(businessID uint, clientRequestedOnly bool) ([]models.Metric, error)
	Delete(id uint) error
}

// ToolRepository defines the interface for per-business tool request state
type ToolRepository interface {
	SeedDefaults(businessID uint) error
	GetByBusinessID(businessID uint) ([]models.Tool, error)
	CountByBusinessID(businessID uint) (int64, error)
	Get(businessID uint, provider string) (*models.Tool, error)
	SetStatus(businessID uint, provider, status string) error
}

// ConnectionRepository defines the interface for per-user OAuth token material
type ConnectionRepository interface {
	Upsert(conn *models.ToolConnection) error
	Get(userID uint, provider string) (*models.ToolConnection, error)
	ListByUser(userID uint) ([]models.ToolConnection, error)
	SaveConfiguration(userID uint, provider string, config datatypes.JSON) error
	GetConfiguration(userID uint, provider string) (*models.ToolConfiguration, error)
}

// PortalRepository defines the interface for client portal grants
type PortalRepository interface {
	Ensure(businessID, clientID uint) (*models.ClientPortal, error)
	Get(businessID, clientID uint) (*models.ClientPortal, error)
	GetByID(id uint) (*models.ClientPortal, error)
	GetForClient(clientID uint) ([]models.ClientPortal, error)
	SetActive(id uint, active bool) error
	GrantAll() (int, error)
}

// IntakeRepository defines the interface for intake questions and answers
type IntakeRepository interface {
	CreateQuestion(q *models.IntakeQuestion) error
	UpdateQuestion(q *models.IntakeQuestion) error
	DeleteQuestion(id uint) error
	GetQuestion(id uint) (*models.IntakeQuestion, error)
	GetQuestionsByBusinessID(businessID uint) ([]models.IntakeQuestion, error)
	UpsertAnswer(questionID, portalID uint, value string) (*models.IntakeAnswer, error)
	GetAnswersByPortalID(portalID uint) ([]models.IntakeAnswer, error)
}

// AuditRepository defines the interface for the append-only audit trail
type AuditRepository interface {
	Record(actorID uint, action string, detail map[string]any) error
	List(offset, limit int) ([]models.AuditLog, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User        UserRepository
	Business    BusinessRepository
	Assessment  AssessmentRepository
	Scorecard   ScorecardRepository
	Opportunity OpportunityRepository
	Metric      MetricRepository
	Tool        ToolRepository
	Connection  ConnectionRepository
	Portal      PortalRepository
	Intake      IntakeRepository
	Audit       AuditRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Business:    NewBusinessRepository(db),
		Assessment:  NewAssessmentRepository(db),
		Scorecard:   NewScorecardRepository(db),
		Opportunity: NewOpportunityRepository(db),
		Metric:      NewMetricRepository(db),
		Tool:        NewToolRepository(db),
		Connection:  NewConnectionRepository(db),
		Portal:      NewPortalRepository(db),
		Intake:      NewIntakeRepository(db),
		Audit:       NewAuditRepository(db),
	}
}
