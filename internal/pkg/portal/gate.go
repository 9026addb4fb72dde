// Package portal implements the access-code gate: redeeming a business access code
// provisions (or re-resolves) the client's portal and reports what is published.
package portal

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/joegirolamo/obsidian-sub002/app/repository"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/publish"
)

var (
	// ErrCodeNotFound means the code matches no business.
	ErrCodeNotFound = errors.New("access code not found")
	// ErrPortalDeactivated means the portal exists but an admin switched it off.
	// Redeeming the code again never reactivates it.
	ErrPortalDeactivated = errors.New("portal deactivated")
)

// GateResult is what a successful redeem returns to the client.
type GateResult struct {
	BusinessID        uint           `json:"business_id"`
	BusinessName      string         `json:"business_name"`
	PortalID          uint           `json:"portal_id"`
	HasPublishedItems bool           `json:"has_published_items"`
	Published         publish.Status `json:"published"`
}

// Service runs the gate against the repositories.
type Service struct {
	repos   *repository.Repositories
	publish *publish.Service
}

// NewService creates an access-code gate service.
func NewService(repos *repository.Repositories, publishSvc *publish.Service) *Service {
	return &Service{repos: repos, publish: publishSvc}
}

// VerifyAccessCode resolves the code to a business, idempotently ensures the client's
// portal row, seeds the default tool set iff the business has none, and derives the
// publish status. Repeated redeems leave exactly one portal row; a failure between
// portal creation and tool seeding is safe because seeding converges on retry.
func (s *Service) VerifyAccessCode(code string, clientID uint) (*GateResult, error) {
	business, err := s.repos.Business.GetByAccessCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, fmt.Errorf("failed to resolve access code: %w", err)
	}

	gatePortal, err := s.repos.Portal.Ensure(business.ID, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to provision portal: %w", err)
	}
	if !gatePortal.IsActive {
		return nil, ErrPortalDeactivated
	}

	toolCount, err := s.repos.Tool.CountByBusinessID(business.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect tools: %w", err)
	}
	if toolCount == 0 {
		if err := s.repos.Tool.SeedDefaults(business.ID); err != nil {
			return nil, fmt.Errorf("failed to seed default tools: %w", err)
		}
	}

	status, err := s.publish.GetStatus(business.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive publish status: %w", err)
	}

	return &GateResult{
		BusinessID:        business.ID,
		BusinessName:      business.Name,
		PortalID:          gatePortal.ID,
		HasPublishedItems: status.HasPublishedItems(),
		Published:         status,
	}, nil
}
