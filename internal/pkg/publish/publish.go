// Package publish owns the publish-state flow: bulk publish/unpublish per content
// domain and the derived per-domain status booleans. Publish state lives on the
// content rows; the derived booleans are the only aggregate view (single source of
// truth, no denormalized flags on the business row).
package publish

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/joegirolamo/obsidian-sub002/app/repository"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/cache"
)

// Content domains that can be published to a portal.
const (
	DomainScorecard     = "scorecard"
	DomainOpportunities = "opportunities"
	DomainAssessments   = "assessments"
)

// ErrUnknownDomain is returned for a domain outside the fixed set.
var ErrUnknownDomain = fmt.Errorf("unknown publish domain")

// ParseDomain validates a route segment against the fixed domain set.
func ParseDomain(s string) (string, error) {
	switch s {
	case DomainScorecard, DomainOpportunities, DomainAssessments:
		return s, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownDomain, s)
}

// Status is the derived publish state of one business, one boolean per domain.
type Status struct {
	Scorecard     bool `json:"scorecard"`
	Opportunities bool `json:"opportunities"`
	Assessments   bool `json:"assessments"`
}

// HasPublishedItems reports whether any domain is visible to the portal.
func (s Status) HasPublishedItems() bool {
	return s.Scorecard || s.Opportunities || s.Assessments
}

const statusCacheTTL = 30 * time.Second

// Service toggles and derives publish state through the repositories.
type Service struct {
	repos    *repository.Repositories
	useCache bool
}

// NewService creates a publish service with redis-backed status caching.
func NewService(repos *repository.Repositories) *Service {
	return &Service{repos: repos, useCache: true}
}

// NewUncachedService creates a publish service that always derives from the database.
func NewUncachedService(repos *repository.Repositories) *Service {
	return &Service{repos: repos}
}

// SetPublished bulk-sets the publish flag on every row of the domain for the business.
// No row-level granularity is exposed: a domain is visible or it is not.
func (s *Service) SetPublished(domain string, businessID uint, published bool) error {
	var err error
	switch domain {
	case DomainScorecard:
		err = s.repos.Scorecard.SetPublishedByBusiness(businessID, published)
	case DomainOpportunities:
		err = s.repos.Opportunity.SetPublishedByBusiness(businessID, published)
	case DomainAssessments:
		err = s.repos.Assessment.SetPublishedByBusiness(businessID, published)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownDomain, domain)
	}
	if err != nil {
		return err
	}

	s.invalidate(businessID)
	return nil
}

// GetStatus derives the per-domain publish booleans by row existence.
func (s *Service) GetStatus(businessID uint) (Status, error) {
	if s.useCache {
		if status, ok := s.cachedStatus(businessID); ok {
			return status, nil
		}
	}

	var status Status
	var err error

	if status.Scorecard, err = s.repos.Scorecard.HasPublished(businessID); err != nil {
		return Status{}, err
	}
	if status.Opportunities, err = s.repos.Opportunity.HasPublished(businessID); err != nil {
		return Status{}, err
	}
	if status.Assessments, err = s.repos.Assessment.HasPublished(businessID); err != nil {
		return Status{}, err
	}

	if s.useCache {
		s.storeStatus(businessID, status)
	}
	return status, nil
}

func statusCacheKey(businessID uint) string {
	return fmt.Sprintf("publish-status:%d", businessID)
}

func (s *Service) cachedStatus(businessID uint) (Status, bool) {
	raw, err := cache.Get(statusCacheKey(businessID))
	if err != nil || raw == "" {
		return Status{}, false
	}
	var status Status
	if err := json.Unmarshal([]byte(raw), &status); err != nil {
		return Status{}, false
	}
	return status, true
}

func (s *Service) storeStatus(businessID uint, status Status) {
	raw, err := json.Marshal(status)
	if err != nil {
		return
	}
	if err := cache.Set(statusCacheKey(businessID), string(raw), statusCacheTTL); err != nil {
		log.Printf("publish: failed to cache status for business %d: %v", businessID, err)
	}
}

func (s *Service) invalidate(businessID uint) {
	if !s.useCache {
		return
	}
	if err := cache.Delete(statusCacheKey(businessID)); err != nil {
		log.Printf("publish: failed to invalidate status cache for business %d: %v", businessID, err)
	}
}
