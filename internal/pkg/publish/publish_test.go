package publish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/app/repository"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/database"
)

func newTestService(t *testing.T) (*Service, *repository.Repositories) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	repos := repository.NewRepositories(db)
	return NewUncachedService(repos), repos
}

func TestParseDomain(t *testing.T) {
	t.Parallel()

	for _, domain := range []string{DomainScorecard, DomainOpportunities, DomainAssessments} {
		parsed, err := ParseDomain(domain)
		require.NoError(t, err)
		assert.Equal(t, domain, parsed)
	}

	_, err := ParseDomain("metrics")
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestStatusDerivedFromRowExistence(t *testing.T) {
	t.Parallel()

	svc, repos := newTestService(t)
	const businessID = 1

	// Nothing exists yet, so nothing is published
	status, err := svc.GetStatus(businessID)
	require.NoError(t, err)
	assert.False(t, status.HasPublishedItems())

	_, err = repos.Scorecard.GetOrCreate(businessID, models.CategoryFoundation)
	require.NoError(t, err)
	require.NoError(t, repos.Opportunity.Create(&models.Opportunity{
		BusinessID: businessID,
		Title:      "Improve checkout",
		Category:   models.OppCategoryRevenue,
		Status:     models.OppStatusOpen,
	}))

	// Rows exist but none are published
	status, err = svc.GetStatus(businessID)
	require.NoError(t, err)
	assert.Equal(t, Status{}, status)

	require.NoError(t, svc.SetPublished(DomainScorecard, businessID, true))
	status, err = svc.GetStatus(businessID)
	require.NoError(t, err)
	assert.True(t, status.Scorecard)
	assert.False(t, status.Opportunities)
	assert.False(t, status.Assessments)
	assert.True(t, status.HasPublishedItems())

	require.NoError(t, svc.SetPublished(DomainOpportunities, businessID, true))
	status, err = svc.GetStatus(businessID)
	require.NoError(t, err)
	assert.True(t, status.Opportunities)

	// Unpublishing a domain goes dark immediately
	require.NoError(t, svc.SetPublished(DomainScorecard, businessID, false))
	status, err = svc.GetStatus(businessID)
	require.NoError(t, err)
	assert.False(t, status.Scorecard)
	assert.True(t, status.Opportunities)
}

func TestSetPublishedUnknownDomain(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	err := svc.SetPublished("metrics", 1, true)
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestSetPublishedScopedToBusiness(t *testing.T) {
	t.Parallel()

	svc, repos := newTestService(t)

	_, err := repos.Scorecard.GetOrCreate(1, models.CategoryFoundation)
	require.NoError(t, err)
	_, err = repos.Scorecard.GetOrCreate(2, models.CategoryFoundation)
	require.NoError(t, err)

	require.NoError(t, svc.SetPublished(DomainScorecard, 1, true))

	status, err := svc.GetStatus(2)
	require.NoError(t, err)
	assert.False(t, status.Scorecard, "publishing business 1 must not leak into business 2")
}
