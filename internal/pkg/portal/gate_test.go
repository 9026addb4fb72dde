package portal

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
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/publish"
)

func newGate(t *testing.T) (*Service, *repository.Repositories, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	repos := repository.NewRepositories(db)
	return NewService(repos, publish.NewUncachedService(repos)), repos, db
}

func seedGateFixtures(t *testing.T, db *gorm.DB) (*models.User, *models.Business) {
	t.Helper()

	client, err := models.CreateUser("Portal Client", "portal@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, db.Create(client).Error)

	business := &models.Business{Name: "Acme Co", AdminID: 1, AccessCode: "ABC12345"}
	require.NoError(t, db.Create(business).Error)

	return client, business
}

func TestVerifyAccessCodeUnknownCode(t *testing.T) {
	t.Parallel()

	gate, _, db := newGate(t)
	client, _ := seedGateFixtures(t, db)

	_, err := gate.VerifyAccessCode("WRONG123", client.ID)
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestVerifyAccessCodeProvisionsPortalAndTools(t *testing.T) {
	t.Parallel()

	gate, repos, db := newGate(t)
	client, business := seedGateFixtures(t, db)

	result, err := gate.VerifyAccessCode("ABC12345", client.ID)
	require.NoError(t, err)
	assert.Equal(t, business.ID, result.BusinessID)
	assert.Equal(t, "Acme Co", result.BusinessName)
	assert.False(t, result.HasPublishedItems)

	// The default tool set was seeded exactly once
	tools, err := repos.Tool.GetByBusinessID(business.ID)
	require.NoError(t, err)
	assert.Len(t, tools, 4)
	for _, tool := range tools {
		assert.Equal(t, models.ToolStatusPending, tool.Status)
	}

	// Redeeming again converges: same portal, same tools
	again, err := gate.VerifyAccessCode("abc12345", client.ID)
	require.NoError(t, err)
	assert.Equal(t, result.PortalID, again.PortalID)

	var portalCount int64
	require.NoError(t, db.Model(&models.ClientPortal{}).Count(&portalCount).Error)
	assert.Equal(t, int64(1), portalCount)

	tools, err = repos.Tool.GetByBusinessID(business.ID)
	require.NoError(t, err)
	assert.Len(t, tools, 4)
}

func TestVerifyAccessCodeDeactivatedPortalFailsClosed(t *testing.T) {
	t.Parallel()

	gate, repos, db := newGate(t)
	client, _ := seedGateFixtures(t, db)

	result, err := gate.VerifyAccessCode("ABC12345", client.ID)
	require.NoError(t, err)
	require.NoError(t, repos.Portal.SetActive(result.PortalID, false))

	_, err = gate.VerifyAccessCode("ABC12345", client.ID)
	assert.ErrorIs(t, err, ErrPortalDeactivated)

	// The redeem attempt did not flip the portal back on
	p, err := repos.Portal.GetByID(result.PortalID)
	require.NoError(t, err)
	assert.False(t, p.IsActive)
}

func TestVerifyAccessCodeReportsPublishStatus(t *testing.T) {
	t.Parallel()

	gate, repos, db := newGate(t)
	client, business := seedGateFixtures(t, db)

	_, err := repos.Scorecard.GetOrCreate(business.ID, models.CategoryFoundation)
	require.NoError(t, err)
	require.NoError(t, repos.Scorecard.SetPublishedByBusiness(business.ID, true))

	result, err := gate.VerifyAccessCode("ABC12345", client.ID)
	require.NoError(t, err)
	assert.True(t, result.HasPublishedItems)
	assert.True(t, result.Published.Scorecard)
	assert.False(t, result.Published.Opportunities)
	assert.False(t, result.Published.Assessments)
}
