package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/joegirolamo/obsidian-sub002/app/models"
)

func seedClientAndBusiness(t *testing.T, db *gorm.DB) (*models.User, *models.Business) {
	t.Helper()

	client, err := models.CreateUser("Test Client", "client@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, db.Create(client).Error)

	business := &models.Business{Name: "Acme Co", AdminID: 1, AccessCode: "ABC12345"}
	require.NoError(t, db.Create(business).Error)

	return client, business
}

func TestPortalEnsureIsIdempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewPortalRepository(db)
	client, business := seedClientAndBusiness(t, db)

	first, err := repo.Ensure(business.ID, client.ID)
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	// Redeeming again must not create a second row
	second, err := repo.Ensure(business.ID, client.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.ClientPortal{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPortalEnsureNeverReactivates(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewPortalRepository(db)
	client, business := seedClientAndBusiness(t, db)

	portal, err := repo.Ensure(business.ID, client.ID)
	require.NoError(t, err)
	require.NoError(t, repo.SetActive(portal.ID, false))

	again, err := repo.Ensure(business.ID, client.ID)
	require.NoError(t, err)
	assert.Equal(t, portal.ID, again.ID)
	assert.False(t, again.IsActive, "redeeming the code must not reactivate a deactivated portal")
}

func TestPortalSetActiveMissingRow(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewPortalRepository(db)

	err := repo.SetActive(9999, true)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPortalGrantAll(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewPortalRepository(db)
	client, business := seedClientAndBusiness(t, db)

	other, err := models.CreateUser("Second Client", "second@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, db.Create(other).Error)

	inactive, err := models.CreateUser("Gone Client", "gone@example.com", "secret123")
	require.NoError(t, err)
	inactive.Status = models.STATUS_INACTIVE
	require.NoError(t, db.Create(inactive).Error)

	// One pre-existing grant must not be counted again
	_, err = repo.Ensure(business.ID, client.ID)
	require.NoError(t, err)

	created, err := repo.GrantAll()
	require.NoError(t, err)
	assert.Equal(t, 1, created, "only the second active client gains a portal")

	// Sweep is idempotent
	created, err = repo.GrantAll()
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	var count int64
	require.NoError(t, db.Model(&models.ClientPortal{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
