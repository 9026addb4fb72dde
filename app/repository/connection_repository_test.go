package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/joegirolamo/obsidian-sub002/app/models"
)

func TestConnectionUpsertReplacesTokens(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewConnectionRepository(db)

	expires := time.Now().Add(time.Hour)
	require.NoError(t, repo.Upsert(&models.ToolConnection{
		UserID:      1,
		Provider:    models.ProviderGoogleAnalytics,
		AccessToken: "token-one",
		ExpiresAt:   &expires,
	}))

	// Reconnecting replaces the token material on the same row
	require.NoError(t, repo.Upsert(&models.ToolConnection{
		UserID:       1,
		Provider:     models.ProviderGoogleAnalytics,
		AccessToken:  "token-two",
		RefreshToken: "refresh-two",
	}))

	conn, err := repo.Get(1, models.ProviderGoogleAnalytics)
	require.NoError(t, err)
	assert.Equal(t, "token-two", conn.AccessToken)
	assert.Equal(t, "refresh-two", conn.RefreshToken)
	assert.Nil(t, conn.ExpiresAt)

	var count int64
	require.NoError(t, db.Model(&models.ToolConnection{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConnectionIsExpired(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	assert.True(t, (&models.ToolConnection{ExpiresAt: &past}).IsExpired())
	assert.False(t, (&models.ToolConnection{ExpiresAt: &future}).IsExpired())
	assert.False(t, (&models.ToolConnection{}).IsExpired(), "connections without expiry never expire")
}

func TestConnectionConfigurationRoundTrip(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewConnectionRepository(db)

	cfg := datatypes.JSON(`{"property_id":"12345"}`)
	require.NoError(t, repo.SaveConfiguration(1, models.ProviderGoogleAnalytics, cfg))

	loaded, err := repo.GetConfiguration(1, models.ProviderGoogleAnalytics)
	require.NoError(t, err)
	assert.JSONEq(t, `{"property_id":"12345"}`, string(loaded.Config))

	// Saving again overwrites in place
	require.NoError(t, repo.SaveConfiguration(1, models.ProviderGoogleAnalytics, datatypes.JSON(`{"property_id":"67890"}`)))
	loaded, err = repo.GetConfiguration(1, models.ProviderGoogleAnalytics)
	require.NoError(t, err)
	assert.JSONEq(t, `{"property_id":"67890"}`, string(loaded.Config))

	var count int64
	require.NoError(t, db.Model(&models.ToolConfiguration{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
