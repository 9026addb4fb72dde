package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/joegirolamo/obsidian-sub002/app/models"
)

func TestToolSeedDefaultsIsIdempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewToolRepository(db)

	require.NoError(t, repo.SeedDefaults(1))
	require.NoError(t, repo.SeedDefaults(1))

	count, err := repo.CountByBusinessID(1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	// Seeding another business does not touch the first
	require.NoError(t, repo.SeedDefaults(2))
	count, err = repo.CountByBusinessID(1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestToolSetStatus(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewToolRepository(db)
	require.NoError(t, repo.SeedDefaults(1))

	require.NoError(t, repo.SetStatus(1, models.ProviderShopify, models.ToolStatusGranted))

	tool, err := repo.Get(1, models.ProviderShopify)
	require.NoError(t, err)
	assert.Equal(t, models.ToolStatusGranted, tool.Status)

	// Other tools keep their state
	tool, err = repo.Get(1, models.ProviderMeta)
	require.NoError(t, err)
	assert.Equal(t, models.ToolStatusPending, tool.Status)

	err = repo.SetStatus(1, "myspace", models.ToolStatusGranted)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
