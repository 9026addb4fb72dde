package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joegirolamo/obsidian-sub002/app/models"
)

func TestAssessmentUpsertByName(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewAssessmentRepository(db)

	require.NoError(t, repo.Upsert(&models.Assessment{
		BusinessID: 1,
		Name:       "Website Audit",
		Score:      62,
	}))

	// Same name updates in place instead of creating a second row
	require.NoError(t, repo.Upsert(&models.Assessment{
		BusinessID: 1,
		Name:       "Website Audit",
		Score:      78,
		Notes:      "Improved after relaunch",
	}))

	assessments, err := repo.GetByBusinessID(1, false)
	require.NoError(t, err)
	require.Len(t, assessments, 1)
	assert.Equal(t, float64(78), assessments[0].Score)
	assert.Equal(t, "Improved after relaunch", assessments[0].Notes)

	// Same name under a different business is its own row
	require.NoError(t, repo.Upsert(&models.Assessment{
		BusinessID: 2,
		Name:       "Website Audit",
		Score:      40,
	}))

	assessments, err = repo.GetByBusinessID(1, false)
	require.NoError(t, err)
	assert.Len(t, assessments, 1)
}

func TestAssessmentPublishedOnlyFilter(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewAssessmentRepository(db)

	require.NoError(t, repo.Upsert(&models.Assessment{BusinessID: 1, Name: "SEO Audit", Score: 55}))
	require.NoError(t, repo.Upsert(&models.Assessment{BusinessID: 1, Name: "Ads Audit", Score: 70}))

	published, err := repo.GetByBusinessID(1, true)
	require.NoError(t, err)
	assert.Empty(t, published)

	require.NoError(t, repo.SetPublishedByBusiness(1, true))

	published, err = repo.GetByBusinessID(1, true)
	require.NoError(t, err)
	assert.Len(t, published, 2)

	has, err := repo.HasPublished(1)
	require.NoError(t, err)
	assert.True(t, has)
}
