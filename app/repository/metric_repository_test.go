package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joegirolamo/obsidian-sub002/app/models"
)

func TestMetricUpsertValueKeepsCuratedFields(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewMetricRepository(db)

	require.NoError(t, repo.Upsert(&models.Metric{
		BusinessID:        1,
		Name:              "Sessions",
		Description:       "Monthly sessions",
		Type:              models.MetricTypeNumber,
		Value:             "100",
		Target:            "500",
		Benchmark:         "300",
		IsClientRequested: true,
	}))

	// A provider sync only carries name/type/value; the curated fields survive
	_, err := repo.UpsertValue(1, "Sessions", models.MetricTypeNumber, "150")
	require.NoError(t, err)

	metrics, err := repo.GetByBusinessID(1, true)
	require.NoError(t, err)
	require.Len(t, metrics, 1, "metric dropped off the client-requested view")
	assert.Equal(t, "150", metrics[0].Value)
	assert.Equal(t, "Monthly sessions", metrics[0].Description)
	assert.Equal(t, "500", metrics[0].Target)
	assert.Equal(t, "300", metrics[0].Benchmark)
	assert.True(t, metrics[0].IsClientRequested)
}

func TestMetricUpsertValueCreatesMissingRow(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewMetricRepository(db)

	metric, err := repo.UpsertValue(1, "Order Count", models.MetricTypeNumber, "12")
	require.NoError(t, err)
	assert.NotZero(t, metric.ID)
	assert.Equal(t, "12", metric.Value)
	assert.False(t, metric.IsClientRequested)

	var count int64
	require.NoError(t, db.Model(&models.Metric{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMetricUpsertReplacesAllFields(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewMetricRepository(db)

	require.NoError(t, repo.Upsert(&models.Metric{
		BusinessID: 1,
		Name:       "NPS",
		Type:       models.MetricTypeNumber,
		Value:      "42",
		Target:     "60",
	}))

	// The admin surface sends the full payload; an empty target clears it
	require.NoError(t, repo.Upsert(&models.Metric{
		BusinessID: 1,
		Name:       "NPS",
		Type:       models.MetricTypeNumber,
		Value:      "48",
	}))

	metrics, err := repo.GetByBusinessID(1, false)
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, "48", metrics[0].Value)
	assert.Empty(t, metrics[0].Target)
}
