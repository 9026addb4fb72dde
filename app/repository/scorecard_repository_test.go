package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/joegirolamo/obsidian-sub002/app/models"
)

func TestScorecardGetOrCreate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewScorecardRepository(db)

	card, err := repo.GetOrCreate(1, models.CategoryFoundation)
	require.NoError(t, err)
	assert.Equal(t, float64(100), card.MaxScore)
	assert.False(t, card.IsPublished)

	again, err := repo.GetOrCreate(1, models.CategoryFoundation)
	require.NoError(t, err)
	assert.Equal(t, card.ID, again.ID)

	_, err = repo.GetOrCreate(1, "Growth")
	assert.Error(t, err)
}

func TestAddHighlightGrowsByOne(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewScorecardRepository(db)

	card, err := repo.GetOrCreate(1, models.CategoryAcquisition)
	require.NoError(t, err)

	first, err := repo.AddHighlight(card.ID, "Strong SEO", "Organic traffic up 40%")
	require.NoError(t, err)
	assert.NotEmpty(t, first.HighlightID)

	second, err := repo.AddHighlight(card.ID, "Paid search", "CPA below target")
	require.NoError(t, err)
	assert.NotEqual(t, first.HighlightID, second.HighlightID)

	highlights, err := repo.GetHighlights(card.ID)
	require.NoError(t, err)
	require.Len(t, highlights, 2)
	assert.Equal(t, "Strong SEO", highlights[0].Label)
	assert.Equal(t, "Paid search", highlights[1].Label)
}

func TestAddHighlightConcurrentAppendsBothSurvive(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	// Pin the in-memory sqlite handle to one connection so both goroutines hit
	// the same database; the writes still race at the call level.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	repo := NewScorecardRepository(db)

	card, err := repo.GetOrCreate(1, models.CategoryConversion)
	require.NoError(t, err)

	// Appends from two concurrent writers are independent inserts; neither
	// can erase the other's row.
	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for w := 0; w < 2; w++ {
		wg.Add(1)
		go func(writer int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				if _, err := repo.AddHighlight(card.ID, fmt.Sprintf("writer-%d-%d", writer, i), ""); err != nil {
					errs <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	highlights, err := repo.GetHighlights(card.ID)
	require.NoError(t, err)
	assert.Len(t, highlights, 20)

	seen := make(map[string]bool, len(highlights))
	for _, h := range highlights {
		assert.False(t, seen[h.HighlightID], "duplicate highlight id %s", h.HighlightID)
		seen[h.HighlightID] = true
	}
}

func TestUpdateHighlight(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewScorecardRepository(db)

	card, err := repo.GetOrCreate(1, models.CategoryRetention)
	require.NoError(t, err)

	h, err := repo.AddHighlight(card.ID, "Churn", "5% monthly")
	require.NoError(t, err)

	updated, err := repo.UpdateHighlight(card.ID, h.HighlightID, "Churn rate", "4% monthly")
	require.NoError(t, err)
	assert.Equal(t, h.HighlightID, updated.HighlightID)
	assert.Equal(t, "Churn rate", updated.Label)

	_, err = repo.UpdateHighlight(card.ID, "no-such-id", "x", "y")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteHighlightMissIsNotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewScorecardRepository(db)

	card, err := repo.GetOrCreate(1, models.CategoryFoundation)
	require.NoError(t, err)

	h, err := repo.AddHighlight(card.ID, "Keep me", "")
	require.NoError(t, err)

	err = repo.DeleteHighlight(card.ID, "no-such-id")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The miss must not have touched the surviving row
	highlights, err := repo.GetHighlights(card.ID)
	require.NoError(t, err)
	require.Len(t, highlights, 1)
	assert.Equal(t, h.HighlightID, highlights[0].HighlightID)

	require.NoError(t, repo.DeleteHighlight(card.ID, h.HighlightID))
	highlights, err = repo.GetHighlights(card.ID)
	require.NoError(t, err)
	assert.Empty(t, highlights)
}

func TestSetPublishedByBusiness(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewScorecardRepository(db)

	_, err := repo.GetOrCreate(7, models.CategoryFoundation)
	require.NoError(t, err)
	_, err = repo.GetOrCreate(7, models.CategoryAcquisition)
	require.NoError(t, err)
	_, err = repo.GetOrCreate(8, models.CategoryFoundation)
	require.NoError(t, err)

	require.NoError(t, repo.SetPublishedByBusiness(7, true))

	published, err := repo.HasPublished(7)
	require.NoError(t, err)
	assert.True(t, published)

	// The other business is untouched
	published, err = repo.HasPublished(8)
	require.NoError(t, err)
	assert.False(t, published)

	cards, err := repo.GetByBusinessID(7, true)
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	require.NoError(t, repo.SetPublishedByBusiness(7, false))
	published, err = repo.HasPublished(7)
	require.NoError(t, err)
	assert.False(t, published)
}
