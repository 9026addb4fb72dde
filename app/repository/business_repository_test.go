package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/accesscode"
)

func TestBusinessCreateGeneratesAccessCode(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewBusinessRepository(db)

	business := &models.Business{Name: "Acme Co", AdminID: 1}
	require.NoError(t, repo.Create(business))

	assert.Len(t, business.AccessCode, accesscode.CodeLength)
	assert.NotEmpty(t, business.UUID)

	// A preset code is kept as-is
	other := &models.Business{Name: "Other Co", AdminID: 1, AccessCode: "XYZ98765"}
	require.NoError(t, repo.Create(other))
	assert.Equal(t, "XYZ98765", other.AccessCode)
}

func TestBusinessGetByAccessCodeNormalizes(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewBusinessRepository(db)

	business := &models.Business{Name: "Acme Co", AdminID: 1, AccessCode: "ABC12345"}
	require.NoError(t, repo.Create(business))

	// Codes are matched case-insensitively and whitespace-tolerantly
	found, err := repo.GetByAccessCode("  abc12345 ")
	require.NoError(t, err)
	assert.Equal(t, business.ID, found.ID)

	_, err = repo.GetByAccessCode("NOPE0000")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBusinessSoftDelete(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewBusinessRepository(db)

	business := &models.Business{Name: "Gone Co", AdminID: 1}
	require.NoError(t, repo.Create(business))
	require.NoError(t, repo.Delete(business.ID))

	_, err := repo.GetByID(business.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Its access code no longer resolves either
	_, err = repo.GetByAccessCode(business.AccessCode)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBusinessGeneratedCodeAlphabet(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewBusinessRepository(db)

	business := &models.Business{Name: "Alphabet Co", AdminID: 1}
	require.NoError(t, repo.Create(business))

	for _, r := range business.AccessCode {
		assert.True(t, strings.ContainsRune("23456789ABCDEFGHJKMNPQRSTUVWXYZ", r),
			"access code must avoid lookalike characters, got %q", r)
	}
}
