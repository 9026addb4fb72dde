package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHighlightBlob_Empty(t *testing.T) {
	blob, err := NormalizeHighlightBlob(nil)
	require.NoError(t, err)
	assert.NotNil(t, blob.Items)
	assert.Len(t, blob.Items, 0)
}

func TestNormalizeHighlightBlob_CanonicalObject(t *testing.T) {
	raw := []byte(`{"items":[{"id":"1-abc","label":"NPS","value":"62"}],"score":8,"maxScore":10}`)

	blob, err := NormalizeHighlightBlob(raw)
	require.NoError(t, err)
	assert.Len(t, blob.Items, 1)
	assert.Equal(t, "NPS", blob.Items[0].Label)
	assert.Equal(t, 8.0, blob.Score)
	assert.Equal(t, 10.0, blob.MaxScore)
}

func TestNormalizeHighlightBlob_BareArray(t *testing.T) {
	raw := []byte(`[{"id":"1-abc","label":"NPS","value":"62"}]`)

	blob, err := NormalizeHighlightBlob(raw)
	require.NoError(t, err)
	assert.Len(t, blob.Items, 1)
	assert.Zero(t, blob.Score)
}

func TestNormalizeHighlightBlob_DoubleEncodedString(t *testing.T) {
	inner := `{"items":[{"id":"1-abc","label":"NPS","value":"62"}],"score":3,"maxScore":10}`
	raw, err := json.Marshal(inner)
	require.NoError(t, err)

	blob, err := NormalizeHighlightBlob(raw)
	require.NoError(t, err)
	assert.Len(t, blob.Items, 1)
	assert.Equal(t, 3.0, blob.Score)
}

// Writing the blob as a JSON string and as a native object must normalize to the same
// canonical shape on the next read.
func TestNormalizeHighlightBlob_RoundTripEquivalence(t *testing.T) {
	object := []byte(`{"items":[{"id":"1-abc","label":"NPS","value":"62"}],"score":5,"maxScore":10}`)
	asString, err := json.Marshal(string(object))
	require.NoError(t, err)

	fromObject, err := NormalizeHighlightBlob(object)
	require.NoError(t, err)
	fromString, err := NormalizeHighlightBlob(asString)
	require.NoError(t, err)

	assert.Equal(t, fromObject, fromString)

	encA, err := fromObject.Encode()
	require.NoError(t, err)
	encB, err := fromString.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, string(encA), string(encB))
}

func TestNormalizeHighlightBlob_NilItemsBecomesEmpty(t *testing.T) {
	blob, err := NormalizeHighlightBlob([]byte(`{"score":1,"maxScore":10}`))
	require.NoError(t, err)
	assert.NotNil(t, blob.Items)
}

func TestNewHighlightID_Unique(t *testing.T) {
	a := NewHighlightID()
	b := NewHighlightID()
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "-")
}
