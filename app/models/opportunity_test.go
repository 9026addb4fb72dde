package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSpanMarker(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantText string
		wantSpan int
	}{
		{"no marker", "Improve checkout flow", "Improve checkout flow", 1},
		{"trailing marker", "Improve checkout flow [SPAN:3]", "Improve checkout flow", 3},
		{"embedded marker", "Improve [SPAN:2] checkout flow", "Improve checkout flow", 2},
		{"zero span falls back", "Text [SPAN:0]", "Text", 1},
		{"empty description", "", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, span := SplitSpanMarker(tt.in)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantSpan, span)
		})
	}
}

func TestOpportunityValidators(t *testing.T) {
	assert.True(t, IsValidOpportunityCategory(OppCategoryEBITDA))
	assert.False(t, IsValidOpportunityCategory("Scorecard"))
	assert.True(t, IsValidOpportunityStatus(OppStatusInProgress))
	assert.False(t, IsValidOpportunityStatus("open"))
}
