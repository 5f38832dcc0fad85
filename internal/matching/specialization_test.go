package matching_test

import (
	"testing"

	"go-care-backend/internal/domain"
	"go-care-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestInferSpecializations(t *testing.T) {
	tests := []struct {
		name       string
		conditions *string
		mobility   string
		expected   []string
	}{
		{
			name:       "alzheimers maps to dementia and suppresses fallback",
			conditions: strPtr("Patient has early Alzheimer's"),
			mobility:   domain.MobilityIndependent,
			expected:   []string{matching.TagDementia},
		},
		{
			name:       "mobility alone",
			conditions: strPtr(""),
			mobility:   domain.MobilityFullSupport,
			expected:   []string{matching.TagMobilitySupport},
		},
		{
			name:       "pure fallback",
			conditions: strPtr(""),
			mobility:   domain.MobilityIndependent,
			expected:   []string{matching.TagElderlyCare},
		},
		{
			name:       "multiple conditions plus mobility",
			conditions: strPtr("Dementia and post-op recovery"),
			mobility:   domain.MobilitySomeAssistance,
			expected:   []string{matching.TagDementia, matching.TagPostSurgery, matching.TagMobilitySupport},
		},
		{
			name:       "nil conditions fall back",
			conditions: nil,
			mobility:   domain.MobilityIndependent,
			expected:   []string{matching.TagElderlyCare},
		},
		{
			name:       "end of life maps to palliative",
			conditions: strPtr("End of Life care needed"),
			mobility:   domain.MobilityIndependent,
			expected:   []string{matching.TagPalliative},
		},
		{
			name:       "learning disability prefix match",
			conditions: strPtr("Has learning disabilities"),
			mobility:   domain.MobilityIndependent,
			expected:   []string{matching.TagLearningDisabilities},
		},
		{
			name:       "autism detected case-insensitively",
			conditions: strPtr("AUTISM spectrum"),
			mobility:   domain.MobilityIndependent,
			expected:   []string{matching.TagAutism},
		},
		{
			name:       "dementia not duplicated when both keywords present",
			conditions: strPtr("dementia, likely Alzheimer's"),
			mobility:   domain.MobilityIndependent,
			expected:   []string{matching.TagDementia},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := matching.InferSpecializations(tt.conditions, tt.mobility)
			assert.Equal(t, tt.expected, tags)
		})
	}
}

func TestInferSpecializationsIsTotal(t *testing.T) {
	// Any input produces at least one tag.
	for _, mobility := range []string{domain.MobilityIndependent, domain.MobilitySomeAssistance, domain.MobilityFullSupport, "garbage", ""} {
		tags := matching.InferSpecializations(nil, mobility)
		assert.NotEmpty(t, tags, "mobility=%q", mobility)
	}
}
