package matching

import (
	"strings"

	"go-care-backend/internal/domain"
)

// Specialization tags
const (
	TagDementia             = "dementia"
	TagPalliative           = "palliative"
	TagAutism               = "autism"
	TagLearningDisabilities = "learning_disabilities"
	TagPostSurgery          = "post_surgery"
	TagMobilitySupport      = "mobility_support"
	TagElderlyCare          = "elderly_care"
)

// HighAcuityTags are the tags that attract the specialization bonus.
var HighAcuityTags = map[string]bool{
	TagDementia:   true,
	TagPalliative: true,
}

// conditionRule maps substrings of the free-text medical conditions to a tag.
type conditionRule struct {
	tag      string
	keywords []string
}

// Rule order fixes the detection order of the returned tags.
var conditionRules = []conditionRule{
	{TagDementia, []string{"dementia", "alzheimer"}},
	{TagPalliative, []string{"palliative", "end of life"}},
	{TagAutism, []string{"autism"}},
	{TagLearningDisabilities, []string{"learning disabilit"}},
	{TagPostSurgery, []string{"surgery", "post-op"}},
}

// InferSpecializations derives the set of required specialization tags from a
// recipient's free-text medical conditions and mobility level. The result is
// never empty: when no rule fires, elderly_care is returned as the sole
// fallback. The fallback is suppressed by any other match, including
// mobility_support.
func InferSpecializations(medicalConditions *string, mobilityLevel string) []string {
	var tags []string

	conditions := ""
	if medicalConditions != nil {
		conditions = strings.ToLower(*medicalConditions)
	}

	for _, rule := range conditionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(conditions, kw) {
				tags = append(tags, rule.tag)
				break
			}
		}
	}

	if mobilityLevel == domain.MobilityFullSupport || mobilityLevel == domain.MobilitySomeAssistance {
		tags = append(tags, TagMobilitySupport)
	}

	if len(tags) == 0 {
		tags = append(tags, TagElderlyCare)
	}

	return tags
}
