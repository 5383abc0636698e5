package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())
}

func TestValidateReportsEveryProblem(t *testing.T) {
	s := DefaultSettings()
	s.Keywords.MinSearchVolume = 0
	s.Keywords.SampleKeywords = nil
	s.Campaigns.ConversionRate = 1.5
	s.Analysis.CompetitionLevels = append(s.Analysis.CompetitionLevels, "EXTREME")
	s.Shopping.ProductCategories = nil

	err := s.Validate()
	require.Error(t, err)
	for _, field := range []string{
		"min_search_volume",
		"sample_keywords",
		"conversion_rate",
		"EXTREME",
		"product_categories",
	} {
		assert.Contains(t, err.Error(), field)
	}
}
