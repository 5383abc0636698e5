package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sem-planner/internal/core/domain"
	"sem-planner/internal/core/planner"
)

func TestLoadPlannerSettingsDefaults(t *testing.T) {
	got, err := LoadPlannerSettings("")
	require.NoError(t, err)
	assert.Equal(t, planner.DefaultSettings(), got)
}

func TestLoadPlannerSettingsOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	raw := `
campaigns:
  conversion_rate: 0.05
keywords:
  sample_keywords:
    - emergency plumber
    - drain cleaning
analysis:
  competition_levels: [LOW, HIGH]
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	got, err := LoadPlannerSettings(path)
	require.NoError(t, err)

	defaults := planner.DefaultSettings()
	assert.Equal(t, 0.05, got.Campaigns.ConversionRate)
	assert.Equal(t, defaults.Campaigns.DefaultCPC, got.Campaigns.DefaultCPC)
	assert.Equal(t, defaults.Campaigns.DefaultBudgets, got.Campaigns.DefaultBudgets)
	assert.Equal(t, []string{"emergency plumber", "drain cleaning"}, got.Keywords.SampleKeywords)
	assert.Equal(t, defaults.Keywords.MinSearchVolume, got.Keywords.MinSearchVolume)
	assert.Equal(t, []domain.Competition{domain.CompetitionLow, domain.CompetitionHigh}, got.Analysis.CompetitionLevels)
	assert.Equal(t, defaults.Shopping, got.Shopping)
	require.NoError(t, got.Validate())
}

func TestLoadPlannerSettingsErrors(t *testing.T) {
	_, err := LoadPlannerSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("campaigns: [not, a, map"), 0o600))
	_, err = LoadPlannerSettings(path)
	require.Error(t, err)
}
