package planner

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sem-planner/internal/core/domain"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestVariations(t *testing.T) {
	want := []string{
		"seo",
		"best seo", "seo best",
		"top seo", "seo top",
		"affordable seo", "seo affordable",
		"professional seo", "seo professional",
		"expert seo", "seo expert",
		"how to seo", "seo tips", "seo guide",
	}
	if diff := cmp.Diff(want, Variations("seo")); diff != "" {
		t.Fatalf("Variations mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateMetrics(t *testing.T) {
	settings := DefaultSettings()
	s := NewSynthesizer(settings, seeded())

	keywords := s.Generate([]string{"web design", "seo optimization"}, Classifier{})
	require.Len(t, keywords, 28)

	minVolume := settings.Keywords.MinSearchVolume
	for _, kw := range keywords {
		assert.GreaterOrEqual(t, kw.SearchVolume, minVolume, kw.Text)
		assert.Less(t, kw.SearchVolume, minVolume+10000, kw.Text)
		assert.GreaterOrEqual(t, kw.BidLow, 0.5, kw.Text)
		assert.LessOrEqual(t, kw.BidHigh, 15.0, kw.Text)
		assert.LessOrEqual(t, kw.BidLow, kw.BidHigh, kw.Text)
		assert.True(t, slices.Contains(settings.Analysis.CompetitionLevels, kw.Competition), kw.Text)
		assert.Equal(t, ClassifyIntent(kw.Text), kw.Intent, kw.Text)
	}
	assert.Equal(t, "web design", keywords[0].Text)
	assert.Equal(t, "seo optimization", keywords[14].Text)
}

func TestGenerateIsReproducibleWithSeed(t *testing.T) {
	a := NewSynthesizer(DefaultSettings(), seeded()).Generate([]string{"ppc advertising"}, Classifier{})
	b := NewSynthesizer(DefaultSettings(), seeded()).Generate([]string{"ppc advertising"}, Classifier{})
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different keywords (-first +second):\n%s", diff)
	}
}

func TestGenerateFallsBackToSampleKeywords(t *testing.T) {
	settings := DefaultSettings()
	s := NewSynthesizer(settings, seeded())

	for _, seeds := range [][]string{nil, {}, {"  ", ""}} {
		keywords := s.Generate(seeds, Classifier{})
		assert.Len(t, keywords, len(settings.Keywords.SampleKeywords)*14)
		assert.Equal(t, settings.Keywords.SampleKeywords[0], keywords[0].Text)
	}
}

func TestGenerateTrimsSeeds(t *testing.T) {
	keywords := NewSynthesizer(DefaultSettings(), seeded()).Generate([]string{"  web design "}, Classifier{})
	require.NotEmpty(t, keywords)
	assert.Equal(t, "web design", keywords[0].Text)
}

func TestGenerateAssignsBrandIntent(t *testing.T) {
	s := NewSynthesizer(DefaultSettings(), seeded())
	keywords := s.Generate([]string{"trendy fashion store"}, NewClassifier("https://trendy-fashion-store.com", ""))

	require.Len(t, keywords, 14)
	for _, kw := range keywords {
		assert.Equal(t, domain.IntentBrand, kw.Intent, kw.Text)
	}
}

func TestSummarize(t *testing.T) {
	keywords := []domain.Keyword{
		{Text: "a", SearchVolume: 1000, BidLow: 1, BidHigh: 3},
		{Text: "b", SearchVolume: 2001, BidLow: 2, BidHigh: 6},
	}
	got := Summarize(keywords)

	assert.Equal(t, 2, got.TotalKeywords)
	assert.Equal(t, 1501, got.AverageSearchVolume)
	assert.Equal(t, 3.0, got.AverageCPC)

	empty := Summarize(nil)
	assert.Zero(t, empty.TotalKeywords)
	assert.Zero(t, empty.AverageCPC)
}
