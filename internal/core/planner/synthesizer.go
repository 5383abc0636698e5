package planner

import (
	"strings"

	"sem-planner/internal/core/domain"
)

// modifiers is the vocabulary keyword variations are built from. Only the
// first modifierCount entries are used.
var modifiers = []string{
	"best", "top", "affordable", "professional", "expert", "local",
	"near me", "services", "company", "agency", "consultant",
	"cost", "price", "cheap", "premium", "custom",
}

const (
	modifierCount = 5

	// volumeSpan is the width of the synthetic search volume range that
	// starts at the configured minimum.
	volumeSpan = 10000
)

// Bid ranges for synthetic top of page bids, in currency units.
const (
	bidLowMin   = 0.5
	bidLowSpan  = 5.0
	bidHighMin  = 5.0
	bidHighSpan = 10.0
)

// Synthesizer produces keyword candidates with synthetic metrics. It stands
// in for a keyword research integration.
type Synthesizer struct {
	settings Settings
	rnd      Random
}

func NewSynthesizer(settings Settings, rnd Random) *Synthesizer {
	return &Synthesizer{settings: settings, rnd: rnd}
}

// Generate expands the seed terms (or the configured sample keywords when
// no usable seed is given) into variations and attaches metrics to each.
// Records below the minimum search volume are dropped.
func (s *Synthesizer) Generate(seeds []string, classifier Classifier) []domain.Keyword {
	bases := cleanSeeds(seeds)
	if len(bases) == 0 {
		bases = s.settings.Keywords.SampleKeywords
	}

	keywords := make([]domain.Keyword, 0, len(bases)*(1+2*modifierCount+3))
	for _, base := range bases {
		for _, text := range Variations(base) {
			keywords = append(keywords, s.keyword(text, classifier))
		}
	}

	minVolume := s.settings.Keywords.MinSearchVolume
	filtered := keywords[:0]
	for _, kw := range keywords {
		if kw.SearchVolume >= minVolume {
			filtered = append(filtered, kw)
		}
	}
	return filtered
}

// Variations returns base itself followed by its modifier and long-tail
// variations.
func Variations(base string) []string {
	out := make([]string, 0, 1+2*modifierCount+3)
	out = append(out, base)
	for _, mod := range modifiers[:modifierCount] {
		out = append(out, mod+" "+base, base+" "+mod)
	}
	out = append(out,
		"how to "+base,
		base+" tips",
		base+" guide",
	)
	return out
}

func (s *Synthesizer) keyword(text string, classifier Classifier) domain.Keyword {
	low := round2(s.rnd.Float64()*bidLowSpan + bidLowMin)
	high := round2(s.rnd.Float64()*bidHighSpan + bidHighMin)
	if low > high {
		low, high = high, low
	}

	return domain.Keyword{
		Text:         text,
		SearchVolume: s.settings.Keywords.MinSearchVolume + s.rnd.IntN(volumeSpan),
		BidLow:       low,
		BidHigh:      high,
		Competition:  s.competition(),
		Intent:       classifier.Classify(text),
	}
}

func (s *Synthesizer) competition() domain.Competition {
	levels := s.settings.Analysis.CompetitionLevels
	if len(levels) == 0 {
		return domain.CompetitionMedium
	}
	return levels[s.rnd.IntN(len(levels))]
}

func cleanSeeds(seeds []string) []string {
	out := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		if seed = strings.TrimSpace(seed); seed != "" {
			out = append(out, seed)
		}
	}
	return out
}

// Summarize computes the aggregates reported alongside a generated list.
func Summarize(keywords []domain.Keyword) domain.KeywordAnalysis {
	out := domain.KeywordAnalysis{
		Keywords:      keywords,
		TotalKeywords: len(keywords),
	}
	if len(keywords) == 0 {
		return out
	}
	var volume int
	for _, kw := range keywords {
		volume += kw.SearchVolume
	}
	out.AverageSearchVolume = int(float64(volume)/float64(len(keywords)) + 0.5)
	out.AverageCPC = AverageCPC(keywords)
	return out
}
