package planner

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"sem-planner/internal/core/domain"
)

// minSiteTermLen keeps two letter domain labels from matching inside
// unrelated words.
const minSiteTermLen = 3

// Classifier assigns an intent to keyword text. The zero value applies
// only the generic text rules; NewClassifier adds brand and competitor
// matching derived from the advertiser's websites.
type Classifier struct {
	brandTerms      []string
	competitorTerms []string
}

// NewClassifier builds a classifier aware of the brand and competitor
// sites. Either site may be empty.
func NewClassifier(brandWebsite, competitorWebsite string) Classifier {
	return Classifier{
		brandTerms:      SiteTerms(brandWebsite),
		competitorTerms: SiteTerms(competitorWebsite),
	}
}

// ClassifyIntent applies the generic text rules only.
func ClassifyIntent(keyword string) domain.Intent {
	return Classifier{}.Classify(keyword)
}

// Classify returns the first matching intent. Site terms are checked
// before the text rules, so a keyword naming the brand is always BRAND.
// Site terms only match whole words: "pro" does not match "professional".
func (c Classifier) Classify(keyword string) domain.Intent {
	kw := strings.ToLower(keyword)
	words := " " + strings.Join(strings.Fields(kw), " ") + " "

	switch {
	case containsWords(words, c.brandTerms...):
		return domain.IntentBrand
	case containsWords(words, c.competitorTerms...):
		return domain.IntentCompetitor
	case containsAny(kw, "near me", "local"):
		return domain.IntentLocation
	case containsAny(kw, "how to", "guide", "tips"):
		return domain.IntentLongTail
	case containsAny(kw, "vs", "alternative"):
		return domain.IntentCompetitor
	case len(strings.Fields(kw)) > 3:
		return domain.IntentLongTail
	default:
		return domain.IntentCategory
	}
}

// SiteTerms extracts the registrable name of a site, e.g.
// "https://www.trendy-fashion-store.co.uk/shop" yields
// ["trendy-fashion-store", "trendy fashion store"]. Unparseable or very
// short names yield nil.
func SiteTerms(site string) []string {
	site = strings.TrimSpace(strings.ToLower(site))
	if site == "" {
		return nil
	}
	if !strings.Contains(site, "://") {
		site = "https://" + site
	}
	u, err := url.Parse(site)
	if err != nil {
		return nil
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if host == "" {
		return nil
	}

	label := host
	if etld1, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		suffix, _ := publicsuffix.PublicSuffix(host)
		label = strings.TrimSuffix(etld1, "."+suffix)
	} else if i := strings.IndexByte(host, '.'); i > 0 {
		label = host[:i]
	}
	if len(label) < minSiteTermLen {
		return nil
	}

	terms := []string{label}
	if spaced := strings.ReplaceAll(label, "-", " "); spaced != label {
		terms = append(terms, spaced)
	}
	return terms
}

// containsWords reports whether any term occurs in padded on word
// boundaries. padded is single-space separated with a leading and trailing
// space.
func containsWords(padded string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(padded, " "+term+" ") {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
