package planner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"sem-planner/internal/core/domain"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		keyword string
		want    domain.Intent
	}{
		{"plumbing services near me", domain.IntentLocation},
		{"Local Plumber", domain.IntentLocation},
		{"how to fix a leak", domain.IntentLongTail},
		{"seo guide", domain.IntentLongTail},
		{"hubspot alternative", domain.IntentCompetitor},
		{"google ads vs facebook ads", domain.IntentCompetitor},
		{"cheap running shoes for kids", domain.IntentLongTail},
		{"running shoes", domain.IntentCategory},
		// location wins over long-tail when both match
		{"how to find a local plumber", domain.IntentLocation},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.keyword))
		})
	}
}

func TestClassifierSiteTerms(t *testing.T) {
	c := NewClassifier("https://www.trendy-fashion-store.com", "fashion-competitor.com")

	assert.Equal(t, domain.IntentBrand, c.Classify("trendy fashion store coupons"))
	assert.Equal(t, domain.IntentBrand, c.Classify("trendy-fashion-store near me"))
	assert.Equal(t, domain.IntentCompetitor, c.Classify("fashion competitor near me"))
	assert.Equal(t, domain.IntentCategory, c.Classify("summer dresses"))
}

func TestClassifierSiteTermsMatchWholeWords(t *testing.T) {
	tests := []struct {
		site    string
		keyword string
		want    domain.Intent
	}{
		{"art.com", "smart home installers near me", domain.IntentLocation},
		{"pro.com", "professional plumbing", domain.IntentCategory},
		{"vice.com", "local seo services", domain.IntentLocation},
		{"ads.com", "google ads guide", domain.IntentBrand},
		{"ads.com", "google adsense guide", domain.IntentLongTail},
		{"pro.com", "pro plumbing", domain.IntentBrand},
		{"pro.com", "plumbing  PRO", domain.IntentBrand},
		{"fix-it.com", "fix it plumbing", domain.IntentBrand},
		{"fix-it.com", "fixit plumbing", domain.IntentCategory},
	}
	for _, tt := range tests {
		t.Run(tt.site+"/"+tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.want, NewClassifier(tt.site, "").Classify(tt.keyword))
		})
	}

	competitor := NewClassifier("", "vice.com")
	assert.Equal(t, domain.IntentCategory, competitor.Classify("advice column"))
	assert.Equal(t, domain.IntentCompetitor, competitor.Classify("vice plumbing"))
}

func TestSiteTerms(t *testing.T) {
	tests := []struct {
		site string
		want []string
	}{
		{"https://www.trendy-fashion-store.com/shop", []string{"trendy-fashion-store", "trendy fashion store"}},
		{"digitalmarketingpro.com", []string{"digitalmarketingpro"}},
		{"http://shop.example.co.uk", []string{"example"}},
		{"https://ab.com", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.site, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SiteTerms(tt.site)); diff != "" {
				t.Fatalf("SiteTerms(%q) mismatch (-want +got):\n%s", tt.site, diff)
			}
		})
	}
}
