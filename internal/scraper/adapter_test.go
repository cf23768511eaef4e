package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const listingHTML = `
<html><body>
  <div class="card">
    <h3 class="headline">First story</h3>
    <a class="story-link" href="/news/first">read</a>
    <p class="teaser">A short teaser.</p>
    <time class="stamp" datetime="2024-01-15T08:30:00">2 hours ago</time>
    <img class="thumb" src="/images/first.jpg">
  </div>
  <div class="card">
    <h3 class="headline">Second story</h3>
    <a class="story-link" href="https://other.example.com/second">read</a>
    <time class="stamp">15 Jan 2024</time>
    <img class="thumb" data-src="https://cdn.example.com/second.jpg">
  </div>
  <div class="card">
    <h3 class="headline">First story duplicate</h3>
    <a class="story-link" href="/news/first">read</a>
  </div>
  <div class="card">
    <h3 class="headline"></h3>
    <a class="story-link" href="/news/untitled">read</a>
  </div>
  <div class="card">
    <h3 class="headline">Third story</h3>
    <a class="story-link" href="/news/third">read</a>
  </div>
</body></html>`

func newTestAdapter(t *testing.T) *SiteAdapter {
	t.Helper()
	a, err := NewSiteAdapter(SiteConfig{
		ID:          "example",
		DisplayName: "Example News",
		BaseURL:     "https://news.example.com",
		SearchPath:  "/search?q=%s",
		Selectors: Selectors{
			Item:    "div.card",
			Title:   "h3.headline",
			Link:    "a.story-link",
			Summary: "p.teaser",
			Date:    "time.stamp",
			Image:   "img.thumb",
		},
	})
	if err != nil {
		t.Fatalf("NewSiteAdapter() error: %v", err)
	}
	return a
}

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestExtract(t *testing.T) {
	a := newTestAdapter(t)
	articles := a.extract(parseDoc(t, listingHTML), 10, "news")

	// Duplicate URL and empty title are skipped.
	if len(articles) != 3 {
		t.Fatalf("extracted %d articles, want 3", len(articles))
	}

	first := articles[0]
	if first.Title != "First story" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.URL != "https://news.example.com/news/first" {
		t.Errorf("URL = %q, want the relative href absolutized", first.URL)
	}
	if first.Summary != "A short teaser." {
		t.Errorf("Summary = %q", first.Summary)
	}
	if first.PublishedDate != "2024-01-15T08:30:00" {
		t.Errorf("PublishedDate = %q, want the datetime attribute", first.PublishedDate)
	}
	if first.ImageURL != "https://news.example.com/images/first.jpg" {
		t.Errorf("ImageURL = %q", first.ImageURL)
	}
	if first.Source != "Example News" {
		t.Errorf("Source = %q", first.Source)
	}
	if first.ScrapedAt == "" {
		t.Error("ScrapedAt is empty")
	}

	second := articles[1]
	if second.URL != "https://other.example.com/second" {
		t.Errorf("URL = %q, absolute hrefs pass through", second.URL)
	}
	if second.PublishedDate != "15 Jan 2024" {
		t.Errorf("PublishedDate = %q, want element text without datetime attr", second.PublishedDate)
	}
	if second.ImageURL != "https://cdn.example.com/second.jpg" {
		t.Errorf("ImageURL = %q, want the data-src fallback", second.ImageURL)
	}
}

func TestExtractHonorsLimit(t *testing.T) {
	a := newTestAdapter(t)
	articles := a.extract(parseDoc(t, listingHTML), 2, "news")
	if len(articles) != 2 {
		t.Fatalf("extracted %d articles, want limit 2", len(articles))
	}
}

func TestExtractMissingOptionalSelectors(t *testing.T) {
	a, err := NewSiteAdapter(SiteConfig{
		ID:          "bare",
		DisplayName: "Bare News",
		BaseURL:     "https://bare.example.com",
		SearchPath:  "/q/%s",
		Selectors: Selectors{
			Item:  "div.card",
			Title: "h3.headline",
			Link:  "a.story-link",
		},
	})
	if err != nil {
		t.Fatalf("NewSiteAdapter() error: %v", err)
	}

	articles := a.extract(parseDoc(t, listingHTML), 10, "news")
	if len(articles) == 0 {
		t.Fatal("extracted nothing")
	}
	for _, art := range articles {
		if art.Summary != "" || art.PublishedDate != "" || art.ImageURL != "" {
			t.Errorf("optional fields populated without selectors: %+v", art)
		}
	}
}

func TestAbsoluteURL(t *testing.T) {
	a := newTestAdapter(t)

	tests := []struct {
		raw  string
		want string
	}{
		{"/news/story", "https://news.example.com/news/story"},
		{"https://other.example.com/x", "https://other.example.com/x"},
		{"  /padded  ", "https://news.example.com/padded"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := a.absoluteURL(tt.raw); got != tt.want {
			t.Errorf("absoluteURL(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestSiteConfigsWellFormed(t *testing.T) {
	descs, err := Descriptors()
	if err != nil {
		t.Fatalf("Descriptors() error: %v", err)
	}
	if len(descs) != 9 {
		t.Fatalf("Descriptors() returned %d sources, want 9", len(descs))
	}

	seen := make(map[string]bool)
	for _, d := range descs {
		if d.ID == "" || d.DisplayName == "" {
			t.Errorf("descriptor %+v missing id or display name", d)
		}
		if seen[d.ID] {
			t.Errorf("duplicate site id %q", d.ID)
		}
		seen[d.ID] = true
		if d.Adapter == nil {
			t.Errorf("site %q has no adapter", d.ID)
		}
	}

	for _, cfg := range siteConfigs {
		if !strings.Contains(cfg.SearchPath, "%s") {
			t.Errorf("site %q search path %q has no query slot", cfg.ID, cfg.SearchPath)
		}
		if cfg.Selectors.Item == "" || cfg.Selectors.Title == "" || cfg.Selectors.Link == "" {
			t.Errorf("site %q missing a required selector", cfg.ID)
		}
	}
}
