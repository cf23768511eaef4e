package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/news-aggregator/internal/domain"
)

// Selectors describes where article fields live in a site's markup.
type Selectors struct {
	// Item matches one article card on the listing page.
	Item string
	// Title matches the headline within an item.
	Title string
	// Link matches the anchor carrying the article URL.
	Link string
	// Summary matches the description text. Optional.
	Summary string
	// Date matches the timestamp element. The datetime attribute is
	// preferred over the element text. Optional.
	Date string
	// Image matches the article image. Optional.
	Image string
}

// SiteConfig is the declarative description of one news site. The
// extraction routine is shared; only these values differ per source.
type SiteConfig struct {
	ID          string
	DisplayName string
	BaseURL     string
	// SearchPath is a printf template taking the escaped query.
	SearchPath string
	// Sections maps category hints to listing paths. Hints the site
	// has no section for fall through to DefaultSection.
	Sections map[string]string
	// DefaultSection is the landing path used for unknown categories.
	DefaultSection string
	Selectors      Selectors
}

// SiteAdapter scrapes one news site's search and section listing
// pages. It implements source.Adapter.
type SiteAdapter struct {
	cfg    SiteConfig
	client *Client
	base   *url.URL
}

// NewSiteAdapter builds an adapter for one site config with its own
// rate-limited client.
func NewSiteAdapter(cfg SiteConfig) (*SiteAdapter, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("site %s: parse base url: %w", cfg.ID, err)
	}
	return &SiteAdapter{
		cfg:    cfg,
		client: NewClient(),
		base:   base,
	}, nil
}

// SearchNews fetches the site's search page for the query and extracts
// up to limit records, tagged with the "news" category.
func (a *SiteAdapter) SearchNews(ctx context.Context, query string, limit int) ([]domain.Article, error) {
	searchURL := a.cfg.BaseURL + fmt.Sprintf(a.cfg.SearchPath, url.QueryEscape(query))

	doc, err := a.client.Fetch(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	return a.extract(doc, limit, "news"), nil
}

// LatestNews fetches the section listing the category hint maps to and
// extracts up to limit records tagged with that category.
func (a *SiteAdapter) LatestNews(ctx context.Context, category string, limit int) ([]domain.Article, error) {
	path, ok := a.cfg.Sections[strings.ToLower(category)]
	if !ok {
		path = a.cfg.DefaultSection
	}

	doc, err := a.client.Fetch(ctx, a.cfg.BaseURL+path)
	if err != nil {
		return nil, err
	}

	return a.extract(doc, limit, category), nil
}

// extract walks the listing markup in document order, so repeated
// calls over the same page yield the same sequence. URLs are unique
// within the batch.
func (a *SiteAdapter) extract(doc *goquery.Document, limit int, category string) []domain.Article {
	scrapedAt := domain.NewScrapedAt()
	seen := make(map[string]bool, limit)
	articles := make([]domain.Article, 0, limit)

	doc.Find(a.cfg.Selectors.Item).EachWithBreak(func(_ int, item *goquery.Selection) bool {
		title := strings.TrimSpace(item.Find(a.cfg.Selectors.Title).First().Text())
		link := a.absoluteURL(firstAttr(item.Find(a.cfg.Selectors.Link).First(), "href"))
		if title == "" || link == "" || seen[link] {
			return true
		}
		seen[link] = true

		articles = append(articles, domain.Article{
			Title:          title,
			URL:            link,
			Summary:        domain.TruncateSummary(a.summaryOf(item)),
			PublishedDate:  a.dateOf(item),
			Source:         a.cfg.DisplayName,
			Category:       category,
			ScrapedAt:      scrapedAt,
			RelevanceScore: domain.DefaultRelevanceScore,
			ImageURL:       a.imageOf(item),
		})

		return len(articles) < limit
	})

	return articles
}

func (a *SiteAdapter) summaryOf(item *goquery.Selection) string {
	if a.cfg.Selectors.Summary == "" {
		return ""
	}
	return strings.TrimSpace(item.Find(a.cfg.Selectors.Summary).First().Text())
}

// dateOf prefers the machine-readable datetime attribute; the visible
// text is often relative ("2 hours ago") and left to the lenient
// parser downstream.
func (a *SiteAdapter) dateOf(item *goquery.Selection) string {
	if a.cfg.Selectors.Date == "" {
		return ""
	}
	el := item.Find(a.cfg.Selectors.Date).First()
	if dt := firstAttr(el, "datetime"); dt != "" {
		return dt
	}
	return strings.TrimSpace(el.Text())
}

func (a *SiteAdapter) imageOf(item *goquery.Selection) string {
	if a.cfg.Selectors.Image == "" {
		return ""
	}
	el := item.Find(a.cfg.Selectors.Image).First()
	raw := firstAttr(el, "src")
	if raw == "" {
		raw = firstAttr(el, "data-src")
	}
	img := a.absoluteURL(raw)
	if !strings.HasPrefix(img, "http://") && !strings.HasPrefix(img, "https://") {
		return ""
	}
	return img
}

// absoluteURL resolves a scraped href against the site base URL.
func (a *SiteAdapter) absoluteURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return a.base.ResolveReference(ref).String()
}

func firstAttr(sel *goquery.Selection, name string) string {
	val, _ := sel.Attr(name)
	return strings.TrimSpace(val)
}
