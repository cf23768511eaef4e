package scraper

import (
	"fmt"

	"github.com/jonesrussell/news-aggregator/internal/source"
)

// siteConfigs is the fixed source set. Selectors are the site-specific
// heuristic glue; everything above them treats each entry as a black
// box behind source.Adapter.
var siteConfigs = []SiteConfig{
	{
		ID:          "bbc",
		DisplayName: "BBC News",
		BaseURL:     "https://www.bbc.co.uk",
		SearchPath:  "/search?q=%s&d=news_gnl",
		Sections: map[string]string{
			"top_stories": "/news",
			"world":       "/news/world",
			"business":    "/news/business",
			"technology":  "/news/technology",
			"health":      "/news/health",
			"sports":      "/sport",
		},
		DefaultSection: "/news",
		Selectors: Selectors{
			Item:    "div[data-testid='newport-card'], div[data-testid='liverpool-card']",
			Title:   "h2[data-testid='card-headline']",
			Link:    "a[data-testid='internal-link'], a[data-testid='external-anchor']",
			Summary: "p[data-testid='card-description']",
			Date:    "time, span[data-testid='card-metadata-lastupdated']",
			Image:   "img",
		},
	},
	{
		ID:          "nypost",
		DisplayName: "NY Post",
		BaseURL:     "https://nypost.com",
		SearchPath:  "/search/%s/",
		Sections: map[string]string{
			"top_stories":   "/news/",
			"world":         "/world-news/",
			"business":      "/business/",
			"technology":    "/tech/",
			"health":        "/health/",
			"sports":        "/sports/",
			"entertainment": "/entertainment/",
		},
		DefaultSection: "/news/",
		Selectors: Selectors{
			Item:    "div.story, article.story",
			Title:   "h3.story__headline, h2.story__headline",
			Link:    "a.postid-link, h3.story__headline a",
			Summary: "p.story__excerpt",
			Date:    "time, span.meta--byline time",
			Image:   "img",
		},
	},
	{
		ID:          "thesun",
		DisplayName: "The Sun",
		BaseURL:     "https://www.thesun.co.uk",
		SearchPath:  "/?s=%s",
		Sections: map[string]string{
			"top_stories": "/news/",
			"world":       "/news/worldnews/",
			"business":    "/money/",
			"technology":  "/tech/",
			"health":      "/health/",
			"sports":      "/sport/",
		},
		DefaultSection: "/news/",
		Selectors: Selectors{
			Item:    "div.teaser-item, article.teaser",
			Title:   "span.teaser__headline, h2.teaser__headline",
			Link:    "a.text-anchor-wrap, a.teaser-anchor",
			Summary: "p.teaser__lead",
			Date:    "time",
			Image:   "img.teaser__image",
		},
	},
	{
		ID:          "dailymail",
		DisplayName: "Daily Mail",
		BaseURL:     "https://www.dailymail.co.uk",
		SearchPath:  "/home/search.html?sel=site&searchPhrase=%s",
		Sections: map[string]string{
			"top_stories":   "/news/index.html",
			"world":         "/news/worldnews/index.html",
			"business":      "/money/index.html",
			"technology":    "/sciencetech/index.html",
			"health":        "/health/index.html",
			"sports":        "/sport/index.html",
			"entertainment": "/tvshowbiz/index.html",
		},
		DefaultSection: "/news/index.html",
		Selectors: Selectors{
			Item:    "div.article, div.sch-result",
			Title:   "h2.linkro-darkred, h3.sch-res-title",
			Link:    "h2.linkro-darkred a, h3.sch-res-title a",
			Summary: "p.sch-res-preview, div.articletext p",
			Date:    "h4.sch-res-info, time",
			Image:   "img",
		},
	},
	{
		ID:          "scmp",
		DisplayName: "South China Morning Post",
		BaseURL:     "https://www.scmp.com",
		SearchPath:  "/search/%s",
		Sections: map[string]string{
			"top_stories": "/news/hong-kong",
			"world":       "/news/world",
			"business":    "/business",
			"technology":  "/tech",
			"sports":      "/sport",
		},
		DefaultSection: "/news/hong-kong",
		Selectors: Selectors{
			Item:    "div[data-qa='ContentItem-container'], article",
			Title:   "span[data-qa='ContentHeadline-headline'], h2",
			Link:    "a[data-qa='ContentItem-link'], a",
			Summary: "p[data-qa='ContentSummary-summary']",
			Date:    "time",
			Image:   "img",
		},
	},
	{
		ID:          "vnexpress",
		DisplayName: "VnExpress International",
		BaseURL:     "https://e.vnexpress.net",
		SearchPath:  "/search?q=%s",
		Sections: map[string]string{
			"top_stories": "/news",
			"world":       "/news/world",
			"business":    "/news/business",
			"sports":      "/news/sports",
			"health":      "/news/life/health",
		},
		DefaultSection: "/news",
		Selectors: Selectors{
			Item:    "article.item_news, div.item_list_folder",
			Title:   "h4.title_news_site, h2.title_news",
			Link:    "h4.title_news_site a, h2.title_news a",
			Summary: "p.lead_news_site, p.description",
			Date:    "span.time, time",
			Image:   "img.lazy, img",
		},
	},
	{
		ID:          "bangkokpost",
		DisplayName: "Bangkok Post",
		BaseURL:     "https://www.bangkokpost.com",
		SearchPath:  "/search?q=%s",
		Sections: map[string]string{
			"top_stories": "/most-recent",
			"world":       "/world",
			"business":    "/business",
			"technology":  "/life/tech",
			"sports":      "/sports",
		},
		DefaultSection: "/most-recent",
		Selectors: Selectors{
			Item:    "div.news--list, div.search--listing",
			Title:   "h3 a, h2 a",
			Link:    "h3 a, h2 a",
			Summary: "p.news--list--detail, p",
			Date:    "div.news--list--date, span.date",
			Image:   "img",
		},
	},
	{
		ID:          "asahi",
		DisplayName: "The Asahi Shimbun",
		BaseURL:     "https://www.asahi.com",
		SearchPath:  "/ajw/search/results/?keywords=%s",
		Sections: map[string]string{
			"top_stories": "/ajw/",
			"world":       "/ajw/asia_world/",
			"business":    "/ajw/business/",
			"sports":      "/ajw/sports/",
		},
		DefaultSection: "/ajw/",
		Selectors: Selectors{
			Item:    "li.SearchResult, ul.List li",
			Title:   "p.Title, a em",
			Link:    "a",
			Summary: "p.Txt",
			Date:    "p.Date, time",
			Image:   "img",
		},
	},
	{
		ID:          "yomiuri",
		DisplayName: "The Japan News",
		BaseURL:     "https://japannews.yomiuri.co.jp",
		SearchPath:  "/?s=%s",
		Sections: map[string]string{
			"top_stories": "/latestnews/",
			"world":       "/world/",
			"business":    "/business/",
			"sports":      "/sports/",
		},
		DefaultSection: "/latestnews/",
		Selectors: Selectors{
			Item:    "article.article-block, li.clearfix",
			Title:   "h2.article-block-ttl, h3",
			Link:    "a",
			Summary: "p.article-block-txt",
			Date:    "time, p.article-block-date",
			Image:   "img",
		},
	},
}

// Descriptors builds the full fixed source set as registry entries.
func Descriptors() ([]source.Descriptor, error) {
	out := make([]source.Descriptor, 0, len(siteConfigs))
	for _, cfg := range siteConfigs {
		adapter, err := NewSiteAdapter(cfg)
		if err != nil {
			return nil, fmt.Errorf("build adapter %s: %w", cfg.ID, err)
		}
		out = append(out, source.Descriptor{
			ID:          cfg.ID,
			DisplayName: cfg.DisplayName,
			Adapter:     adapter,
		})
	}
	return out, nil
}
