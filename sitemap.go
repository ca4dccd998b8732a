package main

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"folio/views"
)

// articleSegment is the URL path segment for an article type, matching the
// registered routes ("projects" but "research").
func articleSegment(typ string) string {
	return strings.Trim(views.SectionPath(typ), "/")
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

var sitemapPages = []string{"", "cv", "projects", "research", "training", "volunteer", "hobbies", "contact", "about"}

func (a *App) handleSitemap(c echo.Context) error {
	base := a.Config.Site.URL
	var urls []sitemapURL
	for _, p := range sitemapPages {
		if p == "" {
			urls = append(urls, sitemapURL{Loc: BuildURL(base)})
			continue
		}
		urls = append(urls, sitemapURL{Loc: BuildURL(base, p)})
	}
	for _, typ := range []string{"project", "research"} {
		articles, err := a.Store.ListArticles(typ, true)
		if err != nil {
			c.Logger().Errorf("sitemap: list %s articles: %v", typ, err)
			continue
		}
		for _, art := range articles {
			urls = append(urls, sitemapURL{
				Loc:     BuildURL(base, articleSegment(typ), art.Slug),
				LastMod: lastModDate(art.UpdatedAt),
			})
		}
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// handleFeed serves an RSS 2.0 feed of all published articles, newest first.
func (a *App) handleFeed(c echo.Context) error {
	base := a.Config.Site.URL
	var items []rssItem
	for _, typ := range []string{"project", "research"} {
		articles, err := a.Store.ListArticles(typ, true)
		if err != nil {
			c.Logger().Errorf("feed: list %s articles: %v", typ, err)
			continue
		}
		for _, art := range articles {
			articleURL := BuildURL(base, articleSegment(typ), art.Slug)
			pubDate := ""
			if t, err := time.Parse(time.RFC3339, art.CreatedAt); err == nil {
				pubDate = t.Format(time.RFC1123Z)
			}
			items = append(items, rssItem{
				Title:       art.Title,
				Link:        articleURL,
				Description: art.Excerpt,
				PubDate:     pubDate,
				GUID:        articleURL,
			})
		}
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Site.Name,
			Link:        base,
			Description: a.Config.Site.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nDisallow: /admin/\nSitemap: " + a.Config.Site.URL + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func lastModDate(ts string) string {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.Format("2006-01-02")
	}
	return ""
}
