package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"folio/views"
)

func mustPublishArticle(t *testing.T, s Store, typ, slug string) {
	t.Helper()
	_, err := s.CreateArticle(views.Article{Slug: slug, Type: typ, Status: "published", Title: slug})
	if err != nil {
		t.Fatalf("CreateArticle failed: %v", err)
	}
}

func TestSitemapArticlePaths(t *testing.T) {
	a := newTestApp(t)
	mustPublishArticle(t, a.Store, "project", "folio-site")
	mustPublishArticle(t, a.Store, "research", "deep-learning")

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	if err := a.handleSitemap(a.Echo.NewContext(req, rec)); err != nil {
		t.Fatalf("sitemap handler failed: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "http://localhost:3000/projects/folio-site/") {
		t.Errorf("sitemap missing project URL:\n%s", body)
	}
	// Research is its own plural; the section segment must match the
	// registered /research/:slug/ route.
	if !strings.Contains(body, "http://localhost:3000/research/deep-learning/") {
		t.Errorf("sitemap missing research URL:\n%s", body)
	}
	if strings.Contains(body, "researchs") {
		t.Errorf("sitemap contains a pluralized research path:\n%s", body)
	}
}

func TestFeedArticleLinks(t *testing.T) {
	a := newTestApp(t)
	mustPublishArticle(t, a.Store, "research", "deep-learning")

	req := httptest.NewRequest(http.MethodGet, "/feed.xml", nil)
	rec := httptest.NewRecorder()
	if err := a.handleFeed(a.Echo.NewContext(req, rec)); err != nil {
		t.Fatalf("feed handler failed: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "http://localhost:3000/research/deep-learning/") {
		t.Errorf("feed missing research link:\n%s", body)
	}
	if strings.Contains(body, "researchs") {
		t.Errorf("feed contains a pluralized research path:\n%s", body)
	}
}

func TestSitemapSkipsDrafts(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.Store.CreateArticle(views.Article{Slug: "wip", Type: "project", Status: "draft"}); err != nil {
		t.Fatalf("CreateArticle failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	if err := a.handleSitemap(a.Echo.NewContext(req, rec)); err != nil {
		t.Fatalf("sitemap handler failed: %v", err)
	}
	if strings.Contains(rec.Body.String(), "wip") {
		t.Error("draft article should not appear in the sitemap")
	}
}
