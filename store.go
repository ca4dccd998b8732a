package main

import (
	"errors"

	"folio/views"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ErrMultipleRows is returned when a singleton lookup matches more than one
// row. Singleton content types (cv, about) must have at most one item.
var ErrMultipleRows = errors.New("multiple rows for singleton")

// ContentTypes lists every managed content type tag.
var ContentTypes = []string{"cv", "project", "research", "training", "volunteer", "hobby", "contact", "about"}

// SectionTypes lists the CV section kinds in their canonical render order.
var SectionTypes = []string{"header", "experience", "education", "skills", "projects", "languages", "certifications", "achievements"}

// BucketFor returns the media bucket a content type uploads into. CV files
// live apart from images so the download handler can serve them as PDFs.
func BucketFor(contentType string) string {
	if contentType == "cv" {
		return "cv-files"
	}
	return "media"
}

// Store provides CRUD for content items, articles, article blocks, and CV
// sections. Two implementations exist: a SQLite-backed store and an
// in-memory store used when no database is configured and in tests.
type Store interface {
	// Content items.
	ListContent(contentType string) ([]views.ContentItem, error)
	ListAllContent() ([]views.ContentItem, error)
	// GetSingleton returns the single item of a type, ErrNotFound when none
	// exists and ErrMultipleRows when the singleton constraint is violated.
	GetSingleton(contentType string) (views.ContentItem, error)
	GetContent(id string) (views.ContentItem, error)
	CreateContent(item views.ContentItem) (views.ContentItem, error)
	UpdateContent(item views.ContentItem) error
	DeleteContent(id string) error

	// Articles.
	ListArticles(articleType string, publishedOnly bool) ([]views.Article, error)
	ListAllArticles() ([]views.Article, error)
	GetArticle(id string) (views.Article, error)
	GetArticleBySlug(slug string) (views.Article, error)
	CreateArticle(a views.Article) (views.Article, error)
	UpdateArticle(a views.Article) error
	// DeleteArticle removes an article and all of its blocks.
	DeleteArticle(id string) error

	// Article blocks.
	ListBlocks(articleID string) ([]views.ArticleBlock, error)
	GetBlock(id string) (views.ArticleBlock, error)
	CreateBlock(b views.ArticleBlock) (views.ArticleBlock, error)
	// UpdateBlock applies a partial update: only the named fields change.
	// Allowed keys are content, image_url, image_alt, map_embed.
	UpdateBlock(id string, fields map[string]string) error
	DeleteBlock(id string) error
	// ReorderBlocks rewrites order_index for the given blocks so the list
	// order matches orderedIDs, numbering from zero.
	ReorderBlocks(articleID string, orderedIDs []string) error

	// CV sections.
	ListCVSections() ([]views.CVSection, error)
	GetCVSection(id string) (views.CVSection, error)
	CreateCVSection(s views.CVSection) (views.CVSection, error)
	UpdateCVSection(s views.CVSection) error
	DeleteCVSection(id string) error

	Close() error
}

var blockFields = map[string]bool{
	"content":   true,
	"image_url": true,
	"image_alt": true,
	"map_embed": true,
}
