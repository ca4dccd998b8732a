package main

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"folio/views"
)

// memStore is an in-memory Store used when no database path is configured
// (preview mode) and in tests. Data does not survive a restart.
type memStore struct {
	mu       sync.RWMutex
	content  map[string]views.ContentItem
	articles map[string]views.Article
	blocks   map[string]views.ArticleBlock
	sections map[string]views.CVSection
}

func newMemStore() *memStore {
	return &memStore{
		content:  make(map[string]views.ContentItem),
		articles: make(map[string]views.Article),
		blocks:   make(map[string]views.ArticleBlock),
		sections: make(map[string]views.CVSection),
	}
}

func (m *memStore) Close() error { return nil }

func (m *memStore) ListContent(contentType string) ([]views.ContentItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []views.ContentItem
	for _, it := range m.content {
		if it.Type == contentType {
			items = append(items, it)
		}
	}
	sortByOrder(items, func(it views.ContentItem) (int, string) { return it.OrderIndex, it.CreatedAt })
	return items, nil
}

func (m *memStore) ListAllContent() ([]views.ContentItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]views.ContentItem, 0, len(m.content))
	for _, it := range m.content {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Type != items[j].Type {
			return items[i].Type < items[j].Type
		}
		return items[i].OrderIndex < items[j].OrderIndex
	})
	return items, nil
}

func (m *memStore) GetSingleton(contentType string) (views.ContentItem, error) {
	items, err := m.ListContent(contentType)
	if err != nil {
		return views.ContentItem{}, err
	}
	switch len(items) {
	case 0:
		return views.ContentItem{}, ErrNotFound
	case 1:
		return items[0], nil
	default:
		return views.ContentItem{}, ErrMultipleRows
	}
}

func (m *memStore) GetContent(id string) (views.ContentItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	it, ok := m.content[id]
	if !ok {
		return views.ContentItem{}, ErrNotFound
	}
	return it, nil
}

func (m *memStore) CreateContent(item views.ContentItem) (views.ContentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	item.UpdatedAt = item.CreatedAt
	m.content[item.ID] = item
	return item, nil
}

func (m *memStore) UpdateContent(item views.ContentItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.content[item.ID]
	if !ok {
		return ErrNotFound
	}
	item.Type = cur.Type
	item.CreatedAt = cur.CreatedAt
	item.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	m.content[item.ID] = item
	return nil
}

func (m *memStore) DeleteContent(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.content, id)
	return nil
}

func (m *memStore) ListArticles(articleType string, publishedOnly bool) ([]views.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var articles []views.Article
	for _, a := range m.articles {
		if a.Type != articleType {
			continue
		}
		if publishedOnly && a.Status != "published" {
			continue
		}
		articles = append(articles, a)
	}
	sortByOrder(articles, func(a views.Article) (int, string) { return a.OrderIndex, a.CreatedAt })
	return articles, nil
}

func (m *memStore) ListAllArticles() ([]views.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	articles := make([]views.Article, 0, len(m.articles))
	for _, a := range m.articles {
		articles = append(articles, a)
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].CreatedAt > articles[j].CreatedAt })
	return articles, nil
}

func (m *memStore) GetArticle(id string) (views.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.articles[id]
	if !ok {
		return views.Article{}, ErrNotFound
	}
	return a, nil
}

func (m *memStore) GetArticleBySlug(slug string) (views.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return views.Article{}, ErrNotFound
}

func (m *memStore) CreateArticle(a views.Article) (views.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	a.UpdatedAt = a.CreatedAt
	m.articles[a.ID] = a
	return a, nil
}

func (m *memStore) UpdateArticle(a views.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.articles[a.ID]
	if !ok {
		return ErrNotFound
	}
	a.CreatedAt = cur.CreatedAt
	a.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	m.articles[a.ID] = a
	return nil
}

func (m *memStore) DeleteArticle(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for bid, b := range m.blocks {
		if b.ArticleID == id {
			delete(m.blocks, bid)
		}
	}
	delete(m.articles, id)
	return nil
}

func (m *memStore) ListBlocks(articleID string) ([]views.ArticleBlock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var blocks []views.ArticleBlock
	for _, b := range m.blocks {
		if b.ArticleID == articleID {
			blocks = append(blocks, b)
		}
	}
	sortByOrder(blocks, func(b views.ArticleBlock) (int, string) { return b.OrderIndex, b.CreatedAt })
	return blocks, nil
}

func (m *memStore) GetBlock(id string) (views.ArticleBlock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.blocks[id]
	if !ok {
		return views.ArticleBlock{}, ErrNotFound
	}
	return b, nil
}

func (m *memStore) CreateBlock(b views.ArticleBlock) (views.ArticleBlock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	b.UpdatedAt = b.CreatedAt
	m.blocks[b.ID] = b
	return b, nil
}

func (m *memStore) UpdateBlock(id string, fields map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blocks[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "content":
			b.Content = v
		case "image_url":
			b.ImageURL = v
		case "image_alt":
			b.ImageAlt = v
		case "map_embed":
			b.MapEmbed = v
		default:
			return fmt.Errorf("unknown block field %q", k)
		}
	}
	b.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	m.blocks[id] = b
	return nil
}

func (m *memStore) DeleteBlock(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blocks, id)
	return nil
}

func (m *memStore) ReorderBlocks(articleID string, orderedIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ts := time.Now().UTC().Format(time.RFC3339Nano)
	for i, id := range orderedIDs {
		b, ok := m.blocks[id]
		if !ok || b.ArticleID != articleID {
			continue
		}
		b.OrderIndex = i
		b.UpdatedAt = ts
		m.blocks[id] = b
	}
	return nil
}

func (m *memStore) ListCVSections() ([]views.CVSection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sections := make([]views.CVSection, 0, len(m.sections))
	for _, s := range m.sections {
		sections = append(sections, s)
	}
	sortByOrder(sections, func(s views.CVSection) (int, string) { return s.OrderIndex, s.CreatedAt })
	return sections, nil
}

func (m *memStore) GetCVSection(id string) (views.CVSection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sections[id]
	if !ok {
		return views.CVSection{}, ErrNotFound
	}
	return s, nil
}

func (m *memStore) CreateCVSection(s views.CVSection) (views.CVSection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	s.UpdatedAt = s.CreatedAt
	m.sections[s.ID] = s
	return s, nil
}

func (m *memStore) UpdateCVSection(s views.CVSection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.sections[s.ID]
	if !ok {
		return ErrNotFound
	}
	s.CreatedAt = cur.CreatedAt
	s.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	m.sections[s.ID] = s
	return nil
}

func (m *memStore) DeleteCVSection(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sections, id)
	return nil
}

// sortByOrder sorts by order_index ascending with created_at as tiebreaker.
func sortByOrder[T any](items []T, key func(T) (int, string)) {
	sort.SliceStable(items, func(i, j int) bool {
		oi, ci := key(items[i])
		oj, cj := key(items[j])
		if oi != oj {
			return oi < oj
		}
		return ci < cj
	})
}
