package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"folio/views"
)

// sqliteStore implements Store on a single SQLite database file.
type sqliteStore struct {
	db *sql.DB
}

// newSQLiteStore opens (or creates) the database at path, ensures the data
// directory exists, and runs schema migrations.
func newSQLiteStore(path string) (*sqliteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write access, busy timeout so writers wait
	// instead of failing with SQLITE_BUSY, synchronous=NORMAL is safe with
	// WAL and skips an fsync per transaction.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
		PRAGMA foreign_keys=ON;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &sqliteStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func (s *sqliteStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS content_items (
    id TEXT PRIMARY KEY,
    type TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    subtitle TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    media_url TEXT NOT NULL DEFAULT '',
    contact_icon TEXT NOT NULL DEFAULT '',
    order_index INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_content_type ON content_items(type, order_index);

CREATE TABLE IF NOT EXISTS articles (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL DEFAULT '',
    subtitle TEXT NOT NULL DEFAULT '',
    slug TEXT NOT NULL UNIQUE,
    excerpt TEXT NOT NULL DEFAULT '',
    featured_image TEXT NOT NULL DEFAULT '',
    type TEXT NOT NULL DEFAULT 'project',
    status TEXT NOT NULL DEFAULT 'draft',
    order_index INTEGER NOT NULL DEFAULT 0,
    meta_title TEXT NOT NULL DEFAULT '',
    meta_description TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_articles_type ON articles(type, status, order_index);

CREATE TABLE IF NOT EXISTS article_blocks (
    id TEXT PRIMARY KEY,
    article_id TEXT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    block_type TEXT NOT NULL,
    content TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL DEFAULT '',
    image_alt TEXT NOT NULL DEFAULT '',
    map_embed TEXT NOT NULL DEFAULT '',
    order_index INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_blocks_article ON article_blocks(article_id, order_index);

CREATE TABLE IF NOT EXISTS cv_sections (
    id TEXT PRIMARY KEY,
    section_type TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    subtitle TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',
    start_date TEXT NOT NULL DEFAULT '',
    end_date TEXT NOT NULL DEFAULT '',
    current INTEGER NOT NULL DEFAULT 0,
    order_index INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`)
	return err
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

const contentCols = `id, type, title, subtitle, description, media_url, contact_icon, order_index, created_at, updated_at`

func scanContent(row interface{ Scan(...any) error }) (views.ContentItem, error) {
	var it views.ContentItem
	err := row.Scan(&it.ID, &it.Type, &it.Title, &it.Subtitle, &it.Description,
		&it.MediaURL, &it.ContactIcon, &it.OrderIndex, &it.CreatedAt, &it.UpdatedAt)
	return it, err
}

func (s *sqliteStore) ListContent(contentType string) ([]views.ContentItem, error) {
	rows, err := s.db.Query(`SELECT `+contentCols+` FROM content_items WHERE type = ? ORDER BY order_index ASC, created_at ASC`, contentType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []views.ContentItem
	for rows.Next() {
		it, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *sqliteStore) ListAllContent() ([]views.ContentItem, error) {
	rows, err := s.db.Query(`SELECT ` + contentCols + ` FROM content_items ORDER BY type ASC, order_index ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []views.ContentItem
	for rows.Next() {
		it, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *sqliteStore) GetSingleton(contentType string) (views.ContentItem, error) {
	items, err := s.ListContent(contentType)
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

func (s *sqliteStore) GetContent(id string) (views.ContentItem, error) {
	it, err := scanContent(s.db.QueryRow(`SELECT `+contentCols+` FROM content_items WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return views.ContentItem{}, ErrNotFound
	}
	return it, err
}

func (s *sqliteStore) CreateContent(item views.ContentItem) (views.ContentItem, error) {
	item.ID = uuid.NewString()
	item.CreatedAt = now()
	item.UpdatedAt = item.CreatedAt
	_, err := s.db.Exec(`INSERT INTO content_items (`+contentCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Type, item.Title, item.Subtitle, item.Description,
		item.MediaURL, item.ContactIcon, item.OrderIndex, item.CreatedAt, item.UpdatedAt)
	return item, err
}

func (s *sqliteStore) UpdateContent(item views.ContentItem) error {
	res, err := s.db.Exec(`UPDATE content_items SET title = ?, subtitle = ?, description = ?, media_url = ?, contact_icon = ?, order_index = ?, updated_at = ? WHERE id = ?`,
		item.Title, item.Subtitle, item.Description, item.MediaURL, item.ContactIcon, item.OrderIndex, now(), item.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *sqliteStore) DeleteContent(id string) error {
	_, err := s.db.Exec(`DELETE FROM content_items WHERE id = ?`, id)
	return err
}

const articleCols = `id, title, subtitle, slug, excerpt, featured_image, type, status, order_index, meta_title, meta_description, created_at, updated_at`

func scanArticle(row interface{ Scan(...any) error }) (views.Article, error) {
	var a views.Article
	err := row.Scan(&a.ID, &a.Title, &a.Subtitle, &a.Slug, &a.Excerpt, &a.FeaturedImage,
		&a.Type, &a.Status, &a.OrderIndex, &a.MetaTitle, &a.MetaDescription, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (s *sqliteStore) ListArticles(articleType string, publishedOnly bool) ([]views.Article, error) {
	q := `SELECT ` + articleCols + ` FROM articles WHERE type = ?`
	if publishedOnly {
		q += ` AND status = 'published'`
	}
	q += ` ORDER BY order_index ASC, created_at DESC`
	rows, err := s.db.Query(q, articleType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var articles []views.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (s *sqliteStore) ListAllArticles() ([]views.Article, error) {
	rows, err := s.db.Query(`SELECT ` + articleCols + ` FROM articles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var articles []views.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (s *sqliteStore) GetArticle(id string) (views.Article, error) {
	a, err := scanArticle(s.db.QueryRow(`SELECT `+articleCols+` FROM articles WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return views.Article{}, ErrNotFound
	}
	return a, err
}

func (s *sqliteStore) GetArticleBySlug(slug string) (views.Article, error) {
	a, err := scanArticle(s.db.QueryRow(`SELECT `+articleCols+` FROM articles WHERE slug = ?`, slug))
	if err == sql.ErrNoRows {
		return views.Article{}, ErrNotFound
	}
	return a, err
}

func (s *sqliteStore) CreateArticle(a views.Article) (views.Article, error) {
	a.ID = uuid.NewString()
	a.CreatedAt = now()
	a.UpdatedAt = a.CreatedAt
	_, err := s.db.Exec(`INSERT INTO articles (`+articleCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Title, a.Subtitle, a.Slug, a.Excerpt, a.FeaturedImage,
		a.Type, a.Status, a.OrderIndex, a.MetaTitle, a.MetaDescription, a.CreatedAt, a.UpdatedAt)
	return a, err
}

func (s *sqliteStore) UpdateArticle(a views.Article) error {
	res, err := s.db.Exec(`UPDATE articles SET title = ?, subtitle = ?, slug = ?, excerpt = ?, featured_image = ?, type = ?, status = ?, order_index = ?, meta_title = ?, meta_description = ?, updated_at = ? WHERE id = ?`,
		a.Title, a.Subtitle, a.Slug, a.Excerpt, a.FeaturedImage, a.Type, a.Status,
		a.OrderIndex, a.MetaTitle, a.MetaDescription, now(), a.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *sqliteStore) DeleteArticle(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec(`DELETE FROM article_blocks WHERE article_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM articles WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

const blockCols = `id, article_id, block_type, content, image_url, image_alt, map_embed, order_index, created_at, updated_at`

func scanBlock(row interface{ Scan(...any) error }) (views.ArticleBlock, error) {
	var b views.ArticleBlock
	err := row.Scan(&b.ID, &b.ArticleID, &b.BlockType, &b.Content, &b.ImageURL,
		&b.ImageAlt, &b.MapEmbed, &b.OrderIndex, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (s *sqliteStore) ListBlocks(articleID string) ([]views.ArticleBlock, error) {
	rows, err := s.db.Query(`SELECT `+blockCols+` FROM article_blocks WHERE article_id = ? ORDER BY order_index ASC, created_at ASC`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var blocks []views.ArticleBlock
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

func (s *sqliteStore) GetBlock(id string) (views.ArticleBlock, error) {
	b, err := scanBlock(s.db.QueryRow(`SELECT `+blockCols+` FROM article_blocks WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return views.ArticleBlock{}, ErrNotFound
	}
	return b, err
}

func (s *sqliteStore) CreateBlock(b views.ArticleBlock) (views.ArticleBlock, error) {
	b.ID = uuid.NewString()
	b.CreatedAt = now()
	b.UpdatedAt = b.CreatedAt
	_, err := s.db.Exec(`INSERT INTO article_blocks (`+blockCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.ArticleID, b.BlockType, b.Content, b.ImageURL, b.ImageAlt, b.MapEmbed,
		b.OrderIndex, b.CreatedAt, b.UpdatedAt)
	return b, err
}

func (s *sqliteStore) UpdateBlock(id string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	for k := range fields {
		if !blockFields[k] {
			return fmt.Errorf("unknown block field %q", k)
		}
	}
	q := `UPDATE article_blocks SET `
	args := make([]any, 0, len(fields)+2)
	for _, col := range []string{"content", "image_url", "image_alt", "map_embed"} {
		v, ok := fields[col]
		if !ok {
			continue
		}
		q += col + ` = ?, `
		args = append(args, v)
	}
	q += `updated_at = ? WHERE id = ?`
	args = append(args, now(), id)
	res, err := s.db.Exec(q, args...)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *sqliteStore) DeleteBlock(id string) error {
	_, err := s.db.Exec(`DELETE FROM article_blocks WHERE id = ?`, id)
	return err
}

func (s *sqliteStore) ReorderBlocks(articleID string, orderedIDs []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	ts := now()
	for i, id := range orderedIDs {
		if _, err := tx.Exec(`UPDATE article_blocks SET order_index = ?, updated_at = ? WHERE id = ? AND article_id = ?`, i, ts, id, articleID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

const cvCols = `id, section_type, title, subtitle, content, start_date, end_date, current, order_index, created_at, updated_at`

func scanCVSection(row interface{ Scan(...any) error }) (views.CVSection, error) {
	var sec views.CVSection
	var current int
	err := row.Scan(&sec.ID, &sec.SectionType, &sec.Title, &sec.Subtitle, &sec.Content,
		&sec.StartDate, &sec.EndDate, &current, &sec.OrderIndex, &sec.CreatedAt, &sec.UpdatedAt)
	sec.Current = current == 1
	return sec, err
}

func (s *sqliteStore) ListCVSections() ([]views.CVSection, error) {
	rows, err := s.db.Query(`SELECT ` + cvCols + ` FROM cv_sections ORDER BY order_index ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sections []views.CVSection
	for rows.Next() {
		sec, err := scanCVSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}
	return sections, rows.Err()
}

func (s *sqliteStore) GetCVSection(id string) (views.CVSection, error) {
	sec, err := scanCVSection(s.db.QueryRow(`SELECT `+cvCols+` FROM cv_sections WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return views.CVSection{}, ErrNotFound
	}
	return sec, err
}

func (s *sqliteStore) CreateCVSection(sec views.CVSection) (views.CVSection, error) {
	sec.ID = uuid.NewString()
	sec.CreatedAt = now()
	sec.UpdatedAt = sec.CreatedAt
	current := 0
	if sec.Current {
		current = 1
	}
	_, err := s.db.Exec(`INSERT INTO cv_sections (`+cvCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sec.ID, sec.SectionType, sec.Title, sec.Subtitle, sec.Content,
		sec.StartDate, sec.EndDate, current, sec.OrderIndex, sec.CreatedAt, sec.UpdatedAt)
	return sec, err
}

func (s *sqliteStore) UpdateCVSection(sec views.CVSection) error {
	current := 0
	if sec.Current {
		current = 1
	}
	res, err := s.db.Exec(`UPDATE cv_sections SET section_type = ?, title = ?, subtitle = ?, content = ?, start_date = ?, end_date = ?, current = ?, order_index = ?, updated_at = ? WHERE id = ?`,
		sec.SectionType, sec.Title, sec.Subtitle, sec.Content, sec.StartDate, sec.EndDate,
		current, sec.OrderIndex, now(), sec.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *sqliteStore) DeleteCVSection(id string) error {
	_, err := s.db.Exec(`DELETE FROM cv_sections WHERE id = ?`, id)
	return err
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
