package views

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME  (default "Portfolio")
	URL         string // SITE_URL   (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
}

// PageMeta carries per-page SEO, OpenGraph and Twitter metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	Keywords    string
	Image       string // og:image, absolute or site-relative
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// ContentItem is one record of a fixed site section (projects, training,
// contact, ...). MediaURL is the storage path; MediaHref is the resolved
// public URL filled in by handlers for display.
type ContentItem struct {
	ID          string
	Type        string // cv, project, research, training, volunteer, hobby, contact, about
	Title       string
	Subtitle    string
	Description string
	MediaURL    string
	MediaHref   string
	OrderIndex  int
	ContactIcon string
	CreatedAt   string
	UpdatedAt   string
}

// Article is a long-form, multi-block entry of type project or research.
type Article struct {
	ID              string
	Title           string
	Subtitle        string
	Slug            string
	Excerpt         string
	FeaturedImage   string
	Type            string // project, research
	Status          string // draft, published, archived
	OrderIndex      int
	MetaTitle       string
	MetaDescription string
	CreatedAt       string
	UpdatedAt       string
}

// ArticleBlock is one ordered unit of an article body.
type ArticleBlock struct {
	ID         string
	ArticleID  string
	BlockType  string // text, image, map, code, quote
	Content    string
	ImageURL   string
	ImageAlt   string
	MapEmbed   string
	OrderIndex int
	CreatedAt  string
	UpdatedAt  string
}

// CVSection is one entry of the structured resume.
type CVSection struct {
	ID          string
	SectionType string // header, experience, education, skills, projects, languages, certifications, achievements
	Title       string
	Subtitle    string
	Content     string
	StartDate   string // YYYY-MM-DD
	EndDate     string
	Current     bool
	OrderIndex  int
	CreatedAt   string
	UpdatedAt   string
}
