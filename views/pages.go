package views

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// sectionCopy holds the static heading and SEO copy for each public section.
type sectionCopy struct {
	Title       string
	Intro       string
	Description string
	Keywords    string
}

var sectionPages = map[string]sectionCopy{
	"project": {
		Title:       "Projects",
		Intro:       "My portfolio of technical projects and achievements",
		Description: "Explore my portfolio of projects and technical achievements. From web applications to innovative solutions.",
		Keywords:    "projects, portfolio, web development, applications, technical achievements",
	},
	"research": {
		Title:       "Research",
		Intro:       "Academic papers and research work",
		Description: "Browse my academic papers, publications, and research work.",
		Keywords:    "research, academic papers, publications, science",
	},
	"training": {
		Title:       "Training",
		Intro:       "Professional development and certifications",
		Description: "Professional development courses, training, and certifications.",
		Keywords:    "training, courses, certifications, professional development",
	},
	"volunteer": {
		Title:       "Volunteer",
		Intro:       "Community work and social impact projects",
		Description: "Community work, volunteering, and social impact projects.",
		Keywords:    "volunteer, community, social impact",
	},
	"hobby": {
		Title:       "Hobbies",
		Intro:       "Personal interests and creative pursuits",
		Description: "Personal interests, hobbies, and creative pursuits.",
		Keywords:    "hobbies, interests, creative pursuits",
	},
}

// SectionPath maps a content type to its public route. Article URLs must go
// through it everywhere; "research" does not pluralize.
func SectionPath(typ string) string {
	switch typ {
	case "hobby":
		return "/hobbies/"
	case "research":
		return "/research/"
	default:
		return "/" + typ + "s/"
	}
}

// sectionSegment is SectionPath without the surrounding slashes, for
// building absolute URLs.
func sectionSegment(typ string) string {
	return strings.Trim(SectionPath(typ), "/")
}

// Home renders the landing page: full-width banner plus the quick navigation grid.
func Home(cfg SiteConfig) templ.Component {
	meta := PageMeta{
		Title:       "Home",
		Description: "Welcome to my personal CV website. Discover my professional journey, projects, and achievements.",
		Keywords:    "CV, resume, portfolio, professional experience, projects",
		URL:         buildURL(cfg.URL),
	}
	var b bytes.Buffer
	b.WriteString(`<section class="banner"><div class="banner-content">`)
	b.WriteString(`<h1>Welcome to My Professional Portfolio</h1>`)
	b.WriteString(`<p>Discover my journey, explore my projects, and connect with my professional story</p>`)
	b.WriteString(`<div class="banner-buttons"><a class="button primary" href="/cv/">View CV</a>`)
	b.WriteString(`<a class="button" href="/projects/">Explore Projects</a></div></div></section>`)
	b.WriteString(`<section class="quick-nav"><h2>Quick Navigation</h2>`)
	b.WriteString(`<p>Navigate through different sections of my professional profile</p><div class="nav-grid">`)
	cards := []struct{ Href, Icon, Title, Text string }{
		{"/cv/", "&#128196;", "CV", "Download my resume and view my professional experience"},
		{"/projects/", "&#128187;", "Projects", "Explore my technical projects and achievements"},
		{"/research/", "&#128300;", "Research", "Browse my academic papers and research work"},
		{"/training/", "&#127891;", "Training", "Professional development and certifications"},
		{"/volunteer/", "&#129309;", "Volunteer", "Community work and social impact projects"},
		{"/hobbies/", "&#127912;", "Hobbies", "Personal interests and creative pursuits"},
		{"/contact/", "&#128231;", "Contact", "Get in touch and start a conversation"},
		{"/about/", "&#128100;", "About", "Learn more about my background and values"},
	}
	for _, c := range cards {
		b.WriteString(`<a class="nav-card" href="` + c.Href + `"><div class="nav-icon">` + c.Icon + `</div>`)
		b.WriteString(`<h3>` + c.Title + `</h3><p>` + c.Text + `</p></a>`)
	}
	b.WriteString(`</div></section>`)
	b.WriteString(`<script type="application/ld+json">` + WebsiteJsonLD(cfg) + `</script>`)
	return Layout(cfg, meta, "/", raw(b.String()))
}

// Section renders a public content section: heading, card grid of content
// items, and (for project/research) the list of published articles.
func Section(cfg SiteConfig, typ string, items []ContentItem, articles []Article) templ.Component {
	sc := sectionPages[typ]
	meta := PageMeta{
		Title:       sc.Title,
		Description: sc.Description,
		Keywords:    sc.Keywords,
		URL:         buildURL(cfg.URL, sectionSegment(typ)),
	}
	var b bytes.Buffer
	b.WriteString(`<section class="section-page"><header class="page-header"><h1>` + esc(sc.Title) + `</h1>`)
	b.WriteString(`<p>` + esc(sc.Intro) + `</p></header>`)
	writeContentGrid(&b, items)
	if typ == "project" || typ == "research" {
		b.WriteString(`<div class="articles">`)
		if len(articles) == 0 {
			b.WriteString(`<div class="empty"><p>No articles found.</p><p>Articles will appear here when published.</p></div>`)
		} else {
			for _, a := range articles {
				writeArticleCard(&b, a)
			}
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</section>`)
	return Layout(cfg, meta, SectionPath(typ), raw(b.String()))
}

func writeContentGrid(b *bytes.Buffer, items []ContentItem) {
	if len(items) == 0 {
		b.WriteString(`<div class="empty"><p>No items found.</p></div>`)
		return
	}
	b.WriteString(`<div class="content-grid">`)
	for _, item := range items {
		b.WriteString(`<div class="card">`)
		if item.MediaHref != "" {
			b.WriteString(`<div class="card-image"><img src="` + esc(item.MediaHref) + `" alt="` + esc(item.Title) + `"/></div>`)
		}
		b.WriteString(`<div class="card-body">`)
		if item.Title != "" {
			b.WriteString(`<h3>` + esc(item.Title) + `</h3>`)
		}
		if item.Subtitle != "" {
			b.WriteString(`<h4>` + esc(item.Subtitle) + `</h4>`)
		}
		if item.Description != "" {
			b.WriteString(`<p>` + esc(item.Description) + `</p>`)
		}
		b.WriteString(`</div></div>`)
	}
	b.WriteString(`</div>`)
}

func writeArticleCard(b *bytes.Buffer, a Article) {
	href := SectionPath(a.Type) + PathEscape(a.Slug) + "/"
	b.WriteString(`<article class="article-card">`)
	if a.FeaturedImage != "" {
		b.WriteString(`<div class="card-image"><img src="` + esc(a.FeaturedImage) + `" alt="` + esc(a.Title) + `"/></div>`)
	}
	b.WriteString(`<h3><a href="` + esc(href) + `">` + esc(a.Title) + `</a></h3>`)
	if a.Subtitle != "" {
		b.WriteString(`<h4>` + esc(a.Subtitle) + `</h4>`)
	}
	if a.Excerpt != "" {
		b.WriteString(`<p>` + esc(a.Excerpt) + `</p>`)
	}
	b.WriteString(`<a class="read-more" href="` + esc(href) + `">Read more</a></article>`)
}

// ArticlePage renders a full article: header fields plus its ordered blocks.
func ArticlePage(cfg SiteConfig, a Article, blocks []ArticleBlock) templ.Component {
	title := a.Title
	if a.MetaTitle != "" {
		title = a.MetaTitle
	}
	desc := a.Excerpt
	if a.MetaDescription != "" {
		desc = a.MetaDescription
	}
	meta := PageMeta{
		Title:       title,
		Description: desc,
		Image:       a.FeaturedImage,
		URL:         buildURL(cfg.URL, sectionSegment(a.Type), a.Slug),
		OGType:      "article",
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		b.WriteString(`<article class="article-viewer"><header class="article-header">`)
		b.WriteString(`<h1>` + esc(a.Title) + `</h1>`)
		if a.Subtitle != "" {
			b.WriteString(`<h2>` + esc(a.Subtitle) + `</h2>`)
		}
		if a.Excerpt != "" {
			b.WriteString(`<p class="excerpt">` + esc(a.Excerpt) + `</p>`)
		}
		b.WriteString(`</header><div class="article-content">`)
		renderBlocks(&b, blocks)
		b.WriteString(`</div></article>`)
		b.WriteString(`<script type="application/ld+json">` + ArticleJsonLD(cfg, a) + `</script>`)
		return Layout(cfg, meta, SectionPath(a.Type), raw(b.String())).Render(ctx, w)
	})
}

// ContactPage renders the contact channel cards with their icons.
func ContactPage(cfg SiteConfig, items []ContentItem) templ.Component {
	meta := PageMeta{
		Title:       "Contact",
		Description: "Get in touch with me through various channels. Find my contact information and preferred communication methods.",
		Keywords:    "contact, get in touch, email, phone, social media, communication",
		URL:         buildURL(cfg.URL, "contact"),
	}
	var b bytes.Buffer
	b.WriteString(`<section class="contact-page"><header class="page-header"><h1>Contact</h1></header>`)
	if len(items) == 0 {
		b.WriteString(`<div class="empty"><p>No contact information available.</p></div>`)
	} else {
		b.WriteString(`<div class="contact-grid">`)
		for _, item := range items {
			b.WriteString(`<div class="contact-card">`)
			if item.ContactIcon != "" {
				b.WriteString(`<span class="contact-icon">` + esc(item.ContactIcon) + `</span>`)
			}
			if item.Title != "" {
				b.WriteString(`<h3>` + esc(item.Title) + `</h3>`)
			}
			if item.Subtitle != "" {
				b.WriteString(`<p>` + esc(item.Subtitle) + `</p>`)
			}
			if item.Description != "" {
				b.WriteString(`<p class="description">` + esc(item.Description) + `</p>`)
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</section>`)
	return Layout(cfg, meta, "/contact/", raw(b.String()))
}

// AboutPage renders the singleton about record; a nil item shows the
// placeholder copy instead.
func AboutPage(cfg SiteConfig, item *ContentItem) templ.Component {
	meta := PageMeta{
		Title:       "About Me",
		Description: "Learn more about me, my background, and personal story. Discover what drives me and my professional journey.",
		Keywords:    "about, personal story, background, biography, professional journey",
		URL:         buildURL(cfg.URL, "about"),
	}
	var b bytes.Buffer
	b.WriteString(`<section class="about-page"><header class="page-header"><h1>About Me</h1></header>`)
	if item == nil {
		b.WriteString(`<div class="empty"><p>About information will be available soon.</p></div>`)
	} else {
		b.WriteString(`<div class="about-content">`)
		if item.MediaHref != "" {
			b.WriteString(`<div class="profile-image"><img src="` + esc(item.MediaHref) + `" alt="Profile"/></div>`)
		}
		b.WriteString(`<div class="about-text">`)
		if item.Title != "" {
			b.WriteString(`<h2>` + esc(item.Title) + `</h2>`)
		}
		if item.Subtitle != "" {
			b.WriteString(`<h3>` + esc(item.Subtitle) + `</h3>`)
		}
		for _, para := range strings.Split(item.Description, "\n") {
			if strings.TrimSpace(para) == "" {
				continue
			}
			b.WriteString(`<p>` + esc(para) + `</p>`)
		}
		b.WriteString(`</div></div>`)
	}
	b.WriteString(`</section>`)
	return Layout(cfg, meta, "/about/", raw(b.String()))
}

// CVPage renders the PDF preview (when a CV file is uploaded) followed by the
// structured resume sections. With no data at all it shows the fallback copy.
func CVPage(cfg SiteConfig, item *ContentItem, sections []CVSection) templ.Component {
	meta := PageMeta{
		Title:       "CV",
		Description: "Download and view my professional resume. Comprehensive overview of my experience, skills, and achievements.",
		Keywords:    "CV, resume, professional experience, skills, achievements",
		URL:         buildURL(cfg.URL, "cv"),
	}
	var b bytes.Buffer
	b.WriteString(`<section class="cv-page">`)
	if item != nil && item.MediaHref != "" {
		b.WriteString(`<div class="pdf-section"><div class="pdf-header"><h1>PDF Resume</h1>`)
		b.WriteString(`<a class="button" href="/cv/download/">Download CV (PDF)</a></div>`)
		b.WriteString(`<iframe class="pdf-viewer" src="` + esc(item.MediaHref) + `#toolbar=0&amp;navpanes=0&amp;scrollbar=0" title="CV Preview"></iframe></div>`)
	}
	if len(sections) > 0 {
		b.WriteString(`<div class="cv-sections"><header class="page-header"><h1>Detailed CV</h1>`)
		b.WriteString(`<p>Comprehensive overview of my professional background</p></header>`)
		for _, s := range sections {
			writeCVSection(&b, s)
		}
		b.WriteString(`</div>`)
	}
	if item == nil && len(sections) == 0 {
		b.WriteString(`<div class="empty"><h2>CV not found</h2><p>Please contact the administrator to upload the CV.</p></div>`)
	}
	if item != nil && item.Description != "" {
		b.WriteString(`<div class="cv-description"><h2>About This CV</h2><p>` + esc(item.Description) + `</p></div>`)
	}
	b.WriteString(`</section>`)
	return Layout(cfg, meta, "/cv/", raw(b.String()))
}

func writeCVSection(b *bytes.Buffer, s CVSection) {
	switch s.SectionType {
	case "header":
		b.WriteString(`<div class="cv-header-section"><h1>`)
		if s.Title != "" {
			b.WriteString(esc(s.Title))
		} else {
			b.WriteString("Curriculum Vitae")
		}
		b.WriteString(`</h1>`)
		if s.Subtitle != "" {
			b.WriteString(`<h2>` + esc(s.Subtitle) + `</h2>`)
		}
		if s.Content != "" {
			b.WriteString(`<p>` + esc(s.Content) + `</p>`)
		}
		b.WriteString(`</div>`)
	case "experience", "education":
		b.WriteString(`<div class="cv-timeline-section"><div class="timeline-head"><h3>` + esc(s.Title) + `</h3>`)
		b.WriteString(`<span class="date-range">`)
		if s.StartDate != "" {
			b.WriteString(esc(FormatMonthYear(s.StartDate)))
		}
		if s.Current {
			b.WriteString(" - Present")
		} else if s.EndDate != "" {
			b.WriteString(" - " + esc(FormatMonthYear(s.EndDate)))
		}
		b.WriteString(`</span></div>`)
		if s.Subtitle != "" {
			b.WriteString(`<h4>` + esc(s.Subtitle) + `</h4>`)
		}
		if s.Content != "" {
			b.WriteString(`<p>` + esc(s.Content) + `</p>`)
		}
		b.WriteString(`</div>`)
	case "skills":
		b.WriteString(`<div class="cv-skills-section"><h3>`)
		if s.Title != "" {
			b.WriteString(esc(s.Title))
		} else {
			b.WriteString("Skills")
		}
		b.WriteString(`</h3><div class="skills">`)
		for _, skill := range strings.Split(s.Content, ",") {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}
			b.WriteString(`<span class="skill-tag">` + esc(skill) + `</span>`)
		}
		b.WriteString(`</div></div>`)
	case "languages":
		b.WriteString(`<div class="cv-languages-section"><h3>`)
		if s.Title != "" {
			b.WriteString(esc(s.Title))
		} else {
			b.WriteString("Languages")
		}
		b.WriteString(`</h3><ul>`)
		for _, lang := range strings.Split(s.Content, "\n") {
			lang = strings.TrimSpace(lang)
			if lang == "" {
				continue
			}
			b.WriteString(`<li>` + esc(lang) + `</li>`)
		}
		b.WriteString(`</ul></div>`)
	default:
		// projects, certifications, achievements and anything new
		b.WriteString(`<div class="cv-item-section"><h3>` + esc(s.Title) + `</h3>`)
		if s.Subtitle != "" {
			b.WriteString(`<h4>` + esc(s.Subtitle) + `</h4>`)
		}
		if s.Content != "" {
			b.WriteString(`<p>` + esc(s.Content) + `</p>`)
		}
		b.WriteString(`</div>`)
	}
}
