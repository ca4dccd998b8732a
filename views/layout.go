package views

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

var navLinks = []struct {
	Href  string
	Label string
}{
	{"/", "Home"},
	{"/cv/", "CV"},
	{"/projects/", "Projects"},
	{"/research/", "Research"},
	{"/training/", "Training"},
	{"/volunteer/", "Volunteer"},
	{"/hobbies/", "Hobbies"},
	{"/contact/", "Contact"},
	{"/about/", "About"},
}

// Layout wraps a body component in the site chrome: <head> with SEO, OG and
// Twitter metadata, the navigation bar, and the footer.
func Layout(cfg SiteConfig, meta PageMeta, active string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeHead(&buf, cfg, meta)
		writeNav(&buf, cfg, active)
		buf.WriteString(`<main class="main">`)
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		buf.Reset()
		buf.WriteString(`</main>`)
		writeFooter(&buf, cfg)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeHead(buf *bytes.Buffer, cfg SiteConfig, meta PageMeta) {
	title := meta.Title
	if title == "" {
		title = cfg.Name
	} else {
		title = title + " | " + cfg.Name
	}
	desc := meta.Description
	if desc == "" {
		desc = cfg.Description
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	image := meta.Image
	if image == "" {
		image = strings.TrimRight(cfg.URL, "/") + "/public/og-image.jpg"
	}

	buf.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	buf.WriteString(`<title>` + esc(title) + `</title>`)
	buf.WriteString(`<meta name="description" content="` + esc(desc) + `"/>`)
	if meta.Keywords != "" {
		buf.WriteString(`<meta name="keywords" content="` + esc(meta.Keywords) + `"/>`)
	}
	if meta.URL != "" {
		buf.WriteString(`<link rel="canonical" href="` + esc(meta.URL) + `"/>`)
	}
	buf.WriteString(`<meta property="og:title" content="` + esc(title) + `"/>`)
	buf.WriteString(`<meta property="og:description" content="` + esc(desc) + `"/>`)
	buf.WriteString(`<meta property="og:type" content="` + esc(ogType) + `"/>`)
	buf.WriteString(`<meta property="og:image" content="` + esc(image) + `"/>`)
	if meta.URL != "" {
		buf.WriteString(`<meta property="og:url" content="` + esc(meta.URL) + `"/>`)
	}
	buf.WriteString(`<meta name="twitter:card" content="summary_large_image"/>`)
	buf.WriteString(`<meta name="twitter:title" content="` + esc(title) + `"/>`)
	buf.WriteString(`<meta name="twitter:description" content="` + esc(desc) + `"/>`)
	buf.WriteString(`<meta name="twitter:image" content="` + esc(image) + `"/>`)
	buf.WriteString(`<link rel="stylesheet" href="/public/styles.css"/>`)
	buf.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
	buf.WriteString(`</head><body>`)
}

func writeNav(buf *bytes.Buffer, cfg SiteConfig, active string) {
	buf.WriteString(`<header class="site-header"><nav class="nav">`)
	buf.WriteString(`<a class="brand" href="/">` + esc(cfg.Name) + `</a><ul>`)
	for _, l := range navLinks {
		cls := ""
		if l.Href == active {
			cls = ` class="active"`
		}
		buf.WriteString(`<li><a` + cls + ` href="` + l.Href + `">` + l.Label + `</a></li>`)
	}
	buf.WriteString(`</ul></nav></header>`)
}

func writeFooter(buf *bytes.Buffer, cfg SiteConfig) {
	buf.WriteString(`<footer class="site-footer"><p>`)
	if cfg.Author != "" {
		buf.WriteString(esc(cfg.Author))
	} else {
		buf.WriteString(esc(cfg.Name))
	}
	buf.WriteString(`</p></footer></body></html>`)
}

// NotFound renders the styled 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	body := raw(`<section class="error-page"><h1>404</h1><p>Page not found.</p><p><a href="/">Back to home</a></p></section>`)
	return Layout(cfg, PageMeta{Title: "Not Found"}, "", body)
}

// ServerError renders the styled 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	body := raw(`<section class="error-page"><h1>500</h1><p>Something went wrong.</p><p><a href="/">Back to home</a></p></section>`)
	return Layout(cfg, PageMeta{Title: "Error"}, "", body)
}

// raw wraps a prebuilt HTML string as a component.
func raw(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}
