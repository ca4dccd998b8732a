package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"
)

// ContentFormSpec describes which form fields a content type exposes. One
// table drives all eight subtypes instead of branching inside the markup.
type ContentFormSpec struct {
	TitleRequired       bool
	DescriptionRequired bool
	ShowContactIcon     bool
	MediaKind           string // "image", "pdf"
}

var contentForms = map[string]ContentFormSpec{
	"cv":        {TitleRequired: true, MediaKind: "pdf"},
	"project":   {TitleRequired: true, MediaKind: "image"},
	"research":  {TitleRequired: true, MediaKind: "image"},
	"training":  {TitleRequired: true, MediaKind: "image"},
	"volunteer": {TitleRequired: true, MediaKind: "image"},
	"hobby":     {TitleRequired: true, MediaKind: "image"},
	"contact":   {TitleRequired: true, ShowContactIcon: true, MediaKind: "image"},
	"about":     {DescriptionRequired: true, MediaKind: "image"},
}

// ContentFormFor returns the form spec for a content type.
func ContentFormFor(typ string) ContentFormSpec {
	return contentForms[typ]
}

var adminTabs = []struct {
	ID    string
	Label string
}{
	{"overview", "Overview"},
	{"cv", "CV"},
	{"cv-sections", "CV Sections"},
	{"articles", "Articles"},
	{"project", "Projects"},
	{"research", "Research"},
	{"training", "Training"},
	{"volunteer", "Volunteer"},
	{"hobby", "Hobbies"},
	{"contact", "Contact"},
	{"about", "About"},
}

func adminTabHref(id string) string {
	switch id {
	case "overview":
		return "/admin/"
	case "cv-sections":
		return "/admin/cv-sections/"
	case "articles":
		return "/admin/articles/"
	default:
		return "/admin/content/" + id + "/"
	}
}

// AdminLogin renders the sign-in form. errMsg, when non-empty, is shown
// inline above the form exactly as returned by the auth check.
func AdminLogin(cfg SiteConfig, errMsg string, csrf string) templ.Component {
	var b bytes.Buffer
	writeHead(&b, cfg, PageMeta{Title: "Admin Login"})
	b.WriteString(`<main class="admin-login"><h1>Admin Login</h1>`)
	if errMsg != "" {
		b.WriteString(`<p class="form-error">` + esc(errMsg) + `</p>`)
	}
	b.WriteString(`<form method="post" action="/admin/login/">`)
	writeCsrf(&b, csrf)
	b.WriteString(`<label for="email">Email</label><input type="email" id="email" name="email" required/>`)
	b.WriteString(`<label for="password">Password</label><input type="password" id="password" name="password" required/>`)
	b.WriteString(`<button type="submit">Sign In</button></form></main></body></html>`)
	return raw(b.String())
}

// adminPage wraps an admin screen in the panel chrome: top bar with sign-out
// and the sidebar tab navigation.
func adminPage(cfg SiteConfig, active string, csrf string, body string) templ.Component {
	var b bytes.Buffer
	writeHead(&b, cfg, PageMeta{Title: "Admin"})
	b.WriteString(`<div class="admin"><header class="admin-header"><h1>Admin Panel</h1>`)
	b.WriteString(`<form method="post" action="/admin/logout/">`)
	writeCsrf(&b, csrf)
	b.WriteString(`<button type="submit">Sign Out</button></form></header>`)
	b.WriteString(`<div class="admin-body"><nav class="admin-sidebar"><ul>`)
	for _, tab := range adminTabs {
		cls := ""
		if tab.ID == active {
			cls = ` class="active"`
		}
		b.WriteString(`<li><a` + cls + ` href="` + adminTabHref(tab.ID) + `">` + tab.Label + `</a></li>`)
	}
	b.WriteString(`</ul></nav><section class="admin-main">`)
	b.WriteString(body)
	b.WriteString(`</section></div></div></body></html>`)
	return raw(b.String())
}

// AdminOverview renders the dashboard landing tab with per-type counts.
func AdminOverview(cfg SiteConfig, counts map[string]int, articleTotal, projectArticles, researchArticles int, csrf string) templ.Component {
	var b bytes.Buffer
	b.WriteString(`<h2>Content Overview</h2><div class="stats">`)
	b.WriteString(`<div class="stat-card"><h3>Articles</h3><p class="count">` + strconv.Itoa(articleTotal) + ` articles</p>`)
	b.WriteString(`<p class="sub-count">Projects: ` + strconv.Itoa(projectArticles) + `, Research: ` + strconv.Itoa(researchArticles) + `</p></div>`)
	for _, tab := range adminTabs[4:] {
		b.WriteString(`<div class="stat-card"><h3>` + tab.Label + `</h3><p class="count">`)
		b.WriteString(strconv.Itoa(counts[tab.ID]) + ` items</p></div>`)
	}
	b.WriteString(`</div>`)
	return adminPage(cfg, "overview", csrf, b.String())
}

// AdminContent renders the list-and-form manager for one content type.
// editing is nil for the create form; showForm toggles the form entirely.
// errMsg, when non-empty, is shown inline above the list (upload failures).
func AdminContent(cfg SiteConfig, typ string, items []ContentItem, editing *ContentItem, showForm bool, errMsg string, csrf string) templ.Component {
	spec := ContentFormFor(typ)
	var b bytes.Buffer
	b.WriteString(`<div class="manager-header"><h2>Manage ` + esc(titleCase(typ)) + `</h2>`)
	b.WriteString(`<a class="button" href="/admin/content/` + typ + `/?new=1">Add New Item</a></div>`)
	if errMsg != "" {
		b.WriteString(`<p class="form-error">` + esc(errMsg) + `</p>`)
	}

	if showForm {
		heading := "Add New Item"
		var cur ContentItem
		if editing != nil {
			heading = "Edit Item"
			cur = *editing
		}
		b.WriteString(`<div class="form-panel"><h3>` + heading + `</h3>`)
		b.WriteString(`<form method="post" action="/admin/content/` + typ + `/save/" enctype="multipart/form-data">`)
		writeCsrf(&b, csrf)
		if editing != nil {
			b.WriteString(`<input type="hidden" name="id" value="` + esc(cur.ID) + `"/>`)
		}
		req := ""
		if spec.TitleRequired {
			req = ` required`
		}
		b.WriteString(`<label for="title">Title</label><input type="text" id="title" name="title" value="` + esc(cur.Title) + `"` + req + `/>`)
		b.WriteString(`<label for="subtitle">Subtitle</label><input type="text" id="subtitle" name="subtitle" value="` + esc(cur.Subtitle) + `"/>`)
		req = ""
		if spec.DescriptionRequired {
			req = ` required`
		}
		b.WriteString(`<label for="description">Description</label><textarea id="description" name="description" rows="4"` + req + `>` + esc(cur.Description) + `</textarea>`)
		b.WriteString(`<label for="order_index">Order Index</label><input type="number" id="order_index" name="order_index" min="0" value="` + strconv.Itoa(cur.OrderIndex) + `"/>`)
		if spec.ShowContactIcon {
			b.WriteString(`<label for="contact_icon">Contact Icon (emoji)</label><input type="text" id="contact_icon" name="contact_icon" value="` + esc(cur.ContactIcon) + `"/>`)
		}
		if spec.MediaKind == "pdf" {
			b.WriteString(`<label for="media">CV File (PDF)</label><input type="file" id="media" name="media" accept=".pdf"/>`)
		} else {
			b.WriteString(`<label for="media">Media File (Image)</label><input type="file" id="media" name="media" accept="image/*"/>`)
		}
		if cur.MediaURL != "" {
			b.WriteString(`<p class="current-file">Current file: ` + esc(cur.MediaURL) + `</p>`)
		}
		b.WriteString(`<div class="form-actions"><a class="button" href="/admin/content/` + typ + `/">Cancel</a>`)
		b.WriteString(`<button type="submit">Save</button></div></form></div>`)
	}

	if len(items) == 0 {
		b.WriteString(`<p class="empty">No items found. Add your first item!</p>`)
	} else {
		b.WriteString(`<div class="item-list">`)
		for _, item := range items {
			b.WriteString(`<div class="item"><div class="item-content"><h4>`)
			if item.Title != "" {
				b.WriteString(esc(item.Title))
			} else {
				b.WriteString("Untitled")
			}
			b.WriteString(`</h4>`)
			if item.Subtitle != "" {
				b.WriteString(`<p class="subtitle">` + esc(item.Subtitle) + `</p>`)
			}
			if item.Description != "" {
				b.WriteString(`<p class="description">` + esc(Truncate(item.Description, 100)) + `</p>`)
			}
			b.WriteString(`<div class="item-meta"><span>Order: ` + strconv.Itoa(item.OrderIndex) + `</span>`)
			if item.MediaURL != "" {
				b.WriteString(`<span>Has media</span>`)
			}
			if item.ContactIcon != "" {
				b.WriteString(`<span>Icon: ` + esc(item.ContactIcon) + `</span>`)
			}
			b.WriteString(`</div></div><div class="item-actions">`)
			b.WriteString(`<a class="button" href="/admin/content/` + typ + `/?edit=` + esc(item.ID) + `">Edit</a>`)
			b.WriteString(`<form method="post" action="/admin/content/` + typ + `/delete/` + esc(item.ID) + `/" onsubmit="return confirm('Are you sure you want to delete this item?')">`)
			writeCsrf(&b, csrf)
			b.WriteString(`<button type="submit" class="danger">Delete</button></form></div></div>`)
		}
		b.WriteString(`</div>`)
	}
	return adminPage(cfg, typ, csrf, b.String())
}

// AdminCVSections renders the CV section manager.
func AdminCVSections(cfg SiteConfig, sections []CVSection, editing *CVSection, showForm bool, csrf string) templ.Component {
	var b bytes.Buffer
	b.WriteString(`<div class="manager-header"><h2>CV Sections Management</h2>`)
	b.WriteString(`<a class="button" href="/admin/cv-sections/?new=1">Add Section</a></div>`)

	if showForm {
		heading := "Add Section"
		var cur CVSection
		if editing != nil {
			heading = "Edit Section"
			cur = *editing
		}
		b.WriteString(`<div class="form-panel"><h3>` + heading + `</h3>`)
		b.WriteString(`<form method="post" action="/admin/cv-sections/save/">`)
		writeCsrf(&b, csrf)
		if editing != nil {
			b.WriteString(`<input type="hidden" name="id" value="` + esc(cur.ID) + `"/>`)
		}
		b.WriteString(`<label for="section_type">Section Type</label><select id="section_type" name="section_type">`)
		for _, st := range []string{"header", "experience", "education", "skills", "projects", "languages", "certifications", "achievements"} {
			sel := ""
			if st == cur.SectionType {
				sel = ` selected`
			}
			b.WriteString(`<option value="` + st + `"` + sel + `>` + titleCase(st) + `</option>`)
		}
		b.WriteString(`</select>`)
		b.WriteString(`<label for="order_index">Order</label><input type="number" id="order_index" name="order_index" min="0" value="` + strconv.Itoa(cur.OrderIndex) + `"/>`)
		b.WriteString(`<label for="title">Title</label><input type="text" id="title" name="title" value="` + esc(cur.Title) + `"/>`)
		b.WriteString(`<label for="subtitle">Subtitle</label><input type="text" id="subtitle" name="subtitle" value="` + esc(cur.Subtitle) + `"/>`)
		b.WriteString(`<label for="start_date">Start Date</label><input type="date" id="start_date" name="start_date" value="` + esc(cur.StartDate) + `"/>`)
		dis := ""
		if cur.Current {
			dis = ` disabled`
		}
		b.WriteString(`<label for="end_date">End Date</label><input type="date" id="end_date" name="end_date" value="` + esc(cur.EndDate) + `"` + dis + `/>`)
		chk := ""
		if cur.Current {
			chk = ` checked`
		}
		b.WriteString(`<label class="checkbox"><input type="checkbox" name="current" value="1"` + chk + `/> Current position</label>`)
		b.WriteString(`<label for="content">Content</label><textarea id="content" name="content" rows="4">` + esc(cur.Content) + `</textarea>`)
		b.WriteString(`<div class="form-actions"><a class="button" href="/admin/cv-sections/">Cancel</a>`)
		b.WriteString(`<button type="submit">Save</button></div></form></div>`)
	}

	if len(sections) == 0 {
		b.WriteString(`<p class="empty">No CV sections found. Add your first section!</p>`)
	} else {
		b.WriteString(`<div class="item-list">`)
		for _, s := range sections {
			b.WriteString(`<div class="item"><div class="item-content"><div class="item-head"><h4>`)
			if s.Title != "" {
				b.WriteString(esc(s.Title))
			} else {
				b.WriteString("Untitled")
			}
			b.WriteString(`</h4><span class="tag">` + esc(s.SectionType) + `</span></div>`)
			if s.Subtitle != "" {
				b.WriteString(`<p class="subtitle">` + esc(s.Subtitle) + `</p>`)
			}
			if s.Content != "" {
				b.WriteString(`<p class="description">` + esc(Truncate(s.Content, 100)) + `</p>`)
			}
			b.WriteString(`<div class="item-meta"><span>Order: ` + strconv.Itoa(s.OrderIndex) + `</span>`)
			if s.StartDate != "" {
				b.WriteString(`<span>Start: ` + esc(s.StartDate) + `</span>`)
			}
			if s.EndDate != "" {
				b.WriteString(`<span>End: ` + esc(s.EndDate) + `</span>`)
			}
			if s.Current {
				b.WriteString(`<span>Current</span>`)
			}
			b.WriteString(`</div></div><div class="item-actions">`)
			b.WriteString(`<a class="button" href="/admin/cv-sections/?edit=` + esc(s.ID) + `">Edit</a>`)
			b.WriteString(`<form method="post" action="/admin/cv-sections/delete/` + esc(s.ID) + `/" onsubmit="return confirm('Are you sure you want to delete this section?')">`)
			writeCsrf(&b, csrf)
			b.WriteString(`<button type="submit" class="danger">Delete</button></form></div></div>`)
		}
		b.WriteString(`</div>`)
	}
	return adminPage(cfg, "cv-sections", csrf, b.String())
}

// AdminArticles renders the article management list.
func AdminArticles(cfg SiteConfig, articles []Article, csrf string) templ.Component {
	var b bytes.Buffer
	b.WriteString(`<div class="manager-header"><h2>Articles Management</h2>`)
	b.WriteString(`<form method="post" action="/admin/articles/create/">`)
	writeCsrf(&b, csrf)
	b.WriteString(`<button type="submit">Add Article</button></form></div>`)
	if len(articles) == 0 {
		b.WriteString(`<p class="empty">No articles found. Create your first article!</p>`)
	} else {
		b.WriteString(`<div class="item-list">`)
		for _, a := range articles {
			b.WriteString(`<div class="item"><div class="item-content"><h4>`)
			if a.Title != "" {
				b.WriteString(esc(a.Title))
			} else {
				b.WriteString("Untitled")
			}
			b.WriteString(`</h4><p class="item-meta-line">` + esc(a.Type) + ` &bull; ` + esc(a.Status) + ` &bull; Order: ` + strconv.Itoa(a.OrderIndex) + `</p>`)
			if a.Excerpt != "" {
				b.WriteString(`<p class="description">` + esc(Truncate(a.Excerpt, 100)) + `</p>`)
			}
			b.WriteString(`</div><div class="item-actions">`)
			b.WriteString(`<a class="button" href="/admin/articles/` + esc(a.ID) + `/">Edit</a>`)
			b.WriteString(`<form method="post" action="/admin/articles/` + esc(a.ID) + `/delete/" onsubmit="return confirm('Are you sure you want to delete this article?')">`)
			writeCsrf(&b, csrf)
			b.WriteString(`<button type="submit" class="danger">Delete</button></form></div></div>`)
		}
		b.WriteString(`</div>`)
	}
	return adminPage(cfg, "articles", csrf, b.String())
}

// AdminArticleEditor renders the block editor for one article: the scalar
// field form, the ordered block list with per-block edit forms, and the
// add-block menu. provisional marks an article created by "Add Article" and
// never saved; cancel then deletes it together with its blocks. errMsg is
// shown inline above the form.
func AdminArticleEditor(cfg SiteConfig, a Article, blocks []ArticleBlock, provisional bool, errMsg string, csrf string) templ.Component {
	var b bytes.Buffer
	prov := ""
	if provisional {
		prov = `<input type="hidden" name="provisional" value="1"/>`
	}

	heading := "Edit Article"
	if provisional {
		heading = "Create Article"
	}
	b.WriteString(`<div class="manager-header"><h2>` + heading + `</h2>`)
	b.WriteString(`<form method="post" action="/admin/articles/` + esc(a.ID) + `/cancel/">`)
	writeCsrf(&b, csrf)
	b.WriteString(prov)
	b.WriteString(`<button type="submit">Cancel</button></form></div>`)

	if errMsg != "" {
		b.WriteString(`<p class="form-error">` + esc(errMsg) + `</p>`)
	}

	b.WriteString(`<form method="post" action="/admin/articles/` + esc(a.ID) + `/save/" enctype="multipart/form-data" class="article-form">`)
	writeCsrf(&b, csrf)
	b.WriteString(prov)
	b.WriteString(`<label for="title">Title</label><input type="text" id="title" name="title" value="` + esc(a.Title) + `" required/>`)
	b.WriteString(`<label for="slug">URL (slug)</label><input type="text" id="slug" name="slug" value="` + esc(a.Slug) + `" placeholder="generated from title when empty"/>`)
	b.WriteString(`<label for="subtitle">Subtitle</label><input type="text" id="subtitle" name="subtitle" value="` + esc(a.Subtitle) + `"/>`)
	b.WriteString(`<label for="type">Type</label><select id="type" name="type">`)
	for _, t := range []string{"project", "research"} {
		sel := ""
		if t == a.Type {
			sel = ` selected`
		}
		b.WriteString(`<option value="` + t + `"` + sel + `>` + titleCase(t) + `</option>`)
	}
	b.WriteString(`</select>`)
	b.WriteString(`<label for="status">Status</label><select id="status" name="status">`)
	for _, st := range []string{"draft", "published", "archived"} {
		sel := ""
		if st == a.Status {
			sel = ` selected`
		}
		b.WriteString(`<option value="` + st + `"` + sel + `>` + titleCase(st) + `</option>`)
	}
	b.WriteString(`</select>`)
	b.WriteString(`<label for="excerpt">Excerpt</label><textarea id="excerpt" name="excerpt" rows="3">` + esc(a.Excerpt) + `</textarea>`)
	b.WriteString(`<label for="order_index">Order Index</label><input type="number" id="order_index" name="order_index" min="0" value="` + strconv.Itoa(a.OrderIndex) + `"/>`)
	b.WriteString(`<label for="featured_image">Featured Image URL</label><input type="text" id="featured_image" name="featured_image" value="` + esc(a.FeaturedImage) + `"/>`)
	b.WriteString(`<label for="featured_image_file">Upload Featured Image</label><input type="file" id="featured_image_file" name="featured_image_file" accept="image/*"/>`)
	if a.FeaturedImage != "" {
		b.WriteString(`<div class="image-preview"><img src="` + esc(a.FeaturedImage) + `" alt="Preview"/></div>`)
	}
	b.WriteString(`<label for="meta_title">Meta Title</label><input type="text" id="meta_title" name="meta_title" value="` + esc(a.MetaTitle) + `"/>`)
	b.WriteString(`<label for="meta_description">Meta Description</label><textarea id="meta_description" name="meta_description" rows="2">` + esc(a.MetaDescription) + `</textarea>`)
	b.WriteString(`<button type="submit">Save Article</button></form>`)

	b.WriteString(`<div class="blocks-section"><h3>Article Blocks</h3>`)
	if len(blocks) == 0 {
		b.WriteString(`<p class="empty">No blocks. Add the first block to start writing.</p>`)
	} else {
		for i, blk := range blocks {
			writeBlockEditor(&b, blk, i == 0, i == len(blocks)-1, prov, csrf)
		}
	}
	b.WriteString(`<div class="add-block"><span>Add block:</span>`)
	for _, bt := range []string{"text", "image", "map", "code", "quote"} {
		b.WriteString(`<form method="post" action="/admin/articles/` + esc(a.ID) + `/blocks/add/">`)
		writeCsrf(&b, csrf)
		b.WriteString(prov)
		b.WriteString(`<input type="hidden" name="block_type" value="` + bt + `"/>`)
		b.WriteString(`<button type="submit">` + titleCase(bt) + `</button></form>`)
	}
	b.WriteString(`</div></div>`)
	return adminPage(cfg, "articles", csrf, b.String())
}

func writeBlockEditor(b *bytes.Buffer, blk ArticleBlock, first, last bool, prov, csrf string) {
	b.WriteString(`<div class="block-editor"><div class="block-toolbar"><span class="tag">` + esc(blk.BlockType) + `</span>`)

	moveButton := func(dir, label string, disabled bool) {
		b.WriteString(`<form method="post" action="/admin/blocks/` + esc(blk.ID) + `/move/">`)
		writeCsrf(b, csrf)
		b.WriteString(prov)
		b.WriteString(`<input type="hidden" name="direction" value="` + dir + `"/>`)
		dis := ""
		if disabled {
			dis = ` disabled`
		}
		b.WriteString(`<button type="submit"` + dis + `>` + label + `</button></form>`)
	}
	moveButton("up", "&uarr;", first)
	moveButton("down", "&darr;", last)

	b.WriteString(`<form method="post" action="/admin/blocks/` + esc(blk.ID) + `/delete/" onsubmit="return confirm('Delete this block?')">`)
	writeCsrf(b, csrf)
	b.WriteString(prov)
	b.WriteString(`<button type="submit" class="danger">Delete</button></form></div>`)

	b.WriteString(`<form method="post" action="/admin/blocks/` + esc(blk.ID) + `/save/" enctype="multipart/form-data">`)
	writeCsrf(b, csrf)
	b.WriteString(prov)
	switch blk.BlockType {
	case "image":
		b.WriteString(`<label>Image URL</label><input type="text" name="image_url" value="` + esc(blk.ImageURL) + `"/>`)
		b.WriteString(`<label>Upload Image</label><input type="file" name="image_file" accept="image/*"/>`)
		b.WriteString(`<label>Alt Text / Caption</label><input type="text" name="image_alt" value="` + esc(blk.ImageAlt) + `"/>`)
		if blk.ImageURL != "" {
			b.WriteString(`<div class="image-preview"><img src="` + esc(blk.ImageURL) + `" alt="` + esc(blk.ImageAlt) + `"/></div>`)
		}
	case "map":
		b.WriteString(`<label>Map Embed (HTML)</label><textarea name="map_embed" rows="4">` + esc(blk.MapEmbed) + `</textarea>`)
	default:
		rows := "6"
		if blk.BlockType == "quote" {
			rows = "3"
		}
		b.WriteString(`<label>Content</label><textarea name="content" rows="` + rows + `">` + esc(blk.Content) + `</textarea>`)
	}
	b.WriteString(`<button type="submit">Save Block</button></form></div>`)
}

func writeCsrf(b *bytes.Buffer, csrf string) {
	b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrf) + `"/>`)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
