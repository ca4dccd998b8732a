package main

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"folio/views"
)

func (a *App) handleAdminLoginPage(c echo.Context) error {
	if isAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, views.AdminLogin(a.Config.Site, "", csrfToken(c)))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if !checkCredentials(a.Config, email, password) {
		a.loginLimiter.Record(c.RealIP())
		return Render(c, views.AdminLogin(a.Config.Site, loginErrorMessage, csrfToken(c)))
	}
	if err := setAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/login/")
}

func (a *App) handleAdminOverview(c echo.Context) error {
	items, err := a.Store.ListAllContent()
	if err != nil {
		return err
	}
	counts := make(map[string]int)
	for _, it := range items {
		counts[it.Type]++
	}
	articles, err := a.Store.ListAllArticles()
	if err != nil {
		return err
	}
	var projects, research int
	for _, art := range articles {
		switch art.Type {
		case "project":
			projects++
		case "research":
			research++
		}
	}
	return Render(c, views.AdminOverview(a.Config.Site, counts, len(articles), projects, research, csrfToken(c)))
}

func validContentType(typ string) bool {
	for _, t := range ContentTypes {
		if t == typ {
			return true
		}
	}
	return false
}

// handleAdminContent renders the manager for one content type. ?new=1 shows
// an empty form, ?edit=<id> a prefilled one.
func (a *App) handleAdminContent(c echo.Context) error {
	typ := c.Param("type")
	if !validContentType(typ) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	items, err := a.Store.ListContent(typ)
	if err != nil {
		return err
	}
	var editing *views.ContentItem
	showForm := c.QueryParam("new") != ""
	if id := c.QueryParam("edit"); id != "" {
		for i := range items {
			if items[i].ID == id {
				editing = &items[i]
				showForm = true
				break
			}
		}
	}
	return Render(c, views.AdminContent(a.Config.Site, typ, items, editing, showForm, c.QueryParam("err"), csrfToken(c)))
}

// handleAdminContentSave upserts a content item. A selected file is uploaded
// first; the item row is only written once the upload succeeded.
func (a *App) handleAdminContentSave(c echo.Context) error {
	typ := c.Param("type")
	if !validContentType(typ) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	item := views.ContentItem{
		ID:          c.FormValue("id"),
		Type:        typ,
		Title:       strings.TrimSpace(c.FormValue("title")),
		Subtitle:    strings.TrimSpace(c.FormValue("subtitle")),
		Description: c.FormValue("description"),
		ContactIcon: strings.TrimSpace(c.FormValue("contact_icon")),
		OrderIndex:  atoiDefault(c.FormValue("order_index"), 0),
	}
	if item.ID != "" {
		cur, err := a.Store.GetContent(item.ID)
		if err == nil {
			item.MediaURL = cur.MediaURL
		}
	}

	if file, err := c.FormFile("media"); err == nil {
		path, err := a.uploadFormFile(BucketFor(typ), file)
		if err != nil {
			c.Logger().Errorf("upload media: %v", err)
			// Do not upsert on a failed upload; surface the error inline.
			return c.Redirect(http.StatusSeeOther,
				"/admin/content/"+typ+"/?err="+url.QueryEscape("Media upload failed: "+err.Error()))
		}
		item.MediaURL = path
	}

	if item.ID == "" {
		if _, err := a.Store.CreateContent(item); err != nil {
			return err
		}
	} else if err := a.Store.UpdateContent(item); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/content/"+typ+"/")
}

func (a *App) handleAdminContentDelete(c echo.Context) error {
	typ := c.Param("type")
	if !validContentType(typ) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err := a.Store.DeleteContent(c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/content/"+typ+"/")
}

func (a *App) handleAdminCVSections(c echo.Context) error {
	sections, err := a.Store.ListCVSections()
	if err != nil {
		return err
	}
	var editing *views.CVSection
	showForm := c.QueryParam("new") != ""
	if id := c.QueryParam("edit"); id != "" {
		for i := range sections {
			if sections[i].ID == id {
				editing = &sections[i]
				showForm = true
				break
			}
		}
	}
	return Render(c, views.AdminCVSections(a.Config.Site, sections, editing, showForm, csrfToken(c)))
}

func validSectionType(typ string) bool {
	for _, t := range SectionTypes {
		if t == typ {
			return true
		}
	}
	return false
}

func (a *App) handleAdminCVSectionSave(c echo.Context) error {
	if !validSectionType(c.FormValue("section_type")) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown section type")
	}
	sec := views.CVSection{
		ID:          c.FormValue("id"),
		SectionType: c.FormValue("section_type"),
		Title:       strings.TrimSpace(c.FormValue("title")),
		Subtitle:    strings.TrimSpace(c.FormValue("subtitle")),
		Content:     c.FormValue("content"),
		StartDate:   c.FormValue("start_date"),
		EndDate:     c.FormValue("end_date"),
		Current:     c.FormValue("current") != "",
		OrderIndex:  atoiDefault(c.FormValue("order_index"), 0),
	}
	// Dates only apply to timeline sections. A current position has no end
	// date.
	if sec.SectionType != "experience" && sec.SectionType != "education" {
		sec.StartDate, sec.EndDate, sec.Current = "", "", false
	}
	if sec.Current {
		sec.EndDate = ""
	}
	if sec.ID == "" {
		if _, err := a.Store.CreateCVSection(sec); err != nil {
			return err
		}
	} else if err := a.Store.UpdateCVSection(sec); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/cv-sections/")
}

func (a *App) handleAdminCVSectionDelete(c echo.Context) error {
	if err := a.Store.DeleteCVSection(c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/cv-sections/")
}

func (a *App) handleAdminArticles(c echo.Context) error {
	articles, err := a.Store.ListAllArticles()
	if err != nil {
		return err
	}
	return Render(c, views.AdminArticles(a.Config.Site, articles, csrfToken(c)))
}

// handleAdminArticleCreate inserts a provisional draft with a throwaway slug
// and opens the editor on it. Cancelling the editor before the first save
// deletes the draft again.
func (a *App) handleAdminArticleCreate(c echo.Context) error {
	article, err := a.Store.CreateArticle(views.Article{
		Slug:   placeholderSlug(),
		Type:   "project",
		Status: "draft",
	})
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/articles/"+article.ID+"/?provisional=1")
}

func (a *App) handleAdminArticleEditor(c echo.Context) error {
	article, err := a.Store.GetArticle(c.Param("id"))
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	blocks, err := a.Store.ListBlocks(article.ID)
	if err != nil {
		return err
	}
	provisional := c.QueryParam("provisional") != ""
	return Render(c, views.AdminArticleEditor(a.Config.Site, article, blocks, provisional, c.QueryParam("err"), csrfToken(c)))
}

func (a *App) handleAdminArticleSave(c echo.Context) error {
	article, err := a.Store.GetArticle(c.Param("id"))
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	switch typ := c.FormValue("type"); typ {
	case "project", "research":
		article.Type = typ
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown article type")
	}
	switch status := c.FormValue("status"); status {
	case "draft", "published", "archived":
		article.Status = status
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown article status")
	}

	article.Title = strings.TrimSpace(c.FormValue("title"))
	article.Subtitle = strings.TrimSpace(c.FormValue("subtitle"))
	article.Slug = strings.TrimSpace(c.FormValue("slug"))
	if article.Slug == "" {
		article.Slug = Slugify(article.Title)
	}
	// All-symbol or non-Latin titles slugify to nothing; fall back to a
	// placeholder so the UNIQUE slug column never sees the empty string.
	if article.Slug == "" {
		article.Slug = placeholderSlug()
	}
	article.Excerpt = c.FormValue("excerpt")
	article.OrderIndex = atoiDefault(c.FormValue("order_index"), 0)
	article.FeaturedImage = strings.TrimSpace(c.FormValue("featured_image"))
	article.MetaTitle = strings.TrimSpace(c.FormValue("meta_title"))
	article.MetaDescription = strings.TrimSpace(c.FormValue("meta_description"))

	if file, err := c.FormFile("featured_image_file"); err == nil {
		path, err := a.uploadFormFile("media", file)
		if err != nil {
			c.Logger().Errorf("upload featured image: %v", err)
			return a.redirectToEditorErr(c, article.ID, "Featured image upload failed: "+err.Error())
		}
		article.FeaturedImage = a.Media.PublicURL(path)
	}

	if err := a.Store.UpdateArticle(article); err != nil {
		return err
	}
	// A saved article is no longer provisional.
	return c.Redirect(http.StatusSeeOther, "/admin/articles/"+article.ID+"/")
}

// handleAdminArticleCancel leaves the editor. A provisional article that was
// never saved is deleted along with any blocks already added to it.
func (a *App) handleAdminArticleCancel(c echo.Context) error {
	if c.FormValue("provisional") != "" {
		if err := a.Store.DeleteArticle(c.Param("id")); err != nil {
			return err
		}
	}
	return c.Redirect(http.StatusSeeOther, "/admin/articles/")
}

func (a *App) handleAdminArticleDelete(c echo.Context) error {
	if err := a.Store.DeleteArticle(c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/articles/")
}

// handleAdminBlockAdd appends a block of the requested type at the end of
// the article's block list.
func (a *App) handleAdminBlockAdd(c echo.Context) error {
	articleID := c.Param("id")
	if _, err := a.Store.GetArticle(articleID); err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	blockType := c.FormValue("block_type")
	switch blockType {
	case "text", "image", "map", "code", "quote":
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown block type")
	}
	blocks, err := a.Store.ListBlocks(articleID)
	if err != nil {
		return err
	}
	if _, err := a.Store.CreateBlock(views.ArticleBlock{
		ArticleID:  articleID,
		BlockType:  blockType,
		OrderIndex: len(blocks),
	}); err != nil {
		return err
	}
	return a.redirectToEditor(c, articleID)
}

// handleAdminBlockSave applies a partial update with only the fields the
// block type's form carries.
func (a *App) handleAdminBlockSave(c echo.Context) error {
	block, err := a.Store.GetBlock(c.Param("id"))
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	fields := make(map[string]string)
	switch block.BlockType {
	case "image":
		fields["image_url"] = strings.TrimSpace(c.FormValue("image_url"))
		fields["image_alt"] = strings.TrimSpace(c.FormValue("image_alt"))
		if file, err := c.FormFile("image_file"); err == nil {
			path, err := a.uploadFormFile("media", file)
			if err != nil {
				c.Logger().Errorf("upload block image: %v", err)
				return a.redirectToEditorErr(c, block.ArticleID, "Image upload failed: "+err.Error())
			}
			fields["image_url"] = a.Media.PublicURL(path)
		}
	case "map":
		fields["map_embed"] = c.FormValue("map_embed")
	default:
		fields["content"] = c.FormValue("content")
	}
	if err := a.Store.UpdateBlock(block.ID, fields); err != nil {
		return err
	}
	return a.redirectToEditor(c, block.ArticleID)
}

// handleAdminBlockDelete removes a block. Remaining order indexes keep their
// gaps; relative order is what matters and moves renumber the whole list.
func (a *App) handleAdminBlockDelete(c echo.Context) error {
	block, err := a.Store.GetBlock(c.Param("id"))
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	if err := a.Store.DeleteBlock(block.ID); err != nil {
		return err
	}
	return a.redirectToEditor(c, block.ArticleID)
}

// handleAdminBlockMove swaps a block with its neighbor and renumbers the
// full list to 0..n-1. Moving past either end is a no-op.
func (a *App) handleAdminBlockMove(c echo.Context) error {
	block, err := a.Store.GetBlock(c.Param("id"))
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	blocks, err := a.Store.ListBlocks(block.ArticleID)
	if err != nil {
		return err
	}
	pos := -1
	for i, b := range blocks {
		if b.ID == block.ID {
			pos = i
			break
		}
	}
	target := pos
	switch c.FormValue("direction") {
	case "up":
		target = pos - 1
	case "down":
		target = pos + 1
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown direction")
	}
	if pos < 0 || target < 0 || target >= len(blocks) {
		return a.redirectToEditor(c, block.ArticleID)
	}
	blocks[pos], blocks[target] = blocks[target], blocks[pos]
	ids := make([]string, len(blocks))
	for i, b := range blocks {
		ids[i] = b.ID
	}
	if err := a.Store.ReorderBlocks(block.ArticleID, ids); err != nil {
		return err
	}
	return a.redirectToEditor(c, block.ArticleID)
}

func (a *App) redirectToEditor(c echo.Context, articleID string) error {
	return a.redirectToEditorErr(c, articleID, "")
}

func (a *App) redirectToEditorErr(c echo.Context, articleID, errMsg string) error {
	q := url.Values{}
	if c.FormValue("provisional") != "" {
		q.Set("provisional", "1")
	}
	if errMsg != "" {
		q.Set("err", errMsg)
	}
	target := "/admin/articles/" + articleID + "/"
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// placeholderSlug generates a unique throwaway slug for articles that do not
// have a usable one yet.
func placeholderSlug() string {
	return fmt.Sprintf("article-%d-%s", time.Now().Unix(), uuid.NewString()[:8])
}

func (a *App) uploadFormFile(bucket string, file *multipart.FileHeader) (string, error) {
	if file.Size > maxUploadSize {
		return "", fmt.Errorf("file too large (max 10MB)")
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	return a.Media.Upload(bucket, file.Filename, data)
}

func atoiDefault(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}
