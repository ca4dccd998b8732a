package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"folio/views"
)

func (a *App) handleHome(c echo.Context) error {
	return Render(c, views.Home(a.Config.Site))
}

// handleSection serves the five grid pages. Projects and research also list
// their published articles; read errors degrade to an empty grid.
func (a *App) handleSection(contentType string) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := a.Store.ListContent(contentType)
		if err != nil {
			c.Logger().Errorf("list %s content: %v", contentType, err)
		}
		for i := range items {
			items[i].MediaHref = a.Media.PublicURL(items[i].MediaURL)
		}
		var articles []views.Article
		if contentType == "project" || contentType == "research" {
			articles, err = a.Store.ListArticles(contentType, true)
			if err != nil {
				c.Logger().Errorf("list %s articles: %v", contentType, err)
			}
		}
		return Render(c, views.Section(a.Config.Site, contentType, items, articles))
	}
}

// handleArticle serves one published article by slug. Drafts and archived
// articles are indistinguishable from missing ones.
func (a *App) handleArticle(c echo.Context) error {
	slug := c.Param("slug")
	article, err := a.Store.GetArticleBySlug(slug)
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	if article.Status != "published" {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	blocks, err := a.Store.ListBlocks(article.ID)
	if err != nil {
		return err
	}
	for i := range blocks {
		if blocks[i].BlockType == "image" && blocks[i].ImageURL != "" && blocks[i].ImageURL[0] != '/' && !isAbsoluteURL(blocks[i].ImageURL) {
			blocks[i].ImageURL = a.Media.PublicURL(blocks[i].ImageURL)
		}
	}
	return Render(c, views.ArticlePage(a.Config.Site, article, blocks))
}

func (a *App) handleCV(c echo.Context) error {
	var item *views.ContentItem
	cv, err := a.Store.GetSingleton("cv")
	switch err {
	case nil:
		cv.MediaHref = a.Media.PublicURL(cv.MediaURL)
		item = &cv
	case ErrNotFound:
	default:
		c.Logger().Errorf("load cv item: %v", err)
	}
	sections, err := a.Store.ListCVSections()
	if err != nil {
		c.Logger().Errorf("list cv sections: %v", err)
	}
	return Render(c, views.CVPage(a.Config.Site, item, sections))
}

// handleCVDownload streams the stored CV file as an attachment named CV.pdf.
func (a *App) handleCVDownload(c echo.Context) error {
	cv, err := a.Store.GetSingleton("cv")
	if err != nil || cv.MediaURL == "" {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	data, err := a.Media.Download(cv.MediaURL)
	if err != nil {
		c.Logger().Errorf("download cv: %v", err)
		return echo.NewHTTPError(http.StatusNotFound)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="CV.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", data)
}

func (a *App) handleContact(c echo.Context) error {
	items, err := a.Store.ListContent("contact")
	if err != nil {
		c.Logger().Errorf("list contact items: %v", err)
	}
	return Render(c, views.ContactPage(a.Config.Site, items))
}

func (a *App) handleAbout(c echo.Context) error {
	var item *views.ContentItem
	about, err := a.Store.GetSingleton("about")
	switch err {
	case nil:
		about.MediaHref = a.Media.PublicURL(about.MediaURL)
		item = &about
	case ErrNotFound:
	default:
		c.Logger().Errorf("load about item: %v", err)
	}
	return Render(c, views.AboutPage(a.Config.Site, item))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}
	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	var renderErr error
	switch code {
	case http.StatusNotFound:
		renderErr = RenderStatus(c, code, views.NotFound(a.Config.Site))
	default:
		renderErr = RenderStatus(c, code, views.ServerError(a.Config.Site))
	}
	if renderErr != nil {
		c.Logger().Error(renderErr)
	}
}

func isAbsoluteURL(s string) bool {
	return len(s) > 7 && (s[:7] == "http://" || s[:8] == "https://")
}
