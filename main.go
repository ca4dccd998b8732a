// Command folio serves a personal portfolio site: public pages rendered from
// operator-managed content plus an admin panel to manage it. Content lives
// in SQLite; without a DATABASE_PATH the app runs in preview mode against an
// in-memory store with placeholder media.
package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// App wires together the store, media storage, handlers, and middleware.
type App struct {
	Config Config
	Echo   *echo.Echo
	Store  Store
	Media  MediaStore

	loginLimiter *loginLimiter
	staticDir    string
}

// NewApp creates an App with the given configuration. The store and media
// backend are chosen by DatabasePath: SQLite plus disk storage normally, the
// in-memory pair in preview mode.
func NewApp(cfg Config) (*App, error) {
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD_HASH are required")
	}

	a := &App{
		Config:       cfg,
		Echo:         echo.New(),
		loginLimiter: newLoginLimiter(5, time.Minute),
		staticDir:    cfg.StaticDir,
	}

	if cfg.PreviewMode() {
		log.Println("no DATABASE_PATH set, running in preview mode with in-memory storage")
		a.Store = newMemStore()
		a.Media = mockMedia{}
	} else {
		store, err := newSQLiteStore(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("init store: %w", err)
		}
		a.Store = store
		a.Media = newDiskMedia(cfg.StaticDir)
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a, nil
}

// Start runs the HTTP server until it is shut down.
func (a *App) Start() error {
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases the store.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/cv/", a.handleCV)
	e.GET("/cv/download/", a.handleCVDownload)
	e.GET("/projects/", a.handleSection("project"))
	e.GET("/projects/:slug/", a.handleArticle)
	e.GET("/research/", a.handleSection("research"))
	e.GET("/research/:slug/", a.handleArticle)
	e.GET("/training/", a.handleSection("training"))
	e.GET("/volunteer/", a.handleSection("volunteer"))
	e.GET("/hobbies/", a.handleSection("hobby"))
	e.GET("/contact/", a.handleContact)
	e.GET("/about/", a.handleAbout)

	e.GET("/admin/login/", a.handleAdminLoginPage)
	e.POST("/admin/login/", a.handleAdminLogin)

	admin := e.Group("/admin", requireAdmin)
	admin.GET("/", a.handleAdminOverview)
	admin.POST("/logout/", handleAdminLogout)
	admin.GET("/content/:type/", a.handleAdminContent)
	admin.POST("/content/:type/save/", a.handleAdminContentSave)
	admin.POST("/content/:type/delete/:id/", a.handleAdminContentDelete)
	admin.GET("/cv-sections/", a.handleAdminCVSections)
	admin.POST("/cv-sections/save/", a.handleAdminCVSectionSave)
	admin.POST("/cv-sections/delete/:id/", a.handleAdminCVSectionDelete)
	admin.GET("/articles/", a.handleAdminArticles)
	admin.POST("/articles/create/", a.handleAdminArticleCreate)
	admin.GET("/articles/:id/", a.handleAdminArticleEditor)
	admin.POST("/articles/:id/save/", a.handleAdminArticleSave)
	admin.POST("/articles/:id/cancel/", a.handleAdminArticleCancel)
	admin.POST("/articles/:id/delete/", a.handleAdminArticleDelete)
	admin.POST("/articles/:id/blocks/add/", a.handleAdminBlockAdd)
	admin.POST("/blocks/:id/save/", a.handleAdminBlockSave)
	admin.POST("/blocks/:id/delete/", a.handleAdminBlockDelete)
	admin.POST("/blocks/:id/move/", a.handleAdminBlockMove)
}

func main() {
	cfg := LoadConfig()
	app, err := NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
