package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"folio/views"
)

// Config holds all runtime configuration, read from the environment after an
// optional .env file is loaded. An empty DatabasePath switches the app into
// preview mode: an in-memory store with placeholder media URLs.
type Config struct {
	Site views.SiteConfig

	Addr         string // LISTEN_ADDR (default ":3000")
	DatabasePath string // DATABASE_PATH, empty enables preview mode
	StaticDir    string // STATIC_DIR (default "public")

	AdminEmail        string // ADMIN_EMAIL
	AdminPasswordHash string // ADMIN_PASSWORD_HASH, bcrypt
	SessionSecret     string // SESSION_SECRET
	CookieSecure      bool   // COOKIE_SECURE=true for HTTPS
}

// LoadConfig reads configuration from .env (when present) and the process
// environment.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}
	return Config{
		Site: views.SiteConfig{
			Name:        envOr("SITE_NAME", "Portfolio"),
			URL:         envOr("SITE_URL", "http://localhost:3000"),
			Description: os.Getenv("SITE_DESCRIPTION"),
			Author:      os.Getenv("SITE_AUTHOR"),
		},
		Addr:              envOr("LISTEN_ADDR", ":3000"),
		DatabasePath:      os.Getenv("DATABASE_PATH"),
		StaticDir:         envOr("STATIC_DIR", "public"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		CookieSecure:      os.Getenv("COOKIE_SECURE") == "true",
	}
}

// PreviewMode reports whether the app runs without a database.
func (c Config) PreviewMode() bool {
	return c.DatabasePath == ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
