// Package web provides HTTP handlers for the themed page.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/shade/app/enum"
	"github.com/umputun/shade/app/server/internal"
	"github.com/umputun/shade/app/theme"
)

//go:generate moq -out mocks/kvstore.go -pkg mocks -skip-ensure -fmt goimports . KVStore
//go:generate moq -out mocks/metrics.go -pkg mocks -skip-ensure -fmt goimports . Metrics

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// KVStore defines the interface for key-value storage operations.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Metrics records theme activity.
type Metrics interface {
	Applied(mode enum.ThemeMode, source string)
	Toggled(mode enum.ThemeMode)
}

// Config holds web handler configuration.
type Config struct {
	BaseURL    string
	VisitorTTL time.Duration
}

// Handler handles web UI requests.
type Handler struct {
	store    KVStore
	metrics  Metrics
	tmpl     *template.Template
	baseURL  string
	visitors internal.Visitors
}

// New creates a new web handler.
func New(st KVStore, m Metrics, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	h := &Handler{
		store:   st,
		metrics: m,
		tmpl:    tmpl,
		baseURL: cfg.BaseURL,
	}
	h.visitors = internal.Visitors{Path: h.cookiePath(), TTL: cfg.VisitorTTL}
	return h, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
	r.HandleFunc("GET /web/theme.css", h.handleThemeCSS)
}

// parseTemplates parses the page and its partials from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("")

	baseContent, err := templatesFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	if _, err = tmpl.New("base.html").Parse(string(baseContent)); err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}

	partials := []string{"toggle", "vars"}
	for _, name := range partials {
		content, readErr := templatesFS.ReadFile("templates/partials/" + name + ".html")
		if readErr != nil {
			return nil, fmt.Errorf("read partial %s: %w", name, readErr)
		}
		if _, parseErr := tmpl.New(name).Parse(string(content)); parseErr != nil {
			return nil, fmt.Errorf("parse partial %s: %w", name, parseErr)
		}
	}

	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	Styles      theme.Styles
	RootStyle   template.CSS // custom properties for the root element
	MarkerClass string
	ToggleID    string
	BaseURL     string
}

func (h *Handler) newTemplateData(s theme.Styles) templateData {
	return templateData{
		Styles:      s,
		RootStyle:   template.CSS(s.Declarations()), //nolint:gosec // built from the fixed palette only
		MarkerClass: theme.MarkerClass,
		ToggleID:    theme.ToggleID,
		BaseURL:     h.baseURL,
	}
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (h *Handler) cookiePath() string {
	if h.baseURL == "" {
		return "/"
	}
	return h.baseURL + "/"
}
