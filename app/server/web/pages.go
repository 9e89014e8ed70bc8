package web

import (
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/shade/app/metrics"
	"github.com/umputun/shade/app/server/internal"
)

// handleIndex renders the page in the visitor's stored theme.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctrl, rec := internal.NewController(h.store, h.visitors.ID(w, r))
	mode := ctrl.Initialize(r.Context())
	h.metrics.Applied(mode, metrics.SourcePage)

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "base.html", h.newTemplateData(rec.Styles())); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// handleThemeToggle flips the visitor's theme and sends the browser back to the page.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	ctrl, _ := internal.NewController(h.store, h.visitors.ID(w, r))
	ctrl.Initialize(r.Context())
	mode := ctrl.Toggle(r.Context())
	h.metrics.Toggled(mode)
	log.Printf("[DEBUG] theme switched to %s", mode)
	http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
}

// handleThemeCSS serves the visitor's custom properties as a stylesheet.
func (h *Handler) handleThemeCSS(w http.ResponseWriter, r *http.Request) {
	ctrl, rec := internal.NewController(h.store, h.visitors.ID(w, r))
	mode := ctrl.Initialize(r.Context())
	h.metrics.Applied(mode, metrics.SourceCSS)

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if _, err := w.Write([]byte(rec.Styles().CSS())); err != nil {
		log.Printf("[WARN] failed to write theme css: %v", err)
	}
}
