// Package api provides the JSON API for reading and switching a visitor's theme.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/shade/app/enum"
	"github.com/umputun/shade/app/metrics"
	"github.com/umputun/shade/app/server/internal"
	"github.com/umputun/shade/app/store"
	"github.com/umputun/shade/app/theme"
)

//go:generate moq -out mocks/kvstore.go -pkg mocks -skip-ensure -fmt goimports . KVStore
//go:generate moq -out mocks/metrics.go -pkg mocks -skip-ensure -fmt goimports . Metrics

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

// Config holds api handler configuration.
type Config struct {
	BaseURL    string
	VisitorTTL time.Duration
}

// Handler handles API requests for /api/v1/* endpoints.
type Handler struct {
	store    KVStore
	metrics  Metrics
	visitors internal.Visitors
}

// State is the theme of a visitor as seen by API clients.
type State struct {
	Mode       enum.ThemeMode    `json:"mode"`
	Sentinel   string            `json:"sentinel"`
	Dark       bool              `json:"dark"`
	ToggleText string            `json:"toggle_text"`
	Vars       map[string]string `json:"vars"`
}

// setRequest is the body of PUT /theme.
type setRequest struct {
	Mode enum.ThemeMode `json:"mode"`
}

// New creates a new API handler.
func New(st KVStore, m Metrics, cfg Config) *Handler {
	path := "/"
	if cfg.BaseURL != "" {
		path = cfg.BaseURL + "/"
	}
	return &Handler{
		store:    st,
		metrics:  m,
		visitors: internal.Visitors{Path: path, TTL: cfg.VisitorTTL},
	}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /theme", h.handleGet)
	r.HandleFunc("PUT /theme", h.handleSet)
	r.HandleFunc("DELETE /theme", h.handleReset)
	r.HandleFunc("POST /theme/toggle", h.handleToggle)
	r.HandleFunc("GET /palette", h.handlePalette)
}

// handleGet returns the visitor's current theme.
// GET /api/v1/theme
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctrl, rec := internal.NewController(h.store, h.visitors.ID(w, r))
	mode := ctrl.Initialize(r.Context())
	h.metrics.Applied(mode, metrics.SourceAPI)
	rest.RenderJSON(w, newState(rec.Styles()))
}

// handleToggle flips the visitor's theme and returns the new one.
// POST /api/v1/theme/toggle
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	ctrl, rec := internal.NewController(h.store, h.visitors.ID(w, r))
	ctrl.Initialize(r.Context())
	mode := ctrl.Toggle(r.Context())
	h.metrics.Toggled(mode)
	log.Printf("[DEBUG] api toggle, theme %s", mode)
	rest.RenderJSON(w, newState(rec.Styles()))
}

// handleSet switches the visitor's theme to the requested mode.
// PUT /api/v1/theme with {"mode":"dark"} or {"mode":"light"}
func (h *Handler) handleSet(w http.ResponseWriter, r *http.Request) {
	var req setRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}
	if req.Mode == (enum.ThemeMode{}) {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, nil, "mode is required")
		return
	}

	ctrl, rec := internal.NewController(h.store, h.visitors.ID(w, r))
	ctrl.Initialize(r.Context())
	prev := ctrl.Mode()
	mode := ctrl.Set(r.Context(), req.Mode)
	if mode != prev {
		h.metrics.Toggled(mode)
	}
	log.Printf("[DEBUG] api set, theme %s", mode)
	rest.RenderJSON(w, newState(rec.Styles()))
}

// handleReset forgets the visitor's stored preference, the next read resolves to light.
// DELETE /api/v1/theme
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	scope := store.NewScoped(h.store, internal.VisitorScope(h.visitors.ID(w, r)))
	err := scope.Delete(r.Context(), theme.StorageKey)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to reset theme")
		return
	}
	log.Printf("[DEBUG] api reset, %s", scope.Prefix())
	w.WriteHeader(http.StatusNoContent)
}

// handlePalette returns both palette rows keyed by mode.
// GET /api/v1/palette
func (h *Handler) handlePalette(w http.ResponseWriter, _ *http.Request) {
	res := make(map[string]State, len(enum.ThemeModeValues()))
	for _, mode := range enum.ThemeModeValues() {
		res[mode.String()] = newState(theme.Palette(mode))
	}
	rest.RenderJSON(w, res)
}

func newState(s theme.Styles) State {
	return State{
		Mode:       s.Mode,
		Sentinel:   s.Mode.Sentinel(),
		Dark:       s.Dark,
		ToggleText: s.ToggleText,
		Vars:       s.VarMap(),
	}
}
