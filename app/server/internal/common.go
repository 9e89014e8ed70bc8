// Package internal provides shared utilities for server subpackages.
package internal

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/umputun/shade/app/store"
	"github.com/umputun/shade/app/theme"
)

// VisitorCookieName is the cookie carrying the anonymous visitor id.
const VisitorCookieName = "shade-visitor"

// VisitorHeader lets API clients without cookies name their visitor id.
const VisitorHeader = "X-Shade-Visitor"

// Visitors issues and recognizes visitor ids.
type Visitors struct {
	Path string        // cookie path, "/" if empty
	TTL  time.Duration // cookie lifetime, one year if zero
}

// ID returns the visitor id of the request. A valid id in the header wins over the cookie;
// a missing or malformed id is replaced by a new one. The cookie is (re)issued every time
// to keep it from expiring for active visitors.
func (v Visitors) ID(w http.ResponseWriter, r *http.Request) string {
	id := canonicalID(r.Header.Get(VisitorHeader))
	if id == "" {
		if c, err := r.Cookie(VisitorCookieName); err == nil {
			id = canonicalID(c.Value)
		}
	}
	if id == "" {
		id = uuid.NewString()
	}

	path, ttl := v.Path, v.TTL
	if path == "" {
		path = "/"
	}
	if ttl <= 0 {
		ttl = 365 * 24 * time.Hour
	}
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookieName,
		Value:    id,
		Path:     path,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// VisitorScope returns the store prefix owned by the visitor.
func VisitorScope(id string) string {
	return "visitor/" + id
}

// NewController binds a theme controller to the visitor's own slice of the store.
// The returned recorder holds whatever the controller applied.
func NewController(kv store.KV, visitor string) (*theme.Controller, *theme.Recorder) {
	rec := &theme.Recorder{}
	return theme.New(store.NewScoped(kv, VisitorScope(visitor)), rec), rec
}

// canonicalID returns the id in its canonical dashed form, or empty string if s is not a uuid.
// urn, braced and undashed spellings of one uuid map to the same visitor.
func canonicalID(s string) string {
	if s == "" {
		return ""
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return ""
	}
	return u.String()
}
