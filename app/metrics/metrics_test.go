package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/shade/app/enum"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("")

	m.Applied(enum.ThemeModeDark, SourcePage)
	m.Applied(enum.ThemeModeDark, SourcePage)
	m.Applied(enum.ThemeModeLight, SourceAPI)
	m.Toggled(enum.ThemeModeDark)

	assert.InDelta(t, 2, testutil.ToFloat64(m.applied.WithLabelValues("dark", SourcePage)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.applied.WithLabelValues("light", SourceAPI)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.applied.WithLabelValues("light", SourceCSS)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.toggles.WithLabelValues("dark")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New("test")
	m.Toggled(enum.ThemeModeLight)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `test_theme_toggles_total{mode="light"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestMetrics_Independent(t *testing.T) {
	a, b := New(""), New("")
	a.Toggled(enum.ThemeModeDark)
	assert.InDelta(t, 0, testutil.ToFloat64(b.toggles.WithLabelValues("dark")), 0)
}
