package main

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// siteMetrics counts page views and catalog activity. Only aggregate
// counters are kept: no client address or user agent is recorded.
// A nil *siteMetrics disables all recording.
type siteMetrics struct {
	PageViews          *prometheus.CounterVec
	CatalogQueries     *prometheus.CounterVec
	EmptyResults       *prometheus.CounterVec
	ContactSubmissions *prometheus.CounterVec
}

func newSiteMetrics(reg prometheus.Registerer) *siteMetrics {
	factory := promauto.With(reg)
	return &siteMetrics{
		PageViews: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_page_views_total",
			Help: "Page views by route, excluding static assets and Do Not Track requests",
		}, []string{"route"}),
		CatalogQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_catalog_queries_total",
			Help: "Catalog listings rendered by collection",
		}, []string{"collection"}),
		EmptyResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_catalog_empty_results_total",
			Help: "Catalog listings that matched nothing, by collection",
		}, []string{"collection"}),
		ContactSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact form submissions by outcome",
		}, []string{"outcome"}),
	}
}

func (m *siteMetrics) observeQuery(collection string, empty bool) {
	if m == nil {
		return
	}
	m.CatalogQueries.WithLabelValues(collection).Inc()
	if empty {
		m.EmptyResults.WithLabelValues(collection).Inc()
	}
}

func (m *siteMetrics) observeContact(outcome string) {
	if m == nil {
		return
	}
	m.ContactSubmissions.WithLabelValues(outcome).Inc()
}

func untracked(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/images/") ||
		strings.HasPrefix(path, "/favicon") ||
		path == "/metrics" ||
		path == "/healthz"
}

// pageViewMiddleware counts views per matched route after the handler ran.
func (m *siteMetrics) pageViewMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil || untracked(c.Request.URL.Path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.PageViews.WithLabelValues(route).Inc()
	}
}
