package main

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AbdElbassetKh/portfolio/internal/catalog"
	"github.com/AbdElbassetKh/portfolio/internal/contact"
	"github.com/AbdElbassetKh/portfolio/internal/profile"
)

//go:embed templates/*.html
var templateFS embed.FS

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.logLevel()}))
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	s, err := newSite(cfg, logger, contact.NewSimulatedSender(cfg.ContactDelay, logger))
	if err != nil {
		logger.Error("load site content", "error", err)
		os.Exit(1)
	}

	r, err := newRouter(s)
	if err != nil {
		logger.Error("build router", "error", err)
		os.Exit(1)
	}

	logger.Info("portfolio listening", "port", cfg.Port, "page_size", cfg.PageSize, "metrics", cfg.MetricsEnabled)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// site holds everything the handlers read. It is built once at startup
// and never written afterwards.
type site struct {
	cfg      Config
	logger   *slog.Logger
	catalog  *catalog.Store
	profile  *profile.Profile
	contact  *contact.Service
	metrics  *siteMetrics
	registry *prometheus.Registry
}

func newSite(cfg Config, logger *slog.Logger, sender contact.Sender) (*site, error) {
	store, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	owner, err := profile.Load()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	s := &site{
		cfg:     cfg,
		logger:  logger,
		catalog: store,
		profile: owner,
		contact: contact.NewService(sender),
	}
	if cfg.MetricsEnabled {
		s.registry = prometheus.NewRegistry()
		s.metrics = newSiteMetrics(s.registry)
	}
	return s, nil
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"listURL":       listURL,
		"isDevelopment": catalog.IsDevelopmentProject,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func newRouter(s *site) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))
	if s.metrics != nil {
		r.Use(s.metrics.pageViewMiddleware())
	}
	r.SetHTMLTemplate(tmpl)

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.GET("/", s.home)
	r.GET("/about", s.about)
	r.GET("/projects", s.projects)
	r.GET("/blog", s.blog)
	r.GET("/blog/:slug", s.post)
	r.GET("/contact", s.contactPage)

	// HTMX contact form endpoint - returns just the result fragment
	r.POST("/contact", s.submitContact)

	r.GET("/theme", s.toggleTheme)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	}

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not-found.html", s.page(c, "Not Found", gin.H{"message": PageNotFound}))
	})
	return r, nil
}
