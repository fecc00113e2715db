package main

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AbdElbassetKh/portfolio/internal/browse"
	"github.com/AbdElbassetKh/portfolio/internal/catalog"
	"github.com/AbdElbassetKh/portfolio/internal/contact"
)

const themeCookie = "theme"

type navItem struct {
	Label string
	Path  string
}

var navItems = []navItem{
	{"Home", "/"},
	{"About", "/about"},
	{"Projects", "/projects"},
	{"Blog", "/blog"},
	{"Contact", "/contact"},
}

// page merges the data every full page needs into h.
func (s *site) page(c *gin.Context, title string, h gin.H) gin.H {
	data := gin.H{
		"title":   title,
		"profile": s.profile,
		"nav":     navItems,
		"path":    c.FullPath(),
		"theme":   theme(c),
	}
	for k, v := range h {
		data[k] = v
	}
	return data
}

func theme(c *gin.Context) string {
	if v, err := c.Cookie(themeCookie); err == nil && v == "dark" {
		return "dark"
	}
	return "light"
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// listURL builds a catalog listing link, leaving out default values.
func listURL(base, text, category string, page int) string {
	v := url.Values{}
	if text != "" {
		v.Set("q", text)
	}
	if category != "" && category != catalog.AllCategories {
		v.Set("category", category)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return base
	}
	return base + "?" + v.Encode()
}

func (s *site) home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.page(c, "", gin.H{
		"featured":     s.catalog.FeaturedProjects(),
		"skillsIntro":  SkillsIntro,
		"contactIntro": ContactIntro,
		"form":         string(contact.FormQuick),
	}))
}

func (s *site) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", s.page(c, "About", nil))
}

func (s *site) projects(c *gin.Context) {
	sess := browse.NewSession(s.catalog.Projects(), catalog.ProjectMatcher{}, s.catalog.ProjectCategories(), s.cfg.PageSize)
	sess.Apply(c.Request.URL.Query())
	view := sess.View()
	s.metrics.observeQuery("projects", view.Empty)

	data := s.page(c, "Projects", gin.H{
		"view":  view,
		"base":  "/projects",
		"intro": ProjectsIntro,
		"empty": ProjectsEmpty,
	})
	if isHTMX(c) {
		c.HTML(http.StatusOK, "project-grid.html", data)
		return
	}
	c.HTML(http.StatusOK, "projects.html", data)
}

func (s *site) blog(c *gin.Context) {
	sess := browse.NewSession(s.catalog.Posts(), catalog.PostMatcher{}, s.catalog.PostCategories(), s.cfg.PageSize)
	sess.Apply(c.Request.URL.Query())
	view := sess.View()
	s.metrics.observeQuery("posts", view.Empty)

	data := s.page(c, "Blog", gin.H{
		"view":  view,
		"base":  "/blog",
		"intro": BlogIntro,
		"empty": BlogEmpty,
	})
	if isHTMX(c) {
		c.HTML(http.StatusOK, "post-grid.html", data)
		return
	}
	c.HTML(http.StatusOK, "blog.html", data)
}

func (s *site) post(c *gin.Context) {
	p, ok := s.catalog.PostBySlug(c.Param("slug"))
	if !ok {
		c.HTML(http.StatusNotFound, "not-found.html", s.page(c, "Not Found", gin.H{"message": PostNotFound}))
		return
	}
	c.HTML(http.StatusOK, "post.html", s.page(c, p.Title, gin.H{"post": p}))
}

func (s *site) contactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", s.page(c, "Contact", gin.H{
		"contactIntro": ContactIntro,
		"form":         string(contact.FormPage),
	}))
}

// submitContact answers with an HTMX fragment. Failures still return 200
// so the fragment is swapped in.
func (s *site) submitContact(c *gin.Context) {
	var msg contact.Message
	if err := c.ShouldBind(&msg); err != nil {
		s.logger.Warn("bind contact form", "error", err)
		s.metrics.observeContact("invalid")
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": ContactInvalid})
		return
	}

	form := contact.ParseForm(c.PostForm("form"))
	receipt, err := s.contact.Submit(c.Request.Context(), form, msg)

	var verr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		s.metrics.observeContact("invalid")
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error":  ContactInvalid,
			"fields": verr.Fields,
		})
	case err != nil:
		s.logger.Error("send contact message", "error", err)
		s.metrics.observeContact("failed")
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": ContactFailed})
	default:
		s.metrics.observeContact("sent")
		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"title":   ContactSuccessTitle,
			"success": ContactSuccess,
			"receipt": receipt.ID,
		})
	}
}

// toggleTheme flips the theme cookie and sends the visitor back to the
// page they came from on this site.
func (s *site) toggleTheme(c *gin.Context) {
	next := "dark"
	if theme(c) == "dark" {
		next = "light"
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(themeCookie, next, 365*24*3600, "/", "", false, true)
	c.Redirect(http.StatusFound, backTarget(c))
}

func backTarget(c *gin.Context) string {
	ref, err := url.Parse(c.GetHeader("Referer"))
	if err != nil || ref.Path == "" {
		return "/"
	}
	if ref.Host != "" && ref.Host != c.Request.Host {
		return "/"
	}
	return ref.RequestURI()
}
