// Package browse keeps the filter and page state of one catalog view and
// turns it into what a listing page renders.
package browse

import (
	"net/url"
	"strconv"

	"github.com/AbdElbassetKh/portfolio/internal/catalog"
)

// View is everything a listing template needs for one render.
type View[T any] struct {
	Filter     catalog.Filter
	Page       catalog.Page[T]
	Categories []string
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
	// Empty is set when nothing matches the filters.
	Empty     bool
	ShowPager bool
}

// Session is the state of a single listing view. Records are shared and
// never written.
type Session[T any] struct {
	records    []T
	matcher    catalog.Matcher[T]
	categories []string
	pageSize   int

	filter   catalog.Filter
	page     int
	matching []T
}

// NewSession starts a view over records with no filters on page one.
func NewSession[T any](records []T, m catalog.Matcher[T], categories []string, pageSize int) *Session[T] {
	if pageSize <= 0 {
		pageSize = catalog.DefaultPageSize
	}
	s := &Session[T]{
		records:    records,
		matcher:    m,
		categories: categories,
		pageSize:   pageSize,
		filter:     catalog.Filter{Category: catalog.AllCategories},
		page:       1,
	}
	s.refresh()
	return s
}

func (s *Session[T]) refresh() {
	s.matching = catalog.Query(s.records, s.filter, s.matcher)
}

func (s *Session[T]) totalPages() int {
	return (len(s.matching) + s.pageSize - 1) / s.pageSize
}

// SetText changes the search text. The page goes back to one when the
// text actually changes.
func (s *Session[T]) SetText(text string) {
	if text == s.filter.Text {
		return
	}
	s.filter.Text = text
	s.page = 1
	s.refresh()
}

// SetCategory changes the category filter. An empty category means "All".
func (s *Session[T]) SetCategory(category string) {
	if category == "" {
		category = catalog.AllCategories
	}
	if category == s.filter.Category {
		return
	}
	s.filter.Category = category
	s.page = 1
	s.refresh()
}

// GoTo moves to page n, clamped to the pages that exist.
func (s *Session[T]) GoTo(n int) {
	s.page = max(1, min(n, s.totalPages()))
}

func (s *Session[T]) Next() { s.GoTo(s.page + 1) }

func (s *Session[T]) Prev() { s.GoTo(s.page - 1) }

// Page returns the current page number.
func (s *Session[T]) Page() int { return s.page }

// Filter returns the active filters.
func (s *Session[T]) Filter() catalog.Filter { return s.filter }

// View renders the current state.
func (s *Session[T]) View() View[T] {
	p := catalog.Paginate(s.matching, s.pageSize, s.page)
	return View[T]{
		Filter:     s.filter,
		Page:       p,
		Categories: s.categories,
		HasPrev:    s.page > 1,
		HasNext:    s.page < p.TotalPages,
		PrevPage:   max(1, s.page-1),
		NextPage:   min(max(p.TotalPages, 1), s.page+1),
		Empty:      p.TotalItems == 0,
		ShowPager:  p.TotalPages > 1,
	}
}

// Apply reads the q, category and page parameters of a request, in that
// order, so a filter change lands on page one unless a page is given.
func (s *Session[T]) Apply(values url.Values) {
	s.SetText(values.Get("q"))
	s.SetCategory(values.Get("category"))
	if raw := values.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			s.GoTo(n)
		}
	}
}
