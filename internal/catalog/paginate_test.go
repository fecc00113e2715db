package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int) []Post {
	out := make([]Post, n)
	for i := range out {
		out[i] = Post{ID: fmt.Sprintf("post-%d", i+1)}
	}
	return out
}

func TestPaginateFiveProjects(t *testing.T) {
	projects := loadStore(t).Projects()
	matching := Query(projects, Filter{Category: AllCategories}, ProjectMatcher{})

	page := Paginate(matching, DefaultPageSize, 1)
	assert.Equal(t, 5, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, projectIDs(projects), projectIDs(page.Items))
}

func TestPaginateOutOfRangePageIsEmpty(t *testing.T) {
	page := Paginate(numbered(6), 6, 2)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)

	page = Paginate(numbered(6), 6, 0)
	assert.Empty(t, page.Items)

	page = Paginate(numbered(6), 6, -3)
	assert.Empty(t, page.Items)
}

func TestPaginateEmptyMatchingSet(t *testing.T) {
	page := Paginate([]Post{}, 6, 1)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
	assert.Empty(t, page.Items)
}

func TestPaginateTotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{1, 6, 1}, {6, 6, 1}, {7, 6, 2}, {12, 6, 2}, {13, 6, 3}, {5, 1, 5}, {4, 0, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_by_%d", tt.n, tt.size), func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(numbered(tt.n), tt.size, 1).TotalPages)
		})
	}
}

func TestPaginateConcatenationRebuildsMatchingSet(t *testing.T) {
	for _, n := range []int{1, 5, 6, 7, 18, 23} {
		matching := numbered(n)
		var rebuilt []Post
		total := Paginate(matching, 6, 1).TotalPages
		for p := 1; p <= total; p++ {
			page := Paginate(matching, 6, p)
			require.LessOrEqual(t, len(page.Items), 6)
			rebuilt = append(rebuilt, page.Items...)
		}
		assert.Equal(t, postIDs(matching), postIDs(rebuilt), "n=%d", n)
	}
}

func TestPaginateLastPageIsClipped(t *testing.T) {
	page := Paginate(numbered(8), 6, 2)
	assert.Equal(t, []string{"post-7", "post-8"}, postIDs(page.Items))
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 6, page.Size)
}

func TestPaginateCopiesItems(t *testing.T) {
	matching := numbered(3)
	page := Paginate(matching, 6, 1)
	page.Items[0].ID = "changed"
	assert.Equal(t, "post-1", matching[0].ID)
}
