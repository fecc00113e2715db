package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadStore(t *testing.T) *Store {
	t.Helper()
	s, err := Load()
	require.NoError(t, err)
	return s
}

func projectIDs(ps []Project) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}

func postIDs(ps []Post) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}

func TestQueryProjects(t *testing.T) {
	projects := loadStore(t).Projects()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"match all", Filter{Category: AllCategories}, []string{"project-1", "project-2", "project-3", "project-4", "project-5"}},
		{"empty category matches all", Filter{}, []string{"project-1", "project-2", "project-3", "project-4", "project-5"}},
		{"branding tag", Filter{Category: "Branding"}, []string{"project-1", "project-3", "project-5"}},
		{"title text ignores case", Filter{Text: "website", Category: AllCategories}, []string{"project-2", "project-4"}},
		{"tag text", Filter{Text: "next.js"}, []string{"project-4"}},
		{"category matches tag substring ignoring case", Filter{Category: "UX/UI Design"}, []string{"project-2"}},
		{"full-stack", Filter{Category: "Full-Stack"}, []string{"project-2", "project-4"}},
		{"no mobile projects", Filter{Category: "Mobile"}, []string{}},
		{"text and category combine", Filter{Text: "club", Category: "Branding"}, []string{"project-5"}},
		{"text and category exclude", Filter{Text: "website", Category: "Branding"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Query(projects, tt.filter, ProjectMatcher{})
			assert.Equal(t, tt.want, projectIDs(got))
		})
	}
}

func TestQueryPosts(t *testing.T) {
	posts := loadStore(t).Posts()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"match all", Filter{Category: AllCategories}, []string{"post-1", "post-2", "post-3", "post-4", "post-5"}},
		{"exact category", Filter{Category: "Development"}, []string{"post-2", "post-4"}},
		{"category is case sensitive", Filter{Category: "development"}, []string{}},
		{"category is not a substring match", Filter{Category: "Design"}, []string{"post-1"}},
		{"excerpt text", Filter{Text: "DISABILITIES"}, []string{"post-2"}},
		{"title text", Filter{Text: "branding"}, []string{"post-3"}},
		{"text and category", Filter{Text: "exploring", Category: "Development"}, []string{"post-4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Query(posts, tt.filter, PostMatcher{})
			assert.Equal(t, tt.want, postIDs(got))
		})
	}
}

func TestQueryIsOrderedSubsequence(t *testing.T) {
	projects := loadStore(t).Projects()
	filters := []Filter{
		{}, {Text: "a"}, {Text: "identity"}, {Category: "Branding"}, {Text: "3d", Category: "Full-Stack"}, {Text: "zzz"},
	}
	for _, f := range filters {
		got := Query(projects, f, ProjectMatcher{})
		i := 0
		for _, p := range got {
			for i < len(projects) && projects[i].ID != p.ID {
				i++
			}
			require.Less(t, i, len(projects), "filter %+v returned %s out of order", f, p.ID)
			i++
		}
	}
}

func TestQueryIsIdempotent(t *testing.T) {
	posts := loadStore(t).Posts()
	f := Filter{Text: "web", Category: "Development"}
	once := Query(posts, f, PostMatcher{})
	twice := Query(once, f, PostMatcher{})
	assert.Equal(t, once, twice)
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	s := loadStore(t)
	projects := s.Projects()
	before := projectIDs(projects)

	got := Query(projects, Filter{Category: "Branding"}, ProjectMatcher{})
	got[0].Title = "changed"

	assert.Equal(t, before, projectIDs(projects))
	assert.NotEqual(t, "changed", s.Projects()[0].Title)
}

func TestIsDevelopmentProject(t *testing.T) {
	assert.True(t, IsDevelopmentProject(Project{Tags: []string{"Figma", "React"}}))
	assert.True(t, IsDevelopmentProject(Project{Tags: []string{"3d"}}))
	assert.False(t, IsDevelopmentProject(Project{Tags: []string{"Branding", "Visual Identity"}}))
	assert.False(t, IsDevelopmentProject(Project{Tags: []string{"react"}}))
}

func TestDisplayTags(t *testing.T) {
	p := Project{Tags: []string{"a", "b", "c", "d"}}
	assert.Equal(t, []string{"a", "b", "c"}, p.DisplayTags())
	assert.Equal(t, []string{"x"}, Project{Tags: []string{"x"}}.DisplayTags())
}
