package catalog

import (
	"embed"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// ErrInvalidCatalog is returned when the bundled data breaks an identity rule.
var ErrInvalidCatalog = errors.New("invalid catalog")

type projectsFile struct {
	Categories []string  `yaml:"categories"`
	Projects   []Project `yaml:"projects"`
}

type postsFile struct {
	Categories []string `yaml:"categories"`
	Posts      []Post   `yaml:"posts"`
}

// Store holds the read-only project and post collections. It is filled
// once by Load and never mutated afterwards; accessors hand out copies.
type Store struct {
	projects          []Project
	posts             []Post
	projectCategories []string
	postCategories    []string
}

// Load reads the collections bundled with the binary.
func Load() (*Store, error) {
	var pf projectsFile
	if err := decode("data/projects.yaml", &pf); err != nil {
		return nil, err
	}
	var bf postsFile
	if err := decode("data/posts.yaml", &bf); err != nil {
		return nil, err
	}
	return NewStore(pf.Projects, bf.Posts, pf.Categories, bf.Categories)
}

// NewStore builds a Store from explicit collections. Identifiers must be
// present and unique within each collection, as must post slugs.
func NewStore(projects []Project, posts []Post, projectCategories, postCategories []string) (*Store, error) {
	if err := uniqueIDs(projects, func(p Project) string { return p.ID }); err != nil {
		return nil, fmt.Errorf("projects: %w", err)
	}
	if err := uniqueIDs(posts, func(p Post) string { return p.ID }); err != nil {
		return nil, fmt.Errorf("posts: %w", err)
	}
	if err := uniqueIDs(posts, func(p Post) string { return p.Slug }); err != nil {
		return nil, fmt.Errorf("post slugs: %w", err)
	}
	return &Store{
		projects:          cloneProjects(projects),
		posts:             slices.Clone(posts),
		projectCategories: withAll(projectCategories),
		postCategories:    withAll(postCategories),
	}, nil
}

func decode(name string, v any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func uniqueIDs[T any](items []T, key func(T) string) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		k := key(item)
		if k == "" {
			return fmt.Errorf("%w: entry %d has an empty key", ErrInvalidCatalog, i)
		}
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidCatalog, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

func withAll(categories []string) []string {
	out := []string{AllCategories}
	for _, c := range categories {
		if c != AllCategories && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

func cloneProjects(in []Project) []Project {
	out := make([]Project, len(in))
	for i, p := range in {
		p.Tags = slices.Clone(p.Tags)
		out[i] = p
	}
	return out
}

// Projects returns every project in authoring order.
func (s *Store) Projects() []Project { return cloneProjects(s.projects) }

// Posts returns every post in authoring order.
func (s *Store) Posts() []Post { return slices.Clone(s.posts) }

// FeaturedProjects returns the projects flagged for the home page.
func (s *Store) FeaturedProjects() []Project {
	var out []Project
	for _, p := range s.Projects() {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// PostBySlug looks up a post by its URL slug.
func (s *Store) PostBySlug(slug string) (Post, bool) {
	i := slices.IndexFunc(s.posts, func(p Post) bool { return p.Slug == slug })
	if i < 0 {
		return Post{}, false
	}
	return s.posts[i], true
}

// ProjectCategories lists the project category filters, "All" first.
func (s *Store) ProjectCategories() []string { return slices.Clone(s.projectCategories) }

// PostCategories lists the post category filters, "All" first.
func (s *Store) PostCategories() []string { return slices.Clone(s.postCategories) }
