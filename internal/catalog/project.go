package catalog

import "slices"

// Project is one portfolio entry.
type Project struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Tags        []string `yaml:"tags"`
	DemoURL     string   `yaml:"demo_url"`
	GitHubURL   string   `yaml:"github_url"`
	Featured    bool     `yaml:"featured"`
}

var developmentTags = []string{"Full-Stack", "React", "Node.js", "Next.js", "Google Maps API", "3d"}

// IsDevelopmentProject reports whether p carries a software development
// tag. Those projects get a live demo and a source code link.
func IsDevelopmentProject(p Project) bool {
	for _, tag := range p.Tags {
		if slices.Contains(developmentTags, tag) {
			return true
		}
	}
	return false
}

// DisplayTags returns at most the first three tags.
func (p Project) DisplayTags() []string {
	if len(p.Tags) <= 3 {
		return p.Tags
	}
	return p.Tags[:3]
}

// ProjectMatcher searches titles and tags. A category matches when any
// tag contains it, ignoring case.
type ProjectMatcher struct{}

func (ProjectMatcher) MatchText(p Project, needle string) bool {
	if containsFold(p.Title, needle) {
		return true
	}
	for _, tag := range p.Tags {
		if containsFold(tag, needle) {
			return true
		}
	}
	return false
}

func (ProjectMatcher) MatchCategory(p Project, category string) bool {
	needle := fold(category)
	for _, tag := range p.Tags {
		if containsFold(tag, needle) {
			return true
		}
	}
	return false
}
