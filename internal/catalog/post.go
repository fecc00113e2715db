package catalog

// Post is one blog article.
type Post struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Excerpt  string `yaml:"excerpt"`
	Content  string `yaml:"content"`
	Image    string `yaml:"image"`
	Date     string `yaml:"date"`
	ReadTime string `yaml:"read_time"`
	Category string `yaml:"category"`
	Slug     string `yaml:"slug"`
}

// PostMatcher searches titles and excerpts. Categories must match exactly.
type PostMatcher struct{}

func (PostMatcher) MatchText(p Post, needle string) bool {
	return containsFold(p.Title, needle) || containsFold(p.Excerpt, needle)
}

func (PostMatcher) MatchCategory(p Post, category string) bool {
	return p.Category == category
}
