package catalog

import (
	"strings"

	"folio.dev/internal/models"
)

// SearchQuery is the current free text and category selection
type SearchQuery struct {
	Text     string
	Category models.Category
}

// NewSearchQuery builds a query from raw request values. An empty or
// unknown category selects every category.
func NewSearchQuery(text, category string) SearchQuery {
	c, err := models.ParseCategoryFilter(category)
	if err != nil {
		c = models.CategoryAll
	}
	return SearchQuery{Text: text, Category: c}
}

func (q SearchQuery) allCategories() bool {
	return q.Category == "" || q.Category == models.CategoryAll
}

// Matches reports whether p satisfies the query: the category agrees and the
// text, ignoring case, occurs in the title, the description or one tech tag.
func (q SearchQuery) Matches(p models.Project) bool {
	if !q.allCategories() && p.Category != q.Category {
		return false
	}
	if q.Text == "" {
		return true
	}

	needle := strings.ToLower(q.Text)
	if strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, tech := range p.TechStack {
		if strings.Contains(strings.ToLower(tech), needle) {
			return true
		}
	}
	return false
}

// Filter returns the projects matching q in their original order.
// The input is never modified.
func Filter(projects []models.Project, q SearchQuery) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if q.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
