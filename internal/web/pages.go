package web

import (
	"net/url"

	"folio.dev/internal/models"
	"folio.dev/internal/services"
)

// Page is the data every page template receives
type Page struct {
	Title  string
	Active string
	Owner  *models.Profile
	Year   int
}

// HomePage is the data for home.html
type HomePage struct {
	Page
	Featured    []models.Project
	Experiences []models.Experience
	Education   []models.Education
	Weather     *models.WeatherData
	News        []models.NewsArticle
}

// AboutPage is the data for about.html
type AboutPage struct {
	Page
	Metrics     []models.Metric
	SkillGroups []models.SkillGroup
	Experiences []models.Experience
	Education   []models.Education
}

// ProjectsPage is the data for projects.html
type ProjectsPage struct {
	Page
	Query      string
	Category   models.Category
	Categories []models.Category
	Expand     string
	Cards      []services.ProjectCard
}

// URL links to the projects page with the current search and the given
// category and expansion state
func (p ProjectsPage) URL(category models.Category, expand string) string {
	return ProjectsURL(p.Query, category, expand)
}

// ContactPage is the data for contact.html
type ContactPage struct {
	Page
	Channels []models.ContactChannel
	Social   []models.ContactChannel
	Form     models.ContactForm
	Error    string
	Receipt  *models.ContactReceipt
}

// ErrorPage is the data for error.html
type ErrorPage struct {
	Page
	Status  int
	Message string
}

// ProjectsURL builds a /projects link, leaving out empty parameters
func ProjectsURL(query string, category models.Category, expand string) string {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if category != "" && category != models.CategoryAll {
		params.Set("category", string(category))
	}
	if expand != "" {
		params.Set("expand", expand)
	}
	if len(params) == 0 {
		return "/projects"
	}
	return "/projects?" + params.Encode()
}
