package services

import (
	"errors"
	"fmt"

	"folio.dev/internal/catalog"
	"folio.dev/internal/models"
)

// ErrProjectNotFound is returned when no project has the requested id
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	catalog  *catalog.Catalog
	keywords catalog.KeywordSet
	limit    int
}

// NewProjectService creates a new ProjectService. A limit <= 0 uses
// catalog.DefaultDescriptionLimit.
func NewProjectService(c *catalog.Catalog, keywords catalog.KeywordSet, limit int) *ProjectService {
	if limit <= 0 {
		limit = catalog.DefaultDescriptionLimit
	}
	return &ProjectService{catalog: c, keywords: keywords, limit: limit}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.catalog.All()
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return &p, nil
}

// Search returns the projects matching q in catalog order
func (s *ProjectService) Search(q catalog.SearchQuery) []models.Project {
	return s.catalog.Search(q)
}

// Featured returns the first n featured projects
func (s *ProjectService) Featured(n int) []models.Project {
	return s.catalog.Featured(n)
}

// Describe prepares the long description of a project for display
func (s *ProjectService) Describe(p models.Project, expanded bool) catalog.Description {
	return catalog.Describe(p.LongDescription, expanded, s.limit, s.keywords)
}

// Limit returns the description character budget
func (s *ProjectService) Limit() int {
	return s.limit
}

// ProjectCard is a project ready for the projects grid
type ProjectCard struct {
	models.Project
	GenAI           bool                `json:"genai"`
	LongDescription catalog.Description `json:"long_description"`
	ToggleExpand    string              `json:"-"`
}

// Cards searches the catalog and prepares each result for display under the
// given expansion state
func (s *ProjectService) Cards(q catalog.SearchQuery, state catalog.ExpansionState) []ProjectCard {
	projects := s.Search(q)
	cards := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, ProjectCard{
			Project:         p,
			GenAI:           p.HasTag(string(catalog.KeywordGenAI)),
			LongDescription: s.Describe(p, state.Expanded(p.ID)),
			ToggleExpand:    state.Toggled(p.ID).String(),
		})
	}
	return cards
}
