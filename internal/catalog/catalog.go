// Package catalog holds the project catalog and the pure functions that
// search it and shape project descriptions for display.
package catalog

import (
	"fmt"

	"folio.dev/internal/models"
)

// Catalog is an immutable, ordered set of projects
type Catalog struct {
	projects []models.Project
	byID     map[string]int
}

// New builds a catalog from records, keeping their order.
// IDs must be unique and non-empty and every category must be valid.
func New(records []models.Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]models.Project, 0, len(records)),
		byID:     make(map[string]int, len(records)),
	}

	for _, p := range records {
		if p.ID == "" {
			return nil, fmt.Errorf("project %q has no id", p.Title)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate project id: %s", p.ID)
		}
		if !p.Category.IsValid() {
			return nil, fmt.Errorf("project %s: invalid category %q", p.ID, p.Category)
		}

		p.TechStack = append([]string(nil), p.TechStack...)
		c.byID[p.ID] = len(c.projects)
		c.projects = append(c.projects, p)
	}

	return c, nil
}

// Len returns the number of projects
func (c *Catalog) Len() int {
	return len(c.projects)
}

// All returns a copy of every project in catalog order
func (c *Catalog) All() []models.Project {
	out := make([]models.Project, len(c.projects))
	for i, p := range c.projects {
		out[i] = clone(p)
	}
	return out
}

// Get returns the project with the given id
func (c *Catalog) Get(id string) (models.Project, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Project{}, false
	}
	return clone(c.projects[i]), true
}

// Featured returns up to limit featured projects in catalog order.
// A limit <= 0 returns all of them.
func (c *Catalog) Featured(limit int) []models.Project {
	var out []models.Project
	for _, p := range c.projects {
		if !p.Featured {
			continue
		}
		out = append(out, clone(p))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Search filters the catalog with q
func (c *Catalog) Search(q SearchQuery) []models.Project {
	return Filter(c.All(), q)
}

func clone(p models.Project) models.Project {
	p.TechStack = append([]string(nil), p.TechStack...)
	return p
}
