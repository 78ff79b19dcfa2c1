// Package content loads the site's embedded projects and profile.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"folio.dev/internal/models"
)

//go:embed projects/*.md profile.yaml
var files embed.FS

// FS returns the embedded content files
func FS() fs.FS {
	return files
}

// projectMeta is the front matter of a project file. The markdown body
// below it becomes the long description.
type projectMeta struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	TechStack   []string `yaml:"tech_stack"`
	Category    string   `yaml:"category"`
	Image       string   `yaml:"image"`
	DemoURL     string   `yaml:"demo_url"`
	GitHubURL   string   `yaml:"github_url"`
	Featured    bool     `yaml:"featured"`
	Created     string   `yaml:"created"`
}

// LoadProjects reads every projects/*.md file of fsys in file name order
func LoadProjects(fsys fs.FS) (*models.ProjectList, error) {
	entries, err := fs.ReadDir(fsys, "projects")
	if err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	list := &models.ProjectList{}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}

		name := path.Join("projects", entry.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		project, err := parseProject(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		list.Projects = append(list.Projects, project)
	}

	return list, nil
}

func parseProject(data []byte) (models.Project, error) {
	var meta projectMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return models.Project{}, err
	}
	if meta.ID == "" {
		return models.Project{}, fmt.Errorf("missing id in front matter")
	}

	category, err := models.ParseCategory(meta.Category)
	if err != nil {
		return models.Project{}, err
	}

	var created time.Time
	if meta.Created != "" {
		created, err = time.Parse(time.DateOnly, meta.Created)
		if err != nil {
			return models.Project{}, fmt.Errorf("invalid created date %q: %w", meta.Created, err)
		}
	}

	return models.Project{
		ID:              meta.ID,
		Title:           meta.Title,
		Description:     strings.TrimSpace(meta.Description),
		LongDescription: collapseParagraphs(string(body)),
		TechStack:       meta.TechStack,
		Category:        category,
		Image:           meta.Image,
		DemoURL:         meta.DemoURL,
		GitHubURL:       meta.GitHubURL,
		Featured:        meta.Featured,
		CreatedAt:       created,
	}, nil
}

// collapseParagraphs joins wrapped markdown lines into single-spaced text
func collapseParagraphs(body string) string {
	return strings.Join(strings.Fields(body), " ")
}

// LoadProfile reads profile.yaml from fsys
func LoadProfile(fsys fs.FS) (*models.Profile, error) {
	data, err := fs.ReadFile(fsys, "profile.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read profile.yaml: %w", err)
	}

	var profile models.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile.yaml: %w", err)
	}

	for _, s := range profile.Skills {
		if !s.Category.IsValid() {
			return nil, fmt.Errorf("skill %s: invalid category %q", s.ID, s.Category)
		}
		if s.Proficiency < 1 || s.Proficiency > 10 {
			return nil, fmt.Errorf("skill %s: proficiency %d out of range 1-10", s.ID, s.Proficiency)
		}
	}

	return &profile, nil
}
