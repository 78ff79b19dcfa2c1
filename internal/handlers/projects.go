package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"folio.dev/internal/catalog"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// CategoryInfo describes one category for clients building filter buttons
type CategoryInfo struct {
	Code  models.Category `json:"code"`
	Label string          `json:"label"`
	Count int             `json:"count"`
}

// ListProjects handles GET /api/projects?q=&category=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	category, err := models.ParseCategoryFilter(r.URL.Query().Get("category"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	projects := h.projectService.Search(catalog.SearchQuery{
		Text:     r.URL.Query().Get("q"),
		Category: category,
	})
	respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, ok := h.lookup(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// GetDescription handles GET /api/projects/{id}/description?expanded=true
func (h *ProjectHandler) GetDescription(w http.ResponseWriter, r *http.Request) {
	project, ok := h.lookup(w, r)
	if !ok {
		return
	}

	expanded := false
	if raw := r.URL.Query().Get("expanded"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "expanded must be true or false")
			return
		}
		expanded = v
	}

	respondJSON(w, http.StatusOK, h.projectService.Describe(*project, expanded))
}

// ListCategories handles GET /api/categories
func (h *ProjectHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	counts := make(map[models.Category]int)
	all := h.projectService.GetAll()
	for _, p := range all {
		counts[p.Category]++
	}

	infos := []CategoryInfo{{Code: models.CategoryAll, Label: models.CategoryAll.Label(), Count: len(all)}}
	for _, c := range models.Categories {
		infos = append(infos, CategoryInfo{Code: c, Label: c.Label(), Count: counts[c]})
	}
	respondJSON(w, http.StatusOK, infos)
}

func (h *ProjectHandler) lookup(w http.ResponseWriter, r *http.Request) (*models.Project, bool) {
	project, err := h.projectService.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			respondError(w, http.StatusNotFound, "Project not found")
		} else {
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return nil, false
	}
	return project, true
}
