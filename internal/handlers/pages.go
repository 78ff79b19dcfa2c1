package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"time"

	"folio.dev/internal/catalog"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
	"folio.dev/internal/web"
)

// FeaturedCount is how many featured projects the home page shows
const FeaturedCount = 3

// PageHandler renders the HTML pages
type PageHandler struct {
	renderer       *web.Renderer
	projectService *services.ProjectService
	profileService *services.ProfileService
	widgetService  *services.WidgetService
	contactService *services.ContactService
	now            func() time.Time
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(
	renderer *web.Renderer,
	ps *services.ProjectService,
	profile *services.ProfileService,
	ws *services.WidgetService,
	cs *services.ContactService,
) *PageHandler {
	return &PageHandler{
		renderer:       renderer,
		projectService: ps,
		profileService: profile,
		widgetService:  ws,
		contactService: cs,
		now:            time.Now,
	}
}

func (h *PageHandler) page(title, active string) web.Page {
	return web.Page{
		Title:  title,
		Active: active,
		Owner:  h.profileService.Get(),
		Year:   h.now().Year(),
	}
}

func (h *PageHandler) render(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, data); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing %s: %v", name, err)
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	weather, news := h.widgetService.Load(r.Context())
	profile := h.profileService.Get()

	h.render(w, http.StatusOK, "home", web.HomePage{
		Page:        h.page("Home", "Home"),
		Featured:    h.projectService.Featured(FeaturedCount),
		Experiences: profile.Experiences,
		Education:   profile.Education,
		Weather:     weather,
		News:        news,
	})
}

// About handles GET /about
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	profile := h.profileService.Get()

	h.render(w, http.StatusOK, "about", web.AboutPage{
		Page:        h.page("About", "About"),
		Metrics:     profile.Metrics,
		SkillGroups: h.profileService.SkillGroups(),
		Experiences: profile.Experiences,
		Education:   profile.Education,
	})
}

// Projects handles GET /projects?q=&category=&expand=
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := catalog.NewSearchQuery(params.Get("q"), params.Get("category"))
	state := catalog.ParseExpansionState(params.Get("expand"))

	h.render(w, http.StatusOK, "projects", web.ProjectsPage{
		Page:       h.page("Projects", "Projects"),
		Query:      query.Text,
		Category:   query.Category,
		Categories: models.Categories,
		Expand:     state.String(),
		Cards:      h.projectService.Cards(query, state),
	})
}

// Contact handles GET /contact
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "contact", h.contactPage())
}

// SubmitContact handles POST /contact
func (h *PageHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := r.ParseForm(); err != nil {
		h.Error(w, http.StatusBadRequest, "Invalid form submission")
		return
	}

	data := h.contactPage()
	data.Form = models.ContactForm{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Subject: r.PostForm.Get("subject"),
		Message: r.PostForm.Get("message"),
	}

	receipt, err := h.contactService.Submit(r.Context(), data.Form)
	switch {
	case errors.Is(err, services.ErrInvalidContact):
		data.Error = err.Error()
		h.render(w, http.StatusBadRequest, "contact", data)
	case err != nil:
		log.Printf("Contact submission aborted: %v", err)
		h.Error(w, http.StatusServiceUnavailable, "Your message could not be sent. Please try again.")
	default:
		data.Form = models.ContactForm{}
		data.Receipt = receipt
		h.render(w, http.StatusOK, "contact", data)
	}
}

func (h *PageHandler) contactPage() web.ContactPage {
	profile := h.profileService.Get()
	return web.ContactPage{
		Page:     h.page("Contact", "Contact"),
		Channels: profile.Contact,
		Social:   profile.Social,
	}
}

// NotFound renders the 404 page
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Error(w, http.StatusNotFound, "Page not found")
}

// Error renders the error page with status
func (h *PageHandler) Error(w http.ResponseWriter, status int, message string) {
	h.render(w, status, "error", web.ErrorPage{
		Page:    h.page(http.StatusText(status), ""),
		Status:  status,
		Message: message,
	})
}
