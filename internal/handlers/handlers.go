package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"folio.dev/internal/catalog"
	"folio.dev/internal/config"
	"folio.dev/internal/middleware"
	"folio.dev/internal/services"
	"folio.dev/internal/web"
)

// StaticDir is the directory served under /static
var StaticDir = "./static"

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config) (http.Handler, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	// Initialize services
	projectService := services.NewProjectService(cfg.Catalog, catalog.DefaultKeywords, cfg.DescriptionLimit)
	profileService := services.NewProfileService(cfg.Profile)
	weatherService := services.NewWeatherService(services.WeatherOptions{
		BaseURL:   cfg.Weather.BaseURL,
		APIKey:    cfg.Weather.APIKey,
		Latitude:  cfg.Weather.Latitude,
		Longitude: cfg.Weather.Longitude,
		Location:  cfg.Weather.Location,
		Country:   cfg.Weather.Country,
		Timezone:  cfg.Weather.Timezone,
		Timeout:   cfg.Weather.Timeout,
	})
	newsService := services.NewNewsService(services.NewsOptions{
		BaseURL:  cfg.News.BaseURL,
		APIKey:   cfg.News.APIKey,
		Country:  cfg.News.Country,
		Category: cfg.News.Category,
		Timeout:  cfg.News.Timeout,
	})
	if !newsService.Configured() {
		log.Println("News API key not set, headlines will use mock data")
	}
	widgetService := services.NewWidgetService(weatherService, newsService, cfg.MockFallback)
	contactService := services.NewContactService(cfg.Contact.Delay)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	profileHandler := NewProfileHandler(profileService)
	widgetHandler := NewWidgetHandler(widgetService)
	contactHandler := NewContactHandler(contactService)
	pageHandler := NewPageHandler(renderer, projectService, profileService, widgetService, contactService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/projects/{id}/description", projectHandler.GetDescription)
		r.Get("/categories", projectHandler.ListCategories)

		r.Get("/profile", profileHandler.GetProfile)

		r.Get("/weather", widgetHandler.GetWeather)
		r.Get("/weather/forecast", widgetHandler.GetForecast)
		r.Get("/news", widgetHandler.GetNews)

		r.Post("/contact", contactHandler.Submit)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, http.StatusNotFound, "Not found")
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/about", pageHandler.About)
	r.Get("/projects", pageHandler.Projects)
	r.Get("/contact", pageHandler.Contact)
	r.Post("/contact", pageHandler.SubmitContact)
	r.NotFound(pageHandler.NotFound)

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
