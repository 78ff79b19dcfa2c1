package handlers

import (
	"net/http"

	"folio.dev/internal/services"
)

// WidgetHandler serves the weather and news widgets as JSON
type WidgetHandler struct {
	widgetService *services.WidgetService
}

// NewWidgetHandler creates a new WidgetHandler
func NewWidgetHandler(ws *services.WidgetService) *WidgetHandler {
	return &WidgetHandler{widgetService: ws}
}

// GetWeather handles GET /api/weather
func (h *WidgetHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	data := h.widgetService.Weather(r.Context())
	if data == nil {
		respondError(w, http.StatusServiceUnavailable, "Weather unavailable")
		return
	}
	respondJSON(w, http.StatusOK, data)
}

// GetForecast handles GET /api/weather/forecast
func (h *WidgetHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	data := h.widgetService.Forecast(r.Context())
	if data == nil {
		respondError(w, http.StatusServiceUnavailable, "Forecast unavailable")
		return
	}
	respondJSON(w, http.StatusOK, data)
}

// GetNews handles GET /api/news?category=
func (h *WidgetHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	articles := h.widgetService.News(r.Context(), r.URL.Query().Get("category"))
	respondJSON(w, http.StatusOK, articles)
}
