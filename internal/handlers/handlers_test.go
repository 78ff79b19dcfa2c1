package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"folio.dev/internal/catalog"
	"folio.dev/internal/config"
	"folio.dev/internal/content"
	"folio.dev/internal/models"
)

func testConfig(t *testing.T, mockFallback bool) *config.Config {
	t.Helper()
	prev := log.Writer()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(prev) })

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(down.Close)

	cfg, err := config.LoadFrom("", content.FS())
	require.NoError(t, err)
	cfg.MockFallback = mockFallback
	cfg.Weather.BaseURL = down.URL
	cfg.News.BaseURL = down.URL
	cfg.News.APIKey = "test-key"
	cfg.Contact.Delay = 0
	return cfg
}

func newTestRouter(t *testing.T, mockFallback bool) http.Handler {
	t.Helper()
	h, err := SetupRoutes(testConfig(t, mockFallback))
	require.NoError(t, err)
	return h
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t, true), http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	require.Equal(t, "ok", body["status"])
}

func TestListProjects(t *testing.T) {
	h := newTestRouter(t, true)

	tests := []struct {
		name   string
		target string
		status int
		ids    []string
	}{
		{"all", "/api/projects", http.StatusOK, []string{
			"realtime-dispatch", "crew-rostering", "payments-gateway", "genai-support-assistant",
			"fleet-tracker-app", "marketing-site", "release-dashboard",
		}},
		{"text", "/api/projects?q=KAFKA", http.StatusOK, []string{"realtime-dispatch"}},
		{"category", "/api/projects?category=api", http.StatusOK, []string{"realtime-dispatch", "payments-gateway"}},
		{"category label", "/api/projects?category=" + url.QueryEscape("Web Development"), http.StatusOK, []string{"crew-rostering", "marketing-site"}},
		{"no match", "/api/projects?q=cobol", http.StatusOK, []string{}},
		{"bad category", "/api/projects?category=Embedded", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, nil)
			require.Equal(t, tt.status, rec.Code)
			if tt.ids == nil {
				return
			}

			var projects []models.Project
			decode(t, rec, &projects)
			got := make([]string, 0, len(projects))
			for _, p := range projects {
				got = append(got, p.ID)
			}
			require.Equal(t, tt.ids, got)
		})
	}
}

func TestGetProject(t *testing.T) {
	h := newTestRouter(t, true)

	rec := do(t, h, http.MethodGet, "/api/projects/payments-gateway", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p models.Project
	decode(t, rec, &p)
	require.Equal(t, "Payments Gateway", p.Title)
	require.Equal(t, models.CategoryAPI, p.Category)

	rec = do(t, h, http.MethodGet, "/api/projects/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	require.Equal(t, "Project not found", body["error"])
}

func TestGetDescription(t *testing.T) {
	h := newTestRouter(t, true)

	rec := do(t, h, http.MethodGet, "/api/projects/realtime-dispatch/description", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var collapsed catalog.Description
	decode(t, rec, &collapsed)
	require.True(t, collapsed.Truncated)
	require.False(t, collapsed.Expanded)
	require.True(t, strings.HasSuffix(collapsed.Text, catalog.Ellipsis))
	require.Equal(t, collapsed.Text, catalog.Join(collapsed.Segments))

	rec = do(t, h, http.MethodGet, "/api/projects/realtime-dispatch/description?expanded=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var expanded catalog.Description
	decode(t, rec, &expanded)
	require.True(t, expanded.Truncated)
	require.True(t, expanded.Expanded)
	require.Greater(t, len(expanded.Text), len(collapsed.Text))

	var keywords []string
	for _, s := range expanded.Segments {
		if s.Keyword {
			keywords = append(keywords, s.Text)
		}
	}
	require.Contains(t, keywords, "Kafka")
	require.Contains(t, keywords, "Node.js")

	rec = do(t, h, http.MethodGet, "/api/projects/realtime-dispatch/description?expanded=maybe", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/projects/missing/description", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCategories(t *testing.T) {
	rec := do(t, newTestRouter(t, true), http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var infos []CategoryInfo
	decode(t, rec, &infos)
	require.Len(t, infos, len(models.Categories)+1)
	require.Equal(t, CategoryInfo{Code: models.CategoryAll, Label: "All Projects", Count: 7}, infos[0])
	require.Equal(t, CategoryInfo{Code: models.CategoryAPI, Label: "API Development", Count: 2}, infos[3])
	require.Equal(t, 0, infos[6].Count)
}

func TestGetProfile(t *testing.T) {
	rec := do(t, newTestRouter(t, true), http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var p models.Profile
	decode(t, rec, &p)
	require.Equal(t, "Avery Shah", p.Name)
	require.NotEmpty(t, p.Skills)
}

func TestWidgets(t *testing.T) {
	t.Run("mock fallback", func(t *testing.T) {
		h := newTestRouter(t, true)

		rec := do(t, h, http.MethodGet, "/api/weather", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var weather models.WeatherData
		decode(t, rec, &weather)
		require.Equal(t, 32, weather.Current.Temperature)

		rec = do(t, h, http.MethodGet, "/api/weather/forecast", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, h, http.MethodGet, "/api/news?category=business", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var news []models.NewsArticle
		decode(t, rec, &news)
		require.Len(t, news, 6)
	})

	t.Run("no fallback", func(t *testing.T) {
		h := newTestRouter(t, false)

		require.Equal(t, http.StatusServiceUnavailable, do(t, h, http.MethodGet, "/api/weather", nil).Code)
		require.Equal(t, http.StatusServiceUnavailable, do(t, h, http.MethodGet, "/api/weather/forecast", nil).Code)

		rec := do(t, h, http.MethodGet, "/api/news", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var news []models.NewsArticle
		decode(t, rec, &news)
		require.Empty(t, news)
	})
}

func TestContactAPI(t *testing.T) {
	h := newTestRouter(t, true)

	rec := do(t, h, http.MethodPost, "/api/contact", strings.NewReader(
		`{"name": "Sam", "email": "sam@example.com", "subject": "Hello", "message": "Let's talk"}`))
	require.Equal(t, http.StatusCreated, rec.Code)
	var receipt models.ContactReceipt
	decode(t, rec, &receipt)
	require.NotEmpty(t, receipt.ID)
	require.Equal(t, "Sam", receipt.Name)

	rec = do(t, h, http.MethodPost, "/api/contact", strings.NewReader(`{"name": "Sam", "email": "not-an-email", "subject": "x", "message": "y"}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/contact", strings.NewReader(`{"name":`))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPINotFound(t *testing.T) {
	rec := do(t, newTestRouter(t, true), http.MethodGet, "/api/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	require.Equal(t, "Not found", body["error"])
}
