package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func postForm(t *testing.T, h http.Handler, target string, form url.Values) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code, rec.Body.String()
}

func TestPages(t *testing.T) {
	h := newTestRouter(t, true)

	tests := []struct {
		name     string
		target   string
		status   int
		contains []string
		excludes []string
	}{
		{
			name:     "home",
			target:   "/",
			status:   http.StatusOK,
			contains: []string{"<title>Home | Avery Shah</title>", "Realtime Dispatch Service", "Payments Gateway", "partly cloudy"},
			excludes: []string{"Release Dashboard"},
		},
		{
			name:     "about",
			target:   "/about",
			status:   http.StatusOK,
			contains: []string{"<title>About | Avery Shah</title>", "Present"},
		},
		{
			name:     "projects",
			target:   "/projects",
			status:   http.StatusOK,
			contains: []string{"Realtime Dispatch Service", "Release Dashboard", "Read more", "API Development"},
		},
		{
			name:     "projects search",
			target:   "/projects?q=kafka",
			status:   http.StatusOK,
			contains: []string{"Realtime Dispatch Service", `href="/projects?expand=realtime-dispatch&amp;q=kafka#project-realtime-dispatch"`},
			excludes: []string{"Payments Gateway"},
		},
		{
			name:     "projects expanded",
			target:   "/projects?q=kafka&expand=realtime-dispatch",
			status:   http.StatusOK,
			contains: []string{"Show less", `href="/projects?q=kafka#project-realtime-dispatch"`},
		},
		{
			name:     "projects category",
			target:   "/projects?category=AI%2FML",
			status:   http.StatusOK,
			contains: []string{"Support Knowledge Assistant", ">GenAI</span>"},
			excludes: []string{"Payments Gateway"},
		},
		{
			name:     "unknown category shows all",
			target:   "/projects?category=Embedded",
			status:   http.StatusOK,
			contains: []string{"Payments Gateway", "Fleet Tracker"},
		},
		{
			name:     "no results",
			target:   "/projects?q=cobol",
			status:   http.StatusOK,
			contains: []string{"No projects found"},
		},
		{
			name:     "contact",
			target:   "/contact",
			status:   http.StatusOK,
			contains: []string{"<form", "WhatsApp", "LinkedIn"},
		},
		{
			name:     "not found",
			target:   "/missing",
			status:   http.StatusNotFound,
			contains: []string{"Page not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, nil)
			require.Equal(t, tt.status, rec.Code)
			require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

			body := rec.Body.String()
			for _, s := range tt.contains {
				require.Contains(t, body, s)
			}
			for _, s := range tt.excludes {
				require.NotContains(t, body, s)
			}
		})
	}
}

func TestSubmitContactPage(t *testing.T) {
	h := newTestRouter(t, true)

	status, body := postForm(t, h, "/contact", url.Values{
		"name":    {"Sam"},
		"email":   {"sam@example.com"},
		"subject": {"Hello"},
		"message": {"Let's build something"},
	})
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "Message sent!")
	require.Contains(t, body, "Thank you, Sam.")
	require.NotContains(t, body, "<form")

	status, body = postForm(t, h, "/contact", url.Values{
		"name":    {"Sam"},
		"subject": {"Hello"},
		"message": {"Let's build something"},
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body, "missing email")
	require.Contains(t, body, `value="Sam"`)
	require.Contains(t, body, "<form")
}
