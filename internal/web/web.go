// Package web renders the site's HTML pages from embedded templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/Masterminds/sprig/v3"

	"folio.dev/internal/catalog"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

const sharedGlob = "templates/_*.html"

// Renderer executes page templates inside the shared layout
type Renderer struct {
	shared *template.Template
	pages  map[string]*template.Template
}

// Funcs returns the template functions: sprig's plus the site's own
func Funcs() template.FuncMap {
	funcs := sprig.FuncMap()
	funcs["highlight"] = func(text string) []catalog.Segment {
		return catalog.Highlight(text, catalog.DefaultKeywords)
	}
	funcs["dateRange"] = services.FormatDateRange
	funcs["categoryLabel"] = func(c models.Category) string {
		return c.Label()
	}
	return funcs
}

// NewRenderer parses every embedded template
func NewRenderer() (*Renderer, error) {
	return newRenderer(templateFS)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	shared, err := template.New("").Funcs(Funcs()).ParseFS(fsys, sharedGlob)
	if err != nil {
		return nil, fmt.Errorf("failed to parse shared templates: %w", err)
	}

	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{shared: shared, pages: make(map[string]*template.Template)}
	for _, file := range files {
		base := path.Base(file)
		if strings.HasPrefix(base, "_") {
			continue
		}

		page, err := shared.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := page.ParseFS(fsys, file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", base, err)
		}
		r.pages[strings.TrimSuffix(base, ".html")] = page
	}

	return r, nil
}

// Render writes page inside the layout. The page is buffered first so a
// failing template never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, page string, data interface{}) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page: %s", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderPartial executes one of the shared named templates on its own
func (r *Renderer) RenderPartial(w io.Writer, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.shared.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Pages returns the names of the parsed pages
func (r *Renderer) Pages() []string {
	names := make([]string, 0, len(r.pages))
	for name := range r.pages {
		names = append(names, name)
	}
	return names
}
