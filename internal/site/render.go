package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Home renders the homepage with the marketing payload.
func (r *Renderer) Home(w io.Writer, data *PageData) error {
	if err := r.tmpl.ExecuteTemplate(w, "home.html", data); err != nil {
		return fmt.Errorf("failed to render home: %w", err)
	}
	return nil
}

// About renders the about page.
func (r *Renderer) About(w io.Writer) error {
	if err := r.tmpl.ExecuteTemplate(w, "about.html", nil); err != nil {
		return fmt.Errorf("failed to render about: %w", err)
	}
	return nil
}
