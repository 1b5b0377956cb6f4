package httpserver

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/liorae/liora/internal/observability"
	"github.com/liorae/liora/internal/site"
)

// HandleHome renders the marketing homepage.
func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.Home(w, site.Content()); err != nil {
		observability.FromContext(r.Context()).Error("failed to render home", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// HandleAbout renders the about page.
func (h *Handler) HandleAbout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.About(w); err != nil {
		observability.FromContext(r.Context()).Error("failed to render about", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// HandleContent serves the marketing payload as JSON for the front-end
// widget.
func (h *Handler) HandleContent(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, site.Content())
}
