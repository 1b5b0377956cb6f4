package httpserver

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/liorae/liora/internal/contact"
	"github.com/liorae/liora/internal/observability"
)

const (
	contactOKRedirect     = "/#contact?ok=1"
	contactFailedRedirect = "/#contact?ok=0"
)

// HandleContactSubmit validates a contact submission and triggers the two
// transactional emails. The browser always lands back on the contact
// section; the ok flag tells the front end which banner to show.
func (h *Handler) HandleContactSubmit(w http.ResponseWriter, r *http.Request) {
	logger := observability.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		logger.Warn("contact submission with unparseable form", zap.Error(err))
		http.Redirect(w, r, contactFailedRedirect, http.StatusFound)
		return
	}

	form := contact.FromValues(r.PostForm)

	if form.Spam() {
		// Honeypot hit. Pretend nothing happened.
		logger.Warn("contact submission dropped (honeypot)")
		http.Redirect(w, r, contactFailedRedirect, http.StatusFound)
		return
	}

	if err := form.Validate(); err != nil {
		logger.Warn("contact submission rejected", zap.Error(err))
		http.Redirect(w, r, contactFailedRedirect, http.StatusFound)
		return
	}

	if err := h.contact.Notify(r.Context(), form); err != nil {
		logger.Error("failed to send contact emails", zap.Error(err))
		http.Redirect(w, r, contactFailedRedirect, http.StatusFound)
		return
	}

	logger.Info("contact submission accepted", zap.String("budget", form.Budget))
	http.Redirect(w, r, contactOKRedirect, http.StatusFound)
}
