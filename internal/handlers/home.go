package handlers

import (
	"net/http"

	"github.com/vangoframework/formkit/internal/middleware"
	"github.com/vangoframework/formkit/internal/showcase"
	"github.com/vangoframework/formkit/internal/templates/pages"
)

const pageTitle = "formkit showcase"

// Home renders the showcase for the visitor's live page, creating it on the
// first visit.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := middleware.GetSession(ctx)
	if session == nil {
		http.Error(w, "missing session", http.StatusInternalServerError)
		return
	}

	page, err := h.hub.Page(ctx, session.PageID.String(), h.buildPage)
	if err != nil {
		h.logger.Error("failed to build page", "error", err, "page_id", session.PageID)
		http.Error(w, "Failed to load page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = page.With(func(form *showcase.Form) error {
		return pages.Layout(pageTitle, h.config.HTMXSrc, pages.Showcase(form)).Render(ctx, w)
	})
	if err != nil {
		h.logger.Error("failed to render page", "error", err, "page_id", session.PageID)
	}
}

// Reset drops the visitor's live page and session cookie, so the next visit
// is issued a new page id.
func (h *Handlers) Reset(w http.ResponseWriter, r *http.Request) {
	if session := middleware.GetSession(r.Context()); session != nil {
		h.hub.Remove(session.PageID.String())
	}
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
