package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vangoframework/formkit/app/components/ui"
	"github.com/vangoframework/formkit/internal/hub"
	"github.com/vangoframework/formkit/internal/middleware"
)

// Event applies a field change posted by htmx and responds with the
// re-rendered field.
func (h *Handlers) Event(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := middleware.GetSession(ctx)
	if session == nil {
		http.Error(w, "missing session", http.StatusInternalServerError)
		return
	}

	page, err := h.hub.Lookup(session.PageID.String())
	if errors.Is(err, hub.ErrPageNotFound) {
		// The page expired; have htmx reload to get a fresh one.
		w.Header().Set("HX-Refresh", "true")
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to load page", "error", err)
		http.Error(w, "Failed to load page", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	ev := ui.ChangeEvent{
		ID:    chi.URLParam(r, "componentID"),
		Value: r.PostForm.Get("value"),
	}
	component, err := page.Dispatch(ev)
	if errors.Is(err, hub.ErrComponentNotFound) {
		http.Error(w, "component not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to dispatch event", "error", err, "component_id", ev.ID)
		http.Error(w, "Failed to apply change", http.StatusInternalServerError)
		return
	}

	h.logger.Debug("field changed", "page_id", page.ID(), "component_id", ev.ID)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(ctx, w, component); err != nil {
		h.logger.Error("failed to render component", "error", err, "component_id", ev.ID)
	}
}
