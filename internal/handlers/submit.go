package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/vangoframework/formkit/internal/middleware"
	"github.com/vangoframework/formkit/internal/showcase"
	"github.com/vangoframework/formkit/internal/templates/pages"
)

// Submit validates the posted form. htmx requests get the form fragment
// back; plain posts get the whole page.
func (h *Handlers) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := middleware.GetSession(ctx)
	if session == nil {
		http.Error(w, "missing session", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	page, err := h.hub.Page(ctx, session.PageID.String(), h.buildPage)
	if err != nil {
		h.logger.Error("failed to build page", "error", err, "page_id", session.PageID)
		http.Error(w, "Failed to load page", http.StatusInternalServerError)
		return
	}

	partial := r.Header.Get("HX-Request") == "true"

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = page.With(func(form *showcase.Form) error {
		ok, err := form.Submit(r.PostForm)
		if err != nil {
			return err
		}
		h.logger.Info("form submitted", "page_id", page.ID(), "accepted", ok, "errors", len(form.Errors()))

		var c templ.Component = pages.Form(form)
		if !partial {
			c = pages.Layout(pageTitle, h.config.HTMXSrc, pages.Showcase(form))
		}
		return c.Render(ctx, w)
	})
	if err != nil {
		h.logger.Error("failed to submit form", "error", err, "page_id", session.PageID)
		http.Error(w, "Failed to submit form", http.StatusInternalServerError)
	}
}
