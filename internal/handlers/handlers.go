package handlers

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/vangoframework/formkit/internal/config"
	"github.com/vangoframework/formkit/internal/hub"
	"github.com/vangoframework/formkit/internal/session"
	"github.com/vangoframework/formkit/internal/showcase"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config   *config.Config
	hub      *hub.Hub[*showcase.Form]
	catalog  *showcase.Catalog
	sessions *session.Store
	logger   *slog.Logger
}

// New creates a new Handlers instance with all dependencies.
func New(
	cfg *config.Config,
	pages *hub.Hub[*showcase.Form],
	catalog *showcase.Catalog,
	sessions *session.Store,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		config:   cfg,
		hub:      pages,
		catalog:  catalog,
		sessions: sessions,
		logger:   logger,
	}
}

// Routes registers the showcase routes on r.
func (h *Handlers) Routes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/", h.Home)
	r.Get("/reset", h.Reset)
	r.Post("/events/{componentID}", h.Event)
	r.Post("/submit", h.Submit)
}

// buildPage creates a fresh form for a new visitor page.
func (h *Handlers) buildPage(ctx context.Context, p *hub.Page[*showcase.Form]) (*showcase.Form, error) {
	form := showcase.NewForm(h.catalog)
	p.Register(form.Fields()...)
	return form, nil
}
