package hub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/a-h/templ"

	"github.com/vangoframework/formkit/app/components/ui"
)

var (
	// ErrPageNotFound is returned when no live page has the requested id.
	ErrPageNotFound = errors.New("page not found")
	// ErrComponentNotFound is returned when an event targets an id the page never registered.
	ErrComponentNotFound = errors.New("component not found")
)

// BuildFunc creates the state of a new page and registers its fields on it.
type BuildFunc[T any] func(ctx context.Context, p *Page[T]) (T, error)

// Hub keeps the live pages of all visitors. A page survives between requests
// so that uncontrolled fields keep their internal value and generated id.
type Hub[T any] struct {
	pages  sync.Map // map[string]*Page[T]
	ttl    time.Duration
	logger *slog.Logger
}

// New creates a hub that evicts pages idle for longer than ttl.
func New[T any](ttl time.Duration, logger *slog.Logger) *Hub[T] {
	return &Hub[T]{ttl: ttl, logger: logger}
}

// Page returns the live page for id, building it with build on first use.
func (h *Hub[T]) Page(ctx context.Context, id string, build BuildFunc[T]) (*Page[T], error) {
	if cached, ok := h.pages.Load(id); ok {
		p := cached.(*Page[T])
		p.touch(time.Now())
		return p, nil
	}

	p := newPage[T](id)
	value, err := build(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("build page %s: %w", id, err)
	}
	p.value = value

	// Use LoadOrStore in case a concurrent request built the same page
	actual, loaded := h.pages.LoadOrStore(id, p)
	if !loaded {
		h.logger.Debug("page created", "page_id", id, "components", len(p.components))
	}
	return actual.(*Page[T]), nil
}

// Lookup returns an existing page without building one.
func (h *Hub[T]) Lookup(id string) (*Page[T], error) {
	cached, ok := h.pages.Load(id)
	if !ok {
		return nil, ErrPageNotFound
	}
	p := cached.(*Page[T])
	p.touch(time.Now())
	return p, nil
}

// Remove drops a page.
func (h *Hub[T]) Remove(id string) {
	h.pages.Delete(id)
}

// Len returns the number of live pages.
func (h *Hub[T]) Len() int {
	n := 0
	h.pages.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Sweep evicts pages that have not been used since now minus the TTL and
// returns how many were removed.
func (h *Hub[T]) Sweep(now time.Time) int {
	removed := 0
	h.pages.Range(func(key, value any) bool {
		p := value.(*Page[T])
		if now.Sub(p.lastSeen()) > h.ttl {
			h.pages.Delete(key)
			removed++
		}
		return true
	})
	if removed > 0 {
		h.logger.Info("pages evicted", "count", removed)
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (h *Hub[T]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			h.Sweep(now)
		}
	}
}

// Page is one visitor's live form state. All access to the value and the
// registered components happens under the page lock.
type Page[T any] struct {
	id         string
	mu         sync.Mutex
	value      T
	components map[string]ui.Interactive
	seen       time.Time
}

func newPage[T any](id string) *Page[T] {
	return &Page[T]{
		id:         id,
		components: make(map[string]ui.Interactive),
		seen:       time.Now(),
	}
}

// ID returns the page id.
func (p *Page[T]) ID() string { return p.id }

// Register makes components addressable by their ID for Dispatch.
func (p *Page[T]) Register(components ...ui.Interactive) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range components {
		p.components[c.ID()] = c
	}
}

// Dispatch feeds a change event to the component with ev.ID and returns it
// so the caller can render the updated field. A missing ev.Name is filled
// from the component.
func (p *Page[T]) Dispatch(ev ui.ChangeEvent) (ui.Interactive, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.components[ev.ID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrComponentNotFound, ev.ID)
	}
	if ev.Name == "" {
		ev.Name = c.Name()
	}
	c.HandleChange(ev)
	return c, nil
}

// With runs fn with the page value while holding the page lock.
func (p *Page[T]) With(fn func(T) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fn(p.value)
}

// Render writes c under the page lock so it observes a consistent state.
func (p *Page[T]) Render(ctx context.Context, w io.Writer, c templ.Component) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return c.Render(ctx, w)
}

func (p *Page[T]) touch(now time.Time) {
	p.mu.Lock()
	p.seen = now
	p.mu.Unlock()
}

func (p *Page[T]) lastSeen() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seen
}
