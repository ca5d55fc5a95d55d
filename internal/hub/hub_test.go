package hub_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/formkit/app/components/ui"
	"github.com/vangoframework/formkit/internal/hub"
)

type state struct {
	name *ui.Input
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func buildState(builds *int) hub.BuildFunc[*state] {
	return func(ctx context.Context, p *hub.Page[*state]) (*state, error) {
		*builds++
		s := &state{name: ui.NewInput(ui.InputID("name"), ui.InputName("name"))}
		p.Register(s.name)
		return s, nil
	}
}

func TestHub_PageBuildsOnce(t *testing.T) {
	h := hub.New[*state](time.Minute, discard())
	builds := 0

	first, err := h.Page(context.Background(), "p1", buildState(&builds))
	require.NoError(t, err)
	second, err := h.Page(context.Background(), "p1", buildState(&builds))
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, builds)
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, "p1", first.ID())
}

func TestHub_BuildError(t *testing.T) {
	h := hub.New[*state](time.Minute, discard())
	boom := errors.New("boom")

	_, err := h.Page(context.Background(), "p1", func(ctx context.Context, p *hub.Page[*state]) (*state, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, h.Len())
}

func TestHub_Lookup(t *testing.T) {
	h := hub.New[*state](time.Minute, discard())

	_, err := h.Lookup("missing")
	assert.ErrorIs(t, err, hub.ErrPageNotFound)

	builds := 0
	_, err = h.Page(context.Background(), "p1", buildState(&builds))
	require.NoError(t, err)

	p, err := h.Lookup("p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID())

	h.Remove("p1")
	_, err = h.Lookup("p1")
	assert.ErrorIs(t, err, hub.ErrPageNotFound)
}

func TestPage_Dispatch(t *testing.T) {
	h := hub.New[*state](time.Minute, discard())
	builds := 0
	p, err := h.Page(context.Background(), "p1", buildState(&builds))
	require.NoError(t, err)

	c, err := p.Dispatch(ui.ChangeEvent{ID: "name", Value: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "name", c.ID())

	require.NoError(t, p.With(func(s *state) error {
		assert.Equal(t, "Ada", s.name.Value())
		return nil
	}))

	var buf bytes.Buffer
	require.NoError(t, p.Render(context.Background(), &buf, c))
	assert.Contains(t, buf.String(), `value="Ada"`)
}

func TestPage_DispatchUnknownComponent(t *testing.T) {
	h := hub.New[*state](time.Minute, discard())
	builds := 0
	p, err := h.Page(context.Background(), "p1", buildState(&builds))
	require.NoError(t, err)

	_, err = p.Dispatch(ui.ChangeEvent{ID: "nope"})
	assert.ErrorIs(t, err, hub.ErrComponentNotFound)
}

func TestHub_Sweep(t *testing.T) {
	h := hub.New[*state](time.Minute, discard())
	builds := 0
	_, err := h.Page(context.Background(), "p1", buildState(&builds))
	require.NoError(t, err)

	assert.Equal(t, 0, h.Sweep(time.Now()))
	assert.Equal(t, 1, h.Len())

	assert.Equal(t, 1, h.Sweep(time.Now().Add(2*time.Minute)))
	assert.Equal(t, 0, h.Len())
}

func TestHub_RunStopsWithContext(t *testing.T) {
	h := hub.New[*state](time.Nanosecond, discard())
	builds := 0
	_, err := h.Page(context.Background(), "p1", buildState(&builds))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return h.Len() == 0 }, time.Second, time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestHub_ConcurrentPage(t *testing.T) {
	h := hub.New[*state](time.Minute, discard())

	var mu sync.Mutex
	builds := 0
	build := func(ctx context.Context, p *hub.Page[*state]) (*state, error) {
		mu.Lock()
		builds++
		mu.Unlock()
		return &state{name: ui.NewInput()}, nil
	}

	pages := make([]*hub.Page[*state], 16)
	var wg sync.WaitGroup
	for i := range pages {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := h.Page(context.Background(), "shared", build)
			assert.NoError(t, err)
			pages[i] = p
		}(i)
	}
	wg.Wait()

	for _, p := range pages {
		assert.Same(t, pages[0], p)
	}
	assert.Equal(t, 1, h.Len())
}

func TestPage_DispatchFillsName(t *testing.T) {
	h := hub.New[*state](time.Minute, discard())

	var got []ui.ChangeEvent
	p, err := h.Page(context.Background(), "p1", func(ctx context.Context, p *hub.Page[*state]) (*state, error) {
		s := &state{name: ui.NewInput(
			ui.InputID("name"),
			ui.InputName("full_name"),
			ui.InputOnChange(func(ev ui.ChangeEvent) { got = append(got, ev) }),
		)}
		p.Register(s.name)
		return s, nil
	})
	require.NoError(t, err)

	_, err = p.Dispatch(ui.ChangeEvent{ID: "name", Value: "Ada"})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, ui.ChangeEvent{ID: "name", Name: "full_name", Value: "Ada"}, got[0])
}
