package handlers_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/formkit/internal/config"
	"github.com/vangoframework/formkit/internal/handlers"
	"github.com/vangoframework/formkit/internal/hub"
	"github.com/vangoframework/formkit/internal/middleware"
	"github.com/vangoframework/formkit/internal/session"
	"github.com/vangoframework/formkit/internal/showcase"
)

// testConfig creates a minimal config for testing
func testConfig() *config.Config {
	return &config.Config{
		Port:          "8080",
		BaseURL:       "http://localhost:8080",
		Environment:   "development",
		SessionSecret: "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
		SessionMaxAge: time.Hour,
		PageTTL:       time.Minute,
		HTMXSrc:       "/htmx.js",
	}
}

type testApp struct {
	server *httptest.Server
	pages  *hub.Hub[*showcase.Form]
}

// newTestApp serves the showcase routes behind the session middleware.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalog, err := showcase.DefaultCatalog()
	require.NoError(t, err)

	sessions := session.NewStore(cfg.SessionSecret, cfg.SessionMaxAge, false)
	pages := hub.New[*showcase.Form](cfg.PageTTL, logger)
	h := handlers.New(cfg, pages, catalog, sessions, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Session(sessions, logger))
	h.Routes(r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return &testApp{server: server, pages: pages}
}

// client returns a browser-like client that keeps cookies and does not
// follow redirects.
func (a *testApp) client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

var eventPath = regexp.MustCompile(`hx-post="(/events/[^"]+)"`)

// eventPaths lists the change endpoints of the fields in page order.
func eventPaths(t *testing.T, html string) []string {
	t.Helper()
	var out []string
	for _, m := range eventPath.FindAllStringSubmatch(html, -1) {
		out = append(out, m[1])
	}
	require.NotEmpty(t, out)
	return out
}

func postEvent(t *testing.T, client *http.Client, target, value string) *http.Response {
	t.Helper()
	req, err := http.NewRequest("POST", target, strings.NewReader(url.Values{"value": {value}}.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body(t, resp))
}

func TestHome_CreatesSessionAndPage(t *testing.T) {
	app := newTestApp(t)
	client := app.client(t)

	resp, err := client.Get(app.server.URL + "/")
	require.NoError(t, err)
	html := body(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<script src="/htmx.js" defer></script>`)
	assert.Contains(t, html, `value="Ada Lovelace"`)
	assert.Len(t, eventPaths(t, html), 5)

	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie)
	assert.Equal(t, 1, app.pages.Len())
}

func TestHome_ReloadKeepsPage(t *testing.T) {
	app := newTestApp(t)
	client := app.client(t)

	resp, err := client.Get(app.server.URL + "/")
	require.NoError(t, err)
	first := body(t, resp)

	resp, err = client.Get(app.server.URL + "/")
	require.NoError(t, err)
	second := body(t, resp)

	assert.Equal(t, eventPaths(t, first), eventPaths(t, second), "generated ids are stable")
	assert.Equal(t, 1, app.pages.Len())
}

func TestHome_SeparateVisitorsGetSeparatePages(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.client(t).Get(app.server.URL + "/")
	require.NoError(t, err)
	first := body(t, resp)

	resp, err = app.client(t).Get(app.server.URL + "/")
	require.NoError(t, err)
	second := body(t, resp)

	assert.NotEqual(t, eventPaths(t, first), eventPaths(t, second))
	assert.Equal(t, 2, app.pages.Len())
}

func TestEvent_UpdatesUncontrolledField(t *testing.T) {
	app := newTestApp(t)
	client := app.client(t)

	resp, err := client.Get(app.server.URL + "/")
	require.NoError(t, err)
	paths := eventPaths(t, body(t, resp))
	name := paths[0]

	resp = postEvent(t, client, app.server.URL+name, "Grace")
	fragment := body(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(fragment, "<div>"), "the whole field is swapped")
	assert.Contains(t, fragment, `value="Grace"`)
	assert.NotContains(t, fragment, "<html")

	resp, err = client.Get(app.server.URL + "/")
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), `value="Grace"`)
}

func TestEvent_ControlledEmailIsNormalized(t *testing.T) {
	app := newTestApp(t)
	client := app.client(t)

	resp, err := client.Get(app.server.URL + "/")
	require.NoError(t, err)
	email := eventPaths(t, body(t, resp))[1]

	resp = postEvent(t, client, app.server.URL+email, " Grace@Example.COM")
	assert.Contains(t, body(t, resp), `value="grace@example.com"`)
}

func TestEvent_UnknownComponent(t *testing.T) {
	app := newTestApp(t)
	client := app.client(t)

	resp, err := client.Get(app.server.URL + "/")
	require.NoError(t, err)
	body(t, resp)

	resp = postEvent(t, client, app.server.URL+"/events/ui-missing", "x")
	body(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEvent_ExpiredPageRefreshes(t *testing.T) {
	app := newTestApp(t)
	client := app.client(t)

	resp := postEvent(t, client, app.server.URL+"/events/ui-anything", "x")
	body(t, resp)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get("HX-Refresh"))
}

func TestSubmit_InvalidReturnsFormFragment(t *testing.T) {
	app := newTestApp(t)
	client := app.client(t)

	resp, err := client.Get(app.server.URL + "/")
	require.NoError(t, err)
	body(t, resp)

	req, err := http.NewRequest("POST", app.server.URL+"/submit", strings.NewReader(""))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	resp, err = client.Do(req)
	require.NoError(t, err)
	fragment := body(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(fragment, `<form id="showcase-form"`))
	assert.Contains(t, fragment, "This field is required")
	assert.Contains(t, fragment, `aria-invalid="true"`)
}

func TestSubmit_ValidRendersPage(t *testing.T) {
	app := newTestApp(t)
	client := app.client(t)

	resp, err := client.PostForm(app.server.URL+"/submit", url.Values{
		"name":    {"Grace Hopper"},
		"email":   {"grace@example.com"},
		"company": {"Navy"},
		"country": {"US"},
		"plan":    {"team"},
	})
	require.NoError(t, err)
	html := body(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "you&#39;re on the Team plan.")
	assert.NotContains(t, html, `aria-invalid="true"`)
}

func TestReset(t *testing.T) {
	app := newTestApp(t)
	client := app.client(t)

	resp, err := client.Get(app.server.URL + "/")
	require.NoError(t, err)
	before := eventPaths(t, body(t, resp))
	require.Equal(t, 1, app.pages.Len())

	resp, err = client.Get(app.server.URL + "/reset")
	require.NoError(t, err)
	body(t, resp)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.Equal(t, 0, app.pages.Len())

	var cleared *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)

	// The next visit gets a new page, not the old one rebuilt under the same id.
	resp, err = client.Get(app.server.URL + "/")
	require.NoError(t, err)
	after := eventPaths(t, body(t, resp))

	assert.NotEqual(t, before, after)
	assert.Equal(t, 1, app.pages.Len())
}
