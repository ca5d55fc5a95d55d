package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/formkit/internal/session"
)

// testSecret is a 64-byte secret for testing
const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestStore_SetAndGet(t *testing.T) {
	store := session.NewStore(testSecret, time.Hour, false)

	data := &session.Data{PageID: uuid.New()}

	w := httptest.NewRecorder()
	err := store.Set(w, data)
	require.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])

	got, err := store.Get(req)
	require.NoError(t, err)
	assert.Equal(t, data.PageID, got.PageID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), got.ExpiresAt, time.Minute)
}

func TestStore_NoCookie(t *testing.T) {
	store := session.NewStore(testSecret, time.Hour, false)

	req := httptest.NewRequest("GET", "/", nil)

	_, err := store.Get(req)
	assert.ErrorIs(t, err, http.ErrNoCookie)
}

func TestStore_ExpiredSession(t *testing.T) {
	// Create store with negative max age (already expired)
	store := session.NewStore(testSecret, -time.Hour, false)

	w := httptest.NewRecorder()
	err := store.Set(w, &session.Data{PageID: uuid.New()})
	require.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])

	_, err = store.Get(req)
	assert.ErrorIs(t, err, session.ErrExpired)
}

func TestStore_Clear(t *testing.T) {
	store := session.NewStore(testSecret, time.Hour, false)

	w := httptest.NewRecorder()
	store.Clear(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Equal(t, "", cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestStore_SecureCookie(t *testing.T) {
	store := session.NewStore(testSecret, time.Hour, true)

	w := httptest.NewRecorder()
	err := store.Set(w, &session.Data{PageID: uuid.New()})
	require.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestStore_InvalidCookie(t *testing.T) {
	store := session.NewStore(testSecret, time.Hour, false)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{
		Name:  session.CookieName,
		Value: "invalid-cookie-value",
	})

	_, err := store.Get(req)
	assert.Error(t, err)
}
