package session

import (
	"encoding/gob"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

// CookieName is the name of the session cookie.
const CookieName = "formkit_session"

// ErrExpired is returned for a well-formed cookie past its expiry.
var ErrExpired = errors.New("session expired")

func init() {
	// Register types for gob encoding
	gob.Register(uuid.UUID{})
	gob.Register(Data{})
}

// Data is what the cookie carries: the id of the visitor's live page.
type Data struct {
	PageID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store manages session cookies.
type Store struct {
	cookie *securecookie.SecureCookie
	name   string
	maxAge int
	secure bool
}

// NewStore creates a new session store.
// The secret must be at least 64 bytes: first 32 for hash key, next 32 for block key.
func NewStore(secret string, maxAge time.Duration, secure bool) *Store {
	hashKey := []byte(secret)[:32]
	blockKey := []byte(secret)[32:64]

	return &Store{
		cookie: securecookie.New(hashKey, blockKey),
		name:   CookieName,
		maxAge: int(maxAge.Seconds()),
		secure: secure,
	}
}

// Get retrieves the session data from the request cookie.
func (s *Store) Get(r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return nil, err
	}

	var data Data
	if err := s.cookie.Decode(s.name, cookie.Value, &data); err != nil {
		return nil, err
	}

	if time.Now().After(data.ExpiresAt) {
		return nil, ErrExpired
	}

	return &data, nil
}

// Set stores the session data in a cookie.
func (s *Store) Set(w http.ResponseWriter, data *Data) error {
	data.CreatedAt = time.Now()
	data.ExpiresAt = time.Now().Add(time.Duration(s.maxAge) * time.Second)

	encoded, err := s.cookie.Encode(s.name, data)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   s.maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear removes the session cookie.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
